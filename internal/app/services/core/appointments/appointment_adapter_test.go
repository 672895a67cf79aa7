package appointments

import (
	"context"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/exceptions"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRestClient struct {
	responses map[string][]byte
	patched   []string
}

func (s *stubRestClient) Do(_ context.Context, _, path string, _ interface{}, _ url.Values) ([]byte, int, error) {
	if body, ok := s.responses[path]; ok {
		return body, constvars.StatusOK, nil
	}
	return []byte(`{}`), constvars.StatusNotFound, nil
}

func (s *stubRestClient) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	body, statusCode, _ := s.Do(ctx, constvars.MethodGet, path, nil, params)
	if statusCode != constvars.StatusOK {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (s *stubRestClient) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) Patch(ctx context.Context, path string, body interface{}) ([]byte, error) {
	s.patched = append(s.patched, path)
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) Delete(ctx context.Context, path string) ([]byte, error) {
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) SetOnUnauthorized(func()) {}

func TestAppointmentGetAll(t *testing.T) {
	adapter := &appointmentAdapter{
		Client: &stubRestClient{responses: map[string][]byte{
			constvars.EndpointAppointments: []byte(`{"data":{"appointments":[{"id":"a1","status":"SCHEDULED"}]}}`),
		}},
		Log: zap.NewNop(),
	}

	appointments, ok := adapter.GetAll(context.Background())
	assert.True(t, ok)
	assert.Len(t, appointments, 1)
}

func TestAppointmentGetByID(t *testing.T) {
	adapter := &appointmentAdapter{
		Client: &stubRestClient{responses: map[string][]byte{
			"/appointments/a1": []byte(`{"data":{"appointment":{"id":"a1","status":"SCHEDULED","reason":"Checkup"}}}`),
		}},
		Log: zap.NewNop(),
	}

	t.Run("unwraps the envelope", func(t *testing.T) {
		appointment, err := adapter.GetByID(context.Background(), "a1")
		assert.NoError(t, err)
		assert.Equal(t, "Checkup", appointment.Reason)
	})

	t.Run("propagates upstream errors", func(t *testing.T) {
		appointment, err := adapter.GetByID(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, appointment)
	})
}

func TestAppointmentCancel(t *testing.T) {
	t.Run("hits the dedicated cancel sub-resource", func(t *testing.T) {
		client := &stubRestClient{responses: map[string][]byte{
			"/appointments/a1/cancel": []byte(`{"success":true}`),
		}}
		adapter := &appointmentAdapter{Client: client, Log: zap.NewNop()}

		err := adapter.Cancel(context.Background(), "a1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"/appointments/a1/cancel"}, client.patched)
	})

	t.Run("propagates upstream errors", func(t *testing.T) {
		client := &stubRestClient{responses: map[string][]byte{}}
		adapter := &appointmentAdapter{Client: client, Log: zap.NewNop()}

		err := adapter.Cancel(context.Background(), "a1")
		assert.Error(t, err)
	})
}

func TestAppointmentStats(t *testing.T) {
	adapter := &appointmentAdapter{
		Client: &stubRestClient{responses: map[string][]byte{
			constvars.EndpointAppointmentStats: []byte(`{"data":{"today":3,"upcoming":9}}`),
		}},
		Log: zap.NewNop(),
	}

	stats, ok := adapter.Stats(context.Background())
	assert.True(t, ok)
	assert.JSONEq(t, `{"today":3,"upcoming":9}`, string(stats))
}
