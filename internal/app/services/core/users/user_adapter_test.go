package users

import (
	"context"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/exceptions"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRestClient struct {
	responses map[string][]byte
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
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) Delete(ctx context.Context, path string) ([]byte, error) {
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) SetOnUnauthorized(func()) {}

type stubDoctorAdapter struct {
	doctors []responses.Doctor
	ok      bool
}

func (s *stubDoctorAdapter) GetAll(context.Context) ([]responses.Doctor, bool) {
	return s.doctors, s.ok
}

func (s *stubDoctorAdapter) GetByID(context.Context, string) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctorAdapter) Create(context.Context, *requests.CreateDoctor) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctorAdapter) Update(context.Context, string, *requests.UpdateDoctor) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctorAdapter) Delete(context.Context, string) error { return nil }

func (s *stubDoctorAdapter) Stats(context.Context) (json.RawMessage, bool) { return nil, false }

type stubPatientAdapter struct {
	patients []responses.Patient
	ok       bool
}

func (s *stubPatientAdapter) GetAll(context.Context) ([]responses.Patient, bool) {
	return s.patients, s.ok
}

func (s *stubPatientAdapter) GetByID(context.Context, string) (*responses.Patient, error) {
	return nil, nil
}

func (s *stubPatientAdapter) Create(context.Context, *requests.CreatePatient) (*responses.Patient, error) {
	return nil, nil
}

func (s *stubPatientAdapter) Update(context.Context, string, *requests.UpdatePatient) (*responses.Patient, error) {
	return nil, nil
}

func (s *stubPatientAdapter) Delete(context.Context, string) error { return nil }

func (s *stubPatientAdapter) Stats(context.Context) (json.RawMessage, bool) { return nil, false }

func TestUserGetAll(t *testing.T) {
	t.Run("dedicated endpoint wins", func(t *testing.T) {
		adapter := &userAdapter{
			Client: &stubRestClient{responses: map[string][]byte{
				constvars.EndpointUsers: []byte(`{"data":{"users":[{"id":"u1","username":"admin","role":"ADMIN"}]}}`),
			}},
			Doctors:  &stubDoctorAdapter{},
			Patients: &stubPatientAdapter{},
			Log:      zap.NewNop(),
		}

		users, ok := adapter.GetAll(context.Background())
		assert.True(t, ok)
		assert.Len(t, users, 1)
		assert.Equal(t, "admin", users[0].Username)
	})

	t.Run("fallback projects doctors and patients", func(t *testing.T) {
		adapter := &userAdapter{
			Client: &stubRestClient{responses: map[string][]byte{}},
			Doctors: &stubDoctorAdapter{ok: true, doctors: []responses.Doctor{
				{ID: "d1", FirstName: "Greg", LastName: "House", CreatedAt: "2024-03-01"},
			}},
			Patients: &stubPatientAdapter{ok: true, patients: []responses.Patient{
				{ID: "p1", FirstName: "Jane", LastName: "Doe", Email: "jane@real.test", CreatedAt: "2024-04-01"},
			}},
			Log: zap.NewNop(),
		}

		users, ok := adapter.GetAll(context.Background())
		assert.True(t, ok)
		assert.Len(t, users, 2)

		byRole := map[string]responses.User{}
		for _, user := range users {
			byRole[user.Role] = user
		}

		doctor := byRole[constvars.RoleDoctor]
		assert.Equal(t, "greg.house@healthcare.com", doctor.Email)
		assert.Equal(t, "greghouse", doctor.Username)
		assert.True(t, doctor.IsActive)

		patient := byRole[constvars.RolePatient]
		assert.Equal(t, "jane@real.test", patient.Email)
		assert.Equal(t, "janedoe", patient.Username)
	})

	t.Run("one fallback source is enough", func(t *testing.T) {
		adapter := &userAdapter{
			Client:   &stubRestClient{responses: map[string][]byte{}},
			Doctors:  &stubDoctorAdapter{ok: false},
			Patients: &stubPatientAdapter{ok: true, patients: []responses.Patient{{ID: "p1", FirstName: "Jane"}}},
			Log:      zap.NewNop(),
		}

		users, ok := adapter.GetAll(context.Background())
		assert.True(t, ok)
		assert.Len(t, users, 1)
	})

	t.Run("every source failing is empty, not an error", func(t *testing.T) {
		adapter := &userAdapter{
			Client:   &stubRestClient{responses: map[string][]byte{}},
			Doctors:  &stubDoctorAdapter{ok: false},
			Patients: &stubPatientAdapter{ok: false},
			Log:      zap.NewNop(),
		}

		users, ok := adapter.GetAll(context.Background())
		assert.False(t, ok)
		assert.Empty(t, users)
	})
}

func TestUserCRUD(t *testing.T) {
	adapter := &userAdapter{
		Client: &stubRestClient{responses: map[string][]byte{
			"/users/u1":                 []byte(`{"data":{"user":{"id":"u1","username":"admin","role":"ADMIN"}}}`),
			constvars.EndpointUsers:     []byte(`{"data":{"user":{"id":"u2","username":"fresh","role":"PATIENT"}}}`),
			constvars.EndpointUserStats: []byte(`{"data":{"total":4,"active":3}}`),
		}},
		Doctors:  &stubDoctorAdapter{},
		Patients: &stubPatientAdapter{},
		Log:      zap.NewNop(),
	}

	t.Run("get by id unwraps the envelope", func(t *testing.T) {
		user, err := adapter.GetByID(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
	})

	t.Run("get by id propagates upstream errors", func(t *testing.T) {
		user, err := adapter.GetByID(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("create decodes the created record", func(t *testing.T) {
		user, err := adapter.Create(context.Background(), &requests.CreateUser{
			Username: "fresh",
			Email:    "fresh@healthcare.com",
			Password: "secret-pw",
			Role:     constvars.RolePatient,
		})
		assert.NoError(t, err)
		assert.Equal(t, "u2", user.ID)
	})

	t.Run("update decodes the changed record", func(t *testing.T) {
		user, err := adapter.Update(context.Background(), "u1", &requests.UpdateUser{FirstName: "Ada"})
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("delete propagates upstream errors", func(t *testing.T) {
		assert.NoError(t, adapter.Delete(context.Background(), "u1"))
		assert.Error(t, adapter.Delete(context.Background(), "missing"))
	})

	t.Run("stats passes the aggregate through", func(t *testing.T) {
		stats, ok := adapter.Stats(context.Background())
		assert.True(t, ok)
		assert.JSONEq(t, `{"total":4,"active":3}`, string(stats))
	})
}

func TestProjections(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing identifiers are synthesized", func(t *testing.T) {
		user := doctorToUser(responses.Doctor{}, now)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.Username)
		assert.Equal(t, now.Format(time.RFC3339), user.CreatedAt)
	})

	t.Run("full name splits when parts are missing", func(t *testing.T) {
		user := doctorToUser(responses.Doctor{Name: "Gregory House MD"}, now)
		assert.Equal(t, "Gregory", user.FirstName)
		assert.Equal(t, "House MD", user.LastName)
	})

	t.Run("embedded account wins over synthesis", func(t *testing.T) {
		user := patientToUser(responses.Patient{
			FirstName: "Jane",
			LastName:  "Doe",
			User:      &responses.UserRef{Email: "jane@account.test", Username: "janed"},
		}, now)
		assert.Equal(t, "jane@account.test", user.Email)
		assert.Equal(t, "janed", user.Username)
	})
}
