package auth

import (
	"context"
	"healthapp-admin/internal/app/services/shared/session"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/exceptions"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubResponse struct {
	body       []byte
	statusCode int
}

type stubRestClient struct {
	responses map[string]stubResponse
	calls     []string
}

func (s *stubRestClient) Do(_ context.Context, _, path string, _ interface{}, _ url.Values) ([]byte, int, error) {
	s.calls = append(s.calls, path)
	resp, ok := s.responses[path]
	if !ok {
		return []byte(`{}`), constvars.StatusNotFound, nil
	}
	return resp.body, resp.statusCode, nil
}

func (s *stubRestClient) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	body, statusCode, _ := s.Do(ctx, constvars.MethodGet, path, nil, params)
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (s *stubRestClient) Post(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, statusCode, _ := s.Do(ctx, constvars.MethodPost, path, reqBody, nil)
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (s *stubRestClient) Put(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	return s.Post(ctx, path, reqBody)
}

func (s *stubRestClient) Patch(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	return s.Post(ctx, path, reqBody)
}

func (s *stubRestClient) Delete(ctx context.Context, path string) ([]byte, error) {
	return s.Get(ctx, path, nil)
}

func (s *stubRestClient) SetOnUnauthorized(func()) {}

func newTestUsecase(client *stubRestClient) (*authUsecase, *stubRestClient) {
	return &authUsecase{
		Client:  client,
		Session: session.NewMemorySessionStore(),
		Log:     zap.NewNop(),
	}, client
}

func TestLogin(t *testing.T) {
	loginRequest := &requests.Login{Email: "admin@clinic.test", Password: "secret"}

	t.Run("admin login persists session", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{
			constvars.EndpointStaffADLogin: {
				body:       []byte(`{"success":true,"data":{"token":"tok-1","user":{"id":"u1","username":"admin","role":"ADMIN"}}}`),
				statusCode: constvars.StatusOK,
			},
		}})

		result, err := u.Login(context.Background(), loginRequest)
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", result.Token)
		assert.Equal(t, "admin", result.User.Username)
		assert.Equal(t, "tok-1", u.Session.Token(context.Background()))
	})

	t.Run("non-admin role is refused and nothing persists", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{
			constvars.EndpointStaffADLogin: {
				body:       []byte(`{"success":true,"data":{"token":"tok-2","user":{"id":"d1","username":"drsmith","role":"DOCTOR"}}}`),
				statusCode: constvars.StatusOK,
			},
		}})

		result, err := u.Login(context.Background(), loginRequest)
		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		assert.Empty(t, u.Session.Token(context.Background()))
	})

	t.Run("success without token is an error", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{
			constvars.EndpointStaffADLogin: {
				body:       []byte(`{"success":true,"data":{"user":{"id":"u1","username":"admin","role":"ADMIN"}}}`),
				statusCode: constvars.StatusOK,
			},
		}})

		_, err := u.Login(context.Background(), loginRequest)
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCodeOf(err))
	})

	t.Run("missing staff endpoint retries plain login", func(t *testing.T) {
		u, client := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{
			constvars.EndpointLogin: {
				body:       []byte(`{"success":true,"data":{"token":"tok-3","user":{"id":"u1","username":"admin","role":"ADMIN"}}}`),
				statusCode: constvars.StatusOK,
			},
		}})

		result, err := u.Login(context.Background(), loginRequest)
		assert.NoError(t, err)
		assert.Equal(t, "tok-3", result.Token)
		assert.Equal(t, []string{constvars.EndpointStaffADLogin, constvars.EndpointLogin}, client.calls)
	})

	t.Run("rejection surfaces the upstream message", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{
			constvars.EndpointStaffADLogin: {
				body:       []byte(`{"success":false,"message":"Account locked"}`),
				statusCode: constvars.StatusUnauthorized,
			},
		}})

		_, err := u.Login(context.Background(), loginRequest)
		assert.Error(t, err)
		customErr := &exceptions.CustomError{}
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, "Account locked", customErr.ClientMessage)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("empty fields rejected locally", func(t *testing.T) {
		u, client := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{}})
		err := u.ChangePassword(context.Background(), &requests.ChangePassword{})
		assert.Error(t, err)
		assert.Empty(t, client.calls)
	})

	t.Run("mismatched confirmation rejected locally", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{}})
		err := u.ChangePassword(context.Background(), &requests.ChangePassword{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
			ConfirmPassword: "other-password",
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("short password rejected locally", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{}})
		err := u.ChangePassword(context.Background(), &requests.ChangePassword{
			CurrentPassword: "old-password",
			NewPassword:     "short",
			ConfirmPassword: "short",
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("missing endpoint maps to feature unavailable", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{}})
		err := u.ChangePassword(context.Background(), &requests.ChangePassword{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
			ConfirmPassword: "new-password",
		})
		assert.Equal(t, constvars.StatusNotImplemented, exceptions.StatusCodeOf(err))
	})
}

func TestRestoreSession(t *testing.T) {
	t.Run("empty session restores nothing", func(t *testing.T) {
		u, _ := newTestUsecase(&stubRestClient{responses: map[string]stubResponse{}})
		assert.Nil(t, u.RestoreSession(context.Background()))
	})
}
