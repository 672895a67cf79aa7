package rest

import (
	"context"
	"healthapp-admin/internal/app/services/shared/session"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestRestClientBearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(constvars.HeaderAuthorization)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	store := session.NewMemorySessionStore()
	client := &restClient{
		BaseUrl:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Session:    store,
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}

	t.Run("anonymous request carries no header", func(t *testing.T) {
		_, err := client.Get(context.Background(), "/users", nil)
		assert.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("stored token becomes bearer header", func(t *testing.T) {
		store.Save(context.Background(), "tok-123", nil)
		_, err := client.Get(context.Background(), "/users", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})
}

func TestRestClientUnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := session.NewMemorySessionStore()
	store.Save(context.Background(), "expired-token", nil)

	var notified atomic.Int32
	client := &restClient{
		BaseUrl:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Session:    store,
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}
	client.SetOnUnauthorized(func() { notified.Add(1) })

	_, err := client.Get(context.Background(), "/users", nil)
	assert.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	assert.Empty(t, store.Token(context.Background()))
	assert.Equal(t, int32(1), notified.Load())
}

func TestRestClientAnonymousUnauthorizedPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad credentials"}`))
	}))
	defer server.Close()

	var notified atomic.Int32
	client := &restClient{
		BaseUrl:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Session:    session.NewMemorySessionStore(),
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}
	client.SetOnUnauthorized(func() { notified.Add(1) })

	body, statusCode, err := client.Do(context.Background(), constvars.MethodPost, "/auth/login", map[string]string{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, statusCode)
	assert.Contains(t, string(body), "bad credentials")
	assert.Equal(t, int32(0), notified.Load())
}

func TestRestClientUpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &restClient{
		BaseUrl:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Session:    session.NewMemorySessionStore(),
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}

	_, err := client.Get(context.Background(), "/doctors", nil)
	assert.Error(t, err)
	assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
}
