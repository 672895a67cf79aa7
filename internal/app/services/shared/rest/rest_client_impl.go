package rest

import (
	"bytes"
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	restClientInstance contracts.RestClient
	onceRestClient     sync.Once
)

type restClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Session    contracts.SessionStore
	Limiter    *rate.Limiter
	Log        *zap.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

func NewRestClient(baseUrl string, timeout time.Duration, maxRequestsPerSecond int, session contracts.SessionStore, logger *zap.Logger) contracts.RestClient {
	onceRestClient.Do(func() {
		client := &restClient{
			BaseUrl:    strings.TrimRight(baseUrl, "/"),
			HTTPClient: &http.Client{Timeout: timeout},
			Session:    session,
			Limiter:    rate.NewLimiter(rate.Limit(maxRequestsPerSecond), maxRequestsPerSecond),
			Log:        logger,
		}
		restClientInstance = client
	})
	return restClientInstance
}

func (c *restClient) SetOnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *restClient) Do(ctx context.Context, method, path string, body interface{}, params url.Values) ([]byte, int, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient.Do error marshaling request body",
				zap.String(constvars.LoggingMethodKey, method),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	requestURL := c.BaseUrl + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		c.Log.Error("restClient.Do error creating HTTP request",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	token := c.Session.Token(ctx)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient.Do error sending HTTP request",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.Do error reading response body",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, resp.StatusCode, exceptions.ErrReadResponseBody(err)
	}

	// A 401 on a request that carried the session token means the token
	// expired upstream. Anonymous requests (login itself) pass through so
	// callers can read the rejection body.
	if resp.StatusCode == constvars.StatusUnauthorized && token != "" {
		c.handleUnauthorized(ctx, method, path)
		return bodyBytes, resp.StatusCode, exceptions.ErrUpstreamUnauthorized()
	}

	return bodyBytes, resp.StatusCode, nil
}

// handleUnauthorized drops the stored session and notifies the console so
// the operator is sent back to login, mirroring an expired token redirect.
func (c *restClient) handleUnauthorized(ctx context.Context, method, path string) {
	c.Log.Warn("restClient received unauthorized from upstream",
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)
	if err := c.Session.Clear(ctx); err != nil {
		c.Log.Error("restClient.handleUnauthorized error clearing session", zap.Error(err))
	}
	c.mu.Lock()
	fn := c.onUnauthorized
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (c *restClient) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	body, statusCode, err := c.Do(ctx, constvars.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (c *restClient) Post(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, statusCode, err := c.Do(ctx, constvars.MethodPost, path, reqBody, nil)
	if err != nil {
		return nil, err
	}
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (c *restClient) Put(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, statusCode, err := c.Do(ctx, constvars.MethodPut, path, reqBody, nil)
	if err != nil {
		return nil, err
	}
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (c *restClient) Patch(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, statusCode, err := c.Do(ctx, constvars.MethodPatch, path, reqBody, nil)
	if err != nil {
		return nil, err
	}
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}

func (c *restClient) Delete(ctx context.Context, path string) ([]byte, error) {
	body, statusCode, err := c.Do(ctx, constvars.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if statusCode < constvars.StatusOK || statusCode >= 300 {
		return body, exceptions.ErrUpstreamStatus(statusCode, path)
	}
	return body, nil
}
