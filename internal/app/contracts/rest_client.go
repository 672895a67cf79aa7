package contracts

import (
	"context"
	"net/url"
)

// RestClient performs authenticated requests against the upstream
// healthcare API. Do returns the raw response body and status code so
// callers can probe deployment-specific payload shapes themselves.
type RestClient interface {
	Do(ctx context.Context, method, path string, body interface{}, params url.Values) ([]byte, int, error)
	Get(ctx context.Context, path string, params url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body interface{}) ([]byte, error)
	Put(ctx context.Context, path string, body interface{}) ([]byte, error)
	Patch(ctx context.Context, path string, body interface{}) ([]byte, error)
	Delete(ctx context.Context, path string) ([]byte, error)
	SetOnUnauthorized(fn func())
}
