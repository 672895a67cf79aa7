package rest

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/envelope"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FetchStats proxies an upstream aggregate endpoint, unwrapping the data
// envelope when present and passing the payload through untouched. The
// aggregate shape is backend-defined, so the console does not model it.
func FetchStats(ctx context.Context, client contracts.RestClient, log *zap.Logger, endpoint string) (json.RawMessage, bool) {
	body, err := client.Get(ctx, endpoint, nil)
	if err != nil {
		log.Warn("stats endpoint unavailable",
			zap.String(constvars.LoggingResourceKey, endpoint),
			zap.Error(err),
		)
		return nil, false
	}
	if payload := envelope.ObjectAt(body, "data", "data"); payload != nil {
		return payload, true
	}
	if payload := envelope.ObjectAt(body, "data"); payload != nil {
		return payload, true
	}
	return json.RawMessage(body), true
}
