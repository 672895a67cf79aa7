package messages

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	messageAdapterInstance contracts.MessageAdapter
	onceMessageAdapter     sync.Once
)

type messageAdapter struct {
	Client contracts.RestClient
	Log    *zap.Logger
}

func NewMessageAdapter(client contracts.RestClient, logger *zap.Logger) contracts.MessageAdapter {
	onceMessageAdapter.Do(func() {
		messageAdapterInstance = &messageAdapter{
			Client: client,
			Log:    logger,
		}
	})
	return messageAdapterInstance
}

func (a *messageAdapter) GetAll(ctx context.Context) ([]responses.MessageThread, bool) {
	threads, ok := a.fetch(ctx, constvars.EndpointMessageThreads)
	if !ok {
		a.Log.Warn("messageAdapter.GetAll falling back to legacy threads endpoint",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointMessageThreads),
		)
		threads, ok = a.fetch(ctx, constvars.EndpointThreads)
	}
	if !ok {
		return []responses.MessageThread{}, false
	}

	utils.SortByNewest(threads, func(thread responses.MessageThread) string {
		return utils.FirstNonEmpty(thread.UpdatedAt, thread.CreatedAt)
	})
	return threads, true
}

func (a *messageAdapter) fetch(ctx context.Context, endpoint string) ([]responses.MessageThread, bool) {
	body, err := a.Client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, false
	}
	threads := envelope.DecodeList[responses.MessageThread](body,
		envelope.Path("data", "threads"),
		envelope.Path("data"),
		envelope.Path(),
	)
	if threads == nil {
		return nil, false
	}
	return threads, true
}
