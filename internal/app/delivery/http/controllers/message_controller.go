package controllers

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/listing"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type MessageController struct {
	Log            *zap.Logger
	MessageAdapter contracts.MessageAdapter

	mu    sync.Mutex
	state listing.State
}

func NewMessageController(logger *zap.Logger, messageAdapter contracts.MessageAdapter) *MessageController {
	return &MessageController{
		Log:            logger,
		MessageAdapter: messageAdapter,
	}
}

func (ctrl *MessageController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	threads, ok := ctrl.MessageAdapter.GetAll(ctx)
	view := buildListView(threads, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(thread responses.MessageThread) []string {
			fields := []string{thread.Subject, thread.LastMessage}
			fields = append(fields, thread.Participants...)
			return fields
		},
		nil,
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}
