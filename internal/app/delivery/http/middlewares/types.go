package middlewares

import (
	"healthapp-admin/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log     *zap.Logger
	Session contracts.SessionStore
}

func NewMiddlewares(logger *zap.Logger, session contracts.SessionStore) *Middlewares {
	return &Middlewares{
		Log:     logger,
		Session: session,
	}
}
