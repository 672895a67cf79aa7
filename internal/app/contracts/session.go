package contracts

import (
	"context"
	"healthapp-admin/internal/pkg/dto/responses"
)

// SessionStore persists the signed-in administrator between restarts.
type SessionStore interface {
	Save(ctx context.Context, token string, user *responses.User) error
	Token(ctx context.Context) string
	User(ctx context.Context) *responses.User
	Clear(ctx context.Context) error
}
