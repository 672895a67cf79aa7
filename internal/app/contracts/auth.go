package contracts

import (
	"context"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"
)

type LoginOutput struct {
	Token string          `json:"token"`
	User  *responses.User `json:"user"`
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*LoginOutput, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) *responses.User
	RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) (*responses.User, error)
	ChangePassword(ctx context.Context, request *requests.ChangePassword) error
}
