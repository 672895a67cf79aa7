package auth

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/exceptions"
	"healthapp-admin/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	Client  contracts.RestClient
	Session contracts.SessionStore
	Log     *zap.Logger
}

func NewAuthUsecase(client contracts.RestClient, session contracts.SessionStore, logger *zap.Logger) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			Client:  client,
			Session: session,
			Log:     logger,
		}
	})
	return authUsecaseInstance
}

// Login authenticates against the staff directory endpoint and admits only
// administrator accounts. Older deployments without the staff endpoint are
// retried on the plain login endpoint.
func (u *authUsecase) Login(ctx context.Context, request *requests.Login) (*contracts.LoginOutput, error) {
	body, statusCode, err := u.Client.Do(ctx, constvars.MethodPost, constvars.EndpointStaffADLogin, request, nil)
	if err != nil {
		return nil, err
	}
	if statusCode == constvars.StatusNotFound {
		u.Log.Warn("authUsecase.Login staff endpoint missing, retrying plain login",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointStaffADLogin),
		)
		body, statusCode, err = u.Client.Do(ctx, constvars.MethodPost, constvars.EndpointLogin, request, nil)
		if err != nil {
			return nil, err
		}
	}

	if statusCode < constvars.StatusOK || statusCode >= 300 {
		message := envelope.StringAt(body, "message")
		u.Log.Warn("authUsecase.Login rejected by upstream",
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		)
		return nil, exceptions.ErrAuthLoginRejected(message)
	}

	user := decodeLoginUser(body)
	if user == nil {
		return nil, exceptions.ErrAuthLoginRejected("")
	}
	if user.Role != constvars.RoleAdmin {
		u.Log.Warn("authUsecase.Login non-admin account refused",
			zap.String(constvars.LoggingRoleKey, user.Role),
			zap.String(constvars.LoggingUsernameKey, user.Username),
		)
		return nil, exceptions.ErrAuthRoleNotAllowed(user.Role)
	}

	token := utils.FirstNonEmpty(
		envelope.StringAt(body, "data", "token"),
		envelope.StringAt(body, "data", "data", "token"),
		envelope.StringAt(body, "token"),
	)
	if token == "" {
		return nil, exceptions.ErrAuthTokenMissing()
	}

	if err := u.Session.Save(ctx, token, user); err != nil {
		return nil, err
	}

	u.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)
	return &contracts.LoginOutput{Token: token, User: user}, nil
}

func decodeLoginUser(body []byte) *responses.User {
	for _, raw := range [][]byte{
		envelope.ObjectAt(body, "data", "user"),
		envelope.ObjectAt(body, "data", "data", "user"),
		envelope.ObjectAt(body, "data", "data"),
		envelope.ObjectAt(body, "user"),
	} {
		if raw == nil {
			continue
		}
		user := new(responses.User)
		if err := json.Unmarshal(raw, user); err != nil {
			continue
		}
		if user.Role != "" {
			return user
		}
	}
	return nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.Session.Clear(ctx); err != nil {
		return exceptions.ErrSessionClear(err)
	}
	u.Log.Info("authUsecase.Logout cleared session")
	return nil
}

// RestoreSession surfaces the stored administrator if the saved token is
// still usable. An expired token drops the session instead.
func (u *authUsecase) RestoreSession(ctx context.Context) *responses.User {
	token := u.Session.Token(ctx)
	if token == "" {
		return nil
	}
	if utils.TokenExpired(token, time.Now()) {
		u.Log.Info("authUsecase.RestoreSession dropping expired token")
		if err := u.Session.Clear(ctx); err != nil {
			u.Log.Error("authUsecase.RestoreSession error clearing session", zap.Error(err))
		}
		return nil
	}
	return u.Session.User(ctx)
}

func (u *authUsecase) RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) (*responses.User, error) {
	payload := map[string]string{
		"email":     request.Email,
		"username":  request.Username,
		"password":  request.Password,
		"firstName": request.FirstName,
		"lastName":  request.LastName,
		"role":      constvars.RoleAdmin,
	}

	body, err := u.Client.Post(ctx, constvars.EndpointRegister, payload)
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusNotFound {
			return nil, exceptions.ErrFeatureUnavailable(constvars.EndpointRegister)
		}
		return nil, err
	}

	user := decodeLoginUser(body)
	if user == nil {
		user = &responses.User{
			Email:     request.Email,
			Username:  request.Username,
			Role:      constvars.RoleAdmin,
			FirstName: request.FirstName,
			LastName:  request.LastName,
			IsActive:  true,
		}
	}
	u.Log.Info("authUsecase.RegisterAdmin succeeded",
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)
	return user, nil
}

// ChangePassword validates locally first so obviously bad input never
// reaches the wire, then maps a missing endpoint to a feature flag the
// console can show.
func (u *authUsecase) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	if request.CurrentPassword == "" || request.NewPassword == "" || request.ConfirmPassword == "" {
		return exceptions.ErrPasswordFieldsRequired()
	}
	if request.NewPassword != request.ConfirmPassword {
		return exceptions.ErrPasswordsDoNotMatch()
	}
	if len(request.NewPassword) < 8 {
		return exceptions.ErrPasswordTooShort()
	}

	payload := map[string]string{
		"currentPassword": request.CurrentPassword,
		"newPassword":     request.NewPassword,
	}
	if _, err := u.Client.Post(ctx, constvars.EndpointChangePassword, payload); err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusNotFound {
			return exceptions.ErrFeatureUnavailable(constvars.EndpointChangePassword)
		}
		return err
	}

	u.Log.Info("authUsecase.ChangePassword succeeded")
	return nil
}
