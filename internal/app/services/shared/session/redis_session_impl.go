package session

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
	Log    *zap.Logger
}

// NewRedisSessionStore persists the administrator session in Redis so a
// console restart does not force a new login.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) contracts.SessionStore {
	return &redisSessionStore{
		Client: client,
		TTL:    ttl,
		Log:    logger,
	}
}

func (s *redisSessionStore) Save(ctx context.Context, token string, user *responses.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.Client.Set(ctx, constvars.SessionTokenKey, token, s.TTL).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	if err := s.Client.Set(ctx, constvars.SessionUserKey, userJSON, s.TTL).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *redisSessionStore) Token(ctx context.Context) string {
	token, err := s.Client.Get(ctx, constvars.SessionTokenKey).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		s.Log.Error("redisSessionStore.Token error reading session", zap.Error(err))
		return ""
	}
	return token
}

func (s *redisSessionStore) User(ctx context.Context) *responses.User {
	data, err := s.Client.Get(ctx, constvars.SessionUserKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.Log.Error("redisSessionStore.User error reading session", zap.Error(err))
		return nil
	}
	user := new(responses.User)
	if err := json.Unmarshal([]byte(data), user); err != nil {
		s.Log.Error("redisSessionStore.User error unmarshaling session user", zap.Error(err))
		return nil
	}
	return user
}

func (s *redisSessionStore) Clear(ctx context.Context) error {
	if err := s.Client.Del(ctx, constvars.SessionTokenKey, constvars.SessionUserKey).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
