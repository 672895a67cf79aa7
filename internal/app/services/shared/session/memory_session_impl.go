package session

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/dto/responses"
	"sync"
)

type memorySessionStore struct {
	mu    sync.RWMutex
	token string
	user  *responses.User
}

// NewMemorySessionStore keeps the session in process memory. Used when
// Redis is unreachable; the operator logs in again after a restart.
func NewMemorySessionStore() contracts.SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) Save(_ context.Context, token string, user *responses.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

func (s *memorySessionStore) Token(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *memorySessionStore) User(_ context.Context) *responses.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *memorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
