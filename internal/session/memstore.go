package session

import (
	"context"
	"sync"
)

// memoryStore is the fallback backend for targets without an embedded
// database. State does not survive a restart.
type memoryStore struct {
	mu   sync.RWMutex
	sess *AuthSession
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Save(_ context.Context, sess AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &sess
	return nil
}

func (s *memoryStore) Get(_ context.Context) (*AuthSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return nil, ErrNoSession
	}
	copied := *s.sess
	return &copied, nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}

func (s *memoryStore) Exists(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess != nil, nil
}
