// Package memory implements ports.SessionStore in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// Store keeps sessions in a map. Safe for concurrent use; best suited for
// tests, the interactive CLI and single-instance deployments.
type Store struct {
	data map[string]*domain.Session
	mu   sync.RWMutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]*domain.Session)}
}

// Save persists a deep copy so the caller cannot mutate stored state.
func (s *Store) Save(ctx context.Context, key string, session *domain.Session) error {
	clone := session.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone
	return nil
}

// Load returns a deep copy of the stored session.
func (s *Store) Load(ctx context.Context, key string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored session keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
