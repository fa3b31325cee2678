/*
Package session serializes access to persisted sessions.

Every operation on a given session key runs under that key's lock, so a turn
is always a consistent read-modify-write. Operations on distinct keys run in
parallel. An optional distributed locker extends the guarantee across
replicas sharing one store.
*/
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nsfeld/salescoach/internal/logging"
	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
)

// lockEntry holds a key's mutex and its reference count.
type lockEntry struct {
	mu     sync.Mutex
	refs   int
	unlock ports.UnlockFunc
}

// Manager orchestrates session access. Lock entries are reference counted so
// the lock map does not grow with the number of sessions ever seen.
type Manager struct {
	store ports.SessionStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) { m.locker = locker }
}

// WithLogger configures a logger for deferred errors.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a session manager over the given store.
func NewManager(store ports.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) acquire(key string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.locks[key]
	if !ok {
		entry = &lockEntry{}
		m.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (m *Manager) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.locks[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, key)
	}
}

// WithLock executes fn while holding the lock for the session key.
func (m *Manager) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := m.acquire(key)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(key)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, key, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"session_key", key,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Load retrieves an existing session from the store.
func (m *Manager) Load(ctx context.Context, key string) (*domain.Session, error) {
	var session *domain.Session
	err := m.WithLock(ctx, key, func(ctx context.Context) error {
		var err error
		session, err = m.store.Load(ctx, key)
		return err
	})
	return session, err
}

// Save persists the session state.
func (m *Manager) Save(ctx context.Context, key string, session *domain.Session) error {
	return m.WithLock(ctx, key, func(ctx context.Context) error {
		return m.store.Save(ctx, key, session)
	})
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, key string) error {
	return m.WithLock(ctx, key, func(ctx context.Context) error {
		return m.store.Delete(ctx, key)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}
