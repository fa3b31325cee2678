package ports

import (
	"context"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// SessionStore persists session state, enabling resumable training sessions.
type SessionStore interface {
	// Save persists the session under its key.
	Save(ctx context.Context, key string, session *domain.Session) error

	// Load retrieves the session for a key.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, key string) (*domain.Session, error)

	// Delete removes the session for a key. The engine itself never deletes
	// sessions; retention is caller-owned.
	Delete(ctx context.Context, key string) error

	// List returns the keys of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
