// Package middleware wraps a SessionStore to add behavior at the
// persistence boundary: PII scrubbing, encryption at rest.
package middleware

import "github.com/nsfeld/salescoach/pkg/ports"

// Middleware allows wrapping a SessionStore to add behavior.
type Middleware func(ports.SessionStore) ports.SessionStore

// Chain applies middlewares right to left, so the first one listed sees the
// session first on Save.
func Chain(store ports.SessionStore, mws ...Middleware) ports.SessionStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
