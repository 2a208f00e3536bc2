package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no session stored")

// Store persists the single auth_token row. Two implementations exist:
// the SQLite-backed store and an in-memory fallback for targets without
// an embedded database. Both satisfy the same contract so the backend is
// selected once at startup by configuration.
type Store interface {
	// Save replaces any existing session with the given one.
	Save(ctx context.Context, s AuthSession) error
	// Get returns the current session or ErrNoSession.
	Get(ctx context.Context) (*AuthSession, error)
	// Clear removes the session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
	// Exists reports whether a session row is present.
	Exists(ctx context.Context) (bool, error)
}
