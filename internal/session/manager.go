package session

import (
	"context"
	"sync"
	"time"
)

// Manager is the single source of truth for "is there a valid local
// session". It owns one Store and a reactive authenticated flag that the
// UI layer can subscribe to instead of polling. All mutations go through
// the manager so the flag and storage stay in sync; explicit checks
// resynchronize the flag in case they ever diverge.
type Manager struct {
	store Store
	now   func() time.Time

	mu            sync.Mutex
	authenticated bool
	subs          map[int]chan bool
	nextSubID     int
}

func NewManager(store Store) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		subs:  make(map[int]chan bool),
	}

	// Initial check. A storage failure here means "not authenticated",
	// not a startup error.
	exists, err := store.Exists(context.Background())
	if err != nil {
		exists = false
	}
	m.authenticated = exists

	return m
}

// SaveSession replaces the stored session, stamps createdAt with the
// current time and flips the authenticated flag to true.
func (m *Manager) SaveSession(ctx context.Context, token string, userID, userEmail, userName *string, expiresAt *time.Time) error {
	sess := AuthSession{
		Token:     token,
		UserID:    userID,
		UserEmail: userEmail,
		UserName:  userName,
		CreatedAt: m.now().UnixMilli(),
	}
	if expiresAt != nil {
		millis := expiresAt.UnixMilli()
		sess.ExpiresAt = &millis
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}

	m.setAuthenticated(true)
	return nil
}

func (m *Manager) Token(ctx context.Context) (string, bool) {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return "", false
	}
	return sess.Token, true
}

func (m *Manager) UserID(ctx context.Context) (string, bool) {
	return m.optionalField(ctx, func(s *AuthSession) *string { return s.UserID })
}

func (m *Manager) UserEmail(ctx context.Context) (string, bool) {
	return m.optionalField(ctx, func(s *AuthSession) *string { return s.UserEmail })
}

func (m *Manager) UserName(ctx context.Context) (string, bool) {
	return m.optionalField(ctx, func(s *AuthSession) *string { return s.UserName })
}

func (m *Manager) optionalField(ctx context.Context, pick func(*AuthSession) *string) (string, bool) {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return "", false
	}
	field := pick(sess)
	if field == nil {
		return "", false
	}
	return *field, true
}

// IsUserAuthenticated re-derives the answer from storage and refreshes
// the reactive flag to match. Any read failure is treated as "not
// authenticated" (fail-closed).
func (m *Manager) IsUserAuthenticated(ctx context.Context) bool {
	exists, err := m.store.Exists(ctx)
	if err != nil {
		exists = false
	}
	m.setAuthenticated(exists)
	return exists
}

// ClearSession removes the stored session. Idempotent: clearing when no
// session exists still leaves the flag false.
func (m *Manager) ClearSession(ctx context.Context) error {
	err := m.store.Clear(ctx)
	m.setAuthenticated(false)
	return err
}

// IsTokenExpired reports whether the stored token's expiry is strictly in
// the past. No stored session and no expiry both mean "not expired".
// Advisory only: an expired session is never cleared here, callers decide.
func (m *Manager) IsTokenExpired(ctx context.Context) bool {
	sess, err := m.store.Get(ctx)
	if err != nil || sess.ExpiresAt == nil {
		return false
	}
	return m.now().UnixMilli() > *sess.ExpiresAt
}

// Authenticated returns the last known value of the reactive flag without
// touching storage.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Subscribe returns a channel that receives the authenticated flag each
// time it changes, plus an unsubscribe func. The channel is buffered; a
// subscriber that falls behind misses intermediate values, not the flag
// itself, which Authenticated always reflects.
func (m *Manager) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++

	ch := make(chan bool, 1)
	m.subs[id] = ch

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}

	return ch, unsubscribe
}

func (m *Manager) setAuthenticated(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.authenticated == v {
		return
	}
	m.authenticated = v

	for _, ch := range m.subs {
		select {
		case ch <- v:
		default:
			// Drop the stale value and push the latest.
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}
