package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/utils"
)

// TeardownFunc releases resources tied to a session when it ends
type TeardownFunc func(sessionID string)

// Manager owns the session lifecycle: created at sign-in (or first visit),
// resolved per request, torn down at logout or once expired.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	teardowns []TeardownFunc
	live      map[string]time.Time // session id -> expiry, for sessions seen by this process
}

// NewManager creates a session manager over the given store
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now, live: make(map[string]time.Time)}
}

// OnEnd registers a hook run when a session ends
func (m *Manager) OnEnd(fn TeardownFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, fn)
}

// Anonymous starts a session without a token
func (m *Manager) Anonymous(ctx context.Context) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:        utils.GenerateID(),
		Theme:     ThemeLight,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session: create anonymous session: %w", err)
	}
	m.track(s)
	return s, nil
}

// SignIn starts an authenticated session for token, decoding the user id from it.
// The id always rotates; the theme of current carries over and current is ended.
func (m *Manager) SignIn(ctx context.Context, current *Session, token string) (*Session, error) {
	now := m.now()
	userID, err := UserIDFromToken(token, now)
	if err != nil {
		return nil, fmt.Errorf("session: sign in: %w", err)
	}

	s := &Session{
		ID:        utils.GenerateID(),
		Theme:     ThemeLight,
		CreatedAt: now,
	}
	if current != nil {
		s.Theme = current.Theme
		if err := m.End(ctx, current.ID); err != nil {
			return nil, fmt.Errorf("session: drop previous session: %w", err)
		}
	}
	s.Token = token
	s.UserID = userID
	s.ExpiresAt = now.Add(m.ttl)

	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session: save session: %w", err)
	}
	m.track(s)
	return s, nil
}

// Resolve loads a session by id. A known session that has expired in the store is torn down.
func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	if id == "" || !utils.IsID(id) {
		return nil, fmt.Errorf("session: resolve: %w - invalid id", marketerrors.ErrSessionNotFound)
	}
	s, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, marketerrors.ErrSessionNotFound) && m.forget(id) {
			m.teardown(id)
		}
		return nil, fmt.Errorf("session: resolve: %w", err)
	}
	m.track(s)
	return s, nil
}

// Update persists changes made to a session (e.g. the theme)
func (m *Manager) Update(ctx context.Context, s *Session) error {
	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("session: update: %w", err)
	}
	m.track(s)
	return nil
}

// End deletes the session and runs the teardown hooks
func (m *Manager) End(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("session: end: %w", err)
	}
	m.forget(id)
	m.teardown(id)
	return nil
}

// Sweep ends every known session whose lifetime has passed and returns how many were ended.
// Teardown hooks run even when the store fails to delete, since the store expires entries itself.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.now()

	m.mu.Lock()
	var expired []string
	for id, expiresAt := range m.live {
		if !now.Before(expiresAt) {
			expired = append(expired, id)
			delete(m.live, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		if err := m.store.Delete(ctx, id); err != nil {
			utils.Warn("failed to delete expired session", map[string]any{"session_id": id, "error": err.Error()})
		}
		m.teardown(id)
	}
	if len(expired) > 0 {
		utils.Debug("expired sessions swept", map[string]any{"count": len(expired)})
	}
	return len(expired)
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

// Live returns the number of sessions awaiting expiry or logout
func (m *Manager) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// track remembers when s expires; sessions without an expiry are never swept
func (m *Manager) track(s *Session) {
	if s.ExpiresAt.IsZero() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[s.ID] = s.ExpiresAt
}

func (m *Manager) forget(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live[id]
	delete(m.live, id)
	return ok
}

func (m *Manager) teardown(id string) {
	m.mu.Lock()
	hooks := append([]TeardownFunc(nil), m.teardowns...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
}
