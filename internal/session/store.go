package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"carmarket-bff/internal/marketerrors"
)

// Store persists sessions by id
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session // key: session id
	now      func() time.Time
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Load returns a copy of the session, or ErrSessionNotFound when missing or expired
func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("load session %s: %w", id, marketerrors.ErrSessionNotFound)
	}
	if s.Expired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, fmt.Errorf("load session %s: %w", id, marketerrors.ErrSessionNotFound)
	}
	return &s, nil
}

// Save stores a copy of the session; last write wins
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("save session: empty session id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

// Delete removes the session; deleting a missing session is not an error
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions, expired ones included
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RedisStore keeps sessions as JSON strings with a TTL matching the session lifetime
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a redis-backed store; keys are prefix+session id
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// Load fetches and decodes the session
func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	const op = "redis.Load"
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: session %s: %w", op, id, marketerrors.ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get session: %w", op, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s: failed to decode session: %w", op, err)
	}
	return &s, nil
}

// Save encodes the session and sets it with the remaining lifetime as TTL
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	const op = "redis.Save"
	if s == nil || s.ID == "" {
		return fmt.Errorf("%s: empty session id", op)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: failed to encode session: %w", op, err)
	}

	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = s.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return r.Delete(ctx, s.ID)
		}
	}
	if err := r.client.Set(ctx, r.key(s.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: failed to set session: %w", op, err)
	}
	return nil
}

// Delete removes the session key
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	const op = "redis.Delete"
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("%s: failed to delete session: %w", op, err)
	}
	return nil
}
