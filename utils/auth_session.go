package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"keshwala/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session has expired or never existed.
var ErrSessionNotFound = errors.New("session not found")

// AuthSession is the server-side state of one browser session: who, if
// anyone, is signed in on it.
type AuthSession struct {
	ID            string       `json:"id"`
	User          *models.User `json:"user,omitempty"`
	RefreshToken  string       `json:"refreshToken,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// SessionStore persists AuthSessions keyed by session ID.
type SessionStore interface {
	GetAuthSession(ctx context.Context, sessionID string) (*AuthSession, error)
	SaveAuthSession(ctx context.Context, session AuthSession) error
	DeleteAuthSession(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore keeps sessions in Redis, each expiring ttl after its
// last save.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

// SaveAuthSession saves the authentication session in Redis with a TTL.
func (s *redisSessionStore) SaveAuthSession(ctx context.Context, session AuthSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := s.client.Set(ctx, AuthSessionPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the authentication session from Redis.
func (s *redisSessionStore) GetAuthSession(ctx context.Context, sessionID string) (*AuthSession, error) {
	data, err := s.client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes an authentication session from Redis.
func (s *redisSessionStore) DeleteAuthSession(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, AuthSessionPrefix+sessionID).Err()
}

type memorySession struct {
	session AuthSession
	expires time.Time
}

// MemorySessionStore keeps sessions in process. Used when Redis is not
// configured and in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
	now      func() time.Time
}

// NewMemorySessionStore returns an empty MemorySessionStore.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{ttl: ttl, sessions: make(map[string]memorySession), now: time.Now}
}

func (s *MemorySessionStore) SaveAuthSession(_ context.Context, session AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	session.LastUpdatedAt = now
	s.sessions[session.ID] = memorySession{session: session, expires: now.Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) GetAuthSession(_ context.Context, sessionID string) (*AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().After(m.expires) {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	session := m.session
	return &session, nil
}

func (s *MemorySessionStore) DeleteAuthSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
