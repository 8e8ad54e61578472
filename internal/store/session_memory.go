package store

import (
	"context"
	"sync"
	"time"

	"github.com/vijaycharanme-code/doc-manager/models"
)

// memorySessionStore keeps sessions in a map. Sessions are lost on restart.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore returns an empty in-process [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
	}
}

func (m *memorySessionStore) Create(ctx context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.Token] = session
	return nil
}

func (m *memorySessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = m.Delete(ctx, token)
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (m *memorySessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

func (m *memorySessionStore) CleanupExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	count := 0
	for token, session := range m.sessions {
		if !session.ExpiresAt.IsZero() && now.After(session.ExpiresAt) {
			delete(m.sessions, token)
			count++
		}
	}

	return count, nil
}

func (m *memorySessionStore) Close() error {
	return nil
}
