package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"travel-assistant/internal/assistant"
	"travel-assistant/pkg/log"
)

// Log prefixes
const (
	LogPrefixCleanupSessions = "internal.session.cleanupExpiredSessions"
)

const (
	DefaultTTL         = 30 * time.Minute
	minCleanupInterval = time.Second
)

// Factory builds a fresh Assistant for a new session.
type Factory func(showReasoning bool) *assistant.Assistant

// Session binds one conversation to its own Assistant.
type Session struct {
	ID        string
	Assistant *assistant.Assistant
	CreatedAt time.Time

	lastUsed time.Time
}

// Manager owns every live session and evicts the ones idle for longer than the TTL.
type Manager struct {
	factory Factory
	l       log.Logger
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	stop chan struct{}
	once sync.Once
}

// New creates a Manager and starts its cleanup loop. Call Close to stop it.
func New(factory Factory, ttl time.Duration, l log.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		factory:  factory,
		l:        l,
		ttl:      ttl,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}

	go m.cleanupExpiredSessions()

	return m
}

// Create starts a session with a random id.
func (m *Manager) Create(showReasoning bool) *Session {
	return m.GetOrCreate(uuid.NewString(), showReasoning)
}

// Get returns a live session and marks it used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastUsed = time.Now()
	return s, true
}

// GetOrCreate returns the session for id, creating it when absent.
// showReasoning only applies to a newly created session.
func (m *Manager) GetOrCreate(id string, showReasoning bool) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if s, ok := m.sessions[id]; ok {
		s.lastUsed = now
		return s
	}

	s := &Session{
		ID:        id,
		Assistant: m.factory(showReasoning),
		CreatedAt: now,
		lastUsed:  now,
	}
	m.sessions[id] = s
	return s
}

// Delete ends a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the cleanup loop.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Manager) cleanupExpiredSessions() {
	interval := m.ttl / 2
	if interval < minCleanupInterval {
		interval = minCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			if n := m.evictIdle(now); n > 0 {
				m.l.Infof(context.Background(), "%s: cleaned up %d expired sessions", LogPrefixCleanupSessions, n)
			}
		}
	}
}

func (m *Manager) evictIdle(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastUsed) > m.ttl {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
