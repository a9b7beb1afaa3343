package session

import (
	"sync"

	"github.com/abhisek/codequest/internal/challenge"
)

// Manager keeps sessions by ID. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	gen      challenge.Generator
}

// NewManager creates a Manager whose sessions share gen.
func NewManager(gen challenge.Generator) *Manager {
	return &Manager{sessions: make(map[string]*Session), gen: gen}
}

// Create starts a new idle session and registers it.
func (m *Manager) Create() *Session {
	s := New(m.gen)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete forgets the session with id.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
