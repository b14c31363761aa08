// Package sessions keeps the open builder wizards for HTTP clients.
// The set is bounded and idle sessions expire; the oldest is evicted first.
package sessions

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"pipeline-studio/internal/builder"
	"pipeline-studio/internal/common/logging"
)

// Session owns one wizard. Access goes through Manager.Do so calls on
// the same session never overlap.
type Session struct {
	ID string

	mu     sync.Mutex
	wizard *builder.Wizard
	closed atomic.Bool
}

// Manager is a bounded, expiring set of sessions
type Manager struct {
	// mu orders Close against the refresh at the end of Do
	mu     sync.Mutex
	cache  *expirable.LRU[string, *Session]
	logger logging.Logger
}

// NewManager creates a manager holding at most size sessions, each expiring
// ttl after its last use
func NewManager(size int, ttl time.Duration, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	m := &Manager{logger: logger}
	m.cache = expirable.NewLRU[string, *Session](size, m.onEvict, ttl)
	return m
}

func (m *Manager) onEvict(id string, s *Session) {
	s.closed.Store(true)
	m.logger.Debug("Builder session closed", logging.String("session_id", id))
}

// Open registers a wizard under a fresh session id
func (m *Manager) Open(w *builder.Wizard) *Session {
	s := &Session{ID: uuid.NewString(), wizard: w}
	m.cache.Add(s.ID, s)
	m.logger.Debug("Builder session opened",
		logging.String("session_id", s.ID),
		logging.String("editing", w.EditingID()),
	)
	return s
}

// Do runs fn with exclusive access to the session's wizard and refreshes its
// expiry. A wizard that ends up saved or cancelled is closed afterwards, and a
// session closed or evicted while fn ran stays closed.
// It reports false when the session does not exist.
func (m *Manager) Do(id string, fn func(w *builder.Wizard)) bool {
	s, ok := m.cache.Get(id)
	if !ok {
		return false
	}

	s.mu.Lock()
	fn(s.wizard)
	done := s.wizard.Done()
	s.mu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case done:
		m.cache.Remove(id)
	case !s.closed.Load():
		m.cache.Add(id, s)
	}
	return true
}

// Close discards a session. It reports false when the session does not exist.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Remove(id)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.cache.Len()
}
