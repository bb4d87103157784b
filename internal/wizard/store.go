package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rentaldesk-backend/internal/logger"
)

// Store holds the live wizard sessions. Sessions exist only in memory;
// cancel deletes them and the sweeper evicts the ones left idle.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Wizard
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Wizard)}
}

// Create opens a new wizard session scoped to a tenant
func (s *Store) Create(backend Backend, clientID string, mode Mode) *Wizard {
	w := newWizard(uuid.NewString(), mode, backend, clientID)

	s.mu.Lock()
	s.sessions[w.ID] = w
	s.mu.Unlock()

	logger.WithSession(w.ID).Debug("wizard session created", "mode", mode)
	return w
}

// Get returns the session for id, if it is still alive
func (s *Store) Get(id string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[id]
	return w, ok
}

// Delete discards a session (explicit cancel or successful submit)
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the live session count
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SweepIdle evicts sessions idle longer than maxIdle and reports how many
// were removed
func (s *Store) SweepIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, w := range s.sessions {
		w.mu.Lock()
		idle := w.lastActive.Before(cutoff)
		w.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
