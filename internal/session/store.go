// Package session holds logged-in profiles in process memory, keyed by an
// opaque session key. Entries live until logout clears them, mirroring the
// tab-scoped storage the storefront's clients use: no network I/O, no
// persistence across restarts.
package session

import (
	"sync"

	"github.com/Keerthid-10/taylor/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.User
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]domain.User),
	}
}

// Set stores the authenticated profile under key, replacing any previous
// entry.
func (s *Store) Set(key string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[key] = user
}

// Get returns the profile for key, or ok=false when no session exists.
func (s *Store) Get(key string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[key]

	return user, ok
}

// Clear removes the session for key. Clearing an absent key is a no-op.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, key)
}
