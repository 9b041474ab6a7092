package dashboard

import (
	"sync"

	"wizard-spelldash/models"
)

// Store holds the published State for surfaces that read it from many goroutines.
// Per-request search and band changes are applied to a Snapshot and never stored.
type Store struct {
	mu    sync.RWMutex
	state State
	done  chan struct{}
}

// NewStore creates a Store in the loading state
func NewStore() *Store {
	return &Store{
		state: NewState(),
		done:  make(chan struct{}),
	}
}

// Publish records the load result. Only the first call has any effect.
func (s *Store) Publish(result models.LoadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Loading() {
		return
	}
	s.state = s.state.WithLoadResult(result)
	close(s.done)
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loaded is closed once the load cycle has been published
func (s *Store) Loaded() <-chan struct{} {
	return s.done
}
