package state

import (
	"slices"
	"sync"

	"github.com/five82/rolodex/internal/directory"
)

// ApplicationState is the single source of truth for the shell. Values are
// replaced wholesale on every update and never mutated in place.
type ApplicationState struct {
	SearchText       string
	Route            string
	Contacts         []directory.Contact
	FavoriteContacts []directory.Favorite
	IsLoading        bool
	ErrorMessage     string
}

// Clone returns a copy that shares no slice backing arrays with s.
func (s ApplicationState) Clone() ApplicationState {
	dup := s
	dup.Contacts = cloneSlice(s.Contacts)
	dup.FavoriteContacts = cloneSlice(s.FavoriteContacts)
	return dup
}

// Store owns the current ApplicationState.
type Store struct {
	mu      sync.RWMutex
	current ApplicationState
}

// NewStore seeds a store with the initial state.
func NewStore(initial ApplicationState) *Store {
	return &Store{current: initial.Clone()}
}

// Update merges p into the current state, publishes the result and returns
// both the previous and the new snapshot.
func (s *Store) Update(p Patch) (prev, next ApplicationState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.current
	s.current = p.Apply(prev)
	return prev.Clone(), s.current.Clone()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() ApplicationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return slices.Clone(items)
}
