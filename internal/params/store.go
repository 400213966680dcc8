// Package params holds the daemon's in-memory parameter map. Writes happen
// only on the daemon worker goroutine; the lock exists because readers on
// other goroutines race that single writer.
package params

import (
	"errors"
	"sync"
)

// ErrEmptyName reports a set attempt with no parameter name.
var ErrEmptyName = errors.New("params: name must not be empty")

// Store is a last-write-wins name/value map. Values live for the lifetime
// of the owning daemon; nothing is persisted.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore returns an empty parameter store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Set unconditionally upserts a parameter. Arbitrary value strings are
// accepted, including empty ones.
func (s *Store) Set(name, value string) error {
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	return nil
}

// Get returns the value for name and whether it is present.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name]
	return value, ok
}

// Snapshot returns a copy of all parameters for status rendering.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// Len returns the number of stored parameters.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
