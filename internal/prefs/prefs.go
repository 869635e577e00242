// Package prefs persists the operator's display preferences across
// sessions. The only durable preference today is the theme.
package prefs

import (
	"context"
	"sync"
)

// Store reads and writes the theme preference. Theme returns an empty
// string when nothing is stored; consumers normalize anything that is not
// "light" or "dark" to light.
type Store interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, value string) error
}

// MemoryStore keeps the preference for the lifetime of the process. Used
// in tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.Mutex
	theme string
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Theme returns the stored value, or empty when none was set.
func (s *MemoryStore) Theme(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme, nil
}

// SetTheme stores the value, replacing any previous one.
func (s *MemoryStore) SetTheme(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = value
	return nil
}
