package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileState is the on-disk shape. A map-like document keeps room for
// further preferences without a format break.
type fileState struct {
	Theme string `json:"theme,omitempty"`
}

// FileStore persists preferences to a small JSON file, written atomically
// via a temp file and rename. A missing file reads as no stored value.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the given path. The file is not
// created until the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Theme returns the stored theme, or empty when the file is absent.
func (s *FileStore) Theme(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return "", err
	}
	return state.Theme, nil
}

// SetTheme writes the value, keeping the rest of the document intact.
func (s *FileStore) SetTheme(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	state.Theme = value
	return s.write(state)
}

func (s *FileStore) read() (fileState, error) {
	var state fileState
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read preferences: %w", err)
	}
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return state, nil
}

func (s *FileStore) write(state fileState) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	temp := s.path + ".tmp"
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return os.Rename(temp, s.path)
}
