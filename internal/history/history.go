// Package history persists the last cursor position per visited directory.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const defaultFilePerms = 0o600

// DefaultPath returns the default history file location under the user
// cache directory, or an empty string when no cache dir is available.
func DefaultPath() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cache, "lazycd", "history.json")
}

// Store maps absolute directory paths to the cursor visible index that
// was active when the directory was left. The backing file is read once
// and written on directory change and exit; last writer wins.
type Store struct {
	path    string
	entries map[string]int
}

// NewStore creates a store backed by the file at path. An empty path
// disables persistence; the store still works in memory.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		entries: map[string]int{},
	}
}

// Load reads the backing file. A missing or corrupt file yields an empty
// mapping and no error; persistence must never block navigation.
func (s *Store) Load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var entries map[string]int
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return
	}
	// Negative indices cannot come from the cursor; drop them on load.
	for path, idx := range entries {
		if idx < 0 {
			delete(entries, path)
		}
	}
	s.entries = entries
}

// Get returns the remembered cursor index for path.
func (s *Store) Get(path string) (int, bool) {
	idx, ok := s.entries[path]
	return idx, ok
}

// Set records the cursor index for path, replacing any previous value.
func (s *Store) Set(path string, index int) {
	if path == "" || index < 0 {
		return
	}
	s.entries[path] = index
}

// Len returns the number of remembered paths.
func (s *Store) Len() int {
	return len(s.entries)
}

// Save writes the mapping to the backing file, creating parent
// directories as needed. A disabled store saves nothing.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return err
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, defaultFilePerms)
}
