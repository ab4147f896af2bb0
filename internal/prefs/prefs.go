// Package prefs persists user preferences as a small key-value file at
// ~/.config/rolodex/prefs.toml. The file is read once at startup and
// rewritten whenever a value actually changes.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath = "~/.config/rolodex/prefs.toml"

	darkModeKey = "darkMode"
)

// Store is the durable key-value surface. Values are strings; typed
// accessors sit on top. A Store is not safe for concurrent use, which
// is fine: the UI event loop is the only mutator.
type Store struct {
	path   string
	values map[string]string
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Open reads preferences from the given path (default path when empty).
// A missing or unreadable file degrades gracefully to an empty store;
// preferences are presentation-only and must never block startup.
func Open(path string) *Store {
	s := &Store{values: map[string]string{}}

	resolved, err := resolvePath(path)
	if err != nil {
		return s
	}
	s.path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		return s
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return s
	}

	var values map[string]string
	if err := toml.Unmarshal(bytes, &values); err != nil {
		return s
	}
	if values != nil {
		s.values = values
	}
	return s
}

// Get returns the stored value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores key=value and persists the file. Writing an unchanged
// value is a no-op. Callers may ignore the error: a failed write loses
// the preference for the next session, nothing more.
func (s *Store) Set(key, value string) error {
	if current, ok := s.values[key]; ok && current == value {
		return nil
	}
	s.values[key] = value
	return s.save()
}

// DarkMode reports the persisted theme preference, defaulting to false
// when the key is absent or unrecognized.
func (s *Store) DarkMode() bool {
	v, ok := s.Get(darkModeKey)
	return ok && v == "true"
}

// SetDarkMode persists the theme preference as "true"/"false".
func (s *Store) SetDarkMode(dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	return s.Set(darkModeKey, value)
}

func (s *Store) save() error {
	if s.path == "" {
		return errors.New("prefs path unresolved")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
