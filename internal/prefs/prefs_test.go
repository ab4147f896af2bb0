package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpen_MissingFileDefaultsToLightTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := Open("")
	if s.DarkMode() {
		t.Fatalf("DarkMode = true with no prefs file, want false")
	}
	if _, ok := s.Get("darkMode"); ok {
		t.Fatalf("Get(darkMode) found a value in an empty store")
	}
}

func TestOpen_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("darkMode = \"true\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := Open(prefsFile)
	if !s.DarkMode() {
		t.Fatalf("DarkMode = false, want true")
	}
}

func TestOpen_InvalidTOMLDegradesToDefaults(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := Open(prefsFile)
	if s.DarkMode() {
		t.Fatalf("DarkMode = true after parse failure, want default false")
	}
}

func TestSetDarkMode_PersistsAndRoundTrips(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	s := Open(prefsFile)
	if err := s.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode returned error: %v", err)
	}

	reopened := Open(prefsFile)
	if !reopened.DarkMode() {
		t.Fatalf("DarkMode = false after reopen, want true")
	}

	if err := reopened.SetDarkMode(false); err != nil {
		t.Fatalf("SetDarkMode returned error: %v", err)
	}
	if Open(prefsFile).DarkMode() {
		t.Fatalf("DarkMode = true after disabling, want false")
	}
}

func TestSet_UnchangedValueIsANoOp(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")

	s := Open(prefsFile)
	if err := s.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	before, err := os.Stat(prefsFile)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	// Make a rewrite detectable, then write the same value again.
	if err := os.Chtimes(prefsFile, before.ModTime().Add(-time.Second), before.ModTime().Add(-time.Second)); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
	stamped, err := os.Stat(prefsFile)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if err := s.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	after, err := os.Stat(prefsFile)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !after.ModTime().Equal(stamped.ModTime()) {
		t.Fatalf("file rewritten for unchanged value")
	}
}
