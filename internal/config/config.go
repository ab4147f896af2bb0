package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunables Rolodex reads at startup.
type Config struct {
	Endpoint   string // directory endpoint returning the JSON record array
	PageSize   int    // records per displayed page
	DebounceMS int    // quiet period before a search commit
	NearBottom int    // lines from the bottom that trigger a page advance
}

const (
	defaultConfigPath = "~/.config/rolodex/config.toml"
	defaultEndpoint   = "https://jsonplaceholder.typicode.com/users"
	defaultPageSize   = 6
	defaultDebounceMS = 300
	defaultNearBottom = 5
)

// Load locates and parses the rolodex config, falling back to defaults
// when the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Endpoint:   defaultEndpoint,
		PageSize:   defaultPageSize,
		DebounceMS: defaultDebounceMS,
		NearBottom: defaultNearBottom,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint   string `toml:"endpoint"`
		PageSize   int    `toml:"page_size"`
		DebounceMS int    `toml:"debounce_ms"`
		NearBottom int    `toml:"near_bottom"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}
	if raw.NearBottom > 0 {
		cfg.NearBottom = raw.NearBottom
	}

	return cfg, nil
}

// DebounceInterval returns the search debounce quiet period.
func (c Config) DebounceInterval() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
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
