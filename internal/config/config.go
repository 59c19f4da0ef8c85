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

// Config captures rolodex's settings after defaults and overrides.
type Config struct {
	Endpoint       string
	Debounce       time.Duration
	RequestTimeout time.Duration
	StoreBackend   string
	StorePath      string
	LogFile        string
	Theme          string
}

const (
	defaultConfigPath     = "~/.config/rolodex/config.toml"
	defaultEndpoint       = "https://dummyjson.com/users/search"
	defaultDebounce       = 600 * time.Millisecond
	defaultRequestTimeout = 10 * time.Second
	defaultBackend        = "file"
	defaultDataDir        = "~/.local/share/rolodex"
	defaultLogFile        = "~/.local/state/rolodex/rolodex.log"
	defaultTheme          = "Nightfox"

	// EndpointEnv overrides the configured endpoint when set.
	EndpointEnv = "ROLODEX_ENDPOINT"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:       defaultEndpoint,
		Debounce:       defaultDebounce,
		RequestTimeout: defaultRequestTimeout,
		StoreBackend:   defaultBackend,
		StorePath:      mustExpand(defaultStorePath(defaultBackend)),
		LogFile:        mustExpand(defaultLogFile),
		Theme:          defaultTheme,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
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
		Endpoint         string `toml:"endpoint"`
		DebounceMS       int    `toml:"debounce_ms"`
		RequestTimeoutMS int    `toml:"request_timeout_ms"`
		Theme            string `toml:"theme"`
		LogFile          string `toml:"log_file"`
		Storage          struct {
			Backend string `toml:"backend"`
			Path    string `toml:"path"`
		} `toml:"storage"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.DebounceMS > 0 {
		cfg.Debounce = time.Duration(raw.DebounceMS) * time.Millisecond
	}
	if raw.RequestTimeoutMS > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutMS) * time.Millisecond
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	backend := strings.ToLower(strings.TrimSpace(raw.Storage.Backend))
	switch backend {
	case "":
	case "file", "sqlite":
		cfg.StoreBackend = backend
		cfg.StorePath = mustExpand(defaultStorePath(backend))
	default:
		return Config{}, fmt.Errorf("parse config: unknown storage backend %q", raw.Storage.Backend)
	}
	if storePath := strings.TrimSpace(raw.Storage.Path); storePath != "" {
		cfg.StorePath = mustExpand(storePath)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if endpoint := strings.TrimSpace(os.Getenv(EndpointEnv)); endpoint != "" {
		c.Endpoint = endpoint
	}
}

// DefaultStorePath returns the default store location for backend.
func DefaultStorePath(backend string) string {
	return mustExpand(defaultStorePath(backend))
}

func defaultStorePath(backend string) string {
	if backend == "sqlite" {
		return defaultDataDir + "/store.db"
	}
	return defaultDataDir + "/store.json"
}

// ExpandPath resolves a leading tilde and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
