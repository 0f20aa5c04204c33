package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Backend selects where the session log is persisted.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

const (
	jsonFileName   = "timelogs.json"
	sqliteFileName = "worktime.db"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Config holds the process-wide settings read from the environment.
type Config struct {
	DataDir    string
	Backend    Backend
	ReportDays int
	LogCalls   bool
}

// DefaultConfig returns the defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DataDir:    filepath.Join(home, ".worktime"),
		Backend:    BackendJSON,
		ReportDays: 7,
	}
}

// Load reads WORKTIME_* environment variables, falling back to defaults
// for unset or unparsable values. An unknown backend name is an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	if v := os.Getenv("WORKTIME_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WORKTIME_BACKEND"); v != "" {
		backend, err := ParseBackend(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Backend = backend
	}
	if v := os.Getenv("WORKTIME_REPORT_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReportDays = n
		}
	}
	if v := os.Getenv("WORKTIME_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}

func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownBackend, s, BackendJSON, BackendSQLite)
	}
}

// StorePath is the file the selected backend reads and writes.
func (c Config) StorePath() string {
	if c.Backend == BackendSQLite {
		return filepath.Join(c.DataDir, sqliteFileName)
	}
	return filepath.Join(c.DataDir, jsonFileName)
}
