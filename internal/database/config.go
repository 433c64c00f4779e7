package database

import (
	"fmt"
	"time"

	"quickbudg/internal/config"
)

// Config holds store configuration
type Config struct {
	// Path is the SQLite file path, or the shared-cache name when InMemory is set.
	Path        string
	InMemory    bool
	BusyTimeout time.Duration
}

// NewConfig creates a store configuration from the application configuration.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Path:        cfg.DBPath,
		BusyTimeout: cfg.DBBusyTimeout,
	}
}

// NewMemoryConfig returns a configuration for a named in-memory store. All
// connections opened with the same name share one database for as long as
// at least one of them stays open.
func NewMemoryConfig(name string) *Config {
	return &Config{Path: name, InMemory: true, BusyTimeout: 5 * time.Second}
}

// DSN returns the go-sqlite3 connection string with foreign keys enforced.
func (c *Config) DSN() string {
	busy := c.BusyTimeout.Milliseconds()
	if c.InMemory {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1&_busy_timeout=%d", c.Path, busy)
	}
	return fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=%d&_journal_mode=WAL", c.Path, busy)
}
