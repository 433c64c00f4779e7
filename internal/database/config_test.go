package database

import (
	"strings"
	"testing"
	"time"

	"quickbudg/internal/config"
)

func TestDSN(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		c := NewConfig(&config.Config{DBPath: "data/quickbudg.db", DBBusyTimeout: 2 * time.Second})
		dsn := c.DSN()

		if !strings.HasPrefix(dsn, "file:data/quickbudg.db?") {
			t.Errorf("unexpected dsn %q", dsn)
		}
		for _, want := range []string{"_foreign_keys=1", "_busy_timeout=2000", "_journal_mode=WAL"} {
			if !strings.Contains(dsn, want) {
				t.Errorf("expected %q in %q", want, dsn)
			}
		}
	})

	t.Run("memory", func(t *testing.T) {
		dsn := NewMemoryConfig("shared").DSN()

		for _, want := range []string{"file:shared?", "mode=memory", "cache=shared", "_foreign_keys=1"} {
			if !strings.Contains(dsn, want) {
				t.Errorf("expected %q in %q", want, dsn)
			}
		}
		if strings.Contains(dsn, "_journal_mode") {
			t.Errorf("in-memory dsn should not set a journal mode: %q", dsn)
		}
	})
}
