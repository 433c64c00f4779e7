package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected loopback host, got %s", cfg.Host)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.DBPath != "quickbudg.db" {
		t.Errorf("expected default db path, got %s", cfg.DBPath)
	}
	if cfg.DBBusyTimeout != 5*time.Second {
		t.Errorf("expected 5s busy timeout, got %s", cfg.DBBusyTimeout)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("unexpected addr %s", cfg.Addr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/budget.db")
	t.Setenv("DB_BUSY_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DBPath != "/tmp/budget.db" {
		t.Errorf("expected db path from env, got %s", cfg.DBPath)
	}
	if cfg.DBBusyTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.DBBusyTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidBusyTimeout(t *testing.T) {
	t.Setenv("DB_BUSY_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBBusyTimeout != 5*time.Second {
		t.Errorf("expected fallback to 5s, got %s", cfg.DBBusyTimeout)
	}
}
