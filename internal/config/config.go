package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Server
	Host               string
	Port               string
	CORSAllowedOrigins []string

	// Store
	DBPath        string
	DBBusyTimeout time.Duration
}

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to defaults suitable for a single local user.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DB_PATH", "quickbudg.db")
	v.SetDefault("DB_BUSY_TIMEOUT", "5s")
	v.AutomaticEnv()

	cfg := &Config{
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		Host:               v.GetString("HOST"),
		Port:               v.GetString("PORT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DBPath:             v.GetString("DB_PATH"),
	}

	busy := v.GetString("DB_BUSY_TIMEOUT")
	dur, err := time.ParseDuration(busy)
	if err != nil || dur < 0 {
		log.Printf("Warning: invalid DB_BUSY_TIMEOUT value '%s', falling back to 5s\n", busy)
		dur = 5 * time.Second
	}
	cfg.DBBusyTimeout = dur

	return cfg, nil
}

// Addr returns the host:port the HTTP adapter listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
