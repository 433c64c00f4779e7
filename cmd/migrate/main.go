package main

import (
	"fmt"
	"os"
	"strconv"

	"quickbudg/internal/config"
	"quickbudg/internal/database"
	"quickbudg/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|version> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Get().Warnf("store close error: %v", err)
		}
	}()

	command := os.Args[1]

	switch command {
	case "up":
		target := database.SchemaVersion
		if len(os.Args) > 2 {
			n, err := strconv.ParseUint(os.Args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid target version: %w", err)
			}
			target = uint(n)
		}
		if err := m.MigrateTo(target); err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Infof("Store migrated to version %d", target)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up or version)", command)
	}

	return nil
}
