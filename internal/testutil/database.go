// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"quickbudg/internal/database"

	"gorm.io/gorm"
)

// SetupTestManager opens a private in-memory store migrated to the current
// schema version. The store is closed when the test ends.
func SetupTestManager(t *testing.T) *database.Manager {
	t.Helper()

	manager := OpenTestManager(t)
	if err := manager.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return manager
}

// OpenTestManager opens a private in-memory store without migrating it.
func OpenTestManager(t *testing.T) *database.Manager {
	t.Helper()

	name := fmt.Sprintf("quickbudg_test_%d", nextID())
	manager, err := database.NewManager(database.NewMemoryConfig(name))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = manager.Close()
	})
	return manager
}

// SetupTestDB creates a migrated in-memory store and returns its handle.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestManager(t).DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
