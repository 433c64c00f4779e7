package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"quickbudg/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SchemaVersion is the store schema version this build expects.
const SchemaVersion uint = 3

// upgrade transforms stored records after the SQL step of the same version.
type upgrade func(tx *gorm.DB) error

// upgrades holds the typed data upgrades keyed by schema version.
var upgrades = map[uint]upgrade{
	2: upgradeBudgetTypeRefs,
}

// Migrate brings the store forward to SchemaVersion.
func (m *Manager) Migrate() error {
	return m.MigrateTo(SchemaVersion)
}

// MigrateTo applies pending schema steps up to and including target. After
// each step, the data upgrade registered for that version runs once, inside
// its own transaction. Migrations are forward-only.
func (m *Manager) MigrateTo(target uint) error {
	if target > SchemaVersion {
		return fmt.Errorf("target schema version %d exceeds supported version %d", target, SchemaVersion)
	}

	log := logger.Get()
	log.Infow("Running store migrations", "target_version", target)

	if err := m.ensureUpgradeLedger(); err != nil {
		return err
	}

	mig, err := m.newMigrator()
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	current, dirty, err := mig.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case dirty:
		return fmt.Errorf("schema version %d is dirty, repair the store before migrating", current)
	case current > SchemaVersion:
		return fmt.Errorf("store schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	for v := uint(1); v <= target; v++ {
		if current < v {
			if err := mig.Migrate(v); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("schema step %d failed: %w", v, err)
			}
			current = v
			log.Infow("Applied schema step", "version", v)
		}
		if err := m.runUpgrade(v); err != nil {
			return err
		}
	}

	log.Infow("Store migrations completed", "version", current)
	return nil
}

// Version reports the schema version currently recorded in the store.
func (m *Manager) Version() (uint, bool, error) {
	mig, err := m.newMigrator()
	if err != nil {
		return 0, false, err
	}
	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// newMigrator opens a dedicated connection for golang-migrate; closing the
// migrator closes that connection and leaves the GORM pool untouched.
func (m *Manager) newMigrator() (*migrate.Migrate, error) {
	conn, err := sql.Open("sqlite3", m.config.DSN())
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create sqlite3 driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return mig, nil
}

func (m *Manager) ensureUpgradeLedger() error {
	err := m.db.Exec(`CREATE TABLE IF NOT EXISTS data_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL
	)`).Error
	if err != nil {
		return fmt.Errorf("create data_migrations table: %w", err)
	}
	return nil
}

func (m *Manager) runUpgrade(version uint) error {
	up, ok := upgrades[version]
	if !ok {
		return nil
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		var applied int64
		if err := tx.Table("data_migrations").Where("version = ?", version).Count(&applied).Error; err != nil {
			return fmt.Errorf("read data_migrations: %w", err)
		}
		if applied > 0 {
			return nil
		}

		if err := up(tx); err != nil {
			return fmt.Errorf("data upgrade %d failed: %w", version, err)
		}

		if err := tx.Exec("INSERT INTO data_migrations (version, applied_at) VALUES (?, ?)", version, time.Now().UTC()).Error; err != nil {
			return fmt.Errorf("record data upgrade %d: %w", version, err)
		}
		logger.Get().Infow("Applied data upgrade", "version", version)
		return nil
	})
}
