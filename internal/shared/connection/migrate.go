package connection

import (
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// MigrateUp applies all pending migrations from dir against databaseURL.
// A database already at the latest version is not an error.
func MigrateUp(dir, databaseURL string) error {
	m, err := newMigrate(dir, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	zap.L().Info("database schema up to date")
	return nil
}

// MigrateDown rolls back all applied migrations.
func MigrateDown(dir, databaseURL string) error {
	m, err := newMigrate(dir, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("revert migrations: %w", err)
	}
	return nil
}

// MigrateVersion reports the current schema version and dirty flag.
func MigrateVersion(dir, databaseURL string) (uint, bool, error) {
	m, err := newMigrate(dir, databaseURL)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrate(dir, databaseURL string) (*migrate.Migrate, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}
