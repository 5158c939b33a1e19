package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-dash/db/migrations"
)

// ErrDirtySchema is returned when an earlier migration stopped halfway. The
// schema has to be repaired by hand before the service migrates again.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the database at addr to migrations.Version using the SQL
// files embedded in the binary. An already current schema is not an error.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}

	if err = m.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to version %d: %w", migrations.Version, err)
	}
	return nil
}
