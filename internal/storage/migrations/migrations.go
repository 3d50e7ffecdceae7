// Package migrations holds the upload table schema for local and test
// databases. The service itself never runs these; see cmd/migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/storage"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(cfg config.DatabaseConfig) error {
	return run(cfg, func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts every applied migration, dropping the upload table.
func Down(cfg config.DatabaseConfig) error {
	return run(cfg, func(m *migrate.Migrate) error { return m.Down() })
}

// Version reports the applied schema version; 0 means nothing is applied.
func Version(cfg config.DatabaseConfig) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := run(cfg, func(m *migrate.Migrate) error {
		v, d, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		version, dirty = v, d
		return err
	})
	return version, dirty, err
}

func run(cfg config.DatabaseConfig, fn func(*migrate.Migrate) error) error {
	db, err := storage.OpenDB(cfg)
	if err != nil {
		return err
	}

	src, err := iofs.New(files, "sql")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrations: open source: %w", err)
	}

	var drv database.Driver
	switch cfg.Driver {
	case config.DriverPostgres:
		drv, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	case config.DriverSQLite:
		drv, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	default:
		err = fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrations: open driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, cfg.Driver, drv)
	if err != nil {
		_ = drv.Close()
		return fmt.Errorf("migrations: init: %w", err)
	}
	// m.Close also closes db through the driver
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}
