package db

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrationsFS holds one directory of numbered migrations per dialect.
//
//go:embed migrations
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the handle's dialect.
// It is idempotent and safe to run on every start.
func Migrate(d *DB) error {
	src, err := iofs.New(migrationsFS, "migrations/"+d.dialect.String())
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	var driver database.Driver
	switch d.dialect {
	case Postgres:
		driver, err = migratepgx.WithInstance(d.DB, &migratepgx.Config{})
	default:
		driver, err = migratesqlite.WithInstance(d.DB, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("preparing migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, d.dialect.String(), driver)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	// m.Close would close the shared handle, so only the source is released.
	defer src.Close()
	m.Log = migrateLogger{}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("running migrations: %w", err)
	}

	to, _, _ := m.Version()
	slog.Info("schema migrated", "dialect", d.dialect.String(), "from", from, "to", to)
	return nil
}

// migrateLogger forwards golang-migrate output to slog at debug level.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, args ...any) {
	slog.Debug(fmt.Sprintf(format, args...))
}

func (migrateLogger) Verbose() bool { return false }
