// Package migrations embeds the goose schema migrations for every
// supported datastore dialect and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// directories maps a database/sql driver name to its goose dialect and
// embedded migration directory.
var directories = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "pgx", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// ErrUnsupportedDriver is returned for drivers without embedded migrations.
var ErrUnsupportedDriver = errors.New("migration error: unsupported driver")

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := directories[driver]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
