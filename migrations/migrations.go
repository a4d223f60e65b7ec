// Package migrations owns the database schema. Versions mirror the table history of the
// service: users, meals, the dropped users.password column, then meals.user_id.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Source exposes the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	return iofs.New(files, "sql")
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(db *sql.DB) error {
	src, err := Source()
	if err != nil {
		return fmt.Errorf("opening migration source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("opening migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
