package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"unsub-site/db/migrations"
)

// MigratePostgres applies the postgres migrations to the database at addr.
// It uses its own short-lived lib/pq connection, separate from the pgx pool
// serving requests.
func MigratePostgres(addr string) error {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	driver, err := pgmigrate.WithInstance(conn, &pgmigrate.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("postgres migration driver: %w", err)
	}
	return apply(migrations.Postgres, "postgres", driver)
}

// MigrateSQLite applies the sqlite migrations to the database file at path.
func MigrateSQLite(path string) error {
	conn, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(conn, &sqlitemigrate.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("sqlite migration driver: %w", err)
	}
	return apply(migrations.SQLite, "sqlite", driver)
}

// apply migrates to migrations.Version. Re-running on an up-to-date schema
// is a no-op. The driver is closed before returning.
func apply(dir, name string, driver database.Driver) error {
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		_ = driver.Close()
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
