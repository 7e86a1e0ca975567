package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Up applies every pending migration and reports the schema version before and after.
func Up(db *sql.DB) (preMigrationVersion, postMigrationVersion uint, err error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, 0, err
	}

	preMigrationVersion, _, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return 0, 0, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preMigrationVersion, 0, fmt.Errorf("m.Up: %w", err)
	}

	postMigrationVersion, _, err = m.Version()
	if err != nil {
		return preMigrationVersion, 0, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	return preMigrationVersion, postMigrationVersion, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("iofs.New: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	return m, nil
}
