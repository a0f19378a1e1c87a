package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// MigrationStatus is one row of the migration report
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

func newProvider(driver string, db *sql.DB) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)
	switch driver {
	case DriverPostgres:
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	case DriverSQLite:
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, driver)
	}

	fsys, err := fs.Sub(migrationFS, dir)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, fsys)
}

// Migrate applies every pending migration for driver
func Migrate(ctx context.Context, driver string, db *sql.DB) error {
	provider, err := newProvider(driver, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	if len(results) == 0 {
		slog.Default().Debug(LogMsgSchemaUpToDate, "driver", driver)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"driver", driver,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}

// Status reports applied and pending migrations for driver
func Status(ctx context.Context, driver string, db *sql.DB) ([]MigrationStatus, error) {
	provider, err := newProvider(driver, db)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
