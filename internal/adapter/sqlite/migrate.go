package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus describes one schema version and whether it is applied.
type MigrationStatus struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrations provider: %w", err)
	}
	return provider, nil
}

// runMigrations brings the schema to the current version. Already-applied
// versions are skipped; each pending version runs in its own transaction
// and rolls back entirely on failure.
func runMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}

func migrationVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, err
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations version: %w", err)
	}
	return version, nil
}

// InspectStatus reports the schema status of an already-open handle without
// applying anything. Tooling that wants to look before migrating opens the
// store with Open and calls this directly, bypassing the manager lifecycle.
func InspectStatus(ctx context.Context, db *sql.DB) ([]MigrationStatus, error) {
	return migrationStatus(ctx, db)
}

func migrationStatus(ctx context.Context, db *sql.DB) ([]MigrationStatus, error) {
	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	results, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations status: %w", err)
	}

	statuses := make([]MigrationStatus, 0, len(results))
	for _, res := range results {
		st := MigrationStatus{
			Version: res.Source.Version,
			Path:    res.Source.Path,
			Applied: res.State == goose.StateApplied,
		}
		if st.Applied {
			st.AppliedAt = res.AppliedAt
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
