package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/config"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Manager owns the single store handle for the process lifetime.
//
// Init is idempotent and coalesced: concurrent callers share one in-flight
// initialization and its outcome. A failed Init leaves the manager in a
// degraded state where Get fails fast with domain.ErrNotReady until Close
// clears it. With the "none" driver the manager is permanently unsupported
// and Get returns domain.ErrUnsupported.
type Manager struct {
	cfg         config.StorageConfig
	unsupported bool

	mu       sync.Mutex
	db       *sql.DB
	initErr  error
	inflight chan struct{}
}

// NewManager creates a Manager. No file is touched until Init.
func NewManager(cfg config.StorageConfig) *Manager {
	return &Manager{
		cfg:         cfg,
		unsupported: cfg.Driver == config.DriverNone,
	}
}

// Init opens the handle if absent and brings the schema to the current
// version. Safe to call multiple times; concurrent callers await the same
// in-progress initialization rather than opening a second handle. The
// outcome, success or failure, is cached.
func (m *Manager) Init(ctx context.Context) error {
	if m.unsupported {
		return nil
	}

	m.mu.Lock()
	if m.db != nil || m.initErr != nil {
		err := m.initErr
		m.mu.Unlock()
		return err
	}
	if m.inflight != nil {
		done := m.inflight
		m.mu.Unlock()
		select {
		case <-done:
			m.mu.Lock()
			err := m.initErr
			m.mu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	done := make(chan struct{})
	m.inflight = done
	m.mu.Unlock()

	db, err := m.openAndMigrate(ctx)

	m.mu.Lock()
	m.db, m.initErr = db, err
	m.inflight = nil
	close(done)
	m.mu.Unlock()

	return err
}

func (m *Manager) openAndMigrate(ctx context.Context) (*sql.DB, error) {
	db, err := Open(ctx, m.cfg)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Get returns the handle. It never blocks: before Init, during Init, or
// after a failed Init it returns domain.ErrNotReady; on the "none" driver
// it returns domain.ErrUnsupported.
func (m *Manager) Get() (*sql.DB, error) {
	if m.unsupported {
		return nil, domain.ErrUnsupported
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil, domain.ErrNotReady
	}
	return m.db, nil
}

// Migrate brings an already-open store to the current schema version.
// No-op when nothing is pending.
func (m *Manager) Migrate(ctx context.Context) error {
	db, err := m.Get()
	if err != nil {
		return err
	}
	return runMigrations(ctx, db)
}

// Version returns the current schema version number.
func (m *Manager) Version(ctx context.Context) (int64, error) {
	db, err := m.Get()
	if err != nil {
		return 0, err
	}
	return migrationVersion(ctx, db)
}

// Status reports every known schema version and whether it is applied.
func (m *Manager) Status(ctx context.Context) ([]MigrationStatus, error) {
	db, err := m.Get()
	if err != nil {
		return nil, err
	}
	return migrationStatus(ctx, db)
}

// Reset deletes every row owned by scope across all entity tables in one
// transaction. Other scopes' rows and the schema itself are untouched.
func (m *Manager) Reset(ctx context.Context, scope domain.Scope) error {
	db, err := m.Get()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset: begin: %w", err)
	}

	for _, table := range entityTables {
		query, args, err := ScopedDelete(table, scope).ToSql()
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset %s: build: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reset: commit: %w", err)
	}
	return nil
}

// Wipe drops every entity table plus the migration bookkeeping in one
// transaction, then re-runs migrations. The store comes back at the current
// schema version with zero rows in every scope.
func (m *Manager) Wipe(ctx context.Context) error {
	db, err := m.Get()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("wipe: begin: %w", err)
	}

	drops := append(EntityTables(), "goose_db_version")
	for _, table := range drops {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("wipe: commit: %w", err)
	}

	return runMigrations(ctx, db)
}

// Close releases the handle and clears any cached init failure, so a later
// Init starts fresh. Safe to call when nothing is open.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initErr = nil
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
