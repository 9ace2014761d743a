// Package testhelper bootstraps a real store file for repository tests.
// Each call opens a fresh database under t.TempDir, so tests stay isolated
// without any shared state or external services.
package testhelper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/config"
)

// SetupTestStore opens a store file in a per-test temp dir, applies all
// migrations, and returns the ready manager. The handle is closed via
// t.Cleanup.
func SetupTestStore(t *testing.T) *sqlite.Manager {
	t.Helper()

	mgr := sqlite.NewManager(TestStorageConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mgr.Init(ctx); err != nil {
		t.Fatalf("testhelper: init store: %v", err)
	}

	t.Cleanup(func() {
		_ = mgr.Close()
	})

	return mgr
}

// NewUninitializedManager returns a manager whose Init has not run, for
// degraded-mode tests: every Get fails fast with domain.ErrNotReady.
func NewUninitializedManager(t *testing.T) *sqlite.Manager {
	t.Helper()
	return sqlite.NewManager(TestStorageConfig(t))
}

// TestStorageConfig returns a storage config pointing into t.TempDir.
// Useful for tests that drive Manager.Init themselves.
func TestStorageConfig(t *testing.T) config.StorageConfig {
	t.Helper()

	return config.StorageConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
	}
}
