package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// taskExists checks for a task row through the manager's own handle,
// outside any transaction.
func taskExists(t *testing.T, mgr *sqlite.Manager, id string) bool {
	t.Helper()
	db, err := mgr.Get()
	if err != nil {
		t.Fatalf("get handle: %v", err)
	}
	var exists bool
	err = db.QueryRowContext(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("taskExists query: %v", err)
	}
	return exists
}

func insertTask(ctx context.Context, q sqlite.Querier, id string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO tasks (id, owner_user_id, title, created_at, updated_at)
		 VALUES (?, '', ?, 0, 0)`,
		id, "title "+id,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	mgr := testhelper.SetupTestStore(t)
	tm := sqlite.NewTxManager(mgr)

	db, err := mgr.Get()
	if err != nil {
		t.Fatalf("get handle: %v", err)
	}

	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertTask(ctx, sqlite.QuerierFromCtx(ctx, db), "commit-1")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !taskExists(t, mgr, "commit-1") {
		t.Fatal("expected task to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	mgr := testhelper.SetupTestStore(t)
	tm := sqlite.NewTxManager(mgr)

	db, err := mgr.Get()
	if err != nil {
		t.Fatalf("get handle: %v", err)
	}

	sentinel := errors.New("business logic error")

	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if insErr := insertTask(ctx, sqlite.QuerierFromCtx(ctx, db), "rollback-1"); insErr != nil {
			t.Fatalf("insert inside tx failed: %v", insErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if taskExists(t, mgr, "rollback-1") {
		t.Fatal("expected task NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	mgr := testhelper.SetupTestStore(t)
	tm := sqlite.NewTxManager(mgr)

	db, err := mgr.Get()
	if err != nil {
		t.Fatalf("get handle: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if taskExists(t, mgr, "panic-1") {
			t.Fatal("expected task NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if insErr := insertTask(ctx, sqlite.QuerierFromCtx(ctx, db), "panic-1"); insErr != nil {
			t.Fatalf("insert inside tx failed: %v", insErr)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	mgr := testhelper.SetupTestStore(t)
	tm := sqlite.NewTxManager(mgr)

	db, err := mgr.Get()
	if err != nil {
		t.Fatalf("get handle: %v", err)
	}

	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := sqlite.QuerierFromCtx(ctx, db)
		if insErr := insertTask(ctx, q, "ctx-1"); insErr != nil {
			return insErr
		}

		// Should be visible within the transaction.
		var exists bool
		scanErr := q.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`, "ctx-1",
		).Scan(&exists)
		if scanErr != nil {
			return scanErr
		}
		if !exists {
			t.Fatal("expected task to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !taskExists(t, mgr, "ctx-1") {
		t.Fatal("expected task to exist after committed transaction")
	}
}

func TestRunInTx_NotReady(t *testing.T) {
	mgr := testhelper.NewUninitializedManager(t)
	tm := sqlite.NewTxManager(mgr)

	called := false
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	if !errors.Is(err, domain.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got: %v", err)
	}
	if called {
		t.Fatal("callback must not run when the store is not ready")
	}
}
