package sqlite

import (
	"context"
	"fmt"
)

// TxManager manages store transactions using the context pattern.
// Nested RunInTx calls are NOT supported — calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
type TxManager struct {
	mgr *Manager
}

// NewTxManager creates a new TxManager.
func NewTxManager(mgr *Manager) *TxManager {
	return &TxManager{mgr: mgr}
}

// RunInTx executes fn within a store transaction.
// Fails fast with the manager's availability sentinel when the store is not
// ready. On success: commits. On error from fn: rolls back and returns the
// error. On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	db, err := m.mgr.Get()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
