package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// MapError converts driver errors to domain errors. Repositories call it at
// the adapter boundary so nothing above this layer sees driver types.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err, entity, id)
	}

	// sql.ErrNoRows and scany's no-row sentinel → domain.ErrNotFound
	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return wrap(domain.ErrNotFound, entity, id)
	}

	// SQLite extended result codes
	var se *sqlitedriver.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return wrap(domain.ErrAlreadyExists, entity, id)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return wrap(domain.ErrNotFound, entity, id)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return wrap(domain.ErrValidation, entity, id)
		}
	}

	// Everything else: wrap with context
	return wrap(err, entity, id)
}

func wrap(err error, entity, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", entity, err)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
