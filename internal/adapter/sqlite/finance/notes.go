package finance

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// NoteRepo provides finance-note persistence. The note is a singleton per
// scope, written through an upsert on the owner column.
type NoteRepo struct {
	mgr *sqlite.Manager
}

// NewNoteRepo creates a new finance-note repository.
func NewNoteRepo(mgr *sqlite.Manager) *NoteRepo {
	return &NoteRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var noteColumns = []string{
	"id", "body", "created_at", "updated_at",
}

type noteRow struct {
	ID        string `db:"id"`
	Body      string `db:"body"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func toDomainNote(r noteRow) domain.FinanceNote {
	return domain.FinanceNote{
		ID:        r.ID,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Get returns the scope's note, or domain.ErrNotFound if none was saved.
func (r *NoteRepo) Get(ctx context.Context, scope domain.Scope) (domain.FinanceNote, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return domain.FinanceNote{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFinanceNotes, scope, noteColumns...).
		ToSql()
	if err != nil {
		return domain.FinanceNote{}, fmt.Errorf("get finance note: build: %w", err)
	}

	var rw noteRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.FinanceNote{}, sqlite.MapError(err, "finance note", "")
	}

	return toDomainNote(rw), nil
}

// Save inserts the scope's note or, if one exists, replaces every column
// except the owner.
func (r *NoteRepo) Save(ctx context.Context, scope domain.Scope, note domain.FinanceNote) error {
	if note.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableFinanceNotes).
		Columns(append([]string{sqlite.OwnerColumn}, noteColumns...)...).
		Values(scope.OwnerID(), note.ID, note.Body, note.CreatedAt, note.UpdatedAt).
		Suffix(`ON CONFLICT (owner_user_id) DO UPDATE
			SET id = EXCLUDED.id,
			    body = EXCLUDED.body,
			    created_at = EXCLUDED.created_at,
			    updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("save finance note: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "finance note", note.ID)
	}

	return nil
}

// Delete removes the scope's note. Deleting when none exists is not an
// error.
func (r *NoteRepo) Delete(ctx context.Context, scope domain.Scope) error {
	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableFinanceNotes, scope).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete finance note: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "finance note", "")
	}

	return nil
}
