// Package note implements the journal-note repository over the embedded
// store.
package note

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Repo provides journal-note persistence.
type Repo struct {
	mgr *sqlite.Manager
}

// New creates a new journal-note repository.
func New(mgr *sqlite.Manager) *Repo {
	return &Repo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "body", "mood", "entry_at", "created_at", "updated_at",
}

type row struct {
	ID        string  `db:"id"`
	Body      string  `db:"body"`
	Mood      *string `db:"mood"`
	EntryAt   int64   `db:"entry_at"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`
}

func toDomain(r row) domain.Note {
	return domain.Note{
		ID:        r.ID,
		Body:      r.Body,
		Mood:      r.Mood,
		EntryAt:   r.EntryAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainNotes(rows []row) []domain.Note {
	notes := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, toDomain(r))
	}
	return notes
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every note in scope, newest entry first.
func (r *Repo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Note, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableNotes, scope, columns...).
		OrderBy("entry_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all notes: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "note", "")
	}

	return toDomainNotes(rows), nil
}

// GetByRange returns notes with entry_at inside [start, end], both bounds
// inclusive, ordered oldest first.
func (r *Repo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Note, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableNotes, scope, columns...).
		Where(sq.GtOrEq{"entry_at": start}).
		Where(sq.LtOrEq{"entry_at": end}).
		OrderBy("entry_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get notes by range: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "note", "")
	}

	return toDomainNotes(rows), nil
}

// GetByID returns one note by id within scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Note, error) {
	if id == "" {
		return domain.Note{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Note{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableNotes, scope, columns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Note{}, fmt.Errorf("get note: build: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Note{}, sqlite.MapError(err, "note", id)
	}

	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new note stamped with the scope's owner.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, note domain.Note) error {
	if note.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableNotes).
		Columns(append([]string{sqlite.OwnerColumn}, columns...)...).
		Values(scope.OwnerID(), note.ID, note.Body, note.Mood, note.EntryAt,
			note.CreatedAt, note.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create note: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "note", note.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, note domain.Note) error {
	if note.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableNotes, scope).
		Set("body", note.Body).
		Set("mood", note.Mood).
		Set("entry_at", note.EntryAt).
		Set("created_at", note.CreatedAt).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update note: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "note", note.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update note: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", note.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a note by id within scope. Deleting a nonexistent id is
// not an error.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableNotes, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete note: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "note", id)
	}

	return nil
}
