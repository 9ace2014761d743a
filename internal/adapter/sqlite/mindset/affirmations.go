package mindset

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// AffirmationRepo provides affirmation persistence.
type AffirmationRepo struct {
	mgr *sqlite.Manager
}

// NewAffirmationRepo creates a new affirmation repository.
func NewAffirmationRepo(mgr *sqlite.Manager) *AffirmationRepo {
	return &AffirmationRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var affirmationColumns = []string{
	"id", "text", "active", "created_at", "updated_at",
}

type affirmationRow struct {
	ID        string `db:"id"`
	Text      string `db:"text"`
	Active    bool   `db:"active"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func toDomainAffirmation(r affirmationRow) domain.Affirmation {
	return domain.Affirmation{
		ID:        r.ID,
		Text:      r.Text,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainAffirmations(rows []affirmationRow) []domain.Affirmation {
	affirmations := make([]domain.Affirmation, 0, len(rows))
	for _, r := range rows {
		affirmations = append(affirmations, toDomainAffirmation(r))
	}
	return affirmations
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every affirmation in scope, oldest first so daily rotations
// are stable.
func (r *AffirmationRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Affirmation, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableAffirmations, scope, affirmationColumns...).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all affirmations: build: %w", err)
	}

	var rows []affirmationRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "affirmation", "")
	}

	return toDomainAffirmations(rows), nil
}

// GetByID returns one affirmation by id within scope.
func (r *AffirmationRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Affirmation, error) {
	if id == "" {
		return domain.Affirmation{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Affirmation{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableAffirmations, scope, affirmationColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Affirmation{}, fmt.Errorf("get affirmation: build: %w", err)
	}

	var rw affirmationRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Affirmation{}, sqlite.MapError(err, "affirmation", id)
	}

	return toDomainAffirmation(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new affirmation stamped with the scope's owner.
func (r *AffirmationRepo) Create(ctx context.Context, scope domain.Scope, a domain.Affirmation) error {
	if a.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableAffirmations).
		Columns(append([]string{sqlite.OwnerColumn}, affirmationColumns...)...).
		Values(scope.OwnerID(), a.ID, a.Text, a.Active, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create affirmation: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "affirmation", a.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *AffirmationRepo) Update(ctx context.Context, scope domain.Scope, a domain.Affirmation) error {
	if a.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableAffirmations, scope).
		Set("text", a.Text).
		Set("active", a.Active).
		Set("created_at", a.CreatedAt).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update affirmation: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "affirmation", a.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update affirmation: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("affirmation %s: %w", a.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an affirmation by id within scope. Deleting a nonexistent
// id is not an error.
func (r *AffirmationRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableAffirmations, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete affirmation: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "affirmation", id)
	}

	return nil
}
