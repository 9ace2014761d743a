// Package mindset implements the manifestation and affirmation repositories
// over the embedded store.
package mindset

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// ManifestationRepo provides manifestation persistence.
type ManifestationRepo struct {
	mgr *sqlite.Manager
}

// NewManifestationRepo creates a new manifestation repository.
func NewManifestationRepo(mgr *sqlite.Manager) *ManifestationRepo {
	return &ManifestationRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var manifestationColumns = []string{
	"id", "text", "achieved", "created_at", "updated_at",
}

type manifestationRow struct {
	ID        string `db:"id"`
	Text      string `db:"text"`
	Achieved  bool   `db:"achieved"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func toDomainManifestation(r manifestationRow) domain.Manifestation {
	return domain.Manifestation{
		ID:        r.ID,
		Text:      r.Text,
		Achieved:  r.Achieved,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainManifestations(rows []manifestationRow) []domain.Manifestation {
	manifestations := make([]domain.Manifestation, 0, len(rows))
	for _, r := range rows {
		manifestations = append(manifestations, toDomainManifestation(r))
	}
	return manifestations
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every manifestation in scope, newest first.
func (r *ManifestationRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Manifestation, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableManifestations, scope, manifestationColumns...).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all manifestations: build: %w", err)
	}

	var rows []manifestationRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "manifestation", "")
	}

	return toDomainManifestations(rows), nil
}

// GetByRange returns manifestations created inside [start, end], both
// bounds inclusive, ordered oldest first. Manifestations carry no schedule
// of their own, so creation time is their calendar position.
func (r *ManifestationRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Manifestation, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableManifestations, scope, manifestationColumns...).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get manifestations by range: build: %w", err)
	}

	var rows []manifestationRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "manifestation", "")
	}

	return toDomainManifestations(rows), nil
}

// GetByID returns one manifestation by id within scope.
func (r *ManifestationRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Manifestation, error) {
	if id == "" {
		return domain.Manifestation{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Manifestation{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableManifestations, scope, manifestationColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Manifestation{}, fmt.Errorf("get manifestation: build: %w", err)
	}

	var rw manifestationRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Manifestation{}, sqlite.MapError(err, "manifestation", id)
	}

	return toDomainManifestation(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new manifestation stamped with the scope's owner.
func (r *ManifestationRepo) Create(ctx context.Context, scope domain.Scope, m domain.Manifestation) error {
	if m.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableManifestations).
		Columns(append([]string{sqlite.OwnerColumn}, manifestationColumns...)...).
		Values(scope.OwnerID(), m.ID, m.Text, m.Achieved, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create manifestation: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "manifestation", m.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *ManifestationRepo) Update(ctx context.Context, scope domain.Scope, m domain.Manifestation) error {
	if m.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableManifestations, scope).
		Set("text", m.Text).
		Set("achieved", m.Achieved).
		Set("created_at", m.CreatedAt).
		Set("updated_at", m.UpdatedAt).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update manifestation: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "manifestation", m.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update manifestation: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("manifestation %s: %w", m.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a manifestation by id within scope. Deleting a nonexistent
// id is not an error.
func (r *ManifestationRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableManifestations, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete manifestation: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "manifestation", id)
	}

	return nil
}
