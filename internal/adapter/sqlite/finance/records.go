// Package finance implements the finance-record and finance-note
// repositories over the embedded store.
package finance

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// RecordRepo provides finance-record persistence.
type RecordRepo struct {
	mgr *sqlite.Manager
}

// NewRecordRepo creates a new finance-record repository.
func NewRecordRepo(mgr *sqlite.Manager) *RecordRepo {
	return &RecordRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var recordColumns = []string{
	"id", "amount_cents", "kind", "category", "note", "occurred_at", "created_at", "updated_at",
}

type recordRow struct {
	ID          string  `db:"id"`
	AmountCents int64   `db:"amount_cents"`
	Kind        string  `db:"kind"`
	Category    *string `db:"category"`
	Note        *string `db:"note"`
	OccurredAt  int64   `db:"occurred_at"`
	CreatedAt   int64   `db:"created_at"`
	UpdatedAt   int64   `db:"updated_at"`
}

func toDomainRecord(r recordRow) domain.FinanceRecord {
	return domain.FinanceRecord{
		ID:          r.ID,
		AmountCents: r.AmountCents,
		Kind:        domain.FinanceKind(r.Kind),
		Category:    r.Category,
		Note:        r.Note,
		OccurredAt:  r.OccurredAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainRecords(rows []recordRow) []domain.FinanceRecord {
	records := make([]domain.FinanceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, toDomainRecord(r))
	}
	return records
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every finance record in scope, newest first.
func (r *RecordRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.FinanceRecord, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFinanceRecords, scope, recordColumns...).
		OrderBy("occurred_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all finance records: build: %w", err)
	}

	var rows []recordRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "finance record", "")
	}

	return toDomainRecords(rows), nil
}

// GetByRange returns records with occurred_at inside [start, end], both
// bounds inclusive, ordered oldest first.
func (r *RecordRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.FinanceRecord, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFinanceRecords, scope, recordColumns...).
		Where(sq.GtOrEq{"occurred_at": start}).
		Where(sq.LtOrEq{"occurred_at": end}).
		OrderBy("occurred_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get finance records by range: build: %w", err)
	}

	var rows []recordRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "finance record", "")
	}

	return toDomainRecords(rows), nil
}

// GetByWeek returns records for the seven days starting at weekStart.
func (r *RecordRepo) GetByWeek(ctx context.Context, scope domain.Scope, weekStart int64) ([]domain.FinanceRecord, error) {
	start, end := sqlite.WeekRange(weekStart)
	return r.GetByRange(ctx, scope, start, end)
}

// GetByID returns one record by id within scope.
func (r *RecordRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.FinanceRecord, error) {
	if id == "" {
		return domain.FinanceRecord{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.FinanceRecord{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFinanceRecords, scope, recordColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.FinanceRecord{}, fmt.Errorf("get finance record: build: %w", err)
	}

	var rw recordRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.FinanceRecord{}, sqlite.MapError(err, "finance record", id)
	}

	return toDomainRecord(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record stamped with the scope's owner. Amounts are
// stored as integer cents; the kind check constraint rejects unknown kinds.
func (r *RecordRepo) Create(ctx context.Context, scope domain.Scope, rec domain.FinanceRecord) error {
	if rec.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableFinanceRecords).
		Columns(append([]string{sqlite.OwnerColumn}, recordColumns...)...).
		Values(scope.OwnerID(), rec.ID, rec.AmountCents, rec.Kind.String(), rec.Category,
			rec.Note, rec.OccurredAt, rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create finance record: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "finance record", rec.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *RecordRepo) Update(ctx context.Context, scope domain.Scope, rec domain.FinanceRecord) error {
	if rec.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableFinanceRecords, scope).
		Set("amount_cents", rec.AmountCents).
		Set("kind", rec.Kind.String()).
		Set("category", rec.Category).
		Set("note", rec.Note).
		Set("occurred_at", rec.OccurredAt).
		Set("created_at", rec.CreatedAt).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update finance record: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "finance record", rec.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update finance record: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finance record %s: %w", rec.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a record by id within scope. Deleting a nonexistent id is
// not an error.
func (r *RecordRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableFinanceRecords, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete finance record: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "finance record", id)
	}

	return nil
}
