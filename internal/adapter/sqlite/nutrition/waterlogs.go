package nutrition

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// WaterLogRepo provides water-log persistence.
type WaterLogRepo struct {
	mgr *sqlite.Manager
}

// NewWaterLogRepo creates a new water-log repository.
func NewWaterLogRepo(mgr *sqlite.Manager) *WaterLogRepo {
	return &WaterLogRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var waterLogColumns = []string{
	"id", "volume_ml", "logged_at", "created_at", "updated_at",
}

type waterLogRow struct {
	ID        string `db:"id"`
	VolumeML  int64  `db:"volume_ml"`
	LoggedAt  int64  `db:"logged_at"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func toDomainWaterLog(r waterLogRow) domain.WaterLog {
	return domain.WaterLog{
		ID:        r.ID,
		VolumeML:  r.VolumeML,
		LoggedAt:  r.LoggedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainWaterLogs(rows []waterLogRow) []domain.WaterLog {
	logs := make([]domain.WaterLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, toDomainWaterLog(r))
	}
	return logs
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every water log in scope, newest first.
func (r *WaterLogRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.WaterLog, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWaterLogs, scope, waterLogColumns...).
		OrderBy("logged_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all water logs: build: %w", err)
	}

	var rows []waterLogRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "water log", "")
	}

	return toDomainWaterLogs(rows), nil
}

// GetByRange returns water logs with logged_at inside [start, end], both
// bounds inclusive, ordered oldest first.
func (r *WaterLogRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.WaterLog, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWaterLogs, scope, waterLogColumns...).
		Where(sq.GtOrEq{"logged_at": start}).
		Where(sq.LtOrEq{"logged_at": end}).
		OrderBy("logged_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get water logs by range: build: %w", err)
	}

	var rows []waterLogRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "water log", "")
	}

	return toDomainWaterLogs(rows), nil
}

// GetByID returns one water log by id within scope.
func (r *WaterLogRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.WaterLog, error) {
	if id == "" {
		return domain.WaterLog{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.WaterLog{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWaterLogs, scope, waterLogColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.WaterLog{}, fmt.Errorf("get water log: build: %w", err)
	}

	var rw waterLogRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.WaterLog{}, sqlite.MapError(err, "water log", id)
	}

	return toDomainWaterLog(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new water log stamped with the scope's owner.
// Non-positive volumes are rejected by the store's check constraint.
func (r *WaterLogRepo) Create(ctx context.Context, scope domain.Scope, log domain.WaterLog) error {
	if log.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableWaterLogs).
		Columns(append([]string{sqlite.OwnerColumn}, waterLogColumns...)...).
		Values(scope.OwnerID(), log.ID, log.VolumeML, log.LoggedAt, log.CreatedAt, log.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create water log: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "water log", log.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *WaterLogRepo) Update(ctx context.Context, scope domain.Scope, log domain.WaterLog) error {
	if log.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableWaterLogs, scope).
		Set("volume_ml", log.VolumeML).
		Set("logged_at", log.LoggedAt).
		Set("created_at", log.CreatedAt).
		Set("updated_at", log.UpdatedAt).
		Where(sq.Eq{"id": log.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update water log: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "water log", log.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update water log: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("water log %s: %w", log.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a water log by id within scope. Deleting a nonexistent id
// is not an error.
func (r *WaterLogRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableWaterLogs, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete water log: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "water log", id)
	}

	return nil
}
