// Package nutrition implements the food-log, water-log, meal-prep and
// nutrition-profile repositories over the embedded store.
package nutrition

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// FoodLogRepo provides food-log persistence.
type FoodLogRepo struct {
	mgr *sqlite.Manager
}

// NewFoodLogRepo creates a new food-log repository.
func NewFoodLogRepo(mgr *sqlite.Manager) *FoodLogRepo {
	return &FoodLogRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var foodLogColumns = []string{
	"id", "name", "calories", "protein_g", "carbs_g", "fat_g",
	"meal_type", "source", "locked", "calendar_event_id",
	"logged_at", "created_at", "updated_at",
}

type foodLogRow struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Calories        *float64 `db:"calories"`
	ProteinG        *float64 `db:"protein_g"`
	CarbsG          *float64 `db:"carbs_g"`
	FatG            *float64 `db:"fat_g"`
	MealType        string   `db:"meal_type"`
	Source          string   `db:"source"`
	Locked          bool     `db:"locked"`
	CalendarEventID *string  `db:"calendar_event_id"`
	LoggedAt        int64    `db:"logged_at"`
	CreatedAt       int64    `db:"created_at"`
	UpdatedAt       int64    `db:"updated_at"`
}

func toDomainFoodLog(r foodLogRow) domain.FoodLog {
	return domain.FoodLog{
		ID:              r.ID,
		Name:            r.Name,
		Calories:        r.Calories,
		ProteinG:        r.ProteinG,
		CarbsG:          r.CarbsG,
		FatG:            r.FatG,
		MealType:        domain.MealType(r.MealType),
		Source:          domain.LogSource(r.Source),
		Locked:          r.Locked,
		CalendarEventID: r.CalendarEventID,
		LoggedAt:        r.LoggedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toDomainFoodLogs(rows []foodLogRow) []domain.FoodLog {
	logs := make([]domain.FoodLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, toDomainFoodLog(r))
	}
	return logs
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every food log in scope, newest first.
func (r *FoodLogRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.FoodLog, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFoodLogs, scope, foodLogColumns...).
		OrderBy("logged_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all food logs: build: %w", err)
	}

	var rows []foodLogRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "food log", "")
	}

	return toDomainFoodLogs(rows), nil
}

// GetByRange returns food logs with logged_at inside [start, end], both
// bounds inclusive, ordered oldest first.
func (r *FoodLogRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.FoodLog, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFoodLogs, scope, foodLogColumns...).
		Where(sq.GtOrEq{"logged_at": start}).
		Where(sq.LtOrEq{"logged_at": end}).
		OrderBy("logged_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get food logs by range: build: %w", err)
	}

	var rows []foodLogRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "food log", "")
	}

	return toDomainFoodLogs(rows), nil
}

// GetByWeek returns food logs for the seven days starting at weekStart.
func (r *FoodLogRepo) GetByWeek(ctx context.Context, scope domain.Scope, weekStart int64) ([]domain.FoodLog, error) {
	start, end := sqlite.WeekRange(weekStart)
	return r.GetByRange(ctx, scope, start, end)
}

// GetByID returns one food log by id within scope.
func (r *FoodLogRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.FoodLog, error) {
	if id == "" {
		return domain.FoodLog{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.FoodLog{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableFoodLogs, scope, foodLogColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.FoodLog{}, fmt.Errorf("get food log: build: %w", err)
	}

	var rw foodLogRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.FoodLog{}, sqlite.MapError(err, "food log", id)
	}

	return toDomainFoodLog(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new food log stamped with the scope's owner.
func (r *FoodLogRepo) Create(ctx context.Context, scope domain.Scope, log domain.FoodLog) error {
	if log.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableFoodLogs).
		Columns(append([]string{sqlite.OwnerColumn}, foodLogColumns...)...).
		Values(scope.OwnerID(), log.ID, log.Name, log.Calories, log.ProteinG, log.CarbsG,
			log.FatG, log.MealType.String(), log.Source.String(), log.Locked,
			log.CalendarEventID, log.LoggedAt, log.CreatedAt, log.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create food log: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "food log", log.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope. Locked rows are
// replaced like any other; locking is advisory and enforced by callers.
func (r *FoodLogRepo) Update(ctx context.Context, scope domain.Scope, log domain.FoodLog) error {
	if log.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableFoodLogs, scope).
		Set("name", log.Name).
		Set("calories", log.Calories).
		Set("protein_g", log.ProteinG).
		Set("carbs_g", log.CarbsG).
		Set("fat_g", log.FatG).
		Set("meal_type", log.MealType.String()).
		Set("source", log.Source.String()).
		Set("locked", log.Locked).
		Set("calendar_event_id", log.CalendarEventID).
		Set("logged_at", log.LoggedAt).
		Set("created_at", log.CreatedAt).
		Set("updated_at", log.UpdatedAt).
		Where(sq.Eq{"id": log.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update food log: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "food log", log.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update food log: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food log %s: %w", log.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a food log by id within scope. Deleting a nonexistent id
// is not an error.
func (r *FoodLogRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableFoodLogs, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete food log: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "food log", id)
	}

	return nil
}
