package nutrition

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// MealPrepRepo provides meal-prep-plan persistence.
type MealPrepRepo struct {
	mgr *sqlite.Manager
}

// NewMealPrepRepo creates a new meal-prep-plan repository.
func NewMealPrepRepo(mgr *sqlite.Manager) *MealPrepRepo {
	return &MealPrepRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var mealPrepColumns = []string{
	"id", "title", "meal_type", "recipe", "planned_for", "created_at", "updated_at",
}

type mealPrepRow struct {
	ID         string  `db:"id"`
	Title      string  `db:"title"`
	MealType   string  `db:"meal_type"`
	Recipe     *string `db:"recipe"`
	PlannedFor int64   `db:"planned_for"`
	CreatedAt  int64   `db:"created_at"`
	UpdatedAt  int64   `db:"updated_at"`
}

func toDomainMealPrep(r mealPrepRow) domain.MealPrepPlan {
	return domain.MealPrepPlan{
		ID:         r.ID,
		Title:      r.Title,
		MealType:   domain.MealType(r.MealType),
		Recipe:     r.Recipe,
		PlannedFor: r.PlannedFor,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toDomainMealPreps(rows []mealPrepRow) []domain.MealPrepPlan {
	plans := make([]domain.MealPrepPlan, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, toDomainMealPrep(r))
	}
	return plans
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every meal-prep plan in scope in schedule order.
func (r *MealPrepRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.MealPrepPlan, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableMealPrepPlans, scope, mealPrepColumns...).
		OrderBy("planned_for ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all meal preps: build: %w", err)
	}

	var rows []mealPrepRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "meal prep", "")
	}

	return toDomainMealPreps(rows), nil
}

// GetByRange returns plans with planned_for inside [start, end], both
// bounds inclusive, ordered oldest first.
func (r *MealPrepRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.MealPrepPlan, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableMealPrepPlans, scope, mealPrepColumns...).
		Where(sq.GtOrEq{"planned_for": start}).
		Where(sq.LtOrEq{"planned_for": end}).
		OrderBy("planned_for ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get meal preps by range: build: %w", err)
	}

	var rows []mealPrepRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "meal prep", "")
	}

	return toDomainMealPreps(rows), nil
}

// GetByWeek returns plans for the seven days starting at weekStart.
func (r *MealPrepRepo) GetByWeek(ctx context.Context, scope domain.Scope, weekStart int64) ([]domain.MealPrepPlan, error) {
	start, end := sqlite.WeekRange(weekStart)
	return r.GetByRange(ctx, scope, start, end)
}

// GetByID returns one plan by id within scope.
func (r *MealPrepRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.MealPrepPlan, error) {
	if id == "" {
		return domain.MealPrepPlan{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.MealPrepPlan{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableMealPrepPlans, scope, mealPrepColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.MealPrepPlan{}, fmt.Errorf("get meal prep: build: %w", err)
	}

	var rw mealPrepRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.MealPrepPlan{}, sqlite.MapError(err, "meal prep", id)
	}

	return toDomainMealPrep(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new plan stamped with the scope's owner.
func (r *MealPrepRepo) Create(ctx context.Context, scope domain.Scope, plan domain.MealPrepPlan) error {
	if plan.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableMealPrepPlans).
		Columns(append([]string{sqlite.OwnerColumn}, mealPrepColumns...)...).
		Values(scope.OwnerID(), plan.ID, plan.Title, plan.MealType.String(), plan.Recipe,
			plan.PlannedFor, plan.CreatedAt, plan.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create meal prep: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "meal prep", plan.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *MealPrepRepo) Update(ctx context.Context, scope domain.Scope, plan domain.MealPrepPlan) error {
	if plan.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableMealPrepPlans, scope).
		Set("title", plan.Title).
		Set("meal_type", plan.MealType.String()).
		Set("recipe", plan.Recipe).
		Set("planned_for", plan.PlannedFor).
		Set("created_at", plan.CreatedAt).
		Set("updated_at", plan.UpdatedAt).
		Where(sq.Eq{"id": plan.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update meal prep: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "meal prep", plan.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update meal prep: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal prep %s: %w", plan.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a plan by id within scope. Deleting a nonexistent id is
// not an error.
func (r *MealPrepRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableMealPrepPlans, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete meal prep: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "meal prep", id)
	}

	return nil
}
