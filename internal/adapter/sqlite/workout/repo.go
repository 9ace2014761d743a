// Package workout implements the workout repository over the embedded store.
package workout

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Repo provides workout persistence.
type Repo struct {
	mgr *sqlite.Manager
}

// New creates a new workout repository.
func New(mgr *sqlite.Manager) *Repo {
	return &Repo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "title", "kind", "duration_min", "calories_burned", "note",
	"performed_at", "created_at", "updated_at",
}

type row struct {
	ID             string   `db:"id"`
	Title          string   `db:"title"`
	Kind           *string  `db:"kind"`
	DurationMin    *int64   `db:"duration_min"`
	CaloriesBurned *float64 `db:"calories_burned"`
	Note           *string  `db:"note"`
	PerformedAt    int64    `db:"performed_at"`
	CreatedAt      int64    `db:"created_at"`
	UpdatedAt      int64    `db:"updated_at"`
}

func toDomain(r row) domain.Workout {
	return domain.Workout{
		ID:             r.ID,
		Title:          r.Title,
		Kind:           r.Kind,
		DurationMin:    r.DurationMin,
		CaloriesBurned: r.CaloriesBurned,
		Note:           r.Note,
		PerformedAt:    r.PerformedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toDomainWorkouts(rows []row) []domain.Workout {
	workouts := make([]domain.Workout, 0, len(rows))
	for _, r := range rows {
		workouts = append(workouts, toDomain(r))
	}
	return workouts
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every workout in scope, newest first.
func (r *Repo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Workout, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWorkouts, scope, columns...).
		OrderBy("performed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all workouts: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "workout", "")
	}

	return toDomainWorkouts(rows), nil
}

// GetByRange returns workouts with performed_at inside [start, end], both
// bounds inclusive, ordered oldest first.
func (r *Repo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Workout, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWorkouts, scope, columns...).
		Where(sq.GtOrEq{"performed_at": start}).
		Where(sq.LtOrEq{"performed_at": end}).
		OrderBy("performed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get workouts by range: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "workout", "")
	}

	return toDomainWorkouts(rows), nil
}

// GetByID returns one workout by id within scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Workout, error) {
	if id == "" {
		return domain.Workout{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Workout{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableWorkouts, scope, columns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Workout{}, fmt.Errorf("get workout: build: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Workout{}, sqlite.MapError(err, "workout", id)
	}

	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new workout stamped with the scope's owner.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, workout domain.Workout) error {
	if workout.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableWorkouts).
		Columns(append([]string{sqlite.OwnerColumn}, columns...)...).
		Values(scope.OwnerID(), workout.ID, workout.Title, workout.Kind, workout.DurationMin,
			workout.CaloriesBurned, workout.Note, workout.PerformedAt,
			workout.CreatedAt, workout.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create workout: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout", workout.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, workout domain.Workout) error {
	if workout.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableWorkouts, scope).
		Set("title", workout.Title).
		Set("kind", workout.Kind).
		Set("duration_min", workout.DurationMin).
		Set("calories_burned", workout.CaloriesBurned).
		Set("note", workout.Note).
		Set("performed_at", workout.PerformedAt).
		Set("created_at", workout.CreatedAt).
		Set("updated_at", workout.UpdatedAt).
		Where(sq.Eq{"id": workout.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update workout: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "workout", workout.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update workout: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %s: %w", workout.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a workout by id within scope. Deleting a nonexistent id is
// not an error.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableWorkouts, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete workout: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout", id)
	}

	return nil
}
