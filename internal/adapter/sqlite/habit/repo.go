// Package habit implements the habit and habit-completion repositories over
// the embedded store.
package habit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Repo provides habit persistence.
type Repo struct {
	mgr *sqlite.Manager
}

// New creates a new habit repository.
func New(mgr *sqlite.Manager) *Repo {
	return &Repo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var habitColumns = []string{
	"id", "name", "emoji", "cadence", "target_per_week", "archived", "created_at", "updated_at",
}

type habitRow struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Emoji         *string `db:"emoji"`
	Cadence       string  `db:"cadence"`
	TargetPerWeek int     `db:"target_per_week"`
	Archived      bool    `db:"archived"`
	CreatedAt     int64   `db:"created_at"`
	UpdatedAt     int64   `db:"updated_at"`
}

func toDomainHabit(r habitRow) domain.Habit {
	return domain.Habit{
		ID:            r.ID,
		Name:          r.Name,
		Emoji:         r.Emoji,
		Cadence:       domain.HabitCadence(r.Cadence),
		TargetPerWeek: r.TargetPerWeek,
		Archived:      r.Archived,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDomainHabits(rows []habitRow) []domain.Habit {
	habits := make([]domain.Habit, 0, len(rows))
	for _, r := range rows {
		habits = append(habits, toDomainHabit(r))
	}
	return habits
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every habit in scope, oldest first so list order is stable
// across completions.
func (r *Repo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Habit, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabits, scope, habitColumns...).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all habits: build: %w", err)
	}

	var rows []habitRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "habit", "")
	}

	return toDomainHabits(rows), nil
}

// GetByID returns one habit by id within scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Habit, error) {
	if id == "" {
		return domain.Habit{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Habit{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabits, scope, habitColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Habit{}, fmt.Errorf("get habit: build: %w", err)
	}

	var rw habitRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Habit{}, sqlite.MapError(err, "habit", id)
	}

	return toDomainHabit(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new habit stamped with the scope's owner.
// Duplicate id results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, habit domain.Habit) error {
	if habit.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableHabits).
		Columns(append([]string{sqlite.OwnerColumn}, habitColumns...)...).
		Values(scope.OwnerID(), habit.ID, habit.Name, habit.Emoji, habit.Cadence.String(),
			habit.TargetPerWeek, habit.Archived, habit.CreatedAt, habit.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create habit: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "habit", habit.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
// Returns domain.ErrNotFound if the id does not exist in scope.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, habit domain.Habit) error {
	if habit.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableHabits, scope).
		Set("name", habit.Name).
		Set("emoji", habit.Emoji).
		Set("cadence", habit.Cadence.String()).
		Set("target_per_week", habit.TargetPerWeek).
		Set("archived", habit.Archived).
		Set("created_at", habit.CreatedAt).
		Set("updated_at", habit.UpdatedAt).
		Where(sq.Eq{"id": habit.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update habit: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "habit", habit.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update habit: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a habit by id within scope. Completions keep their soft
// habit_id reference; cleaning them up is the caller's choice. Deleting a
// nonexistent id is not an error.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableHabits, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete habit: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "habit", id)
	}

	return nil
}
