package habit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// CompletionRepo provides habit-completion persistence.
type CompletionRepo struct {
	mgr *sqlite.Manager
}

// NewCompletionRepo creates a new habit-completion repository.
func NewCompletionRepo(mgr *sqlite.Manager) *CompletionRepo {
	return &CompletionRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var completionColumns = []string{
	"id", "habit_id", "completed_at", "note", "created_at", "updated_at",
}

type completionRow struct {
	ID          string  `db:"id"`
	HabitID     string  `db:"habit_id"`
	CompletedAt int64   `db:"completed_at"`
	Note        *string `db:"note"`
	CreatedAt   int64   `db:"created_at"`
	UpdatedAt   int64   `db:"updated_at"`
}

func toDomainCompletion(r completionRow) domain.HabitCompletion {
	return domain.HabitCompletion{
		ID:          r.ID,
		HabitID:     r.HabitID,
		CompletedAt: r.CompletedAt,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainCompletions(rows []completionRow) []domain.HabitCompletion {
	completions := make([]domain.HabitCompletion, 0, len(rows))
	for _, r := range rows {
		completions = append(completions, toDomainCompletion(r))
	}
	return completions
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every completion in scope, newest first.
func (r *CompletionRepo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.HabitCompletion, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabitCompletions, scope, completionColumns...).
		OrderBy("completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all habit completions: build: %w", err)
	}

	var rows []completionRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "habit completion", "")
	}

	return toDomainCompletions(rows), nil
}

// GetByHabit returns every completion of one habit in scope, newest first.
func (r *CompletionRepo) GetByHabit(ctx context.Context, scope domain.Scope, habitID string) ([]domain.HabitCompletion, error) {
	if habitID == "" {
		return nil, domain.NewValidationError("habit_id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabitCompletions, scope, completionColumns...).
		Where(sq.Eq{"habit_id": habitID}).
		OrderBy("completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get habit completions by habit: build: %w", err)
	}

	var rows []completionRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "habit completion", "")
	}

	return toDomainCompletions(rows), nil
}

// GetByRange returns completions with completed_at inside [start, end],
// both bounds inclusive, ordered oldest first.
func (r *CompletionRepo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.HabitCompletion, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabitCompletions, scope, completionColumns...).
		Where(sq.GtOrEq{"completed_at": start}).
		Where(sq.LtOrEq{"completed_at": end}).
		OrderBy("completed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get habit completions by range: build: %w", err)
	}

	var rows []completionRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "habit completion", "")
	}

	return toDomainCompletions(rows), nil
}

// GetByWeek returns completions for the seven days starting at weekStart.
func (r *CompletionRepo) GetByWeek(ctx context.Context, scope domain.Scope, weekStart int64) ([]domain.HabitCompletion, error) {
	start, end := sqlite.WeekRange(weekStart)
	return r.GetByRange(ctx, scope, start, end)
}

// GetByID returns one completion by id within scope.
func (r *CompletionRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.HabitCompletion, error) {
	if id == "" {
		return domain.HabitCompletion{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.HabitCompletion{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableHabitCompletions, scope, completionColumns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.HabitCompletion{}, fmt.Errorf("get habit completion: build: %w", err)
	}

	var rw completionRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.HabitCompletion{}, sqlite.MapError(err, "habit completion", id)
	}

	return toDomainCompletion(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new completion stamped with the scope's owner.
func (r *CompletionRepo) Create(ctx context.Context, scope domain.Scope, completion domain.HabitCompletion) error {
	if completion.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}
	if completion.HabitID == "" {
		return domain.NewValidationError("habit_id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableHabitCompletions).
		Columns(append([]string{sqlite.OwnerColumn}, completionColumns...)...).
		Values(scope.OwnerID(), completion.ID, completion.HabitID, completion.CompletedAt,
			completion.Note, completion.CreatedAt, completion.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create habit completion: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "habit completion", completion.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *CompletionRepo) Update(ctx context.Context, scope domain.Scope, completion domain.HabitCompletion) error {
	if completion.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}
	if completion.HabitID == "" {
		return domain.NewValidationError("habit_id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableHabitCompletions, scope).
		Set("habit_id", completion.HabitID).
		Set("completed_at", completion.CompletedAt).
		Set("note", completion.Note).
		Set("created_at", completion.CreatedAt).
		Set("updated_at", completion.UpdatedAt).
		Where(sq.Eq{"id": completion.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update habit completion: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "habit completion", completion.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update habit completion: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("habit completion %s: %w", completion.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a completion by id within scope. Deleting a nonexistent id
// is not an error.
func (r *CompletionRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableHabitCompletions, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete habit completion: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "habit completion", id)
	}

	return nil
}
