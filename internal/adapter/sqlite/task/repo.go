// Package task implements the task repository over the embedded store.
package task

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Repo provides task persistence. Every method resolves the store handle
// first and fails fast with the manager's availability sentinel when the
// store is not ready.
type Repo struct {
	mgr *sqlite.Manager
}

// New creates a new task repository.
func New(mgr *sqlite.Manager) *Repo {
	return &Repo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "title", "details", "priority", "done", "due_at", "created_at", "updated_at",
}

type row struct {
	ID        string  `db:"id"`
	Title     string  `db:"title"`
	Details   *string `db:"details"`
	Priority  string  `db:"priority"`
	Done      bool    `db:"done"`
	DueAt     *int64  `db:"due_at"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`
}

func toDomain(r row) domain.Task {
	return domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Details:   r.Details,
		Priority:  domain.TaskPriority(r.Priority),
		Done:      r.Done,
		DueAt:     r.DueAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainTasks(rows []row) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, toDomain(r))
	}
	return tasks
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every task in scope, newest first.
func (r *Repo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableTasks, scope, columns...).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all tasks: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "task", "")
	}

	return toDomainTasks(rows), nil
}

// GetByRange returns tasks whose due date falls in [start, end] inclusive.
// Tasks without a due date are excluded.
func (r *Repo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Task, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableTasks, scope, columns...).
		Where(sq.GtOrEq{"due_at": start}).
		Where(sq.LtOrEq{"due_at": end}).
		OrderBy("due_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get tasks by range: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "task", "")
	}

	return toDomainTasks(rows), nil
}

// GetByID returns one task by id within scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Task, error) {
	if id == "" {
		return domain.Task{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Task{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableTasks, scope, columns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: build: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Task{}, sqlite.MapError(err, "task", id)
	}

	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task stamped with the scope's owner.
// Duplicate id results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, task domain.Task) error {
	if task.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableTasks).
		Columns(append([]string{sqlite.OwnerColumn}, columns...)...).
		Values(scope.OwnerID(), task.ID, task.Title, task.Details, task.Priority.String(),
			task.Done, task.DueAt, task.CreatedAt, task.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create task: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "task", task.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
// Returns domain.ErrNotFound if the id does not exist in scope.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, task domain.Task) error {
	if task.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableTasks, scope).
		Set("title", task.Title).
		Set("details", task.Details).
		Set("priority", task.Priority.String()).
		Set("done", task.Done).
		Set("due_at", task.DueAt).
		Set("created_at", task.CreatedAt).
		Set("updated_at", task.UpdatedAt).
		Where(sq.Eq{"id": task.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update task: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "task", task.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a task by id within scope. Deleting a nonexistent id is
// not an error.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableTasks, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete task: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "task", id)
	}

	return nil
}
