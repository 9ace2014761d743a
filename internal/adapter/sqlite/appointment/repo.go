// Package appointment implements the appointment repository over the
// embedded store.
package appointment

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// Repo provides appointment persistence.
type Repo struct {
	mgr *sqlite.Manager
}

// New creates a new appointment repository.
func New(mgr *sqlite.Manager) *Repo {
	return &Repo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "title", "location", "starts_at", "ends_at", "reminder", "created_at", "updated_at",
}

type row struct {
	ID        string  `db:"id"`
	Title     string  `db:"title"`
	Location  *string `db:"location"`
	StartsAt  int64   `db:"starts_at"`
	EndsAt    *int64  `db:"ends_at"`
	Reminder  bool    `db:"reminder"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`
}

func toDomain(r row) domain.Appointment {
	return domain.Appointment{
		ID:        r.ID,
		Title:     r.Title,
		Location:  r.Location,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Reminder:  r.Reminder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainAppointments(rows []row) []domain.Appointment {
	appointments := make([]domain.Appointment, 0, len(rows))
	for _, r := range rows {
		appointments = append(appointments, toDomain(r))
	}
	return appointments
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAll returns every appointment in scope in schedule order.
func (r *Repo) GetAll(ctx context.Context, scope domain.Scope) ([]domain.Appointment, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableAppointments, scope, columns...).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get all appointments: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "appointment", "")
	}

	return toDomainAppointments(rows), nil
}

// GetByRange returns appointments with starts_at inside [start, end], both
// bounds inclusive, ordered oldest first. An appointment spanning into the
// window from before it does not match; the start instant decides.
func (r *Repo) GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Appointment, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableAppointments, scope, columns...).
		Where(sq.GtOrEq{"starts_at": start}).
		Where(sq.LtOrEq{"starts_at": end}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get appointments by range: build: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "appointment", "")
	}

	return toDomainAppointments(rows), nil
}

// GetByWeek returns appointments for the seven days starting at weekStart.
func (r *Repo) GetByWeek(ctx context.Context, scope domain.Scope, weekStart int64) ([]domain.Appointment, error) {
	start, end := sqlite.WeekRange(weekStart)
	return r.GetByRange(ctx, scope, start, end)
}

// GetByID returns one appointment by id within scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id string) (domain.Appointment, error) {
	if id == "" {
		return domain.Appointment{}, domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return domain.Appointment{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableAppointments, scope, columns...).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("get appointment: build: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.Appointment{}, sqlite.MapError(err, "appointment", id)
	}

	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new appointment stamped with the scope's owner.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, appt domain.Appointment) error {
	if appt.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableAppointments).
		Columns(append([]string{sqlite.OwnerColumn}, columns...)...).
		Values(scope.OwnerID(), appt.ID, appt.Title, appt.Location, appt.StartsAt,
			appt.EndsAt, appt.Reminder, appt.CreatedAt, appt.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("create appointment: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "appointment", appt.ID)
	}

	return nil
}

// Update replaces the whole record by id within scope.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, appt domain.Appointment) error {
	if appt.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedUpdate(sqlite.TableAppointments, scope).
		Set("title", appt.Title).
		Set("location", appt.Location).
		Set("starts_at", appt.StartsAt).
		Set("ends_at", appt.EndsAt).
		Set("reminder", appt.Reminder).
		Set("created_at", appt.CreatedAt).
		Set("updated_at", appt.UpdatedAt).
		Where(sq.Eq{"id": appt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update appointment: build: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "appointment", appt.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update appointment: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("appointment %s: %w", appt.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an appointment by id within scope. Deleting a nonexistent
// id is not an error.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableAppointments, scope).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete appointment: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "appointment", id)
	}

	return nil
}
