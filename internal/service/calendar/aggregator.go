// Package calendar builds the unified per-day event index shown on the
// home-screen calendar. It fans read-only range queries out across every
// dated entity kind and folds the results into a domain.DayIndex.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Task, error)
}

type completionRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.HabitCompletion, error)
}

type foodLogRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.FoodLog, error)
}

type waterLogRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.WaterLog, error)
}

type mealPrepRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.MealPrepPlan, error)
}

type financeRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.FinanceRecord, error)
}

type workoutRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Workout, error)
}

type appointmentRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Appointment, error)
}

type noteRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Note, error)
}

type manifestationRepo interface {
	GetByRange(ctx context.Context, scope domain.Scope, start, end int64) ([]domain.Manifestation, error)
}

// ---------------------------------------------------------------------------
// Aggregator
// ---------------------------------------------------------------------------

// maxConcurrentSources caps how many range queries run at once.
const maxConcurrentSources = 4

// Aggregator answers calendar-range reads across all dated entity kinds.
// It never writes and carries no state beyond its repositories and the
// location used to bucket timestamps into local days.
type Aggregator struct {
	tasks          taskRepo
	completions    completionRepo
	foodLogs       foodLogRepo
	waterLogs      waterLogRepo
	mealPreps      mealPrepRepo
	finances       financeRepo
	workouts       workoutRepo
	appointments   appointmentRepo
	notes          noteRepo
	manifestations manifestationRepo
	loc            *time.Location
	log            *slog.Logger
}

// NewAggregator creates a new calendar aggregator. A nil loc buckets days
// by the process-local timezone.
func NewAggregator(
	log *slog.Logger,
	tasks taskRepo,
	completions completionRepo,
	foodLogs foodLogRepo,
	waterLogs waterLogRepo,
	mealPreps mealPrepRepo,
	finances financeRepo,
	workouts workoutRepo,
	appointments appointmentRepo,
	notes noteRepo,
	manifestations manifestationRepo,
	loc *time.Location,
) *Aggregator {
	if loc == nil {
		loc = time.Local
	}

	return &Aggregator{
		tasks:          tasks,
		completions:    completions,
		foodLogs:       foodLogs,
		waterLogs:      waterLogs,
		mealPreps:      mealPreps,
		finances:       finances,
		workouts:       workouts,
		appointments:   appointments,
		notes:          notes,
		manifestations: manifestations,
		loc:            loc,
		log:            log.With("service", "calendar"),
	}
}

// ---------------------------------------------------------------------------
// Sources
// ---------------------------------------------------------------------------

// source is one entity kind's contribution to the calendar: a label for
// error messages, the event type it counts under, and a fetch that returns
// the primary-date timestamp of every matching row.
type source struct {
	name      string
	eventType domain.EventType
	fetch     func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error)
}

// sources lists every entity kind the calendar reads. Each adapter projects
// its rows down to the one timestamp that places them on a day; rows whose
// date column is NULL never come back from the range query.
func (a *Aggregator) sources() []source {
	return []source{
		{
			name:      "tasks",
			eventType: domain.EventTypeTask,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.tasks.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, t := range rows {
					if t.DueAt == nil {
						continue
					}
					out = append(out, *t.DueAt)
				}
				return out, nil
			},
		},
		{
			name:      "habit completions",
			eventType: domain.EventTypeHabit,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.completions.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, c := range rows {
					out = append(out, c.CompletedAt)
				}
				return out, nil
			},
		},
		{
			name:      "food logs",
			eventType: domain.EventTypeFood,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.foodLogs.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, f := range rows {
					out = append(out, f.LoggedAt)
				}
				return out, nil
			},
		},
		{
			name:      "water logs",
			eventType: domain.EventTypeWater,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.waterLogs.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, w := range rows {
					out = append(out, w.LoggedAt)
				}
				return out, nil
			},
		},
		{
			name:      "meal preps",
			eventType: domain.EventTypeMealPrep,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.mealPreps.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, m := range rows {
					out = append(out, m.PlannedFor)
				}
				return out, nil
			},
		},
		{
			name:      "finance records",
			eventType: domain.EventTypeFinance,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.finances.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, rec := range rows {
					out = append(out, rec.OccurredAt)
				}
				return out, nil
			},
		},
		{
			name:      "workouts",
			eventType: domain.EventTypeWorkout,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.workouts.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, w := range rows {
					out = append(out, w.PerformedAt)
				}
				return out, nil
			},
		},
		{
			name:      "appointments",
			eventType: domain.EventTypeAppointment,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.appointments.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, ap := range rows {
					out = append(out, ap.StartsAt)
				}
				return out, nil
			},
		},
		{
			name:      "journal notes",
			eventType: domain.EventTypeJournal,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.notes.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, n := range rows {
					out = append(out, n.EntryAt)
				}
				return out, nil
			},
		},
		{
			name:      "manifestations",
			eventType: domain.EventTypeManifestation,
			fetch: func(ctx context.Context, scope domain.Scope, start, end int64) ([]int64, error) {
				rows, err := a.manifestations.GetByRange(ctx, scope, start, end)
				if err != nil {
					return nil, err
				}
				out := make([]int64, 0, len(rows))
				for _, m := range rows {
					out = append(out, m.CreatedAt)
				}
				return out, nil
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// EventsInRange counts, per local calendar day, how many events of each kind
// fall inside [start, end] for the given scope. Both bounds are inclusive
// epoch milliseconds. Timestamps bucket by the aggregator's location, so two
// events on the same local day share a key regardless of time of day.
//
// When the store is not ready or unsupported on this platform the index is
// empty and the error is nil; the calendar is a presentation surface and
// renders blank rather than failing. Any other repository error aborts the
// whole load.
func (a *Aggregator) EventsInRange(ctx context.Context, scope domain.Scope, start, end int64) (domain.DayIndex, error) {
	ix := make(domain.DayIndex)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSources)

	for _, src := range a.sources() {
		src := src
		g.Go(func() error {
			stamps, err := src.fetch(gctx, scope, start, end)
			if err != nil {
				return fmt.Errorf("load %s: %w", src.name, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, ms := range stamps {
				ix.Add(domain.DayKeyIn(ms, a.loc), src.eventType)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrNotReady) || errors.Is(err, domain.ErrUnsupported) {
			a.log.DebugContext(ctx, "store unavailable, returning empty calendar index", "error", err)
			return make(domain.DayIndex), nil
		}
		return nil, err
	}

	return ix, nil
}
