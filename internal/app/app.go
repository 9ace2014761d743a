// Package app assembles the persistence layer into a runnable object graph:
// configuration, logger, store manager, one repository per entity kind, and
// the calendar aggregator.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/appointment"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/finance"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/habit"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/mindset"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/note"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/nutrition"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/task"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/workout"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/config"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/service/calendar"
)

// App holds every long-lived component. Repositories are safe for concurrent
// use and share the single store handle owned by Store.
type App struct {
	Cfg *config.Config
	Log *slog.Logger

	Store *sqlite.Manager
	Tx    *sqlite.TxManager

	Tasks            *task.Repo
	Habits           *habit.Repo
	Completions      *habit.CompletionRepo
	FoodLogs         *nutrition.FoodLogRepo
	WaterLogs        *nutrition.WaterLogRepo
	MealPreps        *nutrition.MealPrepRepo
	NutritionProfile *nutrition.ProfileRepo
	Manifestations   *mindset.ManifestationRepo
	Affirmations     *mindset.AffirmationRepo
	FinanceRecords   *finance.RecordRepo
	FinanceNotes     *finance.NoteRepo
	Workouts         *workout.Repo
	Appointments     *appointment.Repo
	Notes            *note.Repo

	Calendar *calendar.Aggregator
}

// New builds the object graph. Nothing touches the store file until Init;
// constructing the graph is cheap and cannot fail. Calendar days bucket by
// the process-local timezone.
func New(cfg *config.Config, log *slog.Logger) *App {
	mgr := sqlite.NewManager(cfg.Storage)

	a := &App{
		Cfg: cfg,
		Log: log,

		Store: mgr,
		Tx:    sqlite.NewTxManager(mgr),

		Tasks:            task.New(mgr),
		Habits:           habit.New(mgr),
		Completions:      habit.NewCompletionRepo(mgr),
		FoodLogs:         nutrition.NewFoodLogRepo(mgr),
		WaterLogs:        nutrition.NewWaterLogRepo(mgr),
		MealPreps:        nutrition.NewMealPrepRepo(mgr),
		NutritionProfile: nutrition.NewProfileRepo(mgr),
		Manifestations:   mindset.NewManifestationRepo(mgr),
		Affirmations:     mindset.NewAffirmationRepo(mgr),
		FinanceRecords:   finance.NewRecordRepo(mgr),
		FinanceNotes:     finance.NewNoteRepo(mgr),
		Workouts:         workout.New(mgr),
		Appointments:     appointment.New(mgr),
		Notes:            note.New(mgr),
	}

	a.Calendar = calendar.NewAggregator(
		log,
		a.Tasks,
		a.Completions,
		a.FoodLogs,
		a.WaterLogs,
		a.MealPreps,
		a.FinanceRecords,
		a.Workouts,
		a.Appointments,
		a.Notes,
		a.Manifestations,
		time.Local,
	)

	return a
}

// Init opens the store and brings the schema to the current version.
func (a *App) Init(ctx context.Context) error {
	return a.Store.Init(ctx)
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.Store.Close()
}

// Run is the embedded-app entry point: load configuration, set up logging,
// bring the store up. A failed store init is logged and swallowed; the
// process continues degraded, with every later store access failing fast
// instead of crashing at startup.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	a := New(cfg, logger)

	logger.Info("starting alchemize store",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("path", cfg.Storage.Path),
	)

	if err := a.Init(ctx); err != nil {
		logger.Error("store init failed, continuing degraded",
			slog.String("error", err.Error()),
		)
	}

	return nil
}
