package seeder_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/appointment"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/finance"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/habit"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/mindset"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/note"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/nutrition"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/task"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/workout"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/seeder"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/service/calendar"
)

// fixedBase pins the sample window to March 7-20, 2024 UTC.
var fixedBase = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

func TestSeeder_Run_FillsEveryKind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr := testhelper.SetupTestStore(t)
	scope := domain.UserScope("user-seed")
	stores := newStores(mgr)

	res, err := seeder.New(testLogger(), stores, fixedBase).Run(ctx, scope)
	require.NoError(t, err)

	// Fixed sample sets.
	assert.Equal(t, 3, res.Created["habits"])
	assert.Equal(t, 6, res.Created["tasks"])
	assert.Equal(t, 3, res.Created["meal preps"])
	assert.Equal(t, 1, res.Created["nutrition profile"])
	assert.Equal(t, 1, res.Created["finance note"])
	assert.Equal(t, 2, res.Created["appointments"])
	assert.Equal(t, 2, res.Created["manifestations"])
	assert.Equal(t, 3, res.Created["affirmations"])

	// Generated sets are deterministic for a fixed base.
	assert.Equal(t, 30, res.Created["habit completions"])
	assert.Equal(t, 33, res.Created["food logs"])
	assert.Equal(t, 55, res.Created["water logs"])
	assert.Equal(t, 8, res.Created["finance records"])
	assert.Equal(t, 8, res.Created["workouts"])
	assert.Equal(t, 12, res.Created["notes"])

	// Spot-check through the repositories.
	habits, err := stores.Habits.GetAll(ctx, scope)
	require.NoError(t, err)
	require.Len(t, habits, 3)
	assert.Equal(t, "Meditate", habits[0].Name)

	profile, err := stores.NutritionProfile.Get(ctx, scope)
	require.NoError(t, err)
	require.NotNil(t, profile.CaloriesTarget)
	assert.InDelta(t, 2200, *profile.CaloriesTarget, 0.001)

	completions, err := stores.Completions.GetByHabit(ctx, scope, habits[0].ID)
	require.NoError(t, err)
	assert.Len(t, completions, 12)
}

func TestSeeder_Run_CalendarSeesEveryDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr := testhelper.SetupTestStore(t)
	scope := domain.UserScope("user-seed-cal")
	stores := newStores(mgr)

	_, err := seeder.New(testLogger(), stores, fixedBase).Run(ctx, scope)
	require.NoError(t, err)

	agg := calendar.NewAggregator(
		testLogger(),
		stores.Tasks,
		stores.Completions,
		stores.FoodLogs,
		stores.WaterLogs,
		stores.MealPreps,
		stores.FinanceRecords,
		stores.Workouts,
		stores.Appointments,
		stores.Notes,
		stores.Manifestations,
		time.UTC,
	)

	from := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC).UnixMilli()
	to := time.Date(2024, time.March, 20, 23, 59, 59, 0, time.UTC).UnixMilli()

	ix, err := agg.EventsInRange(ctx, scope, from, to)
	require.NoError(t, err)

	// Food is logged every day, so all fourteen days show up.
	days := ix.Days()
	require.Len(t, days, 14)
	assert.Equal(t, domain.DateKey("2024-03-07"), days[0])
	assert.Equal(t, domain.DateKey("2024-03-20"), days[13])

	for _, day := range days {
		counts := ix.Counts(day)
		require.NotEmpty(t, counts, "day %s has no events", day)
	}
}

func TestSeeder_Run_ScopesStaySeparate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr := testhelper.SetupTestStore(t)
	stores := newStores(mgr)

	_, err := seeder.New(testLogger(), stores, fixedBase).Run(ctx, domain.UserScope("user-seed-a"))
	require.NoError(t, err)

	habits, err := stores.Habits.GetAll(ctx, domain.UserScope("user-seed-b"))
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestSeeder_Run_NotReady(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr := testhelper.NewUninitializedManager(t)
	stores := newStores(mgr)

	_, err := seeder.New(testLogger(), stores, fixedBase).Run(ctx, domain.GuestScope())
	require.ErrorIs(t, err, domain.ErrNotReady)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newStores(mgr *sqlite.Manager) seeder.Stores {
	return seeder.Stores{
		Tx:               sqlite.NewTxManager(mgr),
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
}
