package habit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/habit"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func newCompletion(id, habitID string, completedAt int64) domain.HabitCompletion {
	return domain.HabitCompletion{
		ID:          id,
		HabitID:     habitID,
		CompletedAt: completedAt,
		Note:        nil,
		CreatedAt:   completedAt,
		UpdatedAt:   completedAt,
	}
}

func TestCompletionRepo_GetByHabit_FiltersAndOrders(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newCompletion("c1", "run", 1000)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("c2", "run", 3000)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("c3", "read", 2000)))

	got, err := repo.GetByHabit(ctx, scope, "run")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "c2", got[0].ID)
	assert.Equal(t, "c1", got[1].ID)
}

func TestCompletionRepo_GetByHabit_EmptyHabitID(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)

	_, err := repo.GetByHabit(context.Background(), domain.GuestScope(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompletionRepo_GetByWeek_SevenDayWindow(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	const weekStart int64 = 1_700_000_000_000
	const weekEnd = weekStart + 7*24*60*60*1000 - 1

	require.NoError(t, repo.Create(ctx, scope, newCompletion("before", "run", weekStart-1)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("first", "run", weekStart)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("last", "run", weekEnd)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("next-week", "run", weekEnd+1)))

	got, err := repo.GetByWeek(ctx, scope, weekStart)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "last", got[1].ID)
}

func TestCompletionRepo_GetByRange_OldestFirst(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)
	ctx := context.Background()
	scope := domain.GuestScope()

	require.NoError(t, repo.Create(ctx, scope, newCompletion("late", "run", 3000)))
	require.NoError(t, repo.Create(ctx, scope, newCompletion("early", "run", 1000)))

	got, err := repo.GetByRange(ctx, scope, 0, 5000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestCompletionRepo_Create_EmptyHabitID(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)

	err := repo.Create(context.Background(), domain.GuestScope(), newCompletion("c1", "", 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompletionRepo_Update_RewritesNote(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newCompletion("c1", "run", 1000)))

	updated := newCompletion("c1", "run", 1000)
	updated.Note = strPtr("felt great")
	updated.UpdatedAt = 2000
	require.NoError(t, repo.Update(ctx, scope, updated))

	got, err := repo.GetByID(ctx, scope, "c1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestCompletionRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := habit.NewCompletionRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newCompletion("c1", "run", 1000)))
	require.NoError(t, repo.Delete(ctx, scope, "c1"))
	require.NoError(t, repo.Delete(ctx, scope, "c1"))

	_, err := repo.GetByID(ctx, scope, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
