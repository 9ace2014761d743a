package nutrition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/nutrition"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func newWaterLog(id string, loggedAt int64) domain.WaterLog {
	return domain.WaterLog{
		ID:        id,
		VolumeML:  250,
		LoggedAt:  loggedAt,
		CreatedAt: loggedAt,
		UpdatedAt: loggedAt,
	}
}

func TestWaterLogRepo_Create_And_GetByID_RoundTrip(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewWaterLogRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newWaterLog("w1", 1700000000000)
	require.NoError(t, repo.Create(ctx, scope, want))

	got, err := repo.GetByID(ctx, scope, "w1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWaterLogRepo_Create_RejectsNonPositiveVolume(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewWaterLogRepo(mgr)
	ctx := context.Background()
	scope := domain.GuestScope()

	log := newWaterLog("w1", 1000)
	log.VolumeML = 0

	err := repo.Create(ctx, scope, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWaterLogRepo_GetByRange_InclusiveBounds(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewWaterLogRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newWaterLog("before", 999)))
	require.NoError(t, repo.Create(ctx, scope, newWaterLog("start", 1000)))
	require.NoError(t, repo.Create(ctx, scope, newWaterLog("end", 2000)))
	require.NoError(t, repo.Create(ctx, scope, newWaterLog("after", 2001)))

	got, err := repo.GetByRange(ctx, scope, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].ID)
	assert.Equal(t, "end", got[1].ID)
}

func TestWaterLogRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewWaterLogRepo(mgr)

	err := repo.Update(context.Background(), domain.UserScope("user-a"), newWaterLog("missing", 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWaterLogRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewWaterLogRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newWaterLog("w1", 1000)))
	require.NoError(t, repo.Delete(ctx, scope, "w1"))
	require.NoError(t, repo.Delete(ctx, scope, "w1"))

	_, err := repo.GetByID(ctx, scope, "w1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
