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

func newProfile(id string) domain.NutritionProfile {
	return domain.NutritionProfile{
		ID:             id,
		CaloriesTarget: f64Ptr(2200),
		ProteinTargetG: f64Ptr(140),
		CarbsTargetG:   f64Ptr(220),
		FatTargetG:     f64Ptr(70),
		WaterTargetML:  i64Ptr(2500),
		DietTag:        strPtr("high-protein"),
		CreatedAt:      1700000000000,
		UpdatedAt:      1700000000000,
	}
}

func TestProfileRepo_Save_And_Get_RoundTrip(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewProfileRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newProfile("np1")
	require.NoError(t, repo.Save(ctx, scope, want))

	got, err := repo.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileRepo_Save_ReplacesSingleton(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewProfileRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Save(ctx, scope, newProfile("np1")))

	// A second save for the same scope replaces the row, id included.
	replacement := domain.NutritionProfile{
		ID:            "np2",
		WaterTargetML: i64Ptr(3000),
		CreatedAt:     1700000000000,
		UpdatedAt:     1700000555555,
	}
	require.NoError(t, repo.Save(ctx, scope, replacement))

	got, err := repo.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
	assert.Nil(t, got.CaloriesTarget)
}

func TestProfileRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewProfileRepo(mgr)

	_, err := repo.Get(context.Background(), domain.UserScope("user-a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileRepo_OneRowPerScope(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewProfileRepo(mgr)
	ctx := context.Background()

	guest := newProfile("np-guest")
	guest.DietTag = strPtr("balanced")
	require.NoError(t, repo.Save(ctx, domain.GuestScope(), guest))
	require.NoError(t, repo.Save(ctx, domain.UserScope("user-a"), newProfile("np-a")))

	gotGuest, err := repo.Get(ctx, domain.GuestScope())
	require.NoError(t, err)
	assert.Equal(t, "np-guest", gotGuest.ID)

	gotUser, err := repo.Get(ctx, domain.UserScope("user-a"))
	require.NoError(t, err)
	assert.Equal(t, "np-a", gotUser.ID)
}

func TestProfileRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := nutrition.NewProfileRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Save(ctx, scope, newProfile("np1")))
	require.NoError(t, repo.Delete(ctx, scope))
	require.NoError(t, repo.Delete(ctx, scope))

	_, err := repo.Get(ctx, scope)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
