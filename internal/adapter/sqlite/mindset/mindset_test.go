package mindset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/mindset"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func newManifestation(id string, createdAt int64) domain.Manifestation {
	return domain.Manifestation{
		ID:        id,
		Text:      "I will " + id,
		Achieved:  false,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func newAffirmation(id string, createdAt int64) domain.Affirmation {
	return domain.Affirmation{
		ID:        id,
		Text:      "I am " + id,
		Active:    true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// ---------------------------------------------------------------------------
// Manifestations
// ---------------------------------------------------------------------------

func TestManifestationRepo_Create_And_GetByID_RoundTrip(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewManifestationRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newManifestation("m1", 1700000000000)
	require.NoError(t, repo.Create(ctx, scope, want))

	got, err := repo.GetByID(ctx, scope, "m1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManifestationRepo_GetByRange_UsesCreatedAt(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewManifestationRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newManifestation("old", 500)))
	require.NoError(t, repo.Create(ctx, scope, newManifestation("in-a", 1000)))
	require.NoError(t, repo.Create(ctx, scope, newManifestation("in-b", 2000)))
	require.NoError(t, repo.Create(ctx, scope, newManifestation("new", 2500)))

	got, err := repo.GetByRange(ctx, scope, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "in-a", got[0].ID)
	assert.Equal(t, "in-b", got[1].ID)
}

func TestManifestationRepo_Update_MarksAchieved(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewManifestationRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newManifestation("m1", 1000)))

	updated := newManifestation("m1", 1000)
	updated.Achieved = true
	updated.UpdatedAt = 2000
	require.NoError(t, repo.Update(ctx, scope, updated))

	got, err := repo.GetByID(ctx, scope, "m1")
	require.NoError(t, err)
	assert.True(t, got.Achieved)
	assert.Equal(t, int64(2000), got.UpdatedAt)
}

func TestManifestationRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewManifestationRepo(mgr)
	ctx := context.Background()
	scope := domain.GuestScope()

	require.NoError(t, repo.Create(ctx, scope, newManifestation("m1", 1000)))
	require.NoError(t, repo.Delete(ctx, scope, "m1"))
	require.NoError(t, repo.Delete(ctx, scope, "m1"))
}

// ---------------------------------------------------------------------------
// Affirmations
// ---------------------------------------------------------------------------

func TestAffirmationRepo_GetAll_RotationOrder(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewAffirmationRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newAffirmation("second", 2000)))
	require.NoError(t, repo.Create(ctx, scope, newAffirmation("first", 1000)))

	got, err := repo.GetAll(ctx, scope)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestAffirmationRepo_Update_Deactivates(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewAffirmationRepo(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newAffirmation("a1", 1000)))

	updated := newAffirmation("a1", 1000)
	updated.Active = false
	updated.UpdatedAt = 2000
	require.NoError(t, repo.Update(ctx, scope, updated))

	got, err := repo.GetByID(ctx, scope, "a1")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestAffirmationRepo_Create_DuplicateID(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewAffirmationRepo(mgr)
	ctx := context.Background()
	scope := domain.GuestScope()

	require.NoError(t, repo.Create(ctx, scope, newAffirmation("dup", 1000)))

	err := repo.Create(ctx, scope, newAffirmation("dup", 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestAffirmationRepo_ScopeIsolation(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := mindset.NewAffirmationRepo(mgr)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.UserScope("user-a"), newAffirmation("a1", 1000)))

	got, err := repo.GetAll(ctx, domain.UserScope("user-b"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
