package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/task"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func newTask(id string, dueAt *int64) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "title " + id,
		Details:   strPtr("details " + id),
		Priority:  domain.TaskPriorityMedium,
		Done:      false,
		DueAt:     dueAt,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
	}
}

func TestRepo_Create_And_GetByID_RoundTrip(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newTask("t1", i64Ptr(1700000123456))
	require.NoError(t, repo.Create(ctx, scope, want))

	got, err := repo.GetByID(ctx, scope, "t1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepo_Create_DuplicateID(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newTask("dup", nil)))

	err := repo.Create(ctx, scope, newTask("dup", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_EmptyID(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)

	err := repo.Create(context.Background(), domain.GuestScope(), newTask("", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)

	_, err := repo.GetByID(context.Background(), domain.UserScope("user-a"), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_GetAll_ScopeIsolation(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scopeA := domain.UserScope("user-a")
	scopeB := domain.UserScope("user-b")

	require.NoError(t, repo.Create(ctx, scopeA, newTask("a1", nil)))
	require.NoError(t, repo.Create(ctx, scopeA, newTask("a2", nil)))
	require.NoError(t, repo.Create(ctx, scopeB, newTask("b1", nil)))

	gotA, err := repo.GetAll(ctx, scopeA)
	require.NoError(t, err)
	require.Len(t, gotA, 2)

	gotB, err := repo.GetAll(ctx, scopeB)
	require.NoError(t, err)
	require.Len(t, gotB, 1)
	assert.Equal(t, "b1", gotB[0].ID)

	// A's row must never be readable through B's scope.
	_, err = repo.GetByID(ctx, scopeB, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_GuestPartition_Persists(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.GuestScope(), newTask("guest-1", nil)))

	// Invisible once a user signs in.
	gotUser, err := repo.GetAll(ctx, domain.UserScope("user-a"))
	require.NoError(t, err)
	assert.Empty(t, gotUser)

	// Visible again under the guest scope; never re-owned.
	gotGuest, err := repo.GetAll(ctx, domain.GuestScope())
	require.NoError(t, err)
	require.Len(t, gotGuest, 1)
	assert.Equal(t, "guest-1", gotGuest[0].ID)
}

func TestRepo_GetAll_EmptyScope(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)

	got, err := repo.GetAll(context.Background(), domain.UserScope("nobody"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepo_GetByRange_InclusiveBounds(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newTask("before", i64Ptr(999))))
	require.NoError(t, repo.Create(ctx, scope, newTask("start", i64Ptr(1000))))
	require.NoError(t, repo.Create(ctx, scope, newTask("mid", i64Ptr(1500))))
	require.NoError(t, repo.Create(ctx, scope, newTask("end", i64Ptr(2000))))
	require.NoError(t, repo.Create(ctx, scope, newTask("after", i64Ptr(2001))))
	// No due date -- excluded from every range.
	require.NoError(t, repo.Create(ctx, scope, newTask("no-due", nil)))

	got, err := repo.GetByRange(ctx, scope, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "start", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "end", got[2].ID)
}

func TestRepo_Update_FullReplace(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newTask("t1", i64Ptr(1000))))

	updated := domain.Task{
		ID:        "t1",
		Title:     "renamed",
		Details:   nil, // full replace clears omitted optionals
		Priority:  domain.TaskPriorityHigh,
		Done:      true,
		DueAt:     nil,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000999999,
	}
	require.NoError(t, repo.Update(ctx, scope, updated))

	got, err := repo.GetByID(ctx, scope, "t1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)

	err := repo.Update(context.Background(), domain.UserScope("user-a"), newTask("missing", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Update_OtherScopeNotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.UserScope("user-a"), newTask("t1", nil)))

	err := repo.Update(ctx, domain.UserScope("user-b"), newTask("t1", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := task.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newTask("t1", nil)))
	require.NoError(t, repo.Delete(ctx, scope, "t1"))

	_, err := repo.GetByID(ctx, scope, "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, repo.Delete(ctx, scope, "t1"))
}

func TestRepo_NotReady_FailsFast(t *testing.T) {
	t.Parallel()
	mgr := testhelper.NewUninitializedManager(t)
	repo := task.New(mgr)

	_, err := repo.GetAll(context.Background(), domain.GuestScope())
	assert.ErrorIs(t, err, domain.ErrNotReady)
}
