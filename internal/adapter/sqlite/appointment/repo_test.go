package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/appointment"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/testhelper"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func newAppointment(id string, startsAt int64) domain.Appointment {
	return domain.Appointment{
		ID:        id,
		Title:     "appointment " + id,
		Location:  strPtr("clinic"),
		StartsAt:  startsAt,
		EndsAt:    i64Ptr(startsAt + 30*60*1000),
		Reminder:  true,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
	}
}

func TestRepo_Create_And_GetByID_RoundTrip(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newAppointment("a1", 1700000123456)
	require.NoError(t, repo.Create(ctx, scope, want))

	got, err := repo.GetByID(ctx, scope, "a1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepo_Create_OpenEnded(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	want := newAppointment("a1", 1700000123456)
	want.EndsAt = nil
	require.NoError(t, repo.Create(ctx, scope, want))

	got, err := repo.GetByID(ctx, scope, "a1")
	require.NoError(t, err)
	assert.Nil(t, got.EndsAt)
}

func TestRepo_GetByWeek_UsesStartInstant(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	const weekStart int64 = 1_700_000_000_000
	const weekEnd = weekStart + 7*24*60*60*1000 - 1

	// Starts before the window but ends inside it: excluded on purpose.
	spanning := newAppointment("spanning", weekStart-60*60*1000)
	spanning.EndsAt = i64Ptr(weekStart + 60*60*1000)
	require.NoError(t, repo.Create(ctx, scope, spanning))

	require.NoError(t, repo.Create(ctx, scope, newAppointment("monday", weekStart)))
	require.NoError(t, repo.Create(ctx, scope, newAppointment("sunday", weekEnd)))
	require.NoError(t, repo.Create(ctx, scope, newAppointment("next", weekEnd+1)))

	got, err := repo.GetByWeek(ctx, scope, weekStart)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "monday", got[0].ID)
	assert.Equal(t, "sunday", got[1].ID)
}

func TestRepo_GetAll_ScheduleOrder(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.GuestScope()

	require.NoError(t, repo.Create(ctx, scope, newAppointment("later", 3000)))
	require.NoError(t, repo.Create(ctx, scope, newAppointment("sooner", 1000)))

	got, err := repo.GetAll(ctx, scope)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sooner", got[0].ID)
	assert.Equal(t, "later", got[1].ID)
}

func TestRepo_Update_FullReplace(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newAppointment("a1", 1000)))

	updated := domain.Appointment{
		ID:        "a1",
		Title:     "rescheduled",
		Location:  nil,
		StartsAt:  5000,
		EndsAt:    nil,
		Reminder:  false,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000999999,
	}
	require.NoError(t, repo.Update(ctx, scope, updated))

	got, err := repo.GetByID(ctx, scope, "a1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepo_Update_OtherScopeNotFound(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.UserScope("user-a"), newAppointment("a1", 1000)))

	err := repo.Update(ctx, domain.UserScope("user-b"), newAppointment("a1", 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	mgr := testhelper.SetupTestStore(t)
	repo := appointment.New(mgr)
	ctx := context.Background()
	scope := domain.UserScope("user-a")

	require.NoError(t, repo.Create(ctx, scope, newAppointment("a1", 1000)))
	require.NoError(t, repo.Delete(ctx, scope, "a1"))
	require.NoError(t, repo.Delete(ctx, scope, "a1"))
}
