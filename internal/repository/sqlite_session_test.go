package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_SaveAndGetByID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession(
		testutil.WithScreen(domain.DetailScreen("Museums", 2),
			domain.HomeScreen(), domain.CategoriesScreen(), domain.ListScreen("Museums")),
	)
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Screen, got.Screen)
	assert.Equal(t, sess.Stack, got.Stack)
	assert.False(t, got.HomeCycleCompleted)
	assert.WithinDuration(t, sess.UpdatedAt, got.UpdatedAt, time.Microsecond)
}

func TestSessionRepo_SaveEmptyStack(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession(testutil.WithHomeCycleCompleted())
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Stack)
	assert.True(t, got.HomeCycleCompleted)
}

func TestSessionRepo_SaveUpserts(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession()
	require.NoError(t, repo.Save(ctx, sess))
	created := sess.CreatedAt

	sess.Screen = domain.CategoriesScreen()
	sess.Stack = []domain.Screen{domain.HomeScreen()}
	sess.CreatedAt = created.Add(time.Hour)
	sess.UpdatedAt = created.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoriesScreen(), got.Screen)
	assert.WithinDuration(t, created, got.CreatedAt, time.Microsecond)
	assert.WithinDuration(t, created.Add(time.Minute), got.UpdatedAt, time.Microsecond)
}

func TestSessionRepo_Latest(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := testutil.NewTestSession(testutil.WithUpdatedAt(base))
	newer := testutil.NewTestSession(
		testutil.WithUpdatedAt(base.Add(500*time.Millisecond)),
		testutil.WithScreen(domain.ListScreen("Parks"), domain.HomeScreen(), domain.CategoriesScreen()),
	)
	require.NoError(t, repo.Save(ctx, newer))
	require.NoError(t, repo.Save(ctx, older))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, domain.ListScreen("Parks"), got.Screen)
}

func TestSessionRepo_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestSession()))
	require.NoError(t, repo.Save(ctx, testutil.NewTestSession()))
	require.NoError(t, repo.DeleteAll(ctx))

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_CorruptRouteIsAnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO nav_sessions (id, screen, stack, home_cycle_completed, created_at, updated_at)
		VALUES ('bad', 'attic', '', 0, '', '')`)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRoute)
}

func TestStackEncoding_RoundTrip(t *testing.T) {
	stack := []domain.Screen{domain.HomeScreen(), domain.CategoriesScreen(), domain.ListScreen("Food & Drink")}
	got, err := decodeStack(encodeStack(stack))
	require.NoError(t, err)
	assert.Equal(t, stack, got)
}
