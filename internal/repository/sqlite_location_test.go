package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/explore/internal/catalog"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepo_SeedAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalog.DefaultLocations()))

	locs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultLocations(), locs)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestLocationRepo_ListKeepsSeedOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	// Ids deliberately out of order.
	locs := []domain.Location{
		{ID: 9, Name: "Z", Category: "B"},
		{ID: 1, Name: "A", Category: "A"},
		{ID: 5, Name: "M", Category: "B"},
	}
	require.NoError(t, repo.Seed(ctx, locs))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, locs, got)
}

func TestLocationRepo_SeedReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalog.DefaultLocations()))
	require.NoError(t, repo.Seed(ctx, testutil.NewTestLocations()))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.NewTestLocations(), got)
}

func TestLocationRepo_SeedRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	good := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))
	require.NoError(t, good.Seed(ctx, catalog.DefaultLocations()))

	boom := errors.New("disk full")
	// Exec 1 is the DELETE, exec 3 the second INSERT.
	failing := NewSQLiteLocationRepo(database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom})
	err := failing.Seed(ctx, testutil.NewTestLocations())
	require.ErrorIs(t, err, boom)

	got, err := good.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultLocations(), got)
}

func TestLocationRepo_SeedRejectsDuplicateIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))

	err := repo.Seed(context.Background(), []domain.Location{
		{ID: 1, Name: "A", Category: "X"},
		{ID: 1, Name: "B", Category: "X"},
	})
	assert.Error(t, err)
}

func TestLocationRepo_EmptyList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(database, testutil.NewTestUoW(database))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
