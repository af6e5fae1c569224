package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/explore/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertLocation(ctx context.Context, tx db.DBTX, id int, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO locations (id, position, name, category) VALUES (?, ?, ?, 'Parks')`,
		id, id, name)
	return err
}

func locationName(t *testing.T, database *sql.DB, id int) (string, bool) {
	t.Helper()
	var name string
	err := database.QueryRow(`SELECT name FROM locations WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return name, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertLocation(ctx, tx, 1, "Boston Common")
	})
	require.NoError(t, err)

	name, found := locationName(t, database, 1)
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Boston Common", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertLocation(ctx, tx, 2, "Public Garden"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := locationName(t, database, 2)
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertLocation(ctx, tx, 3, "Arnold Arboretum")
			panic("boom")
		})
	})

	_, found := locationName(t, database, 3)
	assert.False(t, found, "row should not exist after panic rollback")
}
