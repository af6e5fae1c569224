package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/explore/internal/db"
	"github.com/alexanderramin/explore/internal/domain"
)

// SQLiteLocationRepo implements LocationRepo using a SQLite database.
type SQLiteLocationRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteLocationRepo creates a new SQLiteLocationRepo. Seed runs its
// delete-and-insert inside uow so a failed seed leaves the old catalog.
func NewSQLiteLocationRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteLocationRepo {
	return &SQLiteLocationRepo{db: conn, uow: uow}
}

func (r *SQLiteLocationRepo) Seed(ctx context.Context, locs []domain.Location) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM locations`); err != nil {
			return fmt.Errorf("clearing locations: %w", err)
		}
		query := `INSERT INTO locations (id, position, name, category, description)
			VALUES (?, ?, ?, ?, ?)`
		for i, l := range locs {
			if _, err := tx.ExecContext(ctx, query, l.ID, i, l.Name, l.Category, l.Description); err != nil {
				return fmt.Errorf("inserting location %d: %w", l.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT id, name, category, description FROM locations ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locs []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Category, &l.Description); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}
	return locs, nil
}

func (r *SQLiteLocationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("counting locations: %w", err)
	}
	return n, nil
}
