package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/explore/internal/db"
	"github.com/alexanderramin/explore/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

// Save inserts s or overwrites the row with the same id. CreatedAt is kept
// from the first save.
func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.SavedSession) error {
	query := `INSERT INTO nav_sessions (id, screen, stack, home_cycle_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			screen = excluded.screen,
			stack = excluded.stack,
			home_cycle_completed = excluded.home_cycle_completed,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Screen.Route(),
		encodeStack(s.Stack),
		boolToInt(s.HomeCycleCompleted),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving nav session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.SavedSession, error) {
	query := `SELECT id, screen, stack, home_cycle_completed, created_at, updated_at
		FROM nav_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) Latest(ctx context.Context) (*domain.SavedSession, error) {
	query := `SELECT id, screen, stack, home_cycle_completed, created_at, updated_at
		FROM nav_sessions ORDER BY updated_at DESC LIMIT 1`
	return r.scanSession(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM nav_sessions`); err != nil {
		return fmt.Errorf("deleting nav sessions: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.SavedSession, error) {
	var (
		s                    domain.SavedSession
		screen, stack        string
		homeCycle            int
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &screen, &stack, &homeCycle, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("nav session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning nav session: %w", err)
	}

	var err error
	if s.Screen, err = domain.ParseRoute(screen); err != nil {
		return nil, fmt.Errorf("nav session %s: %w", s.ID, err)
	}
	if s.Stack, err = decodeStack(stack); err != nil {
		return nil, fmt.Errorf("nav session %s: %w", s.ID, err)
	}
	s.HomeCycleCompleted = intToBool(homeCycle)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
