package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id          INTEGER PRIMARY KEY,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL CHECK(name <> ''),
		category    TEXT NOT NULL CHECK(category <> ''),
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_locations_category ON locations(category, position)`,

	`CREATE TABLE IF NOT EXISTS nav_sessions (
		id                   TEXT PRIMARY KEY,
		screen               TEXT NOT NULL,
		stack                TEXT NOT NULL DEFAULT '',
		home_cycle_completed INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_nav_sessions_updated ON nav_sessions(updated_at)`,
}
