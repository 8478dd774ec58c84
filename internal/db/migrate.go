package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open. Statements must be idempotent
// (CREATE ... IF NOT EXISTS) since there is no version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_records (
		id TEXT PRIMARY KEY,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
		state_id TEXT,
		owner_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		record_id TEXT NOT NULL REFERENCES time_records(id) ON DELETE CASCADE,
		body TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// FetchRange scans by instant; reconciliation happens per day.
	`CREATE INDEX IF NOT EXISTS idx_time_records_start ON time_records(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_time_records_owner ON time_records(owner_id, start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_record ON notes(record_id)`,
}

// Migrate applies the schema to the given database.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
