package testutil

import (
	"database/sql"
	"testing"

	"github.com/gridlog/gridlog/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite handle scoped to the test.
// OpenDB pins the pool to one connection, so the ":memory:" database is
// shared by every statement the test issues.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps a test database in the transactional unit of work used
// by the batch write paths.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
