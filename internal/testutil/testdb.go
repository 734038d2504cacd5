package testutil

import (
	"database/sql"
	"testing"

	"github.com/kintai-dev/kintai/internal/db"
)

// NewTestDB opens a fully migrated in-memory database, closed when the test
// finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
