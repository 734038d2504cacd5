package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"employees", "attendance_logs", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist after migration", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestMigrate_SeedsDefaultSettingsOnce(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 1, count)
}
