package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_IsRepeatable(t *testing.T) {
	db := setupTestDB(t)

	version, err := RunMigrations(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestRunMigrations_CreatesInboxTables(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"contact_messages", "newsletter_subscribers"} {
		var name string
		err := db.Reader.QueryRowContext(context.Background(),
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestDB_Path(t *testing.T) {
	db := setupTestDB(t)

	assert.Contains(t, db.Path(), "TestDB_Path")
}
