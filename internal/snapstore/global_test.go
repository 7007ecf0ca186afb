package snapstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramind/govscope/schema"
)

// TestClearStoreSQLite verifies the database file is removed.
func TestClearStoreSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("stale"), 0o644))

	require.NoError(t, ClearStore(schema.SQLiteBackend, dbPath, ""))

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
}

// TestClearStoreSQLiteMissingFile verifies a missing file is not an error.
func TestClearStoreSQLiteMissingFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "never-created.db")
	assert.NoError(t, ClearStore(schema.SQLiteBackend, dbPath, ""))
}

// TestClearStoreSQLiteEmptyPath verifies the path is required.
func TestClearStoreSQLiteEmptyPath(t *testing.T) {
	err := ClearStore(schema.SQLiteBackend, "", "")
	assert.ErrorContains(t, err, "dbFilePath cannot be empty")
}

// TestClearStoreNoneBackend verifies the no-op path.
func TestClearStoreNoneBackend(t *testing.T) {
	assert.NoError(t, ClearStore(schema.NoneBackend, "", ""))
}

// TestClearStoreUnsupportedBackend verifies unknown backends error.
func TestClearStoreUnsupportedBackend(t *testing.T) {
	err := ClearStore(schema.DatabaseBackend("oracle"), "", "")
	assert.ErrorContains(t, err, "unsupported snapshot backend")
}
