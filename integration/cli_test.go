//go:build basic

// Package integration contains end-to-end tests for the govscope CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqliteEnv points the snapshot store at a throwaway SQLite file.
func sqliteEnv(t *testing.T) []string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	return []string{
		"GOVSCOPE_SNAPSHOT_BACKEND=sqlite",
		"GOVSCOPE_SNAPSHOT_DB_CONNECT=" + dbPath,
	}
}

// TestGovscopeHealth runs the health command against the checked-in export.
func TestGovscopeHealth(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "health", activityFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Governance health")
	assert.Contains(t, out, "/100")
}

// TestGovscopeHealthJSON verifies the JSON output mode produces valid JSON.
func TestGovscopeHealthJSON(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "health", activityFixture(t), "--output", "json")
	require.NoError(t, err)

	var decoded struct {
		Score   int              `json:"score"`
		Bucket  string           `json:"bucket"`
		Metrics []map[string]any `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Metrics, 4)
	assert.Zero(t, decoded.Score%5, "composite score should be a multiple of 5")
}

// TestGovscopeBalance runs the balance command.
func TestGovscopeBalance(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "balance", activityFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:")
	assert.Contains(t, out, "Role diversity:")
}

// TestGovscopePipeline runs the pipeline command.
func TestGovscopePipeline(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "pipeline", activityFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Pipeline: 5 proposals")
}

// TestGovscopeAssess runs the assess command.
func TestGovscopeAssess(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "assess", activityFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Assessment:")
}

// TestGovscopeSnapshotAndTrends persists snapshots then reads the history back.
func TestGovscopeSnapshotAndTrends(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runGovscopeCommand(t, env, "snapshot", activityFixture(t))
	require.NoError(t, err)
	_, err = runGovscopeCommand(t, env, "snapshot", activityFixture(t))
	require.NoError(t, err)

	out, err := runGovscopeCommand(t, env, "trends")
	require.NoError(t, err)
	assert.Contains(t, out, "Trends over 2 snapshots")
}

// TestGovscopeStoreLifecycle exercises store status, export and clear.
func TestGovscopeStoreLifecycle(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runGovscopeCommand(t, env, "snapshot", activityFixture(t))
	require.NoError(t, err)

	out, err := runGovscopeCommand(t, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")

	exportPath := filepath.Join(t.TempDir(), "snapshots.parquet")
	_, err = runGovscopeCommand(t, env, "store", "export", "--output-file", exportPath)
	require.NoError(t, err)
	info, err := os.Stat(exportPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	out, err = runGovscopeCommand(t, env, "store", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshot store cleared successfully.")
}

// TestGovscopeMissingActivityPath verifies analysis commands fail without an export.
func TestGovscopeMissingActivityPath(t *testing.T) {
	_, err := runGovscopeCommand(t, sqliteEnv(t), "health")
	assert.Error(t, err)
}

// TestGovscopeVersion runs the version command.
func TestGovscopeVersion(t *testing.T) {
	out, err := runGovscopeCommand(t, sqliteEnv(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "govscope CLI")
}
