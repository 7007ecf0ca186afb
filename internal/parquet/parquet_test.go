package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramind/govscope/schema"
)

// TestConvertSnapshots tests field mapping from stored snapshots.
func TestConvertSnapshots(t *testing.T) {
	snaps := []schema.GovernanceSnapshot{
		{
			Timestamp:       "2026-08-10T12:00:00Z",
			HealthScore:     85,
			Participation:   22,
			PipelineFlow:    20,
			FollowThrough:   25,
			Consensus:       18,
			ActiveProposals: 3,
			TotalProposals:  11,
			ActiveAgents:    7,
			Velocity:        0.733,
		},
	}

	rows := ConvertSnapshots(snaps)

	require.Len(t, rows, 1)
	assert.Equal(t, SnapshotRow{
		CapturedAt:      "2026-08-10T12:00:00Z",
		HealthScore:     85,
		Participation:   22,
		PipelineFlow:    20,
		FollowThrough:   25,
		Consensus:       18,
		ActiveProposals: 3,
		TotalProposals:  11,
		ActiveAgents:    7,
		Velocity:        0.733,
	}, rows[0])
}

// TestConvertSnapshotsEmpty verifies an empty input yields an empty, non-nil slice.
func TestConvertSnapshotsEmpty(t *testing.T) {
	rows := ConvertSnapshots(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// TestSnapshotRowSchema verifies the inferred Parquet schema has the expected columns.
func TestSnapshotRowSchema(t *testing.T) {
	s := parquet.SchemaOf(SnapshotRow{})
	expectedColumns := []string{
		"captured_at", "health_score", "participation", "pipeline_flow", "follow_through",
		"consensus", "active_proposals", "total_proposals", "active_agents", "velocity",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

// TestWriteSnapshotsParquet writes rows to a file and reads them back.
func TestWriteSnapshotsParquet(t *testing.T) {
	rows := []SnapshotRow{
		{CapturedAt: "2026-08-10T12:00:00Z", HealthScore: 70, Participation: 18, Velocity: 0.4},
		{CapturedAt: "2026-08-17T12:00:00Z", HealthScore: 60, Participation: 20, Velocity: 0.3},
	}
	path := filepath.Join(t.TempDir(), "snapshots.parquet")

	require.NoError(t, WriteSnapshotsParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SnapshotRow](file)
	defer func() { _ = reader.Close() }()

	readData := make([]SnapshotRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(rows), n)
	assert.Equal(t, rows[0], readData[0])
	assert.Equal(t, rows[1], readData[1])
}

// TestWriteSnapshotsParquetBadPath verifies unwritable paths error.
func TestWriteSnapshotsParquetBadPath(t *testing.T) {
	err := WriteSnapshotsParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}
