package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

func testTrendData() (schema.TrendSummary, []schema.GovernanceSnapshot) {
	healthDelta := -10
	partDelta := 2
	trend := schema.TrendSummary{
		HealthDelta7d:        &healthDelta,
		ParticipationDelta7d: &partDelta,
		ConsecutiveDeclines:  2,
	}
	snaps := []schema.GovernanceSnapshot{
		{Timestamp: "2026-08-10T12:00:00Z", HealthScore: 70, Participation: 18, PipelineFlow: 17,
			FollowThrough: 20, Consensus: 15, ActiveProposals: 3, TotalProposals: 8, ActiveAgents: 5, Velocity: 0.4},
		{Timestamp: "2026-08-17T12:00:00Z", HealthScore: 60, Participation: 20, PipelineFlow: 14,
			FollowThrough: 14, Consensus: 12, ActiveProposals: 4, TotalProposals: 9, ActiveAgents: 5, Velocity: 0.3},
	}
	return trend, snaps
}

// TestPrintTrendsJSON tests the combined JSON output shape.
func TestPrintTrendsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trends.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path, Precision: 1}
	trend, snaps := testTrendData()

	require.NoError(t, PrintTrends(trend, snaps, cfg, time.Millisecond))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Trend     schema.TrendSummary         `json:"trend"`
		Snapshots []schema.GovernanceSnapshot `json:"snapshots"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Trend.HealthDelta7d)
	assert.Equal(t, -10, *decoded.Trend.HealthDelta7d)
	assert.Len(t, decoded.Snapshots, 2)
}

// TestPrintTrendsCSV tests one row per snapshot.
func TestPrintTrendsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trends.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 1}
	trend, snaps := testTrendData()

	require.NoError(t, PrintTrends(trend, snaps, cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "captured_at", records[0][0])
	assert.Equal(t, "2026-08-10T12:00:00Z", records[1][0])
	assert.Equal(t, "0.3", records[2][9])
}

// TestPrintTrendsParquetRejected verifies parquet is export-only.
func TestPrintTrendsParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}
	trend, snaps := testTrendData()
	err := PrintTrends(trend, snaps, cfg, time.Millisecond)
	assert.ErrorIs(t, err, errParquetOutput)
}

// TestWriteTrendsTable tests the human-readable table rendering.
func TestWriteTrendsTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}
	fmtFloat, _ := createFormatters(cfg.Precision)
	trend, snaps := testTrendData()

	require.NoError(t, writeTrendsTable(trend, snaps, cfg, fmtFloat, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "2026-08-10 12:00")
	assert.Contains(t, out, "Trends over 2 snapshots")
	assert.Contains(t, out, "7d deltas: health -10, participation +2, pipeline n/a, follow-through n/a, consensus n/a")
	assert.Contains(t, out, "30d health delta: n/a, consecutive declines: 2")
}
