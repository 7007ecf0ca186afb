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

func testHealthResult() schema.GovernanceHealthScore {
	return schema.GovernanceHealthScore{
		Score:          85,
		Bucket:         schema.BucketThriving,
		DataWindowDays: 14,
		Metrics: []schema.SubMetric{
			{Key: schema.MetricParticipation, Label: "Participation", Score: 22, Reason: "activity spread across 6 agents"},
			{Key: schema.MetricPipelineFlow, Label: "Pipeline flow", Score: 20, Reason: "7 of 9 proposals progressed"},
			{Key: schema.MetricFollowThrough, Label: "Follow-through", Score: 25, Reason: "all approved proposals implemented"},
			{Key: schema.MetricConsensus, Label: "Consensus", Score: 18, Reason: "healthy vote margins and discussion depth"},
		},
	}
}

// TestPrintHealthScoreJSON tests the JSON output path to a file.
func TestPrintHealthScoreJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path, Precision: 1}

	require.NoError(t, PrintHealthScore(testHealthResult(), cfg, time.Millisecond))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded schema.GovernanceHealthScore
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 85, decoded.Score)
	assert.Len(t, decoded.Metrics, 4)
}

// TestPrintHealthScoreCSV tests the CSV output path to a file.
func TestPrintHealthScoreCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 1}

	require.NoError(t, PrintHealthScore(testHealthResult(), cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 4 metrics + composite
	assert.Equal(t, []string{"metric", "score", "max", "reason"}, records[0])
	assert.Equal(t, []string{"composite", "85", "100", "Thriving"}, records[5])
}

// TestPrintHealthScoreParquetRejected verifies parquet is export-only.
func TestPrintHealthScoreParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}
	err := PrintHealthScore(testHealthResult(), cfg, time.Millisecond)
	assert.ErrorIs(t, err, errParquetOutput)
}

// TestWriteHealthTable tests the human-readable table rendering.
func TestWriteHealthTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120, UseEmojis: false}

	require.NoError(t, writeHealthTable(testHealthResult(), cfg, 3*time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "Participation")
	assert.Contains(t, out, "Follow-through")
	assert.Contains(t, out, "Governance health: 85/100 (Thriving) over a 14-day window")
	assert.NotContains(t, out, "🏥")
}

// TestWriteHealthTableEmoji verifies the emoji header toggle.
func TestWriteHealthTableEmoji(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120, UseEmojis: true}

	require.NoError(t, writeHealthTable(testHealthResult(), cfg, time.Millisecond, &buf))
	assert.Contains(t, buf.String(), "🏥 Governance health")
}
