package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

func testAssessmentResult() schema.GovernanceAssessment {
	delta := -12
	return schema.GovernanceAssessment{
		Alerts: []schema.Alert{
			{Type: schema.AlertHealthDeclining, Severity: schema.SeverityWarning, Message: "health declined for 3 consecutive snapshots"},
		},
		Patterns: []schema.Pattern{
			{Type: schema.PatternHealthyGrowth, Tone: schema.TonePositive, Message: "participation and agent count both rising"},
		},
		Recommendations: []schema.Recommendation{
			{Priority: schema.PriorityHigh, Source: string(schema.AlertHealthDeclining), Action: "review recent governance changes"},
		},
		Trend: schema.TrendSummary{HealthDelta7d: &delta, ConsecutiveDeclines: 3},
	}
}

// TestPrintAssessmentCSV tests one row per alert, pattern and recommendation.
func TestPrintAssessmentCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assess.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 1}

	require.NoError(t, PrintAssessment(testAssessmentResult(), cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"alert", "health-declining", "warning", "health declined for 3 consecutive snapshots"}, records[1])
	assert.Equal(t, "pattern", records[2][0])
	assert.Equal(t, "recommendation", records[3][0])
}

// TestPrintAssessmentParquetRejected verifies parquet is export-only.
func TestPrintAssessmentParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}
	err := PrintAssessment(testAssessmentResult(), cfg, time.Millisecond)
	assert.ErrorIs(t, err, errParquetOutput)
}

// TestWriteAssessmentTable tests the human-readable table rendering.
func TestWriteAssessmentTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}

	require.NoError(t, writeAssessmentTable(testAssessmentResult(), cfg, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "health-declining")
	assert.Contains(t, out, "healthy-growth")
	assert.Contains(t, out, "review recent governance changes")
	assert.Contains(t, out, "Assessment: 1 alerts, 1 patterns, 1 recommendations")
	assert.Contains(t, out, "7d health delta: -12, 30d health delta: n/a, consecutive declines: 3")
}

// TestWriteAssessmentTableNoAlerts verifies the quiet path.
func TestWriteAssessmentTableNoAlerts(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}

	result := schema.GovernanceAssessment{}
	require.NoError(t, writeAssessmentTable(result, cfg, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "No alerts.")
	assert.Contains(t, out, "Assessment: 0 alerts, 0 patterns, 0 recommendations")
}
