package core

import (
	"testing"

	"github.com/agoramind/govscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSnapshot tests condensing an export into a snapshot row.
func TestBuildSnapshot(t *testing.T) {
	data := &schema.ActivityData{
		GeneratedAt: "2026-08-20T12:00:00Z",
		AgentStats: []schema.AgentStat{
			{Login: "planner-a", Reviews: 2, Comments: 3},
			{Login: "builder-b", Commits: 5},
			{Login: "idle-c"},
		},
		Proposals: []schema.Proposal{
			{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z", Phase: schema.PhaseImplemented, Comments: 3},
			{Number: 2, Author: "planner-a", CreatedAt: "2026-08-11T00:00:00Z", Phase: schema.PhaseVoting, Comments: 2},
		},
	}

	snap := BuildSnapshot(data, schema.DefaultThresholds())

	assert.Equal(t, "2026-08-20T12:00:00Z", snap.Timestamp)
	assert.Equal(t, 2, snap.TotalProposals)
	assert.Equal(t, 1, snap.ActiveProposals)
	assert.Equal(t, 2, snap.ActiveAgents)
	assert.InDelta(t, 0.2, snap.Velocity, 0.001) // 2 proposals over a 10-day window
	// Sub-metric scores sum close to the composite before rounding.
	assert.Greater(t, snap.HealthScore, 0)
	assert.Equal(t, 0, snap.HealthScore%5)
}

// TestComputeAssessmentEmptyHistory verifies the current export alone still
// yields alerts and recommendations.
func TestComputeAssessmentEmptyHistory(t *testing.T) {
	th := schema.DefaultThresholds()
	data := &schema.ActivityData{
		GeneratedAt: "2026-08-20T12:00:00Z",
		AgentStats: []schema.AgentStat{
			{Login: "planner-a", Reviews: 9},
			{Login: "builder-b", Comments: 1},
		},
		Proposals: []schema.Proposal{
			{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z", Phase: schema.PhaseImplemented},
			{Number: 2, Author: "planner-a", CreatedAt: "2026-08-05T00:00:00Z", Phase: schema.PhaseImplemented},
			{Number: 3, Author: "planner-a", CreatedAt: "2026-08-10T00:00:00Z", Phase: schema.PhaseImplemented},
		},
	}

	result := ComputeAssessment(data, nil, th)

	// One dominant agent approving everything in silence.
	types := patternTypes(result.Patterns)
	assert.Contains(t, types, schema.PatternSinglePointOfFailure)
	assert.Contains(t, types, schema.PatternRubberStamping)
	assert.NotEmpty(t, result.Recommendations)
	// No stored history means no trend deltas.
	assert.Nil(t, result.Trend.HealthDelta7d)
}

// TestComputeAssessmentWithHistory verifies stored snapshots drive trend
// deltas and history-based alerts.
func TestComputeAssessmentWithHistory(t *testing.T) {
	th := schema.DefaultThresholds()
	history := []schema.GovernanceSnapshot{
		{Timestamp: "2026-07-20T00:00:00Z", HealthScore: 75, Participation: 22},
		{Timestamp: "2026-08-01T00:00:00Z", HealthScore: 70, Participation: 20},
		{Timestamp: "2026-08-10T00:00:00Z", HealthScore: 60, Participation: 18},
		{Timestamp: "2026-08-20T00:00:00Z", HealthScore: 45, Participation: 16},
	}
	data := &schema.ActivityData{
		GeneratedAt: "2026-08-20T12:00:00Z",
		AgentStats:  []schema.AgentStat{{Login: "planner-a", Comments: 2}},
		Proposals: []schema.Proposal{
			{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z", Phase: schema.PhaseDiscussion},
		},
	}

	result := ComputeAssessment(data, history, th)

	require.NotNil(t, result.Trend.HealthDelta7d)
	assert.Less(t, *result.Trend.HealthDelta7d, 0)
	assert.Equal(t, 3, result.Trend.ConsecutiveDeclines)
	assert.Contains(t, alertTypes(result.Alerts), schema.AlertHealthDeclining)
}

// TestComputeAssessmentAlreadySnapshotted covers the scheduled workflow where
// the current export was already appended to the store: the decline streak
// must be read from the stored rows, not flattened by a duplicate of the
// newest one.
func TestComputeAssessmentAlreadySnapshotted(t *testing.T) {
	th := schema.DefaultThresholds()
	history := []schema.GovernanceSnapshot{
		{Timestamp: "2026-08-17T00:00:00Z", HealthScore: 70, Participation: 20},
		{Timestamp: "2026-08-18T00:00:00Z", HealthScore: 65, Participation: 19},
		{Timestamp: "2026-08-19T00:00:00Z", HealthScore: 60, Participation: 18},
		{Timestamp: "2026-08-20T00:00:00Z", HealthScore: 55, Participation: 17},
	}
	// Same export the newest stored row was built from.
	data := &schema.ActivityData{
		GeneratedAt: "2026-08-20T00:00:00Z",
		AgentStats:  []schema.AgentStat{{Login: "planner-a", Comments: 2}},
		Proposals: []schema.Proposal{
			{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z", Phase: schema.PhaseDiscussion},
		},
	}

	result := ComputeAssessment(data, history, th)

	assert.Equal(t, 3, result.Trend.ConsecutiveDeclines)
	assert.Contains(t, alertTypes(result.Alerts), schema.AlertHealthDeclining)
}
