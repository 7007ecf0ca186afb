package core

import (
	"testing"

	"github.com/agoramind/govscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputePowerConcentration tests concentration level classification.
func TestComputePowerConcentration(t *testing.T) {
	th := schema.DefaultThresholds()
	proposals := []schema.Proposal{
		{Number: 1, Author: "planner-a"},
		{Number: 2, Author: "planner-a"},
		{Number: 3, Author: "planner-b"},
		{Number: 4, Author: "planner-c"},
	}

	tests := []struct {
		name     string
		stats    []schema.AgentStat
		expected schema.PowerLevel
	}{
		{
			name: "balanced across four agents",
			stats: []schema.AgentStat{
				{Login: "planner-a", Reviews: 1},
				{Login: "planner-b", Reviews: 3},
				{Login: "planner-c", Reviews: 3},
				{Login: "reviewer-d", Reviews: 4},
			},
			expected: schema.PowerBalanced,
		},
		{
			name: "two agents hold nearly everything",
			stats: []schema.AgentStat{
				{Login: "planner-a", Reviews: 10},
				{Login: "planner-b", Reviews: 8},
				{Login: "planner-c"},
			},
			expected: schema.PowerOligarchy,
		},
		{
			name: "single weighted agent",
			stats: []schema.AgentStat{
				{Login: "planner-a", Reviews: 4},
				{Login: "idle-b"},
			},
			expected: schema.PowerOligarchy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			power := computePowerConcentration(tt.stats, proposals, th)
			assert.Equal(t, tt.expected, power.Level)
			assert.NotEmpty(t, power.Reason)
		})
	}
}

// TestComputePowerConcentrationWeights verifies the weighting formula and
// the comment cap.
func TestComputePowerConcentrationWeights(t *testing.T) {
	th := schema.DefaultThresholds()
	proposals := []schema.Proposal{
		{Number: 1, Author: "planner-a"},
		{Number: 2, Author: "planner-a"},
	}
	stats := []schema.AgentStat{
		{Login: "planner-a", Reviews: 1},
		{Login: "chatter-b", Comments: 50}, // capped at len(proposals)
	}

	power := computePowerConcentration(stats, proposals, th)
	require.Len(t, power.Influences, 2)

	// planner-a: 3*2 + 2*1 = 8. chatter-b: min(50, 2) = 2.
	assert.Equal(t, "planner-a", power.Influences[0].Login)
	assert.InDelta(t, 8.0, power.Influences[0].Weight, 0.001)
	assert.InDelta(t, 2.0, power.Influences[1].Weight, 0.001)
	assert.InDelta(t, 0.8, power.TopShare, 0.001)
}

// TestComputePowerConcentrationEmpty tests the no-activity case.
func TestComputePowerConcentrationEmpty(t *testing.T) {
	power := computePowerConcentration(nil, nil, schema.DefaultThresholds())
	assert.Equal(t, schema.PowerBalanced, power.Level)
	assert.Empty(t, power.Influences)
	assert.Equal(t, "no weighted governance activity", power.Reason)
}

// TestRoleOf tests login-to-role mapping by case-insensitive substring.
func TestRoleOf(t *testing.T) {
	tests := []struct {
		login    string
		expected string
		ok       bool
	}{
		{login: "planner-alpha", expected: "planner", ok: true},
		{login: "Builder-Two", expected: "builder", ok: true},
		{login: "reviewer", expected: "reviewer", ok: true},
		{login: "tester-9", expected: "tester", ok: true},
		{login: "agent-reviewer-1", expected: "reviewer", ok: true},
		{login: "QA-Tester", expected: "tester", ok: true},
		{login: "random-agent", expected: "", ok: false},
		{login: "", expected: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			role, ok := roleOf(tt.login)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, role)
		})
	}
}

// TestComputeRoleDiversity tests coverage grid scoring.
func TestComputeRoleDiversity(t *testing.T) {
	proposals := []schema.Proposal{
		{Number: 1, Author: "planner-a"},
		{Number: 2, Author: "builder-b"},
	}
	stats := []schema.AgentStat{
		{Login: "reviewer-c", Reviews: 5},
		{Login: "planner-a", Reviews: 2},
	}
	comments := []schema.Comment{
		{Number: 1, Author: "tester-d", Type: schema.CommentProposal},
		{Number: 1, Author: "planner-a", Type: schema.CommentProposal},
	}

	diversity := computeRoleDiversity(stats, proposals, comments)

	// Active cells: planner proposing+reviewing+commenting, builder proposing,
	// reviewer reviewing, tester commenting = 6 of 12.
	assert.Equal(t, 50, diversity.Score)
	require.Len(t, diversity.Coverage, 4)
	assert.Len(t, diversity.Missing, 6)
	assert.Contains(t, diversity.Missing, "builder not reviewing")
	assert.Contains(t, diversity.Missing, "tester not proposing")
}

// TestComputeRoleDiversityEmpty tests the no-coverage case.
func TestComputeRoleDiversityEmpty(t *testing.T) {
	diversity := computeRoleDiversity(nil, nil, nil)
	assert.Equal(t, 0, diversity.Score)
	assert.Len(t, diversity.Missing, 12)
}

// TestComputeResponsiveness tests median first-response measurement.
func TestComputeResponsiveness(t *testing.T) {
	th := schema.DefaultThresholds()
	proposals := []schema.Proposal{
		{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z"},
		{Number: 2, Author: "planner-a", CreatedAt: "2026-08-02T00:00:00Z"},
	}
	comments := []schema.Comment{
		// Self-comment and bot comment are not responses.
		{Number: 1, Author: "planner-a", Type: schema.CommentProposal, CreatedAt: "2026-08-01T00:30:00Z"},
		{Number: 1, Author: "governance-bot", Type: schema.CommentProposal, CreatedAt: "2026-08-01T00:10:00Z"},
		{Number: 1, Author: "reviewer-b", Type: schema.CommentProposal, CreatedAt: "2026-08-01T01:00:00Z"},
		{Number: 2, Author: "builder-c", Type: schema.CommentProposal, CreatedAt: "2026-08-02T03:00:00Z"},
	}

	resp := computeResponsiveness(proposals, comments, th)

	require.NotNil(t, resp.MedianHours)
	assert.InDelta(t, 2.0, *resp.MedianHours, 0.001) // median of 1h and 3h
	assert.Equal(t, schema.ResponseResponsive, resp.Bucket)
	assert.Equal(t, 2, resp.Sampled)
	assert.Equal(t, 2, resp.Responded)
}

// TestComputeResponsivenessNoData tests proposals without responses.
func TestComputeResponsivenessNoData(t *testing.T) {
	proposals := []schema.Proposal{
		{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z"},
	}
	resp := computeResponsiveness(proposals, nil, schema.DefaultThresholds())
	assert.Nil(t, resp.MedianHours)
	assert.Equal(t, schema.ResponseNoData, resp.Bucket)
	assert.Equal(t, 1, resp.Sampled)
}

// TestComputeBalance tests the full assessment and the verdict scale.
func TestComputeBalance(t *testing.T) {
	th := schema.DefaultThresholds()
	data := &schema.ActivityData{
		Proposals: []schema.Proposal{
			{Number: 1, Author: "planner-a", CreatedAt: "2026-08-01T00:00:00Z"},
			{Number: 2, Author: "builder-b", CreatedAt: "2026-08-02T00:00:00Z"},
			{Number: 3, Author: "reviewer-c", CreatedAt: "2026-08-03T00:00:00Z"},
		},
		AgentStats: []schema.AgentStat{
			{Login: "planner-a", Reviews: 3, Comments: 2},
			{Login: "builder-b", Reviews: 2, Comments: 3},
			{Login: "reviewer-c", Reviews: 3, Comments: 2},
			{Login: "tester-d", Reviews: 3, Comments: 2},
		},
		Comments: []schema.Comment{
			{Number: 1, Author: "builder-b", Type: schema.CommentProposal, CreatedAt: "2026-08-01T01:00:00Z"},
			{Number: 2, Author: "tester-d", Type: schema.CommentProposal, CreatedAt: "2026-08-02T01:00:00Z"},
			{Number: 3, Author: "planner-a", Type: schema.CommentProposal, CreatedAt: "2026-08-03T01:00:00Z"},
		},
	}

	result := ComputeBalance(data, th)

	assert.Equal(t, schema.PowerBalanced, result.Power.Level)
	assert.Equal(t, schema.ResponseHighly, result.Responsiveness.Bucket)
	assert.Equal(t, schema.VerdictBalanced, result.Verdict)
	assert.NotEmpty(t, result.VerdictReason)
}

// TestBalanceVerdictInsufficientData tests the data floor.
func TestBalanceVerdictInsufficientData(t *testing.T) {
	verdict, reason := balanceVerdict(schema.PowerConcentration{}, schema.RoleDiversity{}, schema.Responsiveness{}, 0)
	assert.Equal(t, schema.VerdictInsufficientData, verdict)
	assert.NotEmpty(t, reason)
}
