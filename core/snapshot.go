package core

import (
	"github.com/agoramind/govscope/schema"
)

// BuildSnapshot condenses one activity export into the compact row the
// snapshot store persists for trend analysis.
func BuildSnapshot(data *schema.ActivityData, th schema.Thresholds) schema.GovernanceSnapshot {
	health := ComputeHealthScore(data, th)
	pipeline := ComputePipeline(data.Proposals)

	activeAgents := 0
	for _, st := range data.AgentStats {
		if !st.IsInactive() {
			activeAgents++
		}
	}

	velocity := 0.0
	if health.DataWindowDays > 0 {
		velocity = float64(pipeline.Total) / float64(health.DataWindowDays)
	}

	snap := schema.GovernanceSnapshot{
		Timestamp:       data.GeneratedAt,
		HealthScore:     health.Score,
		ActiveProposals: pipeline.Discussion + pipeline.Voting + pipeline.ExtendedVoting + pipeline.ReadyToImplement,
		TotalProposals:  pipeline.Total,
		ActiveAgents:    activeAgents,
		Velocity:        velocity,
	}
	for _, m := range health.Metrics {
		switch m.Key {
		case schema.MetricParticipation:
			snap.Participation = m.Score
		case schema.MetricPipelineFlow:
			snap.PipelineFlow = m.Score
		case schema.MetricFollowThrough:
			snap.FollowThrough = m.Score
		case schema.MetricConsensus:
			snap.Consensus = m.Score
		}
	}
	return snap
}

// ComputeAssessment combines trend analysis over stored snapshots with
// alert, pattern and recommendation detection against the current data.
// Trends and snapshot-based signals read only the stored history; capturing
// the current export there is the snapshot command's job.
func ComputeAssessment(data *schema.ActivityData, history []schema.GovernanceSnapshot, th schema.Thresholds) schema.GovernanceAssessment {
	ordered := SortSnapshots(history)

	trend := ComputeTrend(ordered)
	alerts := detectAlerts(data, ordered, trend, th)
	patterns := detectPatterns(data, ordered, trend, th)

	return schema.GovernanceAssessment{
		Alerts:          alerts,
		Patterns:        patterns,
		Recommendations: buildRecommendations(alerts, patterns),
		Trend:           trend,
	}
}
