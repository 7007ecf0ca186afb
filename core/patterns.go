package core

import (
	"fmt"
	"time"

	"github.com/agoramind/govscope/schema"
)

// detectPatterns recognizes recurring governance shapes in the data, both
// problematic and positive. Like alerts they emit in a fixed order.
func detectPatterns(data *schema.ActivityData, ordered []schema.GovernanceSnapshot, trend schema.TrendSummary, th schema.Thresholds) []schema.Pattern {
	var patterns []schema.Pattern

	pipeline := ComputePipeline(data.Proposals)
	if p, ok := rubberStamping(data.Proposals, pipeline, th); ok {
		patterns = append(patterns, p)
	}

	power := computePowerConcentration(data.AgentStats, data.Proposals, th)
	if power.TopShare > th.DominantShare && len(power.Influences) > 0 {
		patterns = append(patterns, schema.Pattern{
			Type:    schema.PatternSinglePointOfFailure,
			Tone:    schema.ToneNegative,
			Message: fmt.Sprintf("%s carries %.0f%% of governance weight", power.Influences[0].Login, power.TopShare*100),
		})
	}

	if n := len(ordered); n >= 3 &&
		ordered[n-1].ActiveProposals > ordered[n-2].ActiveProposals &&
		ordered[n-2].ActiveProposals > ordered[n-3].ActiveProposals {
		patterns = append(patterns, schema.Pattern{
			Type:    schema.PatternGovernanceDebt,
			Tone:    schema.ToneNegative,
			Message: fmt.Sprintf("active proposals rising across last three snapshots, now %d", ordered[n-1].ActiveProposals),
		})
	}

	if n := len(ordered); n >= 2 {
		prev, latest := ordered[n-2], ordered[n-1]
		if prev.Velocity > 0 && latest.Velocity < prev.Velocity/2 {
			patterns = append(patterns, schema.Pattern{
				Type:    schema.PatternVelocityCliff,
				Tone:    schema.ToneNegative,
				Message: fmt.Sprintf("proposal velocity fell from %.2f to %.2f per day", prev.Velocity, latest.Velocity),
			})
		}
	}

	if p, ok := healthyGrowth(ordered, trend); ok {
		patterns = append(patterns, p)
	}

	return patterns
}

// rubberStamping fires when nearly every resolved proposal is implemented
// with barely any discussion. Low outcome diversity alone is fine; low
// diversity plus silence suggests approvals are not being scrutinized.
func rubberStamping(proposals []schema.Proposal, pipeline schema.PipelineSummary, th schema.Thresholds) (schema.Pattern, bool) {
	terminal := pipeline.Terminal()
	if terminal < 3 {
		return schema.Pattern{}, false
	}
	approvalRate := float64(pipeline.Implemented) / float64(terminal)
	if approvalRate <= th.RubberStampApproval {
		return schema.Pattern{}, false
	}

	totalComments := 0
	for _, p := range proposals {
		totalComments += p.Comments
	}
	avgComments := float64(totalComments) / float64(len(proposals))
	if avgComments >= th.RubberStampComments {
		return schema.Pattern{}, false
	}

	return schema.Pattern{
		Type:    schema.PatternRubberStamping,
		Tone:    schema.ToneNegative,
		Message: fmt.Sprintf("%.0f%% approval rate with %.1f comments per proposal", approvalRate*100, avgComments),
	}, true
}

// healthyGrowth fires when health improved over the week and the agent
// population held steady or grew alongside it.
func healthyGrowth(ordered []schema.GovernanceSnapshot, trend schema.TrendSummary) (schema.Pattern, bool) {
	if trend.HealthDelta7d == nil || *trend.HealthDelta7d <= 0 || len(ordered) < 2 {
		return schema.Pattern{}, false
	}
	latest := ordered[len(ordered)-1]
	ref, ok := findAtOrBefore(ordered, latest.Time().Add(-7*24*time.Hour))
	if !ok || latest.ActiveAgents < ref.ActiveAgents {
		return schema.Pattern{}, false
	}
	return schema.Pattern{
		Type:    schema.PatternHealthyGrowth,
		Tone:    schema.TonePositive,
		Message: fmt.Sprintf("health up %d points over 7 days with %d active agents", *trend.HealthDelta7d, latest.ActiveAgents),
	}, true
}
