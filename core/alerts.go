package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/agoramind/govscope/schema"
)

// detectAlerts scans the current activity data plus snapshot history for
// conditions that warrant attention. Alerts are emitted in a fixed order so
// output is deterministic across runs.
func detectAlerts(data *schema.ActivityData, ordered []schema.GovernanceSnapshot, trend schema.TrendSummary, th schema.Thresholds) []schema.Alert {
	var alerts []schema.Alert

	if trend.ConsecutiveDeclines >= th.DeclineStreak {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertHealthDeclining,
			Severity: schema.SeverityWarning,
			Message:  fmt.Sprintf("health score has declined %d snapshots in a row", trend.ConsecutiveDeclines),
		})
	}

	if n := len(ordered); n >= 2 &&
		ordered[n-1].HealthScore < th.CriticalScore &&
		ordered[n-2].HealthScore < th.CriticalScore {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertHealthCritical,
			Severity: schema.SeverityCritical,
			Message:  fmt.Sprintf("health score below %d for the last two snapshots", th.CriticalScore),
		})
	}

	if trend.ParticipationDelta7d != nil && *trend.ParticipationDelta7d < -th.ParticipationDrop {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertParticipationCollapse,
			Severity: schema.SeverityWarning,
			Message:  fmt.Sprintf("participation dropped %d points over 7 days", -*trend.ParticipationDelta7d),
		})
	}

	if n := len(ordered); n >= 1 && ordered[n-1].PipelineFlow == 0 && ordered[n-1].TotalProposals > 0 {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertPipelineStall,
			Severity: schema.SeverityCritical,
			Message:  fmt.Sprintf("no pipeline movement despite %d proposals", ordered[n-1].TotalProposals),
		})
	}

	if gap := countUnimplementedReady(data); gap > th.FollowThroughGap {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertFollowThroughGap,
			Severity: schema.SeverityWarning,
			Message:  fmt.Sprintf("%d approved proposals have no open PR referencing them", gap),
		})
	}

	if open, merged, ok := mergeQueuePressure(data, th); ok {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertMergeQueueGrowth,
			Severity: schema.SeverityWarning,
			Message:  fmt.Sprintf("%d PRs open but only %d merged in the last %.0fh", open, merged, th.QueueMergeWindowHours),
		})
	}

	if login, share, ok := reviewConcentration(data.AgentStats, th); ok {
		alerts = append(alerts, schema.Alert{
			Type:     schema.AlertReviewConcentration,
			Severity: schema.SeverityInfo,
			Message:  fmt.Sprintf("%s performs %.0f%% of all reviews", login, share*100),
		})
	}

	return alerts
}

// countUnimplementedReady counts ready-to-implement proposals that no open
// pull request references.
func countUnimplementedReady(data *schema.ActivityData) int {
	refs := buildOpenPRRefs(data.PullRequests)
	gap := 0
	for _, p := range data.Proposals {
		if p.Phase != schema.PhaseReadyToImplement {
			continue
		}
		if _, ok := refs[p.Number]; !ok {
			gap++
		}
	}
	return gap
}

// mergeQueuePressure reports whether open PRs far outnumber recent merges.
// The merge window is anchored at the export timestamp; without a parseable
// export time the signal is skipped.
func mergeQueuePressure(data *schema.ActivityData, th schema.Thresholds) (open, merged int, ok bool) {
	generatedAt, parsed := schema.ParseTime(data.GeneratedAt)
	if !parsed {
		return 0, 0, false
	}
	windowStart := generatedAt.Add(-time.Duration(th.QueueMergeWindowHours * float64(time.Hour)))

	for _, pr := range data.PullRequests {
		switch pr.State {
		case "open":
			open++
		case "merged":
			at, parsed := schema.ParseTime(pr.MergedAt)
			if parsed && !at.Before(windowStart) && !at.After(generatedAt) {
				merged++
			}
		}
	}

	if open > th.QueueOpenMin && float64(open) > th.QueueRatio*float64(merged) {
		return open, merged, true
	}
	return 0, 0, false
}

// reviewConcentration finds the top reviewer's share of all reviews. Ties
// resolve to the lexicographically smallest login.
func reviewConcentration(stats []schema.AgentStat, th schema.Thresholds) (string, float64, bool) {
	total := 0
	for _, st := range stats {
		total += st.Reviews
	}
	if total == 0 {
		return "", 0, false
	}

	sorted := make([]schema.AgentStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Reviews != sorted[j].Reviews {
			return sorted[i].Reviews > sorted[j].Reviews
		}
		return sorted[i].Login < sorted[j].Login
	})

	share := float64(sorted[0].Reviews) / float64(total)
	if share > th.ReviewShare {
		return sorted[0].Login, share, true
	}
	return "", 0, false
}
