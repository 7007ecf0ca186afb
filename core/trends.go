package core

import (
	"sort"
	"time"

	"github.com/agoramind/govscope/schema"
)

// SortSnapshots returns a copy of the snapshots ordered by capture time,
// oldest first. Snapshots with unparseable timestamps sort to the front.
func SortSnapshots(snaps []schema.GovernanceSnapshot) []schema.GovernanceSnapshot {
	out := make([]schema.GovernanceSnapshot, len(snaps))
	copy(out, snaps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time().Before(out[j].Time())
	})
	return out
}

// ComputeTrend compares the latest snapshot against reference points 7 and
// 30 days earlier. With fewer than two snapshots there is no trend.
func ComputeTrend(snaps []schema.GovernanceSnapshot) schema.TrendSummary {
	ordered := SortSnapshots(snaps)
	if len(ordered) < 2 {
		return schema.TrendSummary{}
	}

	latest := ordered[len(ordered)-1]
	var summary schema.TrendSummary

	if ref, ok := findAtOrBefore(ordered, latest.Time().Add(-7*24*time.Hour)); ok {
		summary.HealthDelta7d = intPtr(latest.HealthScore - ref.HealthScore)
		summary.ParticipationDelta7d = intPtr(latest.Participation - ref.Participation)
		summary.PipelineDelta7d = intPtr(latest.PipelineFlow - ref.PipelineFlow)
		summary.FollowThroughDelta7d = intPtr(latest.FollowThrough - ref.FollowThrough)
		summary.ConsensusDelta7d = intPtr(latest.Consensus - ref.Consensus)
	}
	if ref, ok := findAtOrBefore(ordered, latest.Time().Add(-30*24*time.Hour)); ok {
		summary.HealthDelta30d = intPtr(latest.HealthScore - ref.HealthScore)
	}

	summary.ConsecutiveDeclines = consecutiveDeclines(ordered)
	return summary
}

// findAtOrBefore returns the most recent snapshot captured at or before the
// cutoff, excluding the final snapshot itself. Snapshots with zero times
// are skipped.
func findAtOrBefore(ordered []schema.GovernanceSnapshot, cutoff time.Time) (schema.GovernanceSnapshot, bool) {
	for i := len(ordered) - 2; i >= 0; i-- {
		t := ordered[i].Time()
		if t.IsZero() {
			continue
		}
		if !t.After(cutoff) {
			return ordered[i], true
		}
	}
	return schema.GovernanceSnapshot{}, false
}

// consecutiveDeclines counts how many of the most recent snapshot-to-
// snapshot steps were strict health score drops, walking backward until the
// streak breaks.
func consecutiveDeclines(ordered []schema.GovernanceSnapshot) int {
	declines := 0
	for i := len(ordered) - 1; i > 0; i-- {
		if ordered[i].HealthScore < ordered[i-1].HealthScore {
			declines++
		} else {
			break
		}
	}
	return declines
}
