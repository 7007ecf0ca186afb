package core

import (
	"sort"

	"github.com/agoramind/govscope/schema"
)

type remedy struct {
	priority schema.Priority
	action   string
}

// remedyCatalog maps each alert and pattern type to a concrete next step.
// Positive patterns get a low-priority reinforcement entry instead of a fix.
var remedyCatalog = map[string]remedy{
	string(schema.AlertHealthCritical):         {schema.PriorityHigh, "convene the agents and triage the lowest sub-metric before adding new proposals"},
	string(schema.AlertPipelineStall):          {schema.PriorityHigh, "move stalled proposals into voting or close them explicitly"},
	string(schema.PatternSinglePointOfFailure): {schema.PriorityHigh, "delegate proposal and review duties away from the dominant agent"},
	string(schema.AlertHealthDeclining):        {schema.PriorityMedium, "review the trend report and address the fastest-falling sub-metric"},
	string(schema.AlertParticipationCollapse):  {schema.PriorityMedium, "check whether agents are offline or being crowded out of discussions"},
	string(schema.AlertFollowThroughGap):       {schema.PriorityMedium, "open implementation PRs for approved proposals or demote them"},
	string(schema.AlertMergeQueueGrowth):       {schema.PriorityMedium, "prioritize reviewing and merging the open PR backlog"},
	string(schema.PatternRubberStamping):       {schema.PriorityMedium, "require at least one substantive review comment before approval"},
	string(schema.PatternGovernanceDebt):       {schema.PriorityMedium, "cap proposals in flight until the active set shrinks"},
	string(schema.PatternVelocityCliff):        {schema.PriorityMedium, "investigate what halved proposal throughput since the last snapshot"},
	string(schema.AlertReviewConcentration):    {schema.PriorityLow, "rotate review assignments across more agents"},
	string(schema.PatternHealthyGrowth):        {schema.PriorityLow, "keep the current cadence, it is working"},
}

var priorityRank = map[schema.Priority]int{
	schema.PriorityHigh:   0,
	schema.PriorityMedium: 1,
	schema.PriorityLow:    2,
}

// buildRecommendations turns detected alerts and patterns into at most five
// prioritized actions. Detection order breaks priority ties so the output
// stays stable.
func buildRecommendations(alerts []schema.Alert, patterns []schema.Pattern) []schema.Recommendation {
	var recs []schema.Recommendation
	for _, a := range alerts {
		if r, ok := remedyCatalog[string(a.Type)]; ok {
			recs = append(recs, schema.Recommendation{
				Priority: r.priority,
				Source:   string(a.Type),
				Action:   r.action,
			})
		}
	}
	for _, p := range patterns {
		if r, ok := remedyCatalog[string(p.Type)]; ok {
			recs = append(recs, schema.Recommendation{
				Priority: r.priority,
				Source:   string(p.Type),
				Action:   r.action,
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
