package core

import (
	"time"

	"github.com/agoramind/govscope/schema"
)

// ComputePipeline tallies proposals per lifecycle phase. Unrecognized phase
// values count toward the total only; that is defensive tolerance, not an
// error.
func ComputePipeline(proposals []schema.Proposal) schema.PipelineSummary {
	var out schema.PipelineSummary
	for _, p := range proposals {
		out.Total++
		switch p.Phase {
		case schema.PhaseDiscussion:
			out.Discussion++
		case schema.PhaseVoting:
			out.Voting++
		case schema.PhaseExtendedVoting:
			out.ExtendedVoting++
		case schema.PhaseReadyToImplement:
			out.ReadyToImplement++
		case schema.PhaseImplemented:
			out.Implemented++
		case schema.PhaseRejected:
			out.Rejected++
		case schema.PhaseInconclusive:
			out.Inconclusive++
		}
	}
	return out
}

// ComputeAgentRoles classifies each agent into a primary behavioral role.
// Each agent's four raw scores are normalized by that agent's own maximum,
// so the role describes personal emphasis rather than absolute volume. Ties
// resolve to the first role in schema.AllAgentRoles order; an agent with
// four zero raw scores has no primary role.
func ComputeAgentRoles(stats []schema.AgentStat, proposals []schema.Proposal) []schema.AgentRoleResult {
	authored := buildAuthoredCounts(proposals)

	results := make([]schema.AgentRoleResult, 0, len(stats))
	for _, st := range stats {
		raw := map[schema.AgentRole]float64{
			schema.RoleCoder:      float64(st.Commits + st.MergedPRs),
			schema.RoleReviewer:   float64(st.Reviews),
			schema.RoleProposer:   float64(authored[st.Login]),
			schema.RoleDiscussant: float64(st.Comments),
		}

		var maxRaw float64
		for _, v := range raw {
			if v > maxRaw {
				maxRaw = v
			}
		}

		scores := make(map[schema.AgentRole]float64, len(raw))
		var primary *schema.AgentRole
		if maxRaw > 0 {
			best := -1.0
			for _, role := range schema.AllAgentRoles {
				n := raw[role] / maxRaw
				scores[role] = n
				if n > best {
					best = n
					r := role
					primary = &r
				}
			}
		} else {
			for _, role := range schema.AllAgentRoles {
				scores[role] = 0
			}
		}

		results = append(results, schema.AgentRoleResult{
			Login:   st.Login,
			Scores:  scores,
			Primary: primary,
		})
	}
	return results
}

// ComputeThroughput derives median stage durations from phase-transition
// timestamps. A proposal contributes to a duration bucket only when both
// endpoints are resolvable and the duration is non-negative, guarding
// against out-of-order data.
func ComputeThroughput(proposals []schema.Proposal) schema.ThroughputStats {
	var stats schema.ThroughputStats
	var discussionToVoting, votingToTerminal, creationToTerminal []float64

	for _, p := range proposals {
		if p.Phase.IsTerminal() {
			stats.Resolved++
		} else if p.Phase.IsActive() {
			stats.Active++
		}

		entries := phaseEntries(p)
		created, hasCreated := schema.ParseTime(p.CreatedAt)

		if d, ok := hoursBetween(entries, schema.PhaseDiscussion, schema.PhaseVoting); ok {
			discussionToVoting = append(discussionToVoting, d)
		}
		if votingAt, ok := entries[schema.PhaseVoting]; ok {
			if terminalAt, ok := earliestTerminalEntry(entries); ok {
				if d := terminalAt.Sub(votingAt).Hours(); d >= 0 {
					votingToTerminal = append(votingToTerminal, d)
				}
			}
		}
		if hasCreated {
			if terminalAt, ok := earliestTerminalEntry(entries); ok {
				if d := terminalAt.Sub(created).Hours(); d >= 0 {
					creationToTerminal = append(creationToTerminal, d)
				}
			}
		}
	}

	stats.DiscussionToVotingHours = medianOf(discussionToVoting)
	stats.VotingToTerminalHours = medianOf(votingToTerminal)
	stats.CreationToTerminalHours = medianOf(creationToTerminal)
	return stats
}

// phaseEntries returns the earliest entry time per phase for a proposal.
// Duplicate transitions for the same phase collapse to the earliest
// occurrence; a missing discussion entry is synthesized from the creation
// time, since every proposal implicitly starts in discussion.
func phaseEntries(p schema.Proposal) map[schema.Phase]time.Time {
	entries := make(map[schema.Phase]time.Time, len(p.Transitions)+1)
	for _, tr := range p.Transitions {
		at, ok := schema.ParseTime(tr.At)
		if !ok {
			continue
		}
		if prev, seen := entries[tr.Phase]; !seen || at.Before(prev) {
			entries[tr.Phase] = at
		}
	}
	if _, ok := entries[schema.PhaseDiscussion]; !ok {
		if created, has := schema.ParseTime(p.CreatedAt); has {
			entries[schema.PhaseDiscussion] = created
		}
	}
	return entries
}

// hoursBetween computes the duration between two phase entries in hours.
// Returns false when either endpoint is missing or the duration is negative.
func hoursBetween(entries map[schema.Phase]time.Time, from, to schema.Phase) (float64, bool) {
	start, ok := entries[from]
	if !ok {
		return 0, false
	}
	end, ok := entries[to]
	if !ok {
		return 0, false
	}
	d := end.Sub(start).Hours()
	if d < 0 {
		return 0, false
	}
	return d, true
}

// earliestTerminalEntry returns the earliest time the proposal entered any
// terminal phase.
func earliestTerminalEntry(entries map[schema.Phase]time.Time) (time.Time, bool) {
	var best time.Time
	var found bool
	for _, phase := range []schema.Phase{schema.PhaseImplemented, schema.PhaseRejected, schema.PhaseInconclusive} {
		at, ok := entries[phase]
		if !ok {
			continue
		}
		if !found || at.Before(best) {
			best = at
			found = true
		}
	}
	return best, found
}
