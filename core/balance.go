package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agoramind/govscope/schema"
)

// ComputeBalance assesses how evenly governance power and responsibility
// are spread across the agent population.
func ComputeBalance(data *schema.ActivityData, th schema.Thresholds) schema.GovernanceBalanceAssessment {
	power := computePowerConcentration(data.AgentStats, data.Proposals, th)
	diversity := computeRoleDiversity(data.AgentStats, data.Proposals, data.Comments)
	responsiveness := computeResponsiveness(data.Proposals, data.Comments, th)

	verdict, reason := balanceVerdict(power, diversity, responsiveness, len(data.Proposals))

	return schema.GovernanceBalanceAssessment{
		Power:          power,
		Diversity:      diversity,
		Responsiveness: responsiveness,
		Verdict:        verdict,
		VerdictReason:  reason,
	}
}

// computePowerConcentration weights each agent's governance influence and
// classifies how concentrated the top of the distribution is. Authoring a
// proposal carries the most weight, reviewing less, and commenting is
// capped at the proposal count so chatter alone cannot dominate.
func computePowerConcentration(stats []schema.AgentStat, proposals []schema.Proposal, th schema.Thresholds) schema.PowerConcentration {
	authored := buildAuthoredCounts(proposals)

	var influences []schema.AgentInfluence
	totalWeight := 0.0
	for _, st := range stats {
		w := float64(3*authored[st.Login] + 2*st.Reviews + minInt(st.Comments, len(proposals)))
		if w <= 0 {
			continue
		}
		influences = append(influences, schema.AgentInfluence{Login: st.Login, Weight: w})
		totalWeight += w
	}

	if len(influences) == 0 || totalWeight == 0 {
		return schema.PowerConcentration{
			Level:  schema.PowerBalanced,
			Reason: "no weighted governance activity",
		}
	}

	for i := range influences {
		influences[i].Share = influences[i].Weight / totalWeight
	}
	sort.SliceStable(influences, func(i, j int) bool {
		if influences[i].Weight != influences[j].Weight {
			return influences[i].Weight > influences[j].Weight
		}
		return influences[i].Login < influences[j].Login
	})

	topShare := influences[0].Share
	topTwoShare := topShare
	if len(influences) > 1 {
		topTwoShare += influences[1].Share
	}

	var level schema.PowerLevel
	var reason string
	switch {
	case topTwoShare > th.OligarchyTopTwoShare:
		level = schema.PowerOligarchy
		if len(influences) == 1 {
			reason = fmt.Sprintf("%s holds all governance weight", influences[0].Login)
		} else {
			reason = fmt.Sprintf("top two agents hold %.0f%% of governance weight", topTwoShare*100)
		}
	case topShare > th.ConcentratedTopShare:
		level = schema.PowerConcentrated
		reason = fmt.Sprintf("%s holds %.0f%% of governance weight", influences[0].Login, topShare*100)
	case topShare > th.ModerateTopShare:
		level = schema.PowerModerate
		reason = fmt.Sprintf("top agent holds %.0f%% of governance weight", topShare*100)
	default:
		level = schema.PowerBalanced
		reason = fmt.Sprintf("no agent exceeds %.0f%% of governance weight", th.ModerateTopShare*100)
	}

	return schema.PowerConcentration{
		Level:       level,
		TopShare:    topShare,
		TopTwoShare: topTwoShare,
		Influences:  influences,
		Reason:      reason,
	}
}

// computeRoleDiversity checks which project roles participate in which
// governance dimensions. The grid has one cell per role and dimension; the
// score is the covered fraction scaled to 100.
func computeRoleDiversity(stats []schema.AgentStat, proposals []schema.Proposal, comments []schema.Comment) schema.RoleDiversity {
	proposing := make(map[string]bool)
	for _, p := range proposals {
		if role, ok := roleOf(p.Author); ok {
			proposing[role] = true
		}
	}
	reviewing := make(map[string]bool)
	for _, st := range stats {
		if st.Reviews == 0 {
			continue
		}
		if role, ok := roleOf(st.Login); ok {
			reviewing[role] = true
		}
	}
	commenting := make(map[string]bool)
	for _, c := range comments {
		if role, ok := roleOf(c.Author); ok {
			commenting[role] = true
		}
	}

	var coverage []schema.RoleCoverage
	var missing []string
	active := 0
	for _, role := range schema.GovernanceRoles {
		rc := schema.RoleCoverage{
			Role:       role,
			Proposing:  proposing[role],
			Reviewing:  reviewing[role],
			Commenting: commenting[role],
		}
		coverage = append(coverage, rc)
		cells := map[string]bool{
			"proposing":  rc.Proposing,
			"reviewing":  rc.Reviewing,
			"commenting": rc.Commenting,
		}
		for _, dim := range schema.GovernanceDimensions {
			if cells[dim] {
				active++
			} else {
				missing = append(missing, fmt.Sprintf("%s not %s", role, dim))
			}
		}
	}

	total := len(schema.GovernanceRoles) * len(schema.GovernanceDimensions)
	score := roundInt(100 * float64(active) / float64(total))

	return schema.RoleDiversity{
		Score:    score,
		Coverage: coverage,
		Missing:  missing,
		Reason:   fmt.Sprintf("%d of %d role/dimension cells active", active, total),
	}
}

// roleOf maps an agent login to a project role by a case-insensitive
// substring check, so naming schemes like "agent-reviewer-1" still resolve.
// Logins without a recognizable role name do not participate in diversity
// scoring.
func roleOf(login string) (string, bool) {
	lower := strings.ToLower(login)
	for _, role := range schema.GovernanceRoles {
		if strings.Contains(lower, role) {
			return role, true
		}
	}
	return "", false
}

// computeResponsiveness measures the median time from proposal creation to
// its first substantive comment. Self-comments and automation accounts do
// not count as responses.
func computeResponsiveness(proposals []schema.Proposal, comments []schema.Comment, th schema.Thresholds) schema.Responsiveness {
	byProposal := buildProposalComments(comments)

	var firstResponses []float64
	sampled := 0
	for _, p := range proposals {
		created, ok := schema.ParseTime(p.CreatedAt)
		if !ok {
			continue
		}
		sampled++

		var best *float64
		for _, c := range byProposal[p.Number] {
			if c.Author == p.Author || schema.IsAutomation(c.Author) {
				continue
			}
			at, ok := schema.ParseTime(c.CreatedAt)
			if !ok || at.Before(created) {
				continue
			}
			h := at.Sub(created).Hours()
			if best == nil || h < *best {
				best = &h
			}
		}
		if best != nil {
			firstResponses = append(firstResponses, *best)
		}
	}

	median := medianOf(firstResponses)
	if median == nil {
		return schema.Responsiveness{
			Bucket:  schema.ResponseNoData,
			Sampled: sampled,
			Reason:  "no proposals with a measurable first response",
		}
	}

	var bucket schema.ResponseBucket
	switch {
	case *median < th.FastResponseHours:
		bucket = schema.ResponseHighly
	case *median < th.NormalResponseHours:
		bucket = schema.ResponseResponsive
	case *median < th.SlowResponseHours:
		bucket = schema.ResponseSlow
	default:
		bucket = schema.ResponseConcerning
	}

	return schema.Responsiveness{
		MedianHours: median,
		Bucket:      bucket,
		Sampled:     sampled,
		Responded:   len(firstResponses),
		Reason:      fmt.Sprintf("median first response %.1fh across %d of %d proposals", *median, len(firstResponses), sampled),
	}
}

// balanceVerdict folds the three balance components into a single verdict
// on a 9-point scale. Too little data yields insufficient-data rather than
// a misleading verdict.
func balanceVerdict(power schema.PowerConcentration, diversity schema.RoleDiversity, resp schema.Responsiveness, proposalCount int) (schema.BalanceVerdict, string) {
	if len(power.Influences) < 2 || proposalCount == 0 {
		return schema.VerdictInsufficientData, "fewer than two weighted agents or no proposals"
	}

	points := 0
	switch power.Level {
	case schema.PowerBalanced:
		points += 3
	case schema.PowerModerate:
		points += 2
	case schema.PowerConcentrated:
		points += 1
	}
	switch {
	case diversity.Score >= 75:
		points += 3
	case diversity.Score >= 50:
		points += 2
	case diversity.Score >= 25:
		points += 1
	}
	switch resp.Bucket {
	case schema.ResponseHighly:
		points += 3
	case schema.ResponseResponsive:
		points += 2
	case schema.ResponseSlow:
		points += 1
	}

	reason := fmt.Sprintf("power %s, diversity %d/100, responsiveness %s (%d/9 points)", power.Level, diversity.Score, resp.Bucket, points)
	switch {
	case points >= 8:
		return schema.VerdictBalanced, reason
	case points >= 5:
		return schema.VerdictMostlyBalanced, reason
	default:
		return schema.VerdictImbalanced, reason
	}
}
