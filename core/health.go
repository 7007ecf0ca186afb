package core

import (
	"fmt"
	"time"

	"github.com/agoramind/govscope/schema"
)

// ComputeHealthScore produces the composite governance health score for a
// single activity snapshot. Four sub-metrics contribute up to 25 points
// each; the sum is rounded to the nearest multiple of 5 so that small input
// perturbations do not flap the headline number.
func ComputeHealthScore(data *schema.ActivityData, th schema.Thresholds) schema.GovernanceHealthScore {
	pipeline := ComputePipeline(data.Proposals)

	metrics := []schema.SubMetric{
		scoreParticipation(data.AgentStats, data.Proposals),
		scorePipelineFlow(pipeline),
		scoreFollowThrough(pipeline),
		scoreConsensus(data.Proposals, pipeline),
	}

	sum := 0
	for _, m := range metrics {
		sum += m.Score
	}
	score := clampInt(roundToFive(sum), 0, 100)

	return schema.GovernanceHealthScore{
		Score:          score,
		Bucket:         th.BucketFor(score),
		Metrics:        metrics,
		DataWindowDays: dataWindowDays(data.Proposals),
	}
}

// scoreParticipation rewards evenly distributed activity across agents.
// Activity per agent is authored proposals plus reviews plus comments; the
// Gini coefficient of that distribution is inverted into a 0-25 score.
func scoreParticipation(stats []schema.AgentStat, proposals []schema.Proposal) schema.SubMetric {
	authored := buildAuthoredCounts(proposals)

	var activity []float64
	for _, st := range stats {
		if st.IsInactive() && authored[st.Login] == 0 {
			continue
		}
		activity = append(activity, float64(authored[st.Login]+st.Reviews+st.Comments))
	}

	m := schema.SubMetric{Key: schema.MetricParticipation, Label: "Participation"}
	switch len(activity) {
	case 0:
		m.Score = 0
		m.Reason = "no active agents"
	case 1:
		m.Score = 5
		m.Reason = "single active agent, no distribution to measure"
	default:
		g := gini(activity)
		m.Score = roundInt((1 - g) * 25)
		m.Reason = fmt.Sprintf("%d active agents, activity gini %.2f", len(activity), g)
	}
	return m
}

// scorePipelineFlow rewards proposals that move out of discussion and on to
// a terminal phase. Up to 15 points for progression past discussion, up to
// 10 for reaching a terminal state.
func scorePipelineFlow(pipeline schema.PipelineSummary) schema.SubMetric {
	m := schema.SubMetric{Key: schema.MetricPipelineFlow, Label: "Pipeline flow"}
	if pipeline.Total == 0 {
		m.Score = 0
		m.Reason = "no proposals"
		return m
	}
	progressed := pipeline.Progressed()
	terminal := pipeline.Terminal()
	base := roundInt(15 * float64(progressed) / float64(pipeline.Total))
	bonus := roundInt(10 * float64(terminal) / float64(pipeline.Total))
	m.Score = clampInt(base+bonus, 0, 25)
	m.Reason = fmt.Sprintf("%d of %d progressed, %d resolved", progressed, pipeline.Total, terminal)
	return m
}

// scoreFollowThrough measures whether approved proposals actually get
// implemented. Approved means implemented or ready-to-implement; with no
// approved proposals yet there is nothing to judge, so a neutral midpoint
// applies.
func scoreFollowThrough(pipeline schema.PipelineSummary) schema.SubMetric {
	m := schema.SubMetric{Key: schema.MetricFollowThrough, Label: "Follow-through"}
	approved := pipeline.Implemented + pipeline.ReadyToImplement
	if approved == 0 {
		m.Score = 12
		m.Reason = "no approved proposals yet"
		return m
	}
	m.Score = roundInt(25 * float64(pipeline.Implemented) / float64(approved))
	m.Reason = fmt.Sprintf("%d of %d approved proposals implemented", pipeline.Implemented, approved)
	return m
}

// scoreConsensus blends three signals of decision quality: vote
// engagement (up to 10), outcome diversity (up to 5) and discussion depth
// (up to 10). A governance process that implements every single proposal
// with no pushback scores low on diversity; so does one that rejects
// everything.
func scoreConsensus(proposals []schema.Proposal, pipeline schema.PipelineSummary) schema.SubMetric {
	m := schema.SubMetric{Key: schema.MetricConsensus, Label: "Consensus"}
	if pipeline.Total == 0 {
		m.Score = 0
		m.Reason = "no proposals"
		return m
	}

	voteScore := 0
	voted := 0
	totalVotes := 0
	for _, p := range proposals {
		if p.Votes == nil {
			continue
		}
		voted++
		totalVotes += p.Votes.Total()
	}
	if voted > 0 {
		avgVotes := float64(totalVotes) / float64(voted)
		voteScore = minInt(10, roundInt(10*avgVotes/4))
	}

	diversityScore := 0
	terminal := pipeline.Terminal()
	if terminal > 0 {
		nonImplemented := pipeline.Rejected + pipeline.Inconclusive
		r := float64(nonImplemented) / float64(terminal)
		switch {
		case r == 0:
			diversityScore = 1
		case r < 0.1:
			diversityScore = 3
		case r <= 0.4:
			diversityScore = 5
		case r <= 0.6:
			diversityScore = 2
		default:
			diversityScore = 0
		}
	}

	totalComments := 0
	for _, p := range proposals {
		totalComments += p.Comments
	}
	avgComments := float64(totalComments) / float64(pipeline.Total)
	depthScore := minInt(10, roundInt(10*avgComments/5))

	m.Score = clampInt(voteScore+diversityScore+depthScore, 0, 25)
	m.Reason = fmt.Sprintf("votes %d/10, outcome diversity %d/5, depth %d/10", voteScore, diversityScore, depthScore)
	return m
}

// dataWindowDays spans the earliest to latest parseable proposal creation
// time, in whole days with a floor of one. Zero means no proposals at all.
func dataWindowDays(proposals []schema.Proposal) int {
	if len(proposals) == 0 {
		return 0
	}
	var earliest, latest time.Time
	found := false
	for _, p := range proposals {
		t, ok := schema.ParseTime(p.CreatedAt)
		if !ok {
			continue
		}
		if !found {
			earliest, latest = t, t
			found = true
			continue
		}
		if t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	if !found {
		return 1
	}
	days := int(latest.Sub(earliest).Hours() / 24)
	return maxInt(1, days)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
