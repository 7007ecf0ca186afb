package schema

// PipelineSummary tallies proposals per lifecycle phase. No proposal is
// counted in more than one bucket; proposals with an unrecognized phase only
// appear in Total.
type PipelineSummary struct {
	Discussion       int `json:"discussion"`
	Voting           int `json:"voting"`
	ExtendedVoting   int `json:"extendedVoting"`
	ReadyToImplement int `json:"readyToImplement"`
	Implemented      int `json:"implemented"`
	Rejected         int `json:"rejected"`
	Inconclusive     int `json:"inconclusive"`
	Total            int `json:"total"`
}

// Terminal returns the count of proposals that reached a decision.
func (p PipelineSummary) Terminal() int {
	return p.Implemented + p.Rejected + p.Inconclusive
}

// Progressed returns the count of proposals that have left discussion.
func (p PipelineSummary) Progressed() int {
	return p.Voting + p.ExtendedVoting + p.ReadyToImplement + p.Terminal()
}

// PipelineReport bundles the full pipeline view: phase tallies, per-agent
// role classification and stage throughput.
type PipelineReport struct {
	Pipeline   PipelineSummary   `json:"pipeline"`
	Roles      []AgentRoleResult `json:"roles"`
	Throughput ThroughputStats   `json:"throughput"`
}

// AgentRoleResult holds the normalized role scores for one agent and the
// primary role derived from them. Primary is nil when all raw scores are
// zero; an idle agent has no role rather than defaulting to coder.
type AgentRoleResult struct {
	Login   string                `json:"login"`
	Scores  map[AgentRole]float64 `json:"scores"`
	Primary *AgentRole            `json:"primary"`
}

// ThroughputStats reports median stage durations in hours, derived from
// phase-transition timestamps. A nil median means no proposal produced a
// usable duration for that stage.
type ThroughputStats struct {
	DiscussionToVotingHours *float64 `json:"discussionToVotingHours"`
	VotingToTerminalHours   *float64 `json:"votingToTerminalHours"`
	CreationToTerminalHours *float64 `json:"creationToTerminalHours"`
	Resolved                int      `json:"resolved"`
	Active                  int      `json:"active"`
}
