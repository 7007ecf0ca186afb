// Package schema has configs, models and constants for all parts of govscope.
package schema

// ActivityData is the single input document produced by the ingestion
// pipeline. Timestamps are carried as raw strings; unparseable values are
// tolerated and simply fall outside any time-window filter.
type ActivityData struct {
	GeneratedAt  string        `json:"generatedAt"`  // When the ingestion run captured this data
	Repo         RepoInfo      `json:"repo"`         // Repository metadata
	Agents       []Agent       `json:"agents"`       // Known agent identities
	AgentStats   []AgentStat   `json:"agentStats"`   // Per-agent activity rollups
	Commits      []Commit      `json:"commits"`      // Recent commits
	Issues       []Issue       `json:"issues"`       // Open and closed issues
	PullRequests []PullRequest `json:"pullRequests"` // Open, merged and closed PRs
	Proposals    []Proposal    `json:"proposals"`    // Governance proposals
	Comments     []Comment     `json:"comments"`     // Discussion and review comments
}

// RepoInfo identifies the repository the activity was captured from.
type RepoInfo struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
}

// Agent is a known participant identity in the multi-agent project.
type Agent struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
}

// AgentStat is the per-contributor activity rollup used for role
// classification and influence weighting. An agent whose counts are all zero
// is inactive and is excluded from distribution calculations.
type AgentStat struct {
	Login        string `json:"login"`
	Commits      int    `json:"commits"`
	MergedPRs    int    `json:"mergedPRs"`
	IssuesOpened int    `json:"issuesOpened"`
	Reviews      int    `json:"reviews"`
	Comments     int    `json:"comments"`
	LastActive   string `json:"lastActive,omitempty"`
}

// Commit is a single commit captured by the ingestion run.
type Commit struct {
	SHA     string `json:"sha"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Message string `json:"message,omitempty"`
}

// Issue is a tracker item that is not a governance proposal.
type Issue struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	State     string `json:"state"`
	CreatedAt string `json:"createdAt"`
}

// PullRequest is a code change under review. Title and Body may carry
// closing-keyword references to proposal numbers.
type PullRequest struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Author    string `json:"author"`
	State     string `json:"state"` // open, merged, closed
	CreatedAt string `json:"createdAt"`
	MergedAt  string `json:"mergedAt,omitempty"`
}

// VoteTally is an optional up/down vote count on a proposal.
type VoteTally struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// PhaseTransition records the first time a proposal entered a phase.
type PhaseTransition struct {
	Phase Phase  `json:"phase"`
	At    string `json:"at"`
}

// Proposal is a governance item moving through the lifecycle phases.
// A proposal is immutable once captured; it only changes between ingestion
// cycles.
type Proposal struct {
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	Author      string            `json:"author"`
	CreatedAt   string            `json:"createdAt"`
	Phase       Phase             `json:"phase"`
	Comments    int               `json:"comments"`
	Votes       *VoteTally        `json:"votes,omitempty"`
	Transitions []PhaseTransition `json:"transitions,omitempty"`
}

// Comment is a discussion or review utterance targeting an issue, PR,
// review thread or proposal.
type Comment struct {
	ID        int64       `json:"id"`
	Number    int         `json:"number"` // Target item number
	Type      CommentType `json:"type"`
	Author    string      `json:"author"`
	Body      string      `json:"body,omitempty"`
	CreatedAt string      `json:"createdAt"`
	URL       string      `json:"url,omitempty"`
}
