package schema

// Custom string types for type safety.
type (
	// Phase represents a proposal's position in its governance lifecycle.
	Phase string

	// AgentRole represents the primary behavioral role of an agent.
	AgentRole string

	// CommentType tags the kind of item a comment targets.
	CommentType string

	// HealthBucket is the qualitative label for a composite health score.
	HealthBucket string

	// PowerLevel classifies influence concentration among agents.
	PowerLevel string

	// ResponseBucket classifies median response latency to proposals.
	ResponseBucket string

	// BalanceVerdict is the overall balance classification.
	BalanceVerdict string

	// Severity ranks how urgent an alert is.
	Severity string

	// Tone marks whether a detected pattern is a good or bad signal.
	Tone string

	// Priority ranks recommendations.
	Priority string

	// AlertType identifies a threshold-based alert.
	AlertType string

	// PatternType identifies a longer-run behavioral pattern.
	PatternType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot storage.
	DatabaseBackend string
)

// All lifecycle phases, in lifecycle order. The first four are active
// (decision pending), the last three are terminal (decision reached).
const (
	PhaseDiscussion       Phase = "discussion"
	PhaseVoting           Phase = "voting"
	PhaseExtendedVoting   Phase = "extended-voting"
	PhaseReadyToImplement Phase = "ready-to-implement"
	PhaseImplemented      Phase = "implemented"
	PhaseRejected         Phase = "rejected"
	PhaseInconclusive     Phase = "inconclusive"
)

// AllPhases lists every recognized phase in lifecycle order.
var AllPhases = []Phase{
	PhaseDiscussion,
	PhaseVoting,
	PhaseExtendedVoting,
	PhaseReadyToImplement,
	PhaseImplemented,
	PhaseRejected,
	PhaseInconclusive,
}

// IsTerminal reports whether the phase means a decision has been reached.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseImplemented, PhaseRejected, PhaseInconclusive:
		return true
	case PhaseDiscussion, PhaseVoting, PhaseExtendedVoting, PhaseReadyToImplement:
		return false
	default:
		return false // unrecognized phases are neither active nor terminal
	}
}

// IsActive reports whether the proposal is still moving through the pipeline.
func (p Phase) IsActive() bool {
	switch p {
	case PhaseDiscussion, PhaseVoting, PhaseExtendedVoting, PhaseReadyToImplement:
		return true
	default:
		return false
	}
}

// IsKnown reports whether the phase value is part of the closed enumeration.
func (p Phase) IsKnown() bool {
	return p.IsActive() || p.IsTerminal()
}

// All agent roles, in tie-breaking order. When an agent's normalized role
// scores tie, the first role in this order wins.
const (
	RoleCoder      AgentRole = "coder"
	RoleReviewer   AgentRole = "reviewer"
	RoleProposer   AgentRole = "proposer"
	RoleDiscussant AgentRole = "discussant"
)

// AllAgentRoles lists the role dimensions in tie-breaking order.
var AllAgentRoles = []AgentRole{RoleCoder, RoleReviewer, RoleProposer, RoleDiscussant}

// All comment target types.
const (
	CommentIssue    CommentType = "issue"
	CommentPR       CommentType = "pr"
	CommentReview   CommentType = "review"
	CommentProposal CommentType = "proposal"
)

// All health buckets.
const (
	BucketThriving  HealthBucket = "Thriving"
	BucketHealthy   HealthBucket = "Healthy"
	BucketAttention HealthBucket = "Needs Attention"
	BucketCritical  HealthBucket = "Critical"
)

// All power concentration levels, from healthy to unhealthy.
const (
	PowerBalanced     PowerLevel = "balanced"
	PowerModerate     PowerLevel = "moderate"
	PowerConcentrated PowerLevel = "concentrated"
	PowerOligarchy    PowerLevel = "oligarchy"
)

// All responsiveness buckets.
const (
	ResponseHighly     ResponseBucket = "highly-responsive"
	ResponseResponsive ResponseBucket = "responsive"
	ResponseSlow       ResponseBucket = "slow"
	ResponseConcerning ResponseBucket = "concerning"
	ResponseNoData     ResponseBucket = "no-data"
)

// All balance verdicts.
const (
	VerdictBalanced         BalanceVerdict = "balanced"
	VerdictMostlyBalanced   BalanceVerdict = "mostly-balanced"
	VerdictImbalanced       BalanceVerdict = "imbalanced"
	VerdictInsufficientData BalanceVerdict = "insufficient-data"
)

// All alert severities.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// All pattern tones.
const (
	ToneNegative Tone = "negative"
	TonePositive Tone = "positive"
)

// All recommendation priorities, highest first.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// All alert types.
const (
	AlertHealthDeclining       AlertType = "health-declining"
	AlertHealthCritical        AlertType = "health-critical"
	AlertParticipationCollapse AlertType = "participation-collapse"
	AlertPipelineStall         AlertType = "pipeline-stall"
	AlertFollowThroughGap      AlertType = "follow-through-gap"
	AlertMergeQueueGrowth      AlertType = "merge-queue-growth"
	AlertReviewConcentration   AlertType = "review-concentration"
)

// All pattern types.
const (
	PatternRubberStamping       PatternType = "rubber-stamping"
	PatternSinglePointOfFailure PatternType = "single-point-of-failure"
	PatternGovernanceDebt       PatternType = "governance-debt"
	PatternVelocityCliff        PatternType = "velocity-cliff"
	PatternHealthyGrowth        PatternType = "healthy-growth"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid snapshot backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GovernanceRoles are the four role identities agent logins are mapped to
// for diversity coverage. Matching is a case-insensitive substring check.
var GovernanceRoles = []string{"planner", "builder", "reviewer", "tester"}

// GovernanceDimensions are the activity dimensions tracked per role.
var GovernanceDimensions = []string{"proposing", "reviewing", "commenting"}

// SystemAccounts are logins treated as automation even without a bot suffix.
var SystemAccounts = map[string]struct{}{
	"governance-bot": {},
}
