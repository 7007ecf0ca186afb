package schema

// AgentInfluence is one agent's share of total weighted governance activity.
type AgentInfluence struct {
	Login  string  `json:"login"`
	Weight float64 `json:"weight"`
	Share  float64 `json:"share"`
}

// PowerConcentration classifies how concentrated governance influence is.
type PowerConcentration struct {
	Level       PowerLevel       `json:"level"`
	TopShare    float64          `json:"topShare"`
	TopTwoShare float64          `json:"topTwoShare"`
	Influences  []AgentInfluence `json:"influences"` // sorted by descending share
	Reason      string           `json:"reason"`
}

// RoleCoverage records whether a governance role was observed active in each
// activity dimension anywhere in the data.
type RoleCoverage struct {
	Role       string `json:"role"`
	Proposing  bool   `json:"proposing"`
	Reviewing  bool   `json:"reviewing"`
	Commenting bool   `json:"commenting"`
}

// RoleDiversity scores coverage of governance activities across the known
// roles. Missing lists the human-readable role/dimension gaps.
type RoleDiversity struct {
	Score    int            `json:"score"`
	Coverage []RoleCoverage `json:"coverage"`
	Missing  []string       `json:"missing"`
	Reason   string         `json:"reason"`
}

// Responsiveness reports median response latency to new proposals.
// MedianHours is nil when no proposal had a qualifying response.
type Responsiveness struct {
	MedianHours *float64       `json:"medianHours"`
	Bucket      ResponseBucket `json:"bucket"`
	Sampled     int            `json:"sampled"`   // proposals examined
	Responded   int            `json:"responded"` // proposals with a qualifying response
	Reason      string         `json:"reason"`
}

// GovernanceBalanceAssessment is the combined balance verdict.
type GovernanceBalanceAssessment struct {
	Power          PowerConcentration `json:"power"`
	Diversity      RoleDiversity      `json:"diversity"`
	Responsiveness Responsiveness     `json:"responsiveness"`
	Verdict        BalanceVerdict     `json:"verdict"`
	VerdictReason  string             `json:"verdictReason"`
}
