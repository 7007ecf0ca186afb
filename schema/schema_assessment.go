package schema

// Alert is a threshold-based signal derived from current activity and the
// snapshot history. Alerts are recomputed on every call and never persisted.
type Alert struct {
	Type     AlertType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
}

// Pattern is a longer-run behavioral signal.
type Pattern struct {
	Type    PatternType `json:"type"`
	Tone    Tone        `json:"tone"`
	Message string      `json:"message"`
}

// Recommendation is a prioritized action derived from a firing alert or
// pattern. At most one recommendation exists per source type.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Source   string   `json:"source"` // the alert or pattern type that produced it
	Action   string   `json:"action"`
}

// TrendSummary holds period-over-period deltas computed from the snapshot
// history. A nil delta means no snapshot existed at or before the reference
// point. ConsecutiveDeclines counts strictly decreasing health scores
// walking backward from the latest snapshot.
type TrendSummary struct {
	HealthDelta7d        *int `json:"healthDelta7d"`
	HealthDelta30d       *int `json:"healthDelta30d"`
	ParticipationDelta7d *int `json:"participationDelta7d"`
	PipelineDelta7d      *int `json:"pipelineDelta7d"`
	FollowThroughDelta7d *int `json:"followThroughDelta7d"`
	ConsensusDelta7d     *int `json:"consensusDelta7d"`
	ConsecutiveDeclines  int  `json:"consecutiveDeclines"`
}

// GovernanceAssessment is the full trend/alert/pattern output. The
// recommendation list is sorted by priority and capped at five entries.
type GovernanceAssessment struct {
	Alerts          []Alert          `json:"alerts"`
	Patterns        []Pattern        `json:"patterns"`
	Recommendations []Recommendation `json:"recommendations"`
	Trend           TrendSummary     `json:"trend"`
}
