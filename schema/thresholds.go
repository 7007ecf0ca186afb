package schema

// Thresholds collects every numeric cutoff the engine consults, so tests and
// deployments can override them from one place instead of scattering module
// constants.
type Thresholds struct {
	// Health bucket cutoffs on the 0-100 composite.
	ThrivingMin  int `json:"thrivingMin"`
	HealthyMin   int `json:"healthyMin"`
	AttentionMin int `json:"attentionMin"`

	// Alert cutoffs.
	DeclineStreak         int     `json:"declineStreak"`         // consecutive drops before health-declining
	CriticalScore         int     `json:"criticalScore"`         // both recent snapshots below this fires health-critical
	ParticipationDrop     int     `json:"participationDrop"`     // 7d participation delta below -N fires participation-collapse
	FollowThroughGap      int     `json:"followThroughGap"`      // ready proposals without an open PR before the gap alert
	QueueOpenMin          int     `json:"queueOpenMin"`          // open PRs needed before merge-queue-growth is considered
	QueueRatio            float64 `json:"queueRatio"`            // open count must exceed ratio x recent merges
	QueueMergeWindowHours float64 `json:"queueMergeWindowHours"` // merge recency window anchored to generatedAt
	ReviewShare           float64 `json:"reviewShare"`           // single-agent review share before review-concentration

	// Balance cutoffs.
	OligarchyTopTwoShare float64 `json:"oligarchyTopTwoShare"`
	ConcentratedTopShare float64 `json:"concentratedTopShare"`
	ModerateTopShare     float64 `json:"moderateTopShare"`
	FastResponseHours    float64 `json:"fastResponseHours"`
	NormalResponseHours  float64 `json:"normalResponseHours"`
	SlowResponseHours    float64 `json:"slowResponseHours"`

	// Pattern cutoffs.
	DominantShare       float64 `json:"dominantShare"`       // top influence share before single-point-of-failure
	RubberStampApproval float64 `json:"rubberStampApproval"` // approval rate above this suggests rubber-stamping
	RubberStampComments float64 `json:"rubberStampComments"` // average comments below this suggests rubber-stamping
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ThrivingMin:  75,
		HealthyMin:   50,
		AttentionMin: 25,

		DeclineStreak:         3,
		CriticalScore:         25,
		ParticipationDrop:     10,
		FollowThroughGap:      5,
		QueueOpenMin:          10,
		QueueRatio:            3,
		QueueMergeWindowHours: 48,
		ReviewShare:           0.6,

		OligarchyTopTwoShare: 0.7,
		ConcentratedTopShare: 0.4,
		ModerateTopShare:     0.3,
		FastResponseHours:    2,
		NormalResponseHours:  8,
		SlowResponseHours:    24,

		DominantShare:       0.5,
		RubberStampApproval: 0.95,
		RubberStampComments: 2,
	}
}

// BucketFor maps a composite health score to its qualitative bucket.
func (t Thresholds) BucketFor(score int) HealthBucket {
	switch {
	case score >= t.ThrivingMin:
		return BucketThriving
	case score >= t.HealthyMin:
		return BucketHealthy
	case score >= t.AttentionMin:
		return BucketAttention
	default:
		return BucketCritical
	}
}
