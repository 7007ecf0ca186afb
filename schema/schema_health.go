package schema

// Sub-metric keys used by the health scorer.
const (
	MetricParticipation = "participation"
	MetricPipelineFlow  = "pipeline"
	MetricFollowThrough = "followthrough"
	MetricConsensus     = "consensus"
)

// SubMetric is one of the four independently bounded [0,25] health
// dimensions.
type SubMetric struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// GovernanceHealthScore is the composite health result: the four sub-metrics
// summed, rounded to the nearest multiple of 5 and bucketed. DataWindowDays
// reports how many calendar days of proposal history back the score.
type GovernanceHealthScore struct {
	Score          int          `json:"score"`
	Bucket         HealthBucket `json:"bucket"`
	Metrics        []SubMetric  `json:"metrics"`
	DataWindowDays int          `json:"dataWindowDays"`
}

// Metric returns the sub-metric with the given key, or a zero value when the
// key is unknown.
func (g GovernanceHealthScore) Metric(key string) SubMetric {
	for _, m := range g.Metrics {
		if m.Key == key {
			return m
		}
	}
	return SubMetric{}
}
