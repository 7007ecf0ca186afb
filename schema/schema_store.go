package schema

import "time"

// GovernanceSnapshot is a persisted point-in-time health record. Snapshots
// form an append-only sequence ordered by timestamp; the assessment engine
// only ever reads them.
type GovernanceSnapshot struct {
	Timestamp       string  `json:"timestamp"`
	HealthScore     int     `json:"healthScore"`
	Participation   int     `json:"participation"`
	PipelineFlow    int     `json:"pipelineFlow"`
	FollowThrough   int     `json:"followThrough"`
	Consensus       int     `json:"consensus"`
	ActiveProposals int     `json:"activeProposals"`
	TotalProposals  int     `json:"totalProposals"`
	ActiveAgents    int     `json:"activeAgents"`
	Velocity        float64 `json:"velocity"` // proposals per day over the data window
}

// Time returns the parsed snapshot timestamp; the zero time when malformed.
func (s GovernanceSnapshot) Time() time.Time {
	t, _ := ParseTime(s.Timestamp)
	return t
}

// StoreStatus reports the state of the snapshot store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalSnapshots int       `json:"total_snapshots"`
	LastSnapshot   time.Time `json:"last_snapshot"`
	OldestSnapshot time.Time `json:"oldest_snapshot"`
}
