package schema

import (
	"strings"
	"time"
)

// ParseTime parses an activity timestamp. Accepts RFC3339 with or without
// fractional seconds. The second return value is false for empty or
// malformed values; callers treat those as not matching any time window.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsAutomation reports whether a login belongs to an automation identity.
// Bot markers are a "[bot]" or "-bot" suffix; SystemAccounts lists known
// system logins without a marker.
func IsAutomation(login string) bool {
	lower := strings.ToLower(login)
	if strings.HasSuffix(lower, "[bot]") || strings.HasSuffix(lower, "-bot") {
		return true
	}
	_, ok := SystemAccounts[lower]
	return ok
}

// IsInactive reports whether an agent rollup has all-zero counts. Inactive
// agents are excluded from distribution calculations so they cannot distort
// equality measures.
func (s AgentStat) IsInactive() bool {
	return s.Commits == 0 && s.MergedPRs == 0 && s.IssuesOpened == 0 &&
		s.Reviews == 0 && s.Comments == 0
}

// Total returns the total vote count in a tally.
func (v VoteTally) Total() int {
	return v.Up + v.Down
}
