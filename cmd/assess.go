package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// assessCmd runs the full governance assessment with trends and alerts.
var assessCmd = &cobra.Command{
	Use:   "assess [activity-file]",
	Short: "Run the full assessment: trends, alerts, patterns, recommendations.",
	Long: `Run the complete governance assessment over an activity export plus stored history.

Combines the current export with previously saved snapshots to produce:
- Trend summary: 7-day and 30-day deltas for the composite score and each
  sub-metric, plus the current decline streak
- Alerts: declining health, critical scores, participation collapse, pipeline
  stalls, follow-through gaps, merge queue growth, review concentration
- Patterns: rubber-stamping, single point of failure, governance debt,
  velocity cliffs, healthy growth
- Recommendations: up to five prioritized remediation actions

Snapshot history comes from the configured snapshot backend. Without stored
history, trend deltas are unavailable but current-state alerts still fire.

Examples:
  # Assess the current export against stored history
  govscope assess activity.json

  # Limit how much history feeds the trend analysis
  govscope assess activity.json --history 30

  # Full assessment as JSON for automation
  govscope assess activity.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := contract.NewLocalActivitySource(cfg.ActivityPath)
		if err := core.ExecuteAssess(rootCtx, cfg, src, snapshotManager); err != nil {
			contract.LogFatal("Cannot run assessment", err)
		}
	},
}
