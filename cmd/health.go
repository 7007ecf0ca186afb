package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// healthCmd computes the composite governance health score.
var healthCmd = &cobra.Command{
	Use:   "health [activity-file]",
	Short: "Score the overall health of project governance.",
	Long: `Compute a composite governance health score from a governance activity export.

The score combines four equally weighted sub-metrics, each worth up to 25 points:
- Participation: how evenly proposal authorship is spread across active agents
- Pipeline flow: whether proposals progress through phases instead of stalling
- Follow-through: whether approved proposals actually get implemented
- Consensus quality: voting turnout, outcome diversity and discussion depth

The composite is rounded to the nearest multiple of 5 and mapped to a bucket
(thriving, healthy, needs-attention, unhealthy) using configurable cutoffs.

Examples:
  # Score a governance activity export
  govscope health activity.json

  # Read the export from stdin
  cat activity.json | govscope health -

  # Emit the full breakdown as JSON
  govscope health activity.json --output json

  # Write the breakdown to CSV for tracking
  govscope health activity.json --output csv --output-file health.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := contract.NewLocalActivitySource(cfg.ActivityPath)
		if err := core.ExecuteHealth(rootCtx, cfg, src); err != nil {
			contract.LogFatal("Cannot run health analysis", err)
		}
	},
}
