package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd reports health movement across stored snapshots.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show governance health movement across stored snapshots.",
	Long: `Report how governance health has moved over stored snapshot history.

Shows each stored snapshot alongside the trend summary:
- 7-day deltas for the composite score and every sub-metric
- 30-day delta for the composite score
- Current streak of consecutive composite declines

Requires at least two stored snapshots for deltas. Use the snapshot command
on a schedule to accumulate history.

Examples:
  # Show trends over the default history window
  govscope trends

  # Consider only the most recent 14 snapshots
  govscope trends --history 14

  # Emit the snapshots and trend summary as JSON
  govscope trends --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run trends analysis", err)
		}
	},
}
