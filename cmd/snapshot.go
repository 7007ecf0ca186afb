package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// snapshotCmd captures the current governance state into the snapshot store.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [activity-file]",
	Short: "Save the current governance state for trend tracking.",
	Long: `Capture a point-in-time snapshot of governance health and append it to the store.

Each snapshot records the composite health score, the four sub-metric scores,
proposal counts, active agent count and proposal velocity. Stored snapshots
feed the trends and assess commands.

Run this on a schedule (daily or per CI run) to build up history.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Examples:
  # Save a snapshot to the default SQLite store
  govscope snapshot activity.json

  # Save to a shared PostgreSQL store
  govscope snapshot activity.json --snapshot-backend postgresql \
    --snapshot-db-connect "host=db.internal port=5432 user=gov dbname=govscope"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := contract.NewLocalActivitySource(cfg.ActivityPath)
		if err := core.ExecuteSnapshot(rootCtx, cfg, src, snapshotManager); err != nil {
			contract.LogFatal("Cannot save snapshot", err)
		}
	},
}
