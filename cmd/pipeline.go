package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// pipelineCmd summarizes proposal flow and agent roles.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline [activity-file]",
	Short: "Summarize proposal flow, agent roles and throughput.",
	Long: `Summarize the proposal pipeline from a governance activity export.

Reports three views:
- Phase summary: how many proposals sit in each lifecycle phase
  (discussion, voting, ready-to-implement, implemented, rejected, inconclusive)
- Agent roles: normalized coder/reviewer/proposer/discussant scores per agent,
  with the primary role highlighted when one clearly dominates
- Throughput: median hours between phase entries and from creation to resolution

Examples:
  # Summarize the pipeline
  govscope pipeline activity.json

  # Get machine-readable role scores
  govscope pipeline activity.json --output json

  # Track throughput over time via CSV exports
  govscope pipeline activity.json --output csv --output-file pipeline.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := contract.NewLocalActivitySource(cfg.ActivityPath)
		if err := core.ExecutePipeline(rootCtx, cfg, src); err != nil {
			contract.LogFatal("Cannot run pipeline analysis", err)
		}
	},
}
