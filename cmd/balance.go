package cmd

import (
	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/spf13/cobra"
)

// balanceCmd assesses how evenly governance power is distributed.
var balanceCmd = &cobra.Command{
	Use:   "balance [activity-file]",
	Short: "Assess how evenly governance power is distributed.",
	Long: `Assess the balance of governance power across agents.

Evaluates three dimensions from a governance activity export:
- Power concentration: weighted influence per agent (authorship, reviews, comments)
  and whether the top agents hold an outsized share
- Role diversity: which governance roles are active across proposing, reviewing
  and commenting, and which combinations are missing
- Responsiveness: median time from proposal creation to first substantive comment

The dimensions combine into a verdict: balanced, mostly-balanced, imbalanced,
or insufficient-data when there is too little activity to judge.

Examples:
  # Assess a governance activity export
  govscope balance activity.json

  # Inspect the per-agent influence table as JSON
  govscope balance activity.json --output json

  # Export the assessment for reporting
  govscope balance activity.json --output csv --output-file balance.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := contract.NewLocalActivitySource(cfg.ActivityPath)
		if err := core.ExecuteBalance(rootCtx, cfg, src); err != nil {
			contract.LogFatal("Cannot run balance analysis", err)
		}
	},
}
