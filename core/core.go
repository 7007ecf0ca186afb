// Package core has core logic for governance health scoring, balance
// assessment and trend analysis.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/internal/outwriter"
	"github.com/agoramind/govscope/schema"
)

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) error

// GetHealthResult loads activity data and computes the health score.
// It is the shared entry point for the CLI and the MCP server.
func GetHealthResult(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) (schema.GovernanceHealthScore, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return schema.GovernanceHealthScore{}, err
	}
	return ComputeHealthScore(data, cfg.Thresholds), nil
}

// GetBalanceResult loads activity data and computes the balance assessment.
func GetBalanceResult(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) (schema.GovernanceBalanceAssessment, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return schema.GovernanceBalanceAssessment{}, err
	}
	return ComputeBalance(data, cfg.Thresholds), nil
}

// GetPipelineResult loads activity data and computes the pipeline report.
func GetPipelineResult(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) (schema.PipelineReport, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return schema.PipelineReport{}, err
	}
	return schema.PipelineReport{
		Pipeline:   ComputePipeline(data.Proposals),
		Roles:      ComputeAgentRoles(data.AgentStats, data.Proposals),
		Throughput: ComputeThroughput(data.Proposals),
	}, nil
}

// GetAssessmentResult loads activity data plus stored history and computes
// the full assessment.
func GetAssessmentResult(ctx context.Context, cfg *contract.Config, src contract.ActivitySource, mgr contract.SnapshotManager) (schema.GovernanceAssessment, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return schema.GovernanceAssessment{}, err
	}
	history, err := mgr.GetSnapshotStore().ListSnapshots(cfg.HistoryLimit)
	if err != nil {
		return schema.GovernanceAssessment{}, fmt.Errorf("list snapshots: %w", err)
	}
	return ComputeAssessment(data, history, cfg.Thresholds), nil
}

// GetTrendResult computes the trend summary over stored snapshots.
func GetTrendResult(cfg *contract.Config, mgr contract.SnapshotManager) (schema.TrendSummary, []schema.GovernanceSnapshot, error) {
	history, err := mgr.GetSnapshotStore().ListSnapshots(cfg.HistoryLimit)
	if err != nil {
		return schema.TrendSummary{}, nil, fmt.Errorf("list snapshots: %w", err)
	}
	ordered := SortSnapshots(history)
	return ComputeTrend(ordered), ordered, nil
}

// ExecuteHealth runs the health score analysis and prints results.
// It serves as the main entry point for the 'health' mode.
func ExecuteHealth(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) error {
	start := time.Now()
	result, err := GetHealthResult(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.PrintHealthScore(result, cfg, time.Since(start))
}

// ExecuteBalance runs the balance assessment and prints results.
// It serves as the main entry point for the 'balance' mode.
func ExecuteBalance(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) error {
	start := time.Now()
	result, err := GetBalanceResult(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.PrintBalance(result, cfg, time.Since(start))
}

// ExecutePipeline runs the pipeline analysis and prints results.
// It serves as the main entry point for the 'pipeline' mode.
func ExecutePipeline(ctx context.Context, cfg *contract.Config, src contract.ActivitySource) error {
	start := time.Now()
	result, err := GetPipelineResult(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.PrintPipeline(result, cfg, time.Since(start))
}

// ExecuteAssess runs the full assessment against stored history and prints results.
// It serves as the main entry point for the 'assess' mode.
func ExecuteAssess(ctx context.Context, cfg *contract.Config, src contract.ActivitySource, mgr contract.SnapshotManager) error {
	start := time.Now()
	result, err := GetAssessmentResult(ctx, cfg, src, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintAssessment(result, cfg, time.Since(start))
}

// ExecuteSnapshot condenses the current activity data into a snapshot row
// and appends it to the snapshot store.
func ExecuteSnapshot(ctx context.Context, cfg *contract.Config, src contract.ActivitySource, mgr contract.SnapshotManager) error {
	data, err := src.Load(ctx)
	if err != nil {
		return err
	}
	snap := BuildSnapshot(data, cfg.Thresholds)
	if err := mgr.GetSnapshotStore().AppendSnapshot(snap); err != nil {
		return fmt.Errorf("append snapshot: %w", err)
	}
	return outwriter.PrintSnapshotSaved(snap, cfg)
}

// ExecuteTrends prints the trend summary plus the recent snapshot history.
// It serves as the main entry point for the 'trends' mode.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	trend, ordered, err := GetTrendResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintTrends(trend, ordered, cfg, time.Since(start))
}
