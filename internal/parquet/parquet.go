// Package parquet provides data structures and functions for exporting
// governance snapshot data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/agoramind/govscope/schema"
)

// SnapshotRow represents one governance snapshot record.
// This struct maps to the governance_snapshots database table.
type SnapshotRow struct {
	// CapturedAt is the raw export timestamp of the snapshot
	CapturedAt string `parquet:"captured_at,snappy"`

	// HealthScore is the composite health score (0-100)
	HealthScore int32 `parquet:"health_score,snappy"`

	// Participation is the participation sub-metric (0-25)
	Participation int32 `parquet:"participation,snappy"`

	// PipelineFlow is the pipeline flow sub-metric (0-25)
	PipelineFlow int32 `parquet:"pipeline_flow,snappy"`

	// FollowThrough is the follow-through sub-metric (0-25)
	FollowThrough int32 `parquet:"follow_through,snappy"`

	// Consensus is the consensus sub-metric (0-25)
	Consensus int32 `parquet:"consensus,snappy"`

	// ActiveProposals is the count of proposals in a non-terminal phase
	ActiveProposals int32 `parquet:"active_proposals,snappy"`

	// TotalProposals is the count of all proposals in the export
	TotalProposals int32 `parquet:"total_proposals,snappy"`

	// ActiveAgents is the count of agents with any recorded activity
	ActiveAgents int32 `parquet:"active_agents,snappy"`

	// Velocity is the proposal creation rate in proposals per day
	Velocity float64 `parquet:"velocity,snappy"`
}

// ConvertSnapshots maps stored snapshots to their Parquet representation.
func ConvertSnapshots(snaps []schema.GovernanceSnapshot) []SnapshotRow {
	rows := make([]SnapshotRow, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, SnapshotRow{
			CapturedAt:      s.Timestamp,
			HealthScore:     int32(s.HealthScore),
			Participation:   int32(s.Participation),
			PipelineFlow:    int32(s.PipelineFlow),
			FollowThrough:   int32(s.FollowThrough),
			Consensus:       int32(s.Consensus),
			ActiveProposals: int32(s.ActiveProposals),
			TotalProposals:  int32(s.TotalProposals),
			ActiveAgents:    int32(s.ActiveAgents),
			Velocity:        s.Velocity,
		})
	}
	return rows
}

// WriteSnapshotsParquet writes a slice of SnapshotRow structs to a Parquet file.
func WriteSnapshotsParquet(data []SnapshotRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SnapshotRow struct tags
	writer := parquet.NewGenericWriter[SnapshotRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
