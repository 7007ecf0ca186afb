package snapstore

import (
	"errors"
	"fmt"

	"github.com/agoramind/govscope/internal/parquet"
)

// ExecuteSnapshotExport exports stored snapshots to a Parquet file.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalSnapshots == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total snapshots: %d\n", status.TotalSnapshots)

	snaps, err := store.ListSnapshots(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshots: %w", err)
	}

	rows := parquet.ConvertSnapshots(snaps)
	if err := parquet.WriteSnapshotsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	fmt.Printf("Exported %d snapshots to: %s\n", len(rows), outputFile)

	return nil
}
