// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/agoramind/govscope/schema"
)

// ActivitySource defines how governance activity data is loaded.
// This allows the core analysis logic to be tested without touching disk.
type ActivitySource interface {
	// Load reads and decodes one activity export.
	Load(ctx context.Context) (*schema.ActivityData, error)
}

// SnapshotManager defines the interface for managing snapshot stores.
// This allows the storage layer to be mocked for testing.
type SnapshotManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore defines the interface for snapshot persistence.
type SnapshotStore interface {
	// AppendSnapshot persists one snapshot row.
	AppendSnapshot(snap schema.GovernanceSnapshot) error

	// ListSnapshots returns up to limit snapshots, oldest first.
	// A limit of zero means no limit.
	ListSnapshots(limit int) ([]schema.GovernanceSnapshot, error)

	// GetStatus returns status information about the snapshot store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all stored snapshots.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
