// Package snapstore persists governance snapshots across runs.
package snapstore

import (
	"sync"

	"github.com/agoramind/govscope/internal/contract"
)

// SnapshotStoreManager manages the SnapshotStore instance.
type SnapshotStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshots    contract.SnapshotStore
}

var _ contract.SnapshotManager = &SnapshotStoreManager{} // Compile-time check

// GetSnapshotStore returns the snapshot SnapshotStore.
func (mgr *SnapshotStoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}
