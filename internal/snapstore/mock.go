package snapstore

import (
	"github.com/stretchr/testify/mock"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

// MockSnapshotManager is a mock implementation of SnapshotManager for testing.
type MockSnapshotManager struct {
	mock.Mock
}

var _ contract.SnapshotManager = &MockSnapshotManager{} // Compile-time check

// GetSnapshotStore implements the SnapshotManager interface.
func (m *MockSnapshotManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// AppendSnapshot implements the SnapshotStore interface.
func (m *MockSnapshotStore) AppendSnapshot(snap schema.GovernanceSnapshot) error {
	args := m.Called(snap)
	return args.Error(0)
}

// ListSnapshots implements the SnapshotStore interface.
func (m *MockSnapshotStore) ListSnapshots(limit int) ([]schema.GovernanceSnapshot, error) {
	args := m.Called(limit)
	snaps, _ := args.Get(0).([]schema.GovernanceSnapshot)
	return snaps, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
