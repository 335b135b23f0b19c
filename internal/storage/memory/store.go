package memory

import (
	"context"
	"sync"

	interfaces "github.com/sachinparyani/TransactionProcessor/internal/interfaces"
	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

// MemorySnapshotStore is an in-memory implementation of
// interfaces.SnapshotStore. It keeps the last saved snapshot and is mainly
// used by tests standing in for the postgres store.
type MemorySnapshotStore struct {
	mu       sync.Mutex
	accounts map[models.ClientID]models.ClientAccount
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

// SaveSnapshot replaces the stored snapshot with a copy of accounts.
func (m *MemorySnapshotStore) SaveSnapshot(ctx context.Context, accounts map[models.ClientID]models.ClientAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[models.ClientID]models.ClientAccount, len(accounts))
	for id, acct := range accounts {
		copied[id] = acct
	}
	m.accounts = copied
	return nil
}

// Snapshot returns a copy of the last saved snapshot, or nil if none was
// saved yet.
func (m *MemorySnapshotStore) Snapshot() map[models.ClientID]models.ClientAccount {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accounts == nil {
		return nil
	}
	copied := make(map[models.ClientID]models.ClientAccount, len(m.accounts))
	for id, acct := range m.accounts {
		copied[id] = acct
	}
	return copied
}

// Compile-time check: ensure MemorySnapshotStore implements SnapshotStore.
var _ interfaces.SnapshotStore = (*MemorySnapshotStore)(nil)
