package persistence

import (
	"github.com/favorexchange/favor-billboard/pkg/model"
)

// NewMemorySyncPersister creates a sync persister that only keeps the
// synchronization point in memory
func NewMemorySyncPersister() *MemorySyncPersister {
	return &MemorySyncPersister{}
}

// MemorySyncPersister stores the synchronization point for the lifetime of
// the process
type MemorySyncPersister struct {
	lastRefreshTs  int64
	lastEventBlock uint64
}

// LastSync returns the last synchronization point
func (m *MemorySyncPersister) LastSync() (*model.SyncData, error) {
	return &model.SyncData{
		LastRefreshTs:  m.lastRefreshTs,
		LastEventBlock: m.lastEventBlock,
	}, nil
}

// UpdateLastRefresh saves the timestamp of the last full refresh
func (m *MemorySyncPersister) UpdateLastRefresh(ts int64) error {
	m.lastRefreshTs = ts
	return nil
}

// UpdateLastEventBlock saves the block number of the last applied event
func (m *MemorySyncPersister) UpdateLastEventBlock(blockNumber uint64) error {
	if blockNumber > m.lastEventBlock {
		m.lastEventBlock = blockNumber
	}
	return nil
}
