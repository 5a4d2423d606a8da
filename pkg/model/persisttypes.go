// Package model contains the general data models and interfaces for the favor billboard.
package model // import "github.com/favorexchange/favor-billboard/pkg/model"

import (
	"github.com/ethereum/go-ethereum/common"
)

// BillboardPersister is the interface to mirror the billboard to a store.
// The mirror is a read model only, the contract stays the source of truth.
type BillboardPersister interface {
	// FavorsByUser retrieves mirrored favors where the address is a party
	FavorsByUser(addr common.Address) ([]*Favor, error)
	// FavorByID retrieves a mirrored favor
	FavorByID(id common.Hash) (*Favor, error)
	// ReplaceFavors replaces the whole mirror with the given favors
	ReplaceFavors(favors []*Favor, user common.Address) error
	// UpsertFavor creates or updates a single favor
	UpsertFavor(favor *Favor, user common.Address) error
	// DeleteFavor removes a single favor
	DeleteFavor(id common.Hash) error
}

// SyncPersister stores information about the billboard synchronization
type SyncPersister interface {
	// LastSync returns the timestamp of the last full refresh and the last
	// block an event was applied from
	LastSync() (*SyncData, error)
	// UpdateLastRefresh saves the timestamp of the last full refresh
	UpdateLastRefresh(ts int64) error
	// UpdateLastEventBlock saves the block number of the last applied event
	UpdateLastEventBlock(blockNumber uint64) error
}

// SyncData is the last known synchronization point of the billboard
type SyncData struct {
	LastRefreshTs  int64
	LastEventBlock uint64
}

// FavorNotifier is the interface to publish favor changes to downstream consumers
type FavorNotifier interface {
	// NotifyFavor publishes the projected state of a changed favor
	NotifyFavor(favor *Favor, display Display, event Event) error
}
