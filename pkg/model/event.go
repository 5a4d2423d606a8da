package model

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FinalOutcome is how a favor left the billboard
type FinalOutcome int

const (
	// FinalOutcomeCancelled means both parties voted to cancel
	FinalOutcomeCancelled FinalOutcome = iota
	// FinalOutcomeDone means both parties voted done
	FinalOutcomeDone
)

func (o FinalOutcome) String() string {
	if o == FinalOutcomeDone {
		return "done"
	}
	return "cancelled"
}

// EventMeta is the block data of the log an event was decoded from
// NOTE: This is not secured by consensus until enough confirmations
type EventMeta struct {
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Event is an event emitted by the favor exchange contract. The set of
// implementations is closed, consumers switch on the concrete type.
type Event interface {
	// Name returns the contract event name
	Name() string
	// Meta returns the block data for the event
	Meta() EventMeta
	isEvent()
}

// FavorCreated is emitted when a new request or offer is listed
type FavorCreated struct {
	EventMeta
	ID common.Hash
}

// Name returns the contract event name
func (e *FavorCreated) Name() string { return "FavorCreated" }

// Meta returns the block data for the event
func (e *FavorCreated) Meta() EventMeta { return e.EventMeta }

func (e *FavorCreated) isEvent() {}

func (e *FavorCreated) String() string {
	return fmt.Sprintf("FavorCreated(%v)", e.ID.Hex())
}

// FavorMatched is emitted when a user accepts a favor
type FavorMatched struct {
	EventMeta
	ID    common.Hash
	Actor common.Address
}

// Name returns the contract event name
func (e *FavorMatched) Name() string { return "FavorMatched" }

// Meta returns the block data for the event
func (e *FavorMatched) Meta() EventMeta { return e.EventMeta }

func (e *FavorMatched) isEvent() {}

func (e *FavorMatched) String() string {
	return fmt.Sprintf("FavorMatched(%v, %v)", e.ID.Hex(), e.Actor.Hex())
}

// FavorVoteCast is emitted when one party votes to cancel or complete a favor
type FavorVoteCast struct {
	EventMeta
	ID    common.Hash
	Actor common.Address
	Kind  VoteKind
}

// Name returns the contract event name
func (e *FavorVoteCast) Name() string {
	if e.Kind == VoteKindDone {
		return "FavorVoteDone"
	}
	return "FavorVoteCancel"
}

// Meta returns the block data for the event
func (e *FavorVoteCast) Meta() EventMeta { return e.EventMeta }

func (e *FavorVoteCast) isEvent() {}

func (e *FavorVoteCast) String() string {
	return fmt.Sprintf("%v(%v, %v)", e.Name(), e.ID.Hex(), e.Actor.Hex())
}

// FavorFinalized is emitted once both parties agreed on cancel or done
type FavorFinalized struct {
	EventMeta
	ID      common.Hash
	Outcome FinalOutcome
}

// Name returns the contract event name
func (e *FavorFinalized) Name() string {
	if e.Outcome == FinalOutcomeDone {
		return "FavorDone"
	}
	return "FavorCancel"
}

// Meta returns the block data for the event
func (e *FavorFinalized) Meta() EventMeta { return e.EventMeta }

func (e *FavorFinalized) isEvent() {}

func (e *FavorFinalized) String() string {
	return fmt.Sprintf("%v(%v)", e.Name(), e.ID.Hex())
}

// BalanceChanged is emitted when the token balance of a user changes
type BalanceChanged struct {
	EventMeta
	User    common.Address
	Balance *big.Int
}

// Name returns the contract event name
func (e *BalanceChanged) Name() string { return "BalanceChanged" }

// Meta returns the block data for the event
func (e *BalanceChanged) Meta() EventMeta { return e.EventMeta }

func (e *BalanceChanged) isEvent() {}

func (e *BalanceChanged) String() string {
	return fmt.Sprintf("BalanceChanged(%v, %v)", e.User.Hex(), e.Balance)
}
