// Package model contains the general data models and interfaces for the favor billboard.
package model // import "github.com/favorexchange/favor-billboard/pkg/model"

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NullAddress is the sentinel address the contract uses for an unassigned party
var NullAddress = common.Address{}

// IsNullAddress returns true if the address is the unassigned sentinel
func IsNullAddress(addr common.Address) bool {
	return addr == NullAddress
}

// VoteKind is the kind of vote a party can cast on a matched favor
type VoteKind int

const (
	// VoteKindInvalid is an invalid vote kind
	VoteKindInvalid VoteKind = iota
	// VoteKindCancel is a vote to cancel the favor
	VoteKindCancel
	// VoteKindDone is a vote to mark the favor as completed
	VoteKindDone
)

func (v VoteKind) String() string {
	switch v {
	case VoteKindCancel:
		return "cancel"
	case VoteKindDone:
		return "done"
	}
	return "invalid"
}

// FavorParams are the params to initialize a new Favor
type FavorParams struct {
	ID                 common.Hash
	PrevID             common.Hash
	NextID             common.Hash
	ClientAddr         common.Address
	ProviderAddr       common.Address
	Cost               *big.Int
	Category           uint8
	Title              string
	Location           string
	Description        string
	ClientVoteCancel   bool
	ProviderVoteCancel bool
	ClientVoteDone     bool
	ProviderVoteDone   bool
	ClientName         string
	ProviderName       string
}

// NewFavor is a convenience function to init a Favor struct
func NewFavor(params *FavorParams) *Favor {
	cost := params.Cost
	if cost == nil {
		cost = big.NewInt(0)
	}
	return &Favor{
		id:                 params.ID,
		prevID:             params.PrevID,
		nextID:             params.NextID,
		clientAddr:         params.ClientAddr,
		providerAddr:       params.ProviderAddr,
		cost:               new(big.Int).Set(cost),
		category:           params.Category,
		title:              params.Title,
		location:           params.Location,
		description:        params.Description,
		clientVoteCancel:   params.ClientVoteCancel,
		providerVoteCancel: params.ProviderVoteCancel,
		clientVoteDone:     params.ClientVoteDone,
		providerVoteDone:   params.ProviderVoteDone,
		clientName:         params.ClientName,
		providerName:       params.ProviderName,
	}
}

// Favor represents a single request or offer listed on the billboard
type Favor struct {
	id common.Hash

	// links of the list kept by the contract
	prevID common.Hash
	nextID common.Hash

	clientAddr   common.Address
	providerAddr common.Address

	cost     *big.Int
	category uint8

	title       string
	location    string
	description string

	// only ever flipped to true by the respective party
	clientVoteCancel   bool
	providerVoteCancel bool
	clientVoteDone     bool
	providerVoteDone   bool

	// resolved from the user info of each party, empty until resolved
	clientName   string
	providerName string
}

// ID returns the favor identifier assigned by the contract
func (f *Favor) ID() common.Hash {
	return f.id
}

// PrevID returns the id of the previous favor in the contract list
func (f *Favor) PrevID() common.Hash {
	return f.prevID
}

// NextID returns the id of the next favor in the contract list.
// The tail of the list points to itself.
func (f *Favor) NextID() common.Hash {
	return f.nextID
}

// ClientAddr returns the address of the client, NullAddress if unassigned
func (f *Favor) ClientAddr() common.Address {
	return f.clientAddr
}

// ProviderAddr returns the address of the provider, NullAddress if unassigned
func (f *Favor) ProviderAddr() common.Address {
	return f.providerAddr
}

// Cost returns the cost of the favor in tokens
func (f *Favor) Cost() *big.Int {
	return f.cost
}

// Category returns the category index of the favor
func (f *Favor) Category() uint8 {
	return f.category
}

// Title returns the favor title
func (f *Favor) Title() string {
	return f.title
}

// Location returns the favor location
func (f *Favor) Location() string {
	return f.location
}

// Description returns the favor description
func (f *Favor) Description() string {
	return f.description
}

// ClientVoteCancel returns true if the client voted to cancel
func (f *Favor) ClientVoteCancel() bool {
	return f.clientVoteCancel
}

// ProviderVoteCancel returns true if the provider voted to cancel
func (f *Favor) ProviderVoteCancel() bool {
	return f.providerVoteCancel
}

// ClientVoteDone returns true if the client voted done
func (f *Favor) ClientVoteDone() bool {
	return f.clientVoteDone
}

// ProviderVoteDone returns true if the provider voted done
func (f *Favor) ProviderVoteDone() bool {
	return f.providerVoteDone
}

// ClientName returns the display name of the client
func (f *Favor) ClientName() string {
	return f.clientName
}

// ProviderName returns the display name of the provider
func (f *Favor) ProviderName() string {
	return f.providerName
}

// IsEmpty returns true if neither party is assigned. The contract returns such
// a record for the head of an empty list.
func (f *Favor) IsEmpty() bool {
	return IsNullAddress(f.clientAddr) && IsNullAddress(f.providerAddr)
}

// IsTail returns true if the favor is the last one in the contract list
func (f *Favor) IsTail() bool {
	return f.nextID == f.id
}

// IsParty returns true if the address is the client or the provider
func (f *Favor) IsParty(addr common.Address) bool {
	if IsNullAddress(addr) {
		return false
	}
	return f.clientAddr == addr || f.providerAddr == addr
}

// SetClientAddr sets the client address
func (f *Favor) SetClientAddr(addr common.Address) {
	f.clientAddr = addr
}

// SetProviderAddr sets the provider address
func (f *Favor) SetProviderAddr(addr common.Address) {
	f.providerAddr = addr
}

// SetClientName sets the client display name
func (f *Favor) SetClientName(name string) {
	f.clientName = name
}

// SetProviderName sets the provider display name
func (f *Favor) SetProviderName(name string) {
	f.providerName = name
}

// SetVote records a vote of the given kind for the client or provider. Votes
// are never reset.
func (f *Favor) SetVote(client bool, kind VoteKind) {
	switch kind {
	case VoteKindCancel:
		if client {
			f.clientVoteCancel = true
		} else {
			f.providerVoteCancel = true
		}
	case VoteKindDone:
		if client {
			f.clientVoteDone = true
		} else {
			f.providerVoteDone = true
		}
	}
}

// Copy returns a deep copy of the favor
func (f *Favor) Copy() *Favor {
	c := *f
	if f.cost != nil {
		c.cost = new(big.Int).Set(f.cost)
	}
	return &c
}
