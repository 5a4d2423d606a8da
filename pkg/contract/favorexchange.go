package contract

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

// NewFavorExchange binds a FavorExchange contract deployed at the given address
func NewFavorExchange(address common.Address, backend bind.ContractBackend) (*FavorExchange, error) {
	parsed, err := abi.JSON(strings.NewReader(FavorExchangeABI))
	if err != nil {
		return nil, errors.WithMessage(err, "error parsing favor exchange abi")
	}
	eventNames, err := eventTopics(parsed, EventTypesFavorExchange())
	if err != nil {
		return nil, err
	}
	return &FavorExchange{
		address:    address,
		eventNames: eventNames,
		backend:    backend,
		contract:   bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// FavorExchange is the binding to the favor exchange contract. Calls return
// domain models, raw contract values stay inside this package.
type FavorExchange struct {
	address common.Address
	// event names by topic id, only the events in EventTypesFavorExchange
	eventNames map[common.Hash]string
	backend    bind.ContractBackend
	contract   *bind.BoundContract
}

// Address returns the address of the bound contract
func (f *FavorExchange) Address() common.Address {
	return f.address
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// FavorListHeadID returns the id of the first favor in the contract list
func (f *FavorExchange) FavorListHeadID(ctx context.Context) (common.Hash, error) {
	ret0 := new([32]byte)
	err := f.contract.Call(callOpts(ctx), ret0, "favorGetListHeadId")
	if err != nil {
		return common.Hash{}, errors.WithMessage(err, "error calling favorGetListHeadId")
	}
	return common.Hash(*ret0), nil
}

// Favor returns the favor with the given id, combining its info and vote flags.
// Display names are left empty.
func (f *FavorExchange) Favor(ctx context.Context, id common.Hash) (*model.Favor, error) {
	var (
		prevID       = new([32]byte)
		nextID       = new([32]byte)
		clientAddr   = new(common.Address)
		providerAddr = new(common.Address)
		cost         = new(*big.Int)
		title        = new([32]byte)
		location     = new([32]byte)
		description  = new([32]byte)
		category     = new(uint8)
	)
	info := &[]interface{}{
		prevID,
		nextID,
		clientAddr,
		providerAddr,
		cost,
		title,
		location,
		description,
		category,
	}
	err := f.contract.Call(callOpts(ctx), info, "favorGetInfo", [32]byte(id))
	if err != nil {
		return nil, errors.WithMessagef(err, "error calling favorGetInfo for %v", id.Hex())
	}

	var (
		clientVoteDone     = new(bool)
		providerVoteDone   = new(bool)
		clientVoteCancel   = new(bool)
		providerVoteCancel = new(bool)
	)
	flags := &[]interface{}{
		clientVoteDone,
		providerVoteDone,
		clientVoteCancel,
		providerVoteCancel,
	}
	err = f.contract.Call(callOpts(ctx), flags, "favorGetFlags", [32]byte(id))
	if err != nil {
		return nil, errors.WithMessagef(err, "error calling favorGetFlags for %v", id.Hex())
	}

	return model.NewFavor(&model.FavorParams{
		ID:                 id,
		PrevID:             common.Hash(*prevID),
		NextID:             common.Hash(*nextID),
		ClientAddr:         *clientAddr,
		ProviderAddr:       *providerAddr,
		Cost:               *cost,
		Category:           *category,
		Title:              BytesToString(*title),
		Location:           BytesToString(*location),
		Description:        BytesToString(*description),
		ClientVoteCancel:   *clientVoteCancel,
		ProviderVoteCancel: *providerVoteCancel,
		ClientVoteDone:     *clientVoteDone,
		ProviderVoteDone:   *providerVoteDone,
	}), nil
}

// UserInfo returns the public profile of a user
func (f *FavorExchange) UserInfo(ctx context.Context, addr common.Address) (*model.UserInfo, error) {
	var (
		balance      = new(*big.Int)
		isRegistered = new(bool)
		name         = new([32]byte)
		publicKey    = new([32]byte)
		contactInfo  = new([32]byte)
	)
	out := &[]interface{}{
		balance,
		isRegistered,
		name,
		publicKey,
		contactInfo,
	}
	err := f.contract.Call(callOpts(ctx), out, "userGetInfo", addr)
	if err != nil {
		return nil, errors.WithMessagef(err, "error calling userGetInfo for %v", addr.Hex())
	}
	return model.NewUserInfo(&model.UserInfoParams{
		Address:      addr,
		Balance:      *balance,
		IsRegistered: *isRegistered,
		Name:         BytesToString(*name),
		PublicKey:    BytesToString(*publicKey),
		ContactInfo:  BytesToString(*contactInfo),
	}), nil
}

// BalanceOf returns the token balance of an address
func (f *FavorExchange) BalanceOf(ctx context.Context, addr common.Address) (*big.Int, error) {
	ret0 := new(*big.Int)
	err := f.contract.Call(callOpts(ctx), ret0, "balanceOf", addr)
	if err != nil {
		return nil, errors.WithMessage(err, "error calling balanceOf")
	}
	return *ret0, nil
}

// TotalSupply returns the total token supply
func (f *FavorExchange) TotalSupply(ctx context.Context) (*big.Int, error) {
	ret0 := new(*big.Int)
	err := f.contract.Call(callOpts(ctx), ret0, "totalSupply")
	if err != nil {
		return nil, errors.WithMessage(err, "error calling totalSupply")
	}
	return *ret0, nil
}

// FavorRequestCreate lists a new favor request, the sender becomes the client
func (f *FavorExchange) FavorRequestCreate(opts *bind.TransactOpts, cost *big.Int, title [32]byte,
	location [32]byte, description [32]byte, category uint8) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorRequestCreate", cost, title, location, description, category)
}

// FavorOfferCreate lists a new favor offer, the sender becomes the provider
func (f *FavorExchange) FavorOfferCreate(opts *bind.TransactOpts, cost *big.Int, title [32]byte,
	location [32]byte, description [32]byte, category uint8) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorOfferCreate", cost, title, location, description, category)
}

// FavorRequestAccept accepts a request, the sender becomes the provider
func (f *FavorExchange) FavorRequestAccept(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorRequestAccept", [32]byte(id))
}

// FavorOfferAccept accepts an offer, the sender becomes the client
func (f *FavorExchange) FavorOfferAccept(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorOfferAccept", [32]byte(id))
}

// FavorVoteCancel votes to cancel a matched favor
func (f *FavorExchange) FavorVoteCancel(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorVoteCancel", [32]byte(id))
}

// FavorVoteDone votes that a matched favor is completed
func (f *FavorExchange) FavorVoteDone(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error) {
	return f.contract.Transact(opts, "favorVoteDone", [32]byte(id))
}

// UserSetInfo sets the public profile of the sender
func (f *FavorExchange) UserSetInfo(opts *bind.TransactOpts, name [32]byte, publicKey [32]byte,
	contactInfo [32]byte) (*types.Transaction, error) {
	return f.contract.Transact(opts, "userSetInfo", name, publicKey, contactInfo)
}

// Transfer transfers tokens from the sender to an address
func (f *FavorExchange) Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int) (*types.Transaction, error) {
	return f.contract.Transact(opts, "transfer", to, value)
}

// DemoBuyToken exchanges the ether set as opts.Value for tokens
func (f *FavorExchange) DemoBuyToken(opts *bind.TransactOpts) (*types.Transaction, error) {
	return f.contract.Transact(opts, "demoBuyToken")
}
