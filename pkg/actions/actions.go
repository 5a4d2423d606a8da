// Package actions contains the user initiated mutations of the favor exchange.
// Input is validated before anything is submitted to the contract.
package actions // import "github.com/favorexchange/favor-billboard/pkg/actions"

//go:generate mockgen -destination=mocks/mock_contract.go -package=mocks github.com/favorexchange/favor-billboard/pkg/actions Contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/contract"
	"github.com/favorexchange/favor-billboard/pkg/model"
)

var (
	// ErrNotRegistered is returned when the user has not set their profile yet
	ErrNotRegistered = errors.New("user profile not registered, register first")
)

// ValidationError is returned when user input is rejected before submission
type ValidationError struct {
	Field  string
	Reason string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", v.Field, v.Reason)
}

func invalid(field string, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError returns true if the cause of err is a ValidationError
func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// FavorKind is the side of a new favor
type FavorKind int

const (
	// FavorKindRequest is a favor asked for, the creator is the client
	FavorKindRequest FavorKind = iota
	// FavorKindOffer is a favor offered, the creator is the provider
	FavorKindOffer
)

func (k FavorKind) String() string {
	if k == FavorKindOffer {
		return "offer"
	}
	return "request"
}

// ParseFavorKind returns the kind for "request" or "offer"
func ParseFavorKind(s string) (FavorKind, error) {
	switch strings.ToLower(s) {
	case "request":
		return FavorKindRequest, nil
	case "offer":
		return FavorKindOffer, nil
	}
	return FavorKindRequest, invalid("kind", fmt.Sprintf("%q is not request or offer", s))
}

// Contract is the part of the favor exchange binding used by the actions
type Contract interface {
	Favor(ctx context.Context, id common.Hash) (*model.Favor, error)
	UserInfo(ctx context.Context, addr common.Address) (*model.UserInfo, error)
	FavorRequestCreate(opts *bind.TransactOpts, cost *big.Int, title [32]byte, location [32]byte,
		description [32]byte, category uint8) (*types.Transaction, error)
	FavorOfferCreate(opts *bind.TransactOpts, cost *big.Int, title [32]byte, location [32]byte,
		description [32]byte, category uint8) (*types.Transaction, error)
	FavorRequestAccept(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error)
	FavorOfferAccept(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error)
	FavorVoteCancel(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error)
	FavorVoteDone(opts *bind.TransactOpts, id common.Hash) (*types.Transaction, error)
	UserSetInfo(opts *bind.TransactOpts, name [32]byte, publicKey [32]byte,
		contactInfo [32]byte) (*types.Transaction, error)
	Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int) (*types.Transaction, error)
	DemoBuyToken(opts *bind.TransactOpts) (*types.Transaction, error)
}

// CreateFavorParams are the user inputs for a new favor
type CreateFavorParams struct {
	Kind        FavorKind
	Cost        *big.Int
	Title       string
	Location    string
	Description string
	Category    int
}

// NewActions returns Actions sending transactions signed by opts
func NewActions(contract Contract, opts *bind.TransactOpts) *Actions {
	return &Actions{contract: contract, opts: opts}
}

// Actions submits validated user actions to the contract
type Actions struct {
	contract Contract
	opts     *bind.TransactOpts
}

// User returns the address transactions are sent from
func (a *Actions) User() common.Address {
	return a.opts.From
}

func (a *Actions) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *a.opts
	opts.Context = ctx
	return &opts
}

// RequireRegistered returns ErrNotRegistered if the user has no profile
func RequireRegistered(user *model.UserInfo) error {
	if user == nil || !user.IsRegistered() {
		return ErrNotRegistered
	}
	return nil
}

// CheckRegistered returns ErrNotRegistered if the sending user has no profile
func (a *Actions) CheckRegistered(ctx context.Context) error {
	user, err := a.contract.UserInfo(ctx, a.User())
	if err != nil {
		return errors.WithMessagef(err, "error retrieving user info for %v", a.User().Hex())
	}
	return RequireRegistered(user)
}

// CreateFavor lists a new request or offer
func (a *Actions) CreateFavor(ctx context.Context, params *CreateFavorParams) (*types.Transaction, error) {
	if params.Cost == nil || params.Cost.Sign() <= 0 {
		return nil, invalid("cost", "must be greater than 0")
	}
	if !model.IsValidFavorCategory(params.Category) {
		return nil, invalid("category", fmt.Sprintf("must be between 1 and %v", len(model.Categories)-1))
	}
	title, err := requiredBytes32("title", params.Title)
	if err != nil {
		return nil, err
	}
	location, err := requiredBytes32("location", params.Location)
	if err != nil {
		return nil, err
	}
	description, err := requiredBytes32("description", params.Description)
	if err != nil {
		return nil, err
	}

	var tx *types.Transaction
	if params.Kind == FavorKindOffer {
		tx, err = a.contract.FavorOfferCreate(a.transactOpts(ctx), params.Cost, title, location,
			description, uint8(params.Category))
	} else {
		tx, err = a.contract.FavorRequestCreate(a.transactOpts(ctx), params.Cost, title, location,
			description, uint8(params.Category))
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "error creating favor %v", params.Kind)
	}
	log.Infof("Sent favor %v creation: tx: %v", params.Kind, tx.Hash().Hex())
	return tx, nil
}

// AcceptFavor accepts an open favor. A favor with a client is a request and
// the user becomes its provider, otherwise it is an offer and the user becomes
// its client.
func (a *Actions) AcceptFavor(ctx context.Context, id common.Hash) (*types.Transaction, error) {
	favor, err := a.activeFavor(ctx, id, model.ControlAccept)
	if err != nil {
		return nil, err
	}
	var tx *types.Transaction
	if !model.IsNullAddress(favor.ClientAddr()) {
		tx, err = a.contract.FavorRequestAccept(a.transactOpts(ctx), id)
	} else {
		tx, err = a.contract.FavorOfferAccept(a.transactOpts(ctx), id)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "error accepting favor %v", id.Hex())
	}
	log.Infof("Sent accept for %v: tx: %v", id.Hex(), tx.Hash().Hex())
	return tx, nil
}

// VoteCancel votes to cancel a matched favor
func (a *Actions) VoteCancel(ctx context.Context, id common.Hash) (*types.Transaction, error) {
	_, err := a.activeFavor(ctx, id, model.ControlVoteCancel)
	if err != nil {
		return nil, err
	}
	tx, err := a.contract.FavorVoteCancel(a.transactOpts(ctx), id)
	if err != nil {
		return nil, errors.WithMessagef(err, "error voting cancel on %v", id.Hex())
	}
	log.Infof("Sent vote cancel for %v: tx: %v", id.Hex(), tx.Hash().Hex())
	return tx, nil
}

// VoteDone votes that a matched favor is completed
func (a *Actions) VoteDone(ctx context.Context, id common.Hash) (*types.Transaction, error) {
	_, err := a.activeFavor(ctx, id, model.ControlVoteDone)
	if err != nil {
		return nil, err
	}
	tx, err := a.contract.FavorVoteDone(a.transactOpts(ctx), id)
	if err != nil {
		return nil, errors.WithMessagef(err, "error voting done on %v", id.Hex())
	}
	log.Infof("Sent vote done for %v: tx: %v", id.Hex(), tx.Hash().Hex())
	return tx, nil
}

// RegisterUser sets the public profile of the user
func (a *Actions) RegisterUser(ctx context.Context, name string, publicKey string,
	contactInfo string) (*types.Transaction, error) {
	nameBytes, err := requiredBytes32("name", name)
	if err != nil {
		return nil, err
	}
	publicKeyBytes, err := requiredBytes32("public key", publicKey)
	if err != nil {
		return nil, err
	}
	contactInfoBytes, err := requiredBytes32("contact info", contactInfo)
	if err != nil {
		return nil, err
	}
	tx, err := a.contract.UserSetInfo(a.transactOpts(ctx), nameBytes, publicKeyBytes, contactInfoBytes)
	if err != nil {
		return nil, errors.WithMessage(err, "error setting user info")
	}
	log.Infof("Sent user info for %v: tx: %v", a.User().Hex(), tx.Hash().Hex())
	return tx, nil
}

// Transfer sends tokens to another address
func (a *Actions) Transfer(ctx context.Context, to common.Address, value *big.Int) (*types.Transaction, error) {
	if model.IsNullAddress(to) {
		return nil, invalid("recipient", "required")
	}
	if value == nil || value.Sign() <= 0 {
		return nil, invalid("value", "must be greater than 0")
	}
	tx, err := a.contract.Transfer(a.transactOpts(ctx), to, value)
	if err != nil {
		return nil, errors.WithMessagef(err, "error transferring to %v", to.Hex())
	}
	log.Infof("Sent transfer of %v to %v: tx: %v", value, to.Hex(), tx.Hash().Hex())
	return tx, nil
}

// DemoBuy exchanges amount wei for tokens
func (a *Actions) DemoBuy(ctx context.Context, amount *big.Int) (*types.Transaction, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, invalid("amount", "must be greater than 0")
	}
	opts := a.transactOpts(ctx)
	opts.Value = amount
	tx, err := a.contract.DemoBuyToken(opts)
	if err != nil {
		return nil, errors.WithMessage(err, "error buying tokens")
	}
	log.Infof("Sent token purchase for %v wei: tx: %v", amount, tx.Hash().Hex())
	return tx, nil
}

// activeFavor fetches a favor and checks the user may use the control on it
func (a *Actions) activeFavor(ctx context.Context, id common.Hash, control model.Control) (*model.Favor, error) {
	favor, err := a.contract.Favor(ctx, id)
	if err != nil {
		return nil, errors.WithMessagef(err, "error retrieving favor %v", id.Hex())
	}
	if favor.IsEmpty() {
		return nil, invalid("favor", fmt.Sprintf("%v does not exist", id.Hex()))
	}
	display := model.Project(favor, a.User())
	if !display.HasControl(control) {
		return nil, invalid("favor", fmt.Sprintf("cannot %v %v while %v", control, id.Hex(), display.State))
	}
	return favor, nil
}

func requiredBytes32(field string, value string) ([32]byte, error) {
	if strings.TrimSpace(value) == "" {
		return [32]byte{}, invalid(field, "required")
	}
	b, err := contract.StringToBytes32(value)
	if err != nil {
		return b, invalid(field, "longer than 32 bytes")
	}
	return b, nil
}
