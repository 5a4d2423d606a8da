package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// UserInfoParams are the params to initialize a new UserInfo
type UserInfoParams struct {
	Address      common.Address
	Balance      *big.Int
	IsRegistered bool
	Name         string
	PublicKey    string
	ContactInfo  string
}

// NewUserInfo is a convenience function to init a UserInfo struct
func NewUserInfo(params *UserInfoParams) *UserInfo {
	balance := params.Balance
	if balance == nil {
		balance = big.NewInt(0)
	}
	return &UserInfo{
		address:      params.Address,
		balance:      new(big.Int).Set(balance),
		isRegistered: params.IsRegistered,
		name:         params.Name,
		publicKey:    params.PublicKey,
		contactInfo:  params.ContactInfo,
	}
}

// UserInfo represents the public profile of a user kept by the contract
type UserInfo struct {
	address common.Address

	balance *big.Int

	// false until the user has set their info at least once
	isRegistered bool

	name        string
	publicKey   string
	contactInfo string
}

// Address returns the address of the user
func (u *UserInfo) Address() common.Address {
	return u.address
}

// Balance returns the token balance of the user
func (u *UserInfo) Balance() *big.Int {
	return u.balance
}

// IsRegistered returns true if the user has completed their profile
func (u *UserInfo) IsRegistered() bool {
	return u.isRegistered
}

// Name returns the display name of the user
func (u *UserInfo) Name() string {
	return u.name
}

// PublicKey returns the public key published by the user
func (u *UserInfo) PublicKey() string {
	return u.publicKey
}

// ContactInfo returns the contact information published by the user
func (u *UserInfo) ContactInfo() string {
	return u.contactInfo
}

// SetBalance updates the token balance
func (u *UserInfo) SetBalance(balance *big.Int) {
	u.balance = new(big.Int).Set(balance)
}
