package model_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

func TestFavorIsEmpty(t *testing.T) {
	f := newTestFavor(model.NullAddress, model.NullAddress)
	if !f.IsEmpty() {
		t.Errorf("Should have been empty with no parties")
	}
	f = newTestFavor(clientAddr, model.NullAddress)
	if f.IsEmpty() {
		t.Errorf("Should not have been empty with a client")
	}
}

func TestFavorIsTail(t *testing.T) {
	f := newTestFavor(clientAddr, model.NullAddress)
	if !f.IsTail() {
		t.Errorf("Should have been tail when next id is own id")
	}
	f = model.NewFavor(&model.FavorParams{
		ID:     common.HexToHash("0x01"),
		NextID: common.HexToHash("0x02"),
	})
	if f.IsTail() {
		t.Errorf("Should not have been tail when next id differs")
	}
}

func TestFavorIsParty(t *testing.T) {
	f := newTestFavor(clientAddr, model.NullAddress)
	if !f.IsParty(clientAddr) {
		t.Errorf("Should have been a party")
	}
	if f.IsParty(model.NullAddress) {
		t.Errorf("Null address should never be a party")
	}
	if f.IsParty(otherAddr) {
		t.Errorf("Should not have been a party")
	}
}

func TestFavorCopy(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	c := f.Copy()
	c.SetVote(true, model.VoteKindDone)
	c.Cost().SetInt64(100)
	c.SetClientName("alice")

	if f.ClientVoteDone() {
		t.Errorf("Should not have changed the original vote flag")
	}
	if f.Cost().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Should not have changed the original cost")
	}
	if f.ClientName() != "" {
		t.Errorf("Should not have changed the original client name")
	}
}

func TestFavorSetVoteIsMonotonic(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindCancel)
	f.SetVote(true, model.VoteKindCancel)
	f.SetVote(false, model.VoteKindInvalid)
	if !f.ClientVoteCancel() {
		t.Errorf("Should have kept the client cancel vote")
	}
	if f.ProviderVoteCancel() || f.ProviderVoteDone() || f.ClientVoteDone() {
		t.Errorf("Should not have set other flags")
	}
}

func TestCategoryName(t *testing.T) {
	if model.CategoryName(1) != "Household" {
		t.Errorf("Should have returned Household for 1")
	}
	if model.CategoryName(200) != "Unknown" {
		t.Errorf("Should have returned Unknown for out of range")
	}
	if model.IsValidFavorCategory(0) {
		t.Errorf("Should not allow the All filter as a category")
	}
	if !model.IsValidFavorCategory(len(model.Categories) - 1) {
		t.Errorf("Should have allowed the last category")
	}
	if model.IsValidFavorCategory(len(model.Categories)) {
		t.Errorf("Should not allow a category past the list")
	}
}
