package model_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

var (
	clientAddr   = common.HexToAddress("0x77e5aaBddb760FBa989A1C4B2CDd4aA8Fa3d311d")
	providerAddr = common.HexToAddress("0xDFe273082089bB7f70Ee36Eebcde64832FE97E55")
	otherAddr    = common.HexToAddress("0x25bf9a1595d6f6c70e6848b60cba2063e4d9e552")
)

func newTestFavor(client common.Address, provider common.Address) *model.Favor {
	id := common.HexToHash("0x01")
	return model.NewFavor(&model.FavorParams{
		ID:           id,
		PrevID:       id,
		NextID:       id,
		ClientAddr:   client,
		ProviderAddr: provider,
		Cost:         big.NewInt(3),
		Category:     2,
		Title:        "Dinner",
		Location:     "Berlin",
		Description:  "Cook dinner for four",
	})
}

func checkState(t *testing.T, f *model.Favor, expected model.FavorState) {
	if state := model.ProjectState(f); state != expected {
		t.Errorf("Should have projected %v, got %v", expected, state)
	}
}

func checkInvolvement(t *testing.T, f *model.Favor, user common.Address, expected model.Involvement) {
	if involvement := model.ProjectInvolvement(f, user); involvement != expected {
		t.Errorf("Should have projected %v for %v, got %v", expected, user.Hex(), involvement)
	}
}

func checkDisplay(t *testing.T, d model.Display, style string, controls []model.Control) {
	if d.Style != style {
		t.Errorf("Should have styled %v, got %v", style, d.Style)
	}
	if !reflect.DeepEqual(d.Controls, controls) {
		t.Errorf("Should have enabled %v, got %v", controls, d.Controls)
	}
}

func TestProjectStateUnmatched(t *testing.T) {
	cases := []struct {
		client   common.Address
		provider common.Address
	}{
		{model.NullAddress, model.NullAddress},
		{clientAddr, model.NullAddress},
		{model.NullAddress, providerAddr},
	}
	for _, c := range cases {
		f := newTestFavor(c.client, c.provider)
		f.SetVote(true, model.VoteKindCancel)
		checkState(t, f, model.FavorStateUnmatched)
	}

	f := newTestFavor(clientAddr, providerAddr)
	if model.ProjectState(f) == model.FavorStateUnmatched {
		t.Errorf("Should not have been unmatched with both parties")
	}
}

func TestProjectStateMatched(t *testing.T) {
	checkState(t, newTestFavor(clientAddr, providerAddr), model.FavorStateMatched)
}

func TestProjectStateBothCancelEitherOrder(t *testing.T) {
	first := newTestFavor(clientAddr, providerAddr)
	first.SetVote(true, model.VoteKindCancel)
	checkState(t, first, model.FavorStateOneVotedCancel)
	first.SetVote(false, model.VoteKindCancel)
	checkState(t, first, model.FavorStateBothVotedCancel)

	second := newTestFavor(clientAddr, providerAddr)
	second.SetVote(false, model.VoteKindCancel)
	checkState(t, second, model.FavorStateOneVotedCancel)
	second.SetVote(true, model.VoteKindCancel)
	checkState(t, second, model.FavorStateBothVotedCancel)
}

func TestProjectStatePrecedence(t *testing.T) {
	// both cancel wins over a single done vote
	f := newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindCancel)
	f.SetVote(false, model.VoteKindCancel)
	f.SetVote(true, model.VoteKindDone)
	checkState(t, f, model.FavorStateBothVotedCancel)

	// both done wins over a single cancel vote
	f = newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindDone)
	f.SetVote(false, model.VoteKindDone)
	f.SetVote(false, model.VoteKindCancel)
	checkState(t, f, model.FavorStateBothVotedDone)

	// a single cancel wins over a single done
	f = newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindDone)
	f.SetVote(false, model.VoteKindCancel)
	checkState(t, f, model.FavorStateOneVotedCancel)
}

func TestProjectInvolvement(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	checkInvolvement(t, f, otherAddr, model.InvolvementNotInvolved)
	checkInvolvement(t, f, model.NullAddress, model.InvolvementNotInvolved)
	checkInvolvement(t, f, clientAddr, model.InvolvementNotYetVoted)
	checkInvolvement(t, f, providerAddr, model.InvolvementNotYetVoted)

	f.SetVote(false, model.VoteKindDone)
	checkInvolvement(t, f, providerAddr, model.InvolvementSelfVotedDone)
	checkInvolvement(t, f, clientAddr, model.InvolvementNotYetVoted)

	// cancel is reported before done
	f.SetVote(false, model.VoteKindCancel)
	checkInvolvement(t, f, providerAddr, model.InvolvementSelfVotedCancel)
}

func TestProjectUnmatchedControls(t *testing.T) {
	f := newTestFavor(clientAddr, model.NullAddress)
	checkDisplay(t, model.Project(f, otherAddr), model.StyleUnmatched, []model.Control{model.ControlAccept})
	checkDisplay(t, model.Project(f, clientAddr), model.StyleUserUnmatched, []model.Control{})
}

func TestProjectMatchedControls(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)

	d := model.Project(f, clientAddr)
	checkDisplay(t, d, model.StyleUserMatched,
		[]model.Control{model.ControlVoteCancel, model.ControlVoteDone})
	if d.HasControl(model.ControlAccept) {
		t.Errorf("Should not allow accept on a matched favor")
	}

	checkDisplay(t, model.Project(f, otherAddr), model.StyleMatched, []model.Control{})
}

func TestProjectOneVotedCancelControls(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindCancel)

	self := model.Project(f, clientAddr)
	if self.State != model.FavorStateOneVotedCancel {
		t.Errorf("Should have been one voted cancel, got %v", self.State)
	}
	checkDisplay(t, self, model.StyleUserSelfVoteCancel, []model.Control{model.ControlVoteDone})
	checkDisplay(t, model.Project(f, providerAddr), model.StyleUserOtherVoteCancel,
		[]model.Control{model.ControlVoteCancel, model.ControlVoteDone})
	checkDisplay(t, model.Project(f, otherAddr), model.StyleVoteCancel, []model.Control{})
}

func TestProjectOneVotedDoneControls(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	f.SetVote(false, model.VoteKindDone)

	self := model.Project(f, providerAddr)
	if self.State != model.FavorStateOneVotedDone {
		t.Errorf("Should have been one voted done, got %v", self.State)
	}
	checkDisplay(t, self, model.StyleUserSelfVoteDone, []model.Control{model.ControlVoteCancel})
	checkDisplay(t, model.Project(f, clientAddr), model.StyleUserOtherVoteDone,
		[]model.Control{model.ControlVoteCancel, model.ControlVoteDone})
	checkDisplay(t, model.Project(f, otherAddr), model.StyleVoteDone, []model.Control{})
}

func TestProjectTerminal(t *testing.T) {
	f := newTestFavor(clientAddr, providerAddr)
	f.SetVote(true, model.VoteKindDone)
	f.SetVote(false, model.VoteKindDone)

	d := model.Project(f, clientAddr)
	if !d.Removed || !d.State.IsTerminal() {
		t.Errorf("Should have been removed and terminal: %v", d.State)
	}
	checkDisplay(t, d, model.StyleRemoved, []model.Control{})
}
