package model

import (
	"github.com/ethereum/go-ethereum/common"
)

// FavorState is the lifecycle state of a favor as shown on the billboard
type FavorState int

const (
	// FavorStateUnmatched means at least one party is unassigned
	FavorStateUnmatched FavorState = iota
	// FavorStateMatched means both parties are assigned and nobody voted
	FavorStateMatched
	// FavorStateOneVotedCancel means exactly one party voted to cancel
	FavorStateOneVotedCancel
	// FavorStateOneVotedDone means exactly one party voted done
	FavorStateOneVotedDone
	// FavorStateBothVotedCancel is terminal, the favor is cancelled
	FavorStateBothVotedCancel
	// FavorStateBothVotedDone is terminal, the favor is completed
	FavorStateBothVotedDone
)

func (s FavorState) String() string {
	switch s {
	case FavorStateUnmatched:
		return "unmatched"
	case FavorStateMatched:
		return "matched"
	case FavorStateOneVotedCancel:
		return "one-voted-cancel"
	case FavorStateOneVotedDone:
		return "one-voted-done"
	case FavorStateBothVotedCancel:
		return "both-voted-cancel"
	case FavorStateBothVotedDone:
		return "both-voted-done"
	}
	return "invalid"
}

// IsTerminal returns true if the favor has to be removed from the billboard
func (s FavorState) IsTerminal() bool {
	return s == FavorStateBothVotedCancel || s == FavorStateBothVotedDone
}

// Involvement describes how the local user takes part in a favor
type Involvement int

const (
	// InvolvementNotInvolved means the user is neither client nor provider
	InvolvementNotInvolved Involvement = iota
	// InvolvementSelfVotedCancel means the user is a party and voted cancel
	InvolvementSelfVotedCancel
	// InvolvementSelfVotedDone means the user is a party and voted done
	InvolvementSelfVotedDone
	// InvolvementNotYetVoted means the user is a party and has not voted
	InvolvementNotYetVoted
)

func (i Involvement) String() string {
	switch i {
	case InvolvementNotInvolved:
		return "not-involved"
	case InvolvementSelfVotedCancel:
		return "self-voted-cancel"
	case InvolvementSelfVotedDone:
		return "self-voted-done"
	case InvolvementNotYetVoted:
		return "not-yet-voted"
	}
	return "invalid"
}

// IsInvolved returns true if the user is one of the parties
func (i Involvement) IsInvolved() bool {
	return i != InvolvementNotInvolved
}

// Control is an action a user can take on a favor
type Control int

const (
	// ControlAccept accepts an unmatched favor
	ControlAccept Control = iota
	// ControlVoteCancel votes to cancel a matched favor
	ControlVoteCancel
	// ControlVoteDone votes that a matched favor is done
	ControlVoteDone
)

func (c Control) String() string {
	switch c {
	case ControlAccept:
		return "accept"
	case ControlVoteCancel:
		return "vote-cancel"
	case ControlVoteDone:
		return "vote-done"
	}
	return "invalid"
}

// Style names, kept identical to the web billboard classes
const (
	StyleUnmatched           = "favor-unmatched"
	StyleUserUnmatched       = "favor-user-unmatched"
	StyleMatched             = "favor-matched"
	StyleUserMatched         = "favor-user-matched"
	StyleVoteCancel          = "favor-vote-cancel"
	StyleUserSelfVoteCancel  = "favor-user-self-vote-cancel"
	StyleUserOtherVoteCancel = "favor-user-other-vote-cancel"
	StyleVoteDone            = "favor-vote-done"
	StyleUserSelfVoteDone    = "favor-user-self-vote-done"
	StyleUserOtherVoteDone   = "favor-user-other-vote-done"
	StyleRemoved             = "favor-removed"
)

// Display is the projection of a favor for a given user
type Display struct {
	State       FavorState
	Involvement Involvement
	Style       string
	Controls    []Control
	// Removed is true for terminal favors which are no longer displayed
	Removed bool
}

// HasControl returns true if the control is enabled
func (d Display) HasControl(control Control) bool {
	for _, c := range d.Controls {
		if c == control {
			return true
		}
	}
	return false
}

// ProjectState returns the lifecycle state of the favor. The checks are
// ordered, terminal states win over single votes.
func ProjectState(f *Favor) FavorState {
	if IsNullAddress(f.clientAddr) || IsNullAddress(f.providerAddr) {
		return FavorStateUnmatched
	}
	if f.clientVoteCancel && f.providerVoteCancel {
		return FavorStateBothVotedCancel
	}
	if f.clientVoteDone && f.providerVoteDone {
		return FavorStateBothVotedDone
	}
	if f.clientVoteCancel || f.providerVoteCancel {
		return FavorStateOneVotedCancel
	}
	if f.clientVoteDone || f.providerVoteDone {
		return FavorStateOneVotedDone
	}
	return FavorStateMatched
}

// ProjectInvolvement returns how the user takes part in the favor
func ProjectInvolvement(f *Favor, user common.Address) Involvement {
	if !f.IsParty(user) {
		return InvolvementNotInvolved
	}
	voteCancel, voteDone := f.providerVoteCancel, f.providerVoteDone
	if f.clientAddr == user {
		voteCancel, voteDone = f.clientVoteCancel, f.clientVoteDone
	}
	if voteCancel {
		return InvolvementSelfVotedCancel
	}
	if voteDone {
		return InvolvementSelfVotedDone
	}
	return InvolvementNotYetVoted
}

// Project returns the display state and enabled controls of a favor for the
// given user
func Project(f *Favor, user common.Address) Display {
	state := ProjectState(f)
	involvement := ProjectInvolvement(f, user)
	d := Display{State: state, Involvement: involvement, Controls: []Control{}}

	switch state {
	case FavorStateUnmatched:
		if involvement.IsInvolved() {
			d.Style = StyleUserUnmatched
		} else {
			d.Style = StyleUnmatched
			d.Controls = []Control{ControlAccept}
		}

	case FavorStateMatched:
		if involvement.IsInvolved() {
			d.Style = StyleUserMatched
			d.Controls = []Control{ControlVoteCancel, ControlVoteDone}
		} else {
			d.Style = StyleMatched
		}

	case FavorStateOneVotedCancel:
		switch involvement {
		case InvolvementSelfVotedCancel:
			d.Style = StyleUserSelfVoteCancel
			d.Controls = []Control{ControlVoteDone}
		case InvolvementSelfVotedDone, InvolvementNotYetVoted:
			d.Style = StyleUserOtherVoteCancel
			d.Controls = []Control{ControlVoteCancel, ControlVoteDone}
		default:
			d.Style = StyleVoteCancel
		}

	case FavorStateOneVotedDone:
		switch involvement {
		case InvolvementSelfVotedDone:
			d.Style = StyleUserSelfVoteDone
			d.Controls = []Control{ControlVoteCancel}
		case InvolvementSelfVotedCancel, InvolvementNotYetVoted:
			d.Style = StyleUserOtherVoteDone
			d.Controls = []Control{ControlVoteCancel, ControlVoteDone}
		default:
			d.Style = StyleVoteDone
		}

	case FavorStateBothVotedCancel, FavorStateBothVotedDone:
		d.Style = StyleRemoved
		d.Removed = true
	}
	return d
}
