package actions_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favorexchange/favor-billboard/pkg/actions"
	"github.com/favorexchange/favor-billboard/pkg/actions/mocks"
	"github.com/favorexchange/favor-billboard/pkg/contract"
	"github.com/favorexchange/favor-billboard/pkg/model"
)

var (
	userAddr  = common.HexToAddress("0x39eB410144784010b84B076087A6d1A6A5b6E3b5")
	otherAddr = common.HexToAddress("0x0000000000000000000000000000000000000aaa")
	thirdAddr = common.HexToAddress("0x0000000000000000000000000000000000000bbb")
	favorID   = common.HexToHash("0x0a")
	errNode   = errors.New("node unavailable")
)

func testOpts() *bind.TransactOpts {
	return &bind.TransactOpts{From: userAddr}
}

func testTx() *types.Transaction {
	return types.NewTransaction(1, otherAddr, big.NewInt(0), 21000, big.NewInt(1), nil)
}

func testFavor(client common.Address, provider common.Address) *model.Favor {
	return model.NewFavor(&model.FavorParams{
		ID:           favorID,
		NextID:       favorID,
		ClientAddr:   client,
		ProviderAddr: provider,
		Cost:         big.NewInt(5),
		Category:     1,
	})
}

func bytes32(t *testing.T, s string) [32]byte {
	b, err := contract.StringToBytes32(s)
	require.NoError(t, err)
	return b
}

func validParams(kind actions.FavorKind) *actions.CreateFavorParams {
	return &actions.CreateFavorParams{
		Kind:        kind,
		Cost:        big.NewInt(3),
		Title:       "walk the dog",
		Location:    "Zurich",
		Description: "twice a day",
		Category:    4,
	}
}

func TestCreateFavorRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	tx := testTx()
	m.EXPECT().FavorRequestCreate(gomock.Any(), big.NewInt(3), bytes32(t, "walk the dog"),
		bytes32(t, "Zurich"), bytes32(t, "twice a day"), uint8(4)).Return(tx, nil).Times(1)

	a := actions.NewActions(m, testOpts())
	ret, err := a.CreateFavor(context.Background(), validParams(actions.FavorKindRequest))
	assert.Nil(t, err)
	assert.Equal(t, tx, ret)
}

func TestCreateFavorOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	m.EXPECT().FavorOfferCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), uint8(4)).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.CreateFavor(context.Background(), validParams(actions.FavorKindOffer))
	assert.Nil(t, err)
}

func TestCreateFavorValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	a := actions.NewActions(m, testOpts())

	cases := map[string]func(p *actions.CreateFavorParams){
		"zero cost":      func(p *actions.CreateFavorParams) { p.Cost = big.NewInt(0) },
		"nil cost":       func(p *actions.CreateFavorParams) { p.Cost = nil },
		"all category":   func(p *actions.CreateFavorParams) { p.Category = 0 },
		"large category": func(p *actions.CreateFavorParams) { p.Category = len(model.Categories) },
		"empty title":    func(p *actions.CreateFavorParams) { p.Title = "  " },
		"long location":  func(p *actions.CreateFavorParams) { p.Location = "a location that is much longer than 32 bytes" },
		"empty descr":    func(p *actions.CreateFavorParams) { p.Description = "" },
	}
	for name, mutate := range cases {
		p := validParams(actions.FavorKindRequest)
		mutate(p)
		_, err := a.CreateFavor(context.Background(), p)
		if !assert.Error(t, err, "should have rejected %v", name) {
			continue
		}
		assert.True(t, actions.IsValidationError(err), "%v should be a validation error", name)
	}
}

func TestCreateFavorContractError(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	m.EXPECT().FavorRequestCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any()).Return(nil, errNode).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.CreateFavor(context.Background(), validParams(actions.FavorKindRequest))
	assert.Equal(t, errNode, errors.Cause(err))
	assert.False(t, actions.IsValidationError(err))
}

func TestAcceptRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	m.EXPECT().Favor(ctx, favorID).Return(testFavor(otherAddr, model.NullAddress), nil).Times(1)
	m.EXPECT().FavorRequestAccept(gomock.Any(), favorID).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.AcceptFavor(ctx, favorID)
	assert.Nil(t, err)
}

func TestAcceptOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	m.EXPECT().Favor(ctx, favorID).Return(testFavor(model.NullAddress, otherAddr), nil).Times(1)
	m.EXPECT().FavorOfferAccept(gomock.Any(), favorID).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.AcceptFavor(ctx, favorID)
	assert.Nil(t, err)
}

func TestAcceptRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	gomock.InOrder(
		m.EXPECT().Favor(ctx, favorID).Return(testFavor(model.NullAddress, model.NullAddress), nil),
		m.EXPECT().Favor(ctx, favorID).Return(testFavor(userAddr, model.NullAddress), nil),
		m.EXPECT().Favor(ctx, favorID).Return(testFavor(otherAddr, thirdAddr), nil),
	)

	a := actions.NewActions(m, testOpts())
	for _, name := range []string{"missing", "own", "matched"} {
		_, err := a.AcceptFavor(ctx, favorID)
		assert.True(t, actions.IsValidationError(err), "%v favor should be rejected", name)
	}
}

func TestAcceptLookupError(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	m.EXPECT().Favor(ctx, favorID).Return(nil, errNode).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.AcceptFavor(ctx, favorID)
	assert.Equal(t, errNode, errors.Cause(err))
}

func TestVoteCancelAndDone(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	m.EXPECT().Favor(ctx, favorID).Return(testFavor(userAddr, otherAddr), nil).Times(2)
	m.EXPECT().FavorVoteCancel(gomock.Any(), favorID).Return(testTx(), nil).Times(1)
	m.EXPECT().FavorVoteDone(gomock.Any(), favorID).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.VoteCancel(ctx, favorID)
	assert.Nil(t, err)
	_, err = a.VoteDone(ctx, favorID)
	assert.Nil(t, err)
}

func TestVoteRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	voted := testFavor(userAddr, otherAddr)
	voted.SetVote(true, model.VoteKindCancel)
	gomock.InOrder(
		// not a party
		m.EXPECT().Favor(ctx, favorID).Return(testFavor(otherAddr, thirdAddr), nil),
		// unmatched
		m.EXPECT().Favor(ctx, favorID).Return(testFavor(userAddr, model.NullAddress), nil),
		// already voted cancel
		m.EXPECT().Favor(ctx, favorID).Return(voted, nil),
	)

	a := actions.NewActions(m, testOpts())
	for i := 0; i < 3; i++ {
		_, err := a.VoteCancel(ctx, favorID)
		assert.True(t, actions.IsValidationError(err), "vote %v should be rejected", i)
	}
}

func TestRegisterUser(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	m.EXPECT().UserSetInfo(gomock.Any(), bytes32(t, "alice"), bytes32(t, "pk"),
		bytes32(t, "alice@example.com")).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.RegisterUser(context.Background(), "alice", "pk", "alice@example.com")
	assert.Nil(t, err)

	_, err = a.RegisterUser(context.Background(), "", "pk", "alice@example.com")
	assert.True(t, actions.IsValidationError(err))
}

func TestTransfer(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	m.EXPECT().Transfer(gomock.Any(), otherAddr, big.NewInt(7)).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, testOpts())
	_, err := a.Transfer(context.Background(), otherAddr, big.NewInt(7))
	assert.Nil(t, err)

	_, err = a.Transfer(context.Background(), model.NullAddress, big.NewInt(7))
	assert.True(t, actions.IsValidationError(err))
	_, err = a.Transfer(context.Background(), otherAddr, big.NewInt(-1))
	assert.True(t, actions.IsValidationError(err))
}

func TestDemoBuySetsValue(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	baseOpts := testOpts()
	var sent *bind.TransactOpts
	m.EXPECT().DemoBuyToken(gomock.Any()).Do(func(opts *bind.TransactOpts) {
		sent = opts
	}).Return(testTx(), nil).Times(1)

	a := actions.NewActions(m, baseOpts)
	_, err := a.DemoBuy(context.Background(), big.NewInt(1000))
	assert.Nil(t, err)
	if assert.NotNil(t, sent) {
		assert.Equal(t, big.NewInt(1000), sent.Value)
		assert.Equal(t, userAddr, sent.From)
	}
	assert.Nil(t, baseOpts.Value, "Should not have changed the shared opts")

	_, err = a.DemoBuy(context.Background(), big.NewInt(0))
	assert.True(t, actions.IsValidationError(err))
}

func TestCheckRegistered(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContract(ctl)
	defer ctl.Finish()

	ctx := context.Background()
	gomock.InOrder(
		m.EXPECT().UserInfo(ctx, userAddr).Return(model.NewUserInfo(&model.UserInfoParams{
			Address: userAddr,
		}), nil),
		m.EXPECT().UserInfo(ctx, userAddr).Return(model.NewUserInfo(&model.UserInfoParams{
			Address:      userAddr,
			IsRegistered: true,
			Name:         "alice",
		}), nil),
	)

	a := actions.NewActions(m, testOpts())
	assert.Equal(t, actions.ErrNotRegistered, a.CheckRegistered(ctx))
	assert.Nil(t, a.CheckRegistered(ctx))
	assert.Equal(t, actions.ErrNotRegistered, actions.RequireRegistered(nil))
}

func TestParseFavorKind(t *testing.T) {
	kind, err := actions.ParseFavorKind("Offer")
	assert.Nil(t, err)
	assert.Equal(t, actions.FavorKindOffer, kind)

	kind, err = actions.ParseFavorKind("request")
	assert.Nil(t, err)
	assert.Equal(t, actions.FavorKindRequest, kind)

	_, err = actions.ParseFavorKind("trade")
	assert.True(t, actions.IsValidationError(err))
}
