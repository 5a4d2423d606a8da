package billboard_test

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

var (
	addrA = common.HexToAddress("0x77e5aaBddb760FBa989A1C4B2CDd4aA8Fa3d311d")
	addrB = common.HexToAddress("0xDFe273082089bB7f70Ee36Eebcde64832FE97E55")
	addrC = common.HexToAddress("0x25bf9a1595d6f6c70e6848b60cba2063e4d9e552")

	idA = common.HexToHash("0x0a")
	idB = common.HexToHash("0x0b")
	idC = common.HexToHash("0x0c")
	idX = common.HexToHash("0xff")

	errNodeDown = errors.New("node down")
)

func testFavor(id, prev, next common.Hash, client, provider common.Address) *model.Favor {
	return model.NewFavor(&model.FavorParams{
		ID:           id,
		PrevID:       prev,
		NextID:       next,
		ClientAddr:   client,
		ProviderAddr: provider,
		Cost:         big.NewInt(5),
		Category:     1,
		Title:        "Walk the dog",
		Location:     "Park",
		Description:  "Twice a day",
	})
}

// testSource is an in-memory contract list
type testSource struct {
	head      common.Hash
	favors    map[common.Hash]*model.Favor
	failOn    *common.Hash
	failHead  bool
	favorHits int
}

func newTestSource(favors ...*model.Favor) *testSource {
	s := &testSource{favors: map[common.Hash]*model.Favor{}}
	for i, favor := range favors {
		if i == 0 {
			s.head = favor.ID()
		}
		s.favors[favor.ID()] = favor
	}
	return s
}

func (s *testSource) FavorListHeadID(ctx context.Context) (common.Hash, error) {
	if s.failHead {
		return common.Hash{}, errNodeDown
	}
	return s.head, nil
}

func (s *testSource) Favor(ctx context.Context, id common.Hash) (*model.Favor, error) {
	s.favorHits++
	if s.failOn != nil && id == *s.failOn {
		return nil, errNodeDown
	}
	favor, ok := s.favors[id]
	if !ok {
		return model.NewFavor(&model.FavorParams{ID: id}), nil
	}
	return favor.Copy(), nil
}

// testUsers is an in-memory user registry
type testUsers struct {
	names map[common.Address]string
	fail  bool
	hits  int
}

func newTestUsers() *testUsers {
	return &testUsers{names: map[common.Address]string{
		addrA: "alice",
		addrB: "bob",
	}}
}

func (u *testUsers) UserInfo(ctx context.Context, addr common.Address) (*model.UserInfo, error) {
	u.hits++
	if u.fail {
		return nil, errNodeDown
	}
	name, ok := u.names[addr]
	return model.NewUserInfo(&model.UserInfoParams{
		Address:      addr,
		Balance:      big.NewInt(0),
		IsRegistered: ok,
		Name:         name,
	}), nil
}
