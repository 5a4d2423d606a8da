package persistence

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

// NullPersister is a persister that does not save anything and is used when
// the billboard mirror is disabled
type NullPersister struct{}

// FavorsByUser returns no favors
func (n *NullPersister) FavorsByUser(addr common.Address) ([]*model.Favor, error) {
	return []*model.Favor{}, nil
}

// FavorByID returns ErrPersisterNoResults
func (n *NullPersister) FavorByID(id common.Hash) (*model.Favor, error) {
	return nil, ErrPersisterNoResults
}

// ReplaceFavors does nothing
func (n *NullPersister) ReplaceFavors(favors []*model.Favor, user common.Address) error {
	return nil
}

// UpsertFavor does nothing
func (n *NullPersister) UpsertFavor(favor *model.Favor, user common.Address) error {
	return nil
}

// DeleteFavor does nothing
func (n *NullPersister) DeleteFavor(id common.Hash) error {
	return nil
}
