package postgres // import "github.com/favorexchange/favor-billboard/pkg/persistence/postgres"

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	// FavorTableName is the name of the favor mirror table
	FavorTableName = "favor"
)

// FavorSchemaString returns the query to create this table
func FavorSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            favor_id TEXT PRIMARY KEY,
            prev_id TEXT,
            next_id TEXT,
            list_index BIGINT,
            client_address TEXT,
            provider_address TEXT,
            cost NUMERIC,
            category SMALLINT,
            title TEXT,
            location TEXT,
            description TEXT,
            client_vote_cancel BOOL,
            provider_vote_cancel BOOL,
            client_vote_done BOOL,
            provider_vote_done BOOL,
            client_name TEXT,
            provider_name TEXT,
            state TEXT,
            style TEXT,
            last_updated_timestamp BIGINT
        );
        CREATE INDEX IF NOT EXISTS %s_client_idx ON %s (client_address);
        CREATE INDEX IF NOT EXISTS %s_provider_idx ON %s (provider_address);
    `, tableName, tableName, tableName, tableName, tableName)
	return schema
}

// Favor is the model definition for the favor table. State and style are the
// projection for the local user at the time the row was written.
// NOTE: cost is a uint256 in the contract, kept as NUMERIC and read back as text
type Favor struct {
	FavorID string `db:"favor_id"`

	PrevID string `db:"prev_id"`

	NextID string `db:"next_id"`

	ListIndex int64 `db:"list_index"`

	ClientAddress string `db:"client_address"`

	ProviderAddress string `db:"provider_address"`

	Cost string `db:"cost"`

	Category int `db:"category"`

	Title string `db:"title"`

	Location string `db:"location"`

	Description string `db:"description"`

	ClientVoteCancel bool `db:"client_vote_cancel"`

	ProviderVoteCancel bool `db:"provider_vote_cancel"`

	ClientVoteDone bool `db:"client_vote_done"`

	ProviderVoteDone bool `db:"provider_vote_done"`

	ClientName string `db:"client_name"`

	ProviderName string `db:"provider_name"`

	State string `db:"state"`

	Style string `db:"style"`

	LastUpdatedDateTs int64 `db:"last_updated_timestamp"`
}

// NewFavor constructs a favor for DB from a model.Favor, projected for user
func NewFavor(favor *model.Favor, user common.Address, listIndex int64, ts int64) *Favor {
	display := model.Project(favor, user)
	return &Favor{
		FavorID:            favor.ID().Hex(),
		PrevID:             favor.PrevID().Hex(),
		NextID:             favor.NextID().Hex(),
		ListIndex:          listIndex,
		ClientAddress:      favor.ClientAddr().Hex(),
		ProviderAddress:    favor.ProviderAddr().Hex(),
		Cost:               favor.Cost().String(),
		Category:           int(favor.Category()),
		Title:              favor.Title(),
		Location:           favor.Location(),
		Description:        favor.Description(),
		ClientVoteCancel:   favor.ClientVoteCancel(),
		ProviderVoteCancel: favor.ProviderVoteCancel(),
		ClientVoteDone:     favor.ClientVoteDone(),
		ProviderVoteDone:   favor.ProviderVoteDone(),
		ClientName:         favor.ClientName(),
		ProviderName:       favor.ProviderName(),
		State:              display.State.String(),
		Style:              display.Style,
		LastUpdatedDateTs:  ts,
	}
}

// DbToFavorData converts a db favor to a model.Favor
func (f *Favor) DbToFavorData() (*model.Favor, error) {
	cost, ok := new(big.Int).SetString(f.Cost, 10)
	if !ok {
		return nil, fmt.Errorf("invalid cost %q for favor %v", f.Cost, f.FavorID)
	}
	return model.NewFavor(&model.FavorParams{
		ID:                 common.HexToHash(f.FavorID),
		PrevID:             common.HexToHash(f.PrevID),
		NextID:             common.HexToHash(f.NextID),
		ClientAddr:         common.HexToAddress(f.ClientAddress),
		ProviderAddr:       common.HexToAddress(f.ProviderAddress),
		Cost:               cost,
		Category:           uint8(f.Category),
		Title:              f.Title,
		Location:           f.Location,
		Description:        f.Description,
		ClientVoteCancel:   f.ClientVoteCancel,
		ProviderVoteCancel: f.ProviderVoteCancel,
		ClientVoteDone:     f.ClientVoteDone,
		ProviderVoteDone:   f.ProviderVoteDone,
		ClientName:         f.ClientName,
		ProviderName:       f.ProviderName,
	}), nil
}
