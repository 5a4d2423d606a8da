// Package persistence contains components to interact with the DB
package persistence // import "github.com/favorexchange/favor-billboard/pkg/persistence"

import (
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/golang/glog"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/persistence/postgres"
	"github.com/favorexchange/favor-billboard/pkg/utils"

	// driver for postgresql
	_ "github.com/lib/pq"
)

const (
	favorFields = "favor_id, prev_id, next_id, list_index, client_address, provider_address, cost, " +
		"category, title, location, description, client_vote_cancel, provider_vote_cancel, " +
		"client_vote_done, provider_vote_done, client_name, provider_name, state, style, " +
		"last_updated_timestamp"
	favorNamedFields = ":favor_id, :prev_id, :next_id, :list_index, :client_address, :provider_address, :cost, " +
		":category, :title, :location, :description, :client_vote_cancel, :provider_vote_cancel, " +
		":client_vote_done, :provider_vote_done, :client_name, :provider_name, :state, :style, " +
		":last_updated_timestamp"
)

// NewPostgresPersister creates a new postgres persister
func NewPostgresPersister(host string, port int, user string, password string,
	dbname string) (*PostgresPersister, error) {
	pgPersister := &PostgresPersister{
		favorTableName: postgres.FavorTableName,
		syncTableName:  postgres.SyncTableName,
	}
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
	db, err := sqlx.Connect("postgres", psqlInfo)
	if err != nil {
		return pgPersister, errors.Wrap(err, "error connecting to sqlx")
	}
	pgPersister.db = db
	return pgPersister, nil
}

// PostgresPersister holds the DB connection and persistence
type PostgresPersister struct {
	db             *sqlx.DB
	favorTableName string
	syncTableName  string
}

// CreateTables creates the tables for the billboard mirror if they don't exist
func (p *PostgresPersister) CreateTables() error {
	favorSchema := postgres.FavorSchemaString(p.favorTableName)
	syncSchema := postgres.SyncSchemaString(p.syncTableName)

	_, err := p.db.Exec(favorSchema)
	if err != nil {
		return errors.Wrapf(err, "error creating %v table in postgres", p.favorTableName)
	}
	_, err = p.db.Exec(syncSchema)
	if err != nil {
		return errors.Wrapf(err, "error creating %v table in postgres", p.syncTableName)
	}
	return nil
}

// DropTables drops the tables for the billboard mirror
func (p *PostgresPersister) DropTables() error {
	for _, tableName := range []string{p.favorTableName, p.syncTableName} {
		_, err := p.db.Exec(postgres.DropTable(tableName))
		if err != nil {
			return errors.Wrapf(err, "error dropping %v table", tableName)
		}
	}
	return nil
}

// Close closes the DB connection
func (p *PostgresPersister) Close() error {
	return p.db.Close()
}

// FavorsByUser retrieves the mirrored favors where the address is a party,
// in billboard order
func (p *PostgresPersister) FavorsByUser(addr common.Address) ([]*model.Favor, error) {
	queryString := p.favorsByUserQuery(p.favorTableName)
	dbFavors := []postgres.Favor{}
	err := p.db.Select(&dbFavors, queryString, addr.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "wasn't able to get favors from postgres table")
	}
	favors := make([]*model.Favor, 0, len(dbFavors))
	for _, dbFavor := range dbFavors {
		favor, err := dbFavor.DbToFavorData()
		if err != nil {
			log.Errorf("Skipping favor %v: err: %v", dbFavor.FavorID, err)
			continue
		}
		favors = append(favors, favor)
	}
	return favors, nil
}

// FavorByID retrieves a mirrored favor
func (p *PostgresPersister) FavorByID(id common.Hash) (*model.Favor, error) {
	queryString := p.favorByIDQuery(p.favorTableName)
	dbFavor := postgres.Favor{}
	err := p.db.Get(&dbFavor, queryString, id.Hex())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPersisterNoResults
		}
		return nil, errors.Wrap(err, "wasn't able to get favor from postgres table")
	}
	return dbFavor.DbToFavorData()
}

// ReplaceFavors replaces the whole mirror with the given favors in a single
// transaction
func (p *PostgresPersister) ReplaceFavors(favors []*model.Favor, user common.Address) (err error) {
	tx, err := p.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "error starting transaction")
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				log.Errorf("Error rolling back favor replace: err: %v", rerr)
			}
		}
	}()

	_, err = tx.Exec(fmt.Sprintf("DELETE FROM %s;", p.favorTableName)) // nolint: gosec
	if err != nil {
		return errors.Wrap(err, "error clearing favor table")
	}
	queryString := p.insertFavorQuery(p.favorTableName)
	ts := utils.CurrentEpochSecsInInt64()
	for i, favor := range favors {
		_, err = tx.NamedExec(queryString, postgres.NewFavor(favor, user, int64(i), ts))
		if err != nil {
			return errors.Wrapf(err, "error saving favor %v", favor.ID().Hex())
		}
	}
	err = tx.Commit()
	if err != nil {
		return errors.Wrap(err, "error committing favor replace")
	}
	return nil
}

// UpsertFavor creates or updates a single favor. New favors are placed at the
// end of the billboard order.
func (p *PostgresPersister) UpsertFavor(favor *model.Favor, user common.Address) error {
	var listIndex int64
	err := p.db.Get(&listIndex, p.nextListIndexQuery(p.favorTableName))
	if err != nil {
		return errors.Wrap(err, "error retrieving next list index")
	}
	queryString := p.upsertFavorQuery(p.favorTableName)
	dbFavor := postgres.NewFavor(favor, user, listIndex, utils.CurrentEpochSecsInInt64())
	_, err = p.db.NamedExec(queryString, dbFavor)
	if err != nil {
		return errors.Wrapf(err, "error saving favor %v", favor.ID().Hex())
	}
	return nil
}

// DeleteFavor removes a single favor
func (p *PostgresPersister) DeleteFavor(id common.Hash) error {
	queryString := fmt.Sprintf("DELETE FROM %s WHERE favor_id=$1;", p.favorTableName) // nolint: gosec
	_, err := p.db.Exec(queryString, id.Hex())
	if err != nil {
		return errors.Wrapf(err, "error deleting favor %v", id.Hex())
	}
	return nil
}

// LastSync returns the last synchronization point, zero values if none
func (p *PostgresPersister) LastSync() (*model.SyncData, error) {
	queryString := fmt.Sprintf("SELECT last_refresh_timestamp, last_event_block FROM %s;", // nolint: gosec
		p.syncTableName)
	dbSync := postgres.SyncData{}
	err := p.db.Get(&dbSync, queryString)
	if err != nil {
		if err == sql.ErrNoRows {
			return &model.SyncData{}, nil
		}
		return nil, errors.Wrap(err, "wasn't able to get sync data from postgres table")
	}
	return &model.SyncData{
		LastRefreshTs:  dbSync.LastRefreshTs,
		LastEventBlock: uint64(dbSync.LastEventBlock),
	}, nil
}

// UpdateLastRefresh saves the timestamp of the last full refresh
func (p *PostgresPersister) UpdateLastRefresh(ts int64) error {
	return p.upsertSyncField(p.upsertSyncFieldQuery(p.syncTableName, "last_refresh_timestamp", false), ts)
}

// UpdateLastEventBlock saves the block number of the last applied event. A
// lower block number than the saved one is ignored.
func (p *PostgresPersister) UpdateLastEventBlock(blockNumber uint64) error {
	return p.upsertSyncField(p.upsertSyncFieldQuery(p.syncTableName, "last_event_block", true),
		int64(blockNumber))
}

func (p *PostgresPersister) upsertSyncField(queryString string, value int64) error {
	_, err := p.db.Exec(queryString, value)
	if err != nil {
		return errors.Wrap(err, "error updating sync data")
	}
	return nil
}

func (p *PostgresPersister) upsertSyncFieldQuery(tableName string, field string, keepMax bool) string {
	update := fmt.Sprintf("EXCLUDED.%s", field)
	if keepMax {
		update = fmt.Sprintf("GREATEST(%s.%s, EXCLUDED.%s)", tableName, field, field)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) "+ // nolint: gosec
		"ON CONFLICT (one_row) DO UPDATE SET %s = %s;", tableName, field, field, update)
}

func (p *PostgresPersister) favorsByUserQuery(tableName string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE client_address=$1 OR provider_address=$1 "+ // nolint: gosec
		"ORDER BY list_index;", favorFields, tableName)
}

func (p *PostgresPersister) favorByIDQuery(tableName string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE favor_id=$1;", favorFields, tableName) // nolint: gosec
}

func (p *PostgresPersister) nextListIndexQuery(tableName string) string {
	return fmt.Sprintf("SELECT COALESCE(MAX(list_index), -1) + 1 FROM %s;", tableName) // nolint: gosec
}

func (p *PostgresPersister) insertFavorQuery(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", tableName, favorFields, favorNamedFields) // nolint: gosec
}

func (p *PostgresPersister) upsertFavorQuery(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (favor_id) DO UPDATE SET "+ // nolint: gosec
		"prev_id=EXCLUDED.prev_id, next_id=EXCLUDED.next_id, client_address=EXCLUDED.client_address, "+
		"provider_address=EXCLUDED.provider_address, cost=EXCLUDED.cost, category=EXCLUDED.category, "+
		"title=EXCLUDED.title, location=EXCLUDED.location, description=EXCLUDED.description, "+
		"client_vote_cancel=EXCLUDED.client_vote_cancel, provider_vote_cancel=EXCLUDED.provider_vote_cancel, "+
		"client_vote_done=EXCLUDED.client_vote_done, provider_vote_done=EXCLUDED.provider_vote_done, "+
		"client_name=EXCLUDED.client_name, provider_name=EXCLUDED.provider_name, state=EXCLUDED.state, "+
		"style=EXCLUDED.style, last_updated_timestamp=EXCLUDED.last_updated_timestamp;",
		tableName, favorFields, favorNamedFields)
}
