package processormain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/persistence"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

// Mirror is the store rebuilt by RebuildMirror
type Mirror interface {
	DropTables() error
	CreateTables() error
	ReplaceFavors(favors []*model.Favor, user common.Address) error
	UpdateLastRefresh(ts int64) error
}

// RebuildMirrorMain connects to the node, refreshes the billboard and then
// replaces the postgres mirror tables with its contents
func RebuildMirrorMain(config *utils.FavorConfig) error {
	ctx := context.Background()

	if config.PersisterType != utils.PersisterTypePostgresql {
		return errors.New("rebuild requires the postgresql persister")
	}

	client, favorExchange, err := helpers.FavorExchange(config)
	if err != nil {
		return err
	}
	defer client.Close()

	user, err := LoadUser(ctx, favorExchange, config.UserAddressHex())
	if err != nil {
		return err
	}

	p, err := helpers.Persister(config)
	if err != nil {
		return errors.WithMessage(err, "error initializing persister")
	}
	persister := p.(*persistence.PostgresPersister)
	defer persister.Close() // nolint: errcheck

	names := billboard.NewNameResolver(favorExchange, config.NameCacheExpiry())
	bb := billboard.NewBillboard(favorExchange, names, &billboard.Config{
		MaxHops:     config.MaxListHops,
		CallsPerSec: config.RPCCallsPerSec,
	})
	return RebuildMirror(ctx, bb, persister, user)
}

// RebuildMirror refreshes the billboard and only then drops, recreates and
// fills the mirror. A failed refresh leaves the mirror untouched.
func RebuildMirror(ctx context.Context, bb *billboard.Billboard, mirror Mirror, user *model.UserInfo) error {
	err := bb.Refresh(ctx)
	if err != nil {
		return errors.WithMessage(err, "error refreshing billboard")
	}

	log.Infof("Dropping mirror tables")
	err = mirror.DropTables()
	if err != nil {
		return err
	}
	err = mirror.CreateTables()
	if err != nil {
		return errors.WithMessage(err, "error recreating tables")
	}
	err = mirror.ReplaceFavors(bb.Favors(), user.Address())
	if err != nil {
		return errors.WithMessage(err, "error filling mirror")
	}
	err = mirror.UpdateLastRefresh(utils.CurrentEpochSecsInInt64())
	if err != nil {
		return errors.WithMessage(err, "error saving last refresh")
	}
	log.Infof("Rebuild completed: %v favors", bb.Len())
	return nil
}
