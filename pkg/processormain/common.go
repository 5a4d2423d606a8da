// Package processormain contains the wiring and the run loop of favord
package processormain // import "github.com/favorexchange/favor-billboard/pkg/processormain"

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

// EventWatcher delivers decoded contract events to a sink
type EventWatcher interface {
	WatchEvents(ctx context.Context, sink chan<- model.Event) (event.Subscription, error)
}

// InitializedPersisters contains initialized persisters needed to run favord
type InitializedPersisters struct {
	Billboard model.BillboardPersister
	Sync      model.SyncPersister
}

// InitPersisters inits the persisters from the config
func InitPersisters(config *utils.FavorConfig) (*InitializedPersisters, error) {
	billboardPersister, syncPersister, err := helpers.Persisters(config)
	if err != nil {
		log.Errorf("Error getting the persisters: %v", err)
		return nil, err
	}
	lastSync, err := syncPersister.LastSync()
	if err != nil {
		log.Errorf("Error getting the last sync: %v", err)
		return nil, err
	}
	if lastSync.LastRefreshTs > 0 {
		log.Infof("Last refresh at %v, last event block %v",
			utils.SecsToTime(lastSync.LastRefreshTs), lastSync.LastEventBlock)
	}
	return &InitializedPersisters{
		Billboard: billboardPersister,
		Sync:      syncPersister,
	}, nil
}

// LoadUser retrieves the profile of the local user. An unregistered user is
// not an error for favord, the favors are still projected for the address.
func LoadUser(ctx context.Context, source billboard.UserInfoSource, addr common.Address) (*model.UserInfo, error) {
	if model.IsNullAddress(addr) {
		return nil, errors.New("user address required")
	}
	user, err := source.UserInfo(ctx, addr)
	if err != nil {
		return nil, errors.WithMessage(err, "error retrieving user info")
	}
	if !user.IsRegistered() {
		log.Warningf("User %v has not registered a profile yet", addr.Hex())
	} else {
		log.Infof("Running as %v (%v), balance %v", user.Name(), addr.Hex(), user.Balance())
	}
	return user, nil
}
