// Package helpers contains various common helper functions.
// Normally they are shared functions used by the cmds.
package helpers

import (
	"context"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/persistence"
	"github.com/favorexchange/favor-billboard/pkg/pubsub"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

// Persister is a helper function to return an interface{} that is a initialized
// persister type
func Persister(config *utils.FavorConfig) (interface{}, error) {
	if config.PersisterType == utils.PersisterTypePostgresql {
		return postgresPersister(config)
	}
	// Default to the NullPersister
	return &persistence.NullPersister{}, nil
}

// Persisters is a helper function to return the billboard and sync persisters
// based on the given configuration. Without a database the sync point is kept
// in memory.
func Persisters(config *utils.FavorConfig) (model.BillboardPersister, model.SyncPersister, error) {
	p, err := Persister(config)
	if err != nil {
		return nil, nil, err
	}
	billboardPersister := p.(model.BillboardPersister)
	syncPersister, ok := p.(model.SyncPersister)
	if !ok {
		syncPersister = persistence.NewMemorySyncPersister()
	}
	return billboardPersister, syncPersister, nil
}

// Notifier is a helper function to return the favor notifier based on the
// given configuration
func Notifier(ctx context.Context, config *utils.FavorConfig) (model.FavorNotifier, error) {
	if !config.PubSubEnabled() {
		return &pubsub.NullNotifier{}, nil
	}
	notifier, err := pubsub.NewGooglePubSubNotifier(ctx, config.PubSubProjectID,
		config.PubSubTopicName, config.PubSubCredentialsFile)
	if err != nil {
		return nil, errors.WithMessage(err, "error initializing pubsub notifier")
	}
	log.Infof("Publishing favor changes to %v/%v", config.PubSubProjectID, config.PubSubTopicName)
	return notifier, nil
}

func postgresPersister(config *utils.FavorConfig) (*persistence.PostgresPersister, error) {
	persister, err := persistence.NewPostgresPersister(
		config.PersisterPostgresAddress,
		config.PersisterPostgresPort,
		config.PersisterPostgresUser,
		config.PersisterPostgresPw,
		config.PersisterPostgresDbname,
	)
	if err != nil {
		log.Errorf("Error connecting to Postgresql, stopping...; err: %v", err)
		return nil, err
	}
	err = persister.CreateTables()
	if err != nil {
		return nil, errors.WithMessage(err, "unable to create tables")
	}
	return persister, nil
}
