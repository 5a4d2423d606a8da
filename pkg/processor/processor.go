// Package processor applies favor exchange events to the billboard
package processor // import "github.com/favorexchange/favor-billboard/pkg/processor"

import (
	"context"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

// EventProcessorParams are the params to init an EventProcessor
type EventProcessorParams struct {
	Billboard     *billboard.Billboard
	FavorSource   billboard.FavorSource
	User          *model.UserInfo
	Persister     model.BillboardPersister
	SyncPersister model.SyncPersister
	Notifier      model.FavorNotifier
}

// NewEventProcessor is a convenience function to init an EventProcessor
func NewEventProcessor(params *EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		billboard:     params.Billboard,
		favorSource:   params.FavorSource,
		user:          params.User,
		persister:     params.Persister,
		syncPersister: params.SyncPersister,
		notifier:      params.Notifier,
	}
}

// EventProcessor applies contract events to the billboard and forwards the
// resulting changes to the mirror and the notifier. It is the application
// state of favord and is only used from the processor loop.
type EventProcessor struct {
	billboard     *billboard.Billboard
	favorSource   billboard.FavorSource
	user          *model.UserInfo
	persister     model.BillboardPersister
	syncPersister model.SyncPersister
	notifier      model.FavorNotifier
}

// Billboard returns the billboard maintained by the processor
func (e *EventProcessor) Billboard() *billboard.Billboard {
	return e.billboard
}

// User returns the local user
func (e *EventProcessor) User() *model.UserInfo {
	return e.user
}

// Process applies a single event. Returns an error only if a contract call
// needed to apply the event failed, in which case nothing changed.
func (e *EventProcessor) Process(ctx context.Context, event model.Event) error {
	var err error
	switch ev := event.(type) {
	case *model.FavorCreated:
		log.Infof("Handling FavorCreated for %v", ev.ID.Hex())
		err = e.processFavorCreated(ctx, ev)

	case *model.FavorMatched:
		log.Infof("Handling FavorMatched for %v by %v", ev.ID.Hex(), ev.Actor.Hex())
		updated := e.billboard.ApplyMatched(ctx, ev.ID, ev.Actor)
		e.favorChanged(updated, ev)

	case *model.FavorVoteCast:
		log.Infof("Handling %v for %v by %v", ev.Name(), ev.ID.Hex(), ev.Actor.Hex())
		updated := e.billboard.ApplyVote(ev.ID, ev.Actor, ev.Kind)
		e.favorChanged(updated, ev)

	case *model.FavorFinalized:
		log.Infof("Handling %v for %v", ev.Name(), ev.ID.Hex())
		removed := e.billboard.ApplyFinalized(ev.ID)
		e.favorRemoved(removed, ev)

	case *model.BalanceChanged:
		e.processBalanceChanged(ev)

	default:
		log.Warningf("Unhandled event type %T", event)
		return nil
	}
	if err != nil {
		return err
	}
	e.saveLastEventBlock(event.Meta().BlockNumber)
	return nil
}

// Refresh rebuilds the billboard from the contract and replaces the mirror
func (e *EventProcessor) Refresh(ctx context.Context) error {
	err := e.billboard.Refresh(ctx)
	if err != nil {
		return errors.WithMessage(err, "error refreshing billboard")
	}
	err = e.persister.ReplaceFavors(e.billboard.Favors(), e.user.Address())
	if err != nil {
		log.Errorf("Error replacing mirrored favors: err: %v", err)
	}
	err = e.syncPersister.UpdateLastRefresh(utils.CurrentEpochSecsInInt64())
	if err != nil {
		log.Errorf("Error saving last refresh: err: %v", err)
	}
	return nil
}

func (e *EventProcessor) processFavorCreated(ctx context.Context, ev *model.FavorCreated) error {
	favor, err := e.favorSource.Favor(ctx, ev.ID)
	if err != nil {
		return errors.WithMessagef(err, "error retrieving created favor %v", ev.ID.Hex())
	}
	if favor.IsEmpty() {
		log.Warningf("Created favor %v no longer in contract, ignoring", ev.ID.Hex())
		return nil
	}
	e.billboard.ApplyCreated(ctx, favor)
	e.favorChanged(favor, ev)
	return nil
}

func (e *EventProcessor) processBalanceChanged(ev *model.BalanceChanged) {
	if ev.User != e.user.Address() {
		log.V(2).Infof("Ignoring BalanceChanged for %v", ev.User.Hex())
		return
	}
	log.Infof("Balance of %v changed to %v", ev.User.Hex(), ev.Balance)
	e.user.SetBalance(ev.Balance)
}

func (e *EventProcessor) saveLastEventBlock(blockNumber uint64) {
	err := e.syncPersister.UpdateLastEventBlock(blockNumber)
	if err != nil {
		log.Errorf("Error saving last event block: err: %v", err)
	}
}
