package processor

import (
	log "github.com/golang/glog"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

// favorChanged mirrors and publishes a favor updated by an event. A nil favor
// means the event was ignored.
func (e *EventProcessor) favorChanged(favor *model.Favor, event model.Event) {
	if favor == nil {
		return
	}
	err := e.persister.UpsertFavor(favor, e.user.Address())
	if err != nil {
		log.Errorf("Error mirroring favor %v: err: %v", favor.ID().Hex(), err)
	}
	e.notify(favor, model.Project(favor, e.user.Address()), event)
}

// favorRemoved deletes a finalized favor from the mirror and publishes its
// removal
func (e *EventProcessor) favorRemoved(favor *model.Favor, event model.Event) {
	if favor == nil {
		return
	}
	err := e.persister.DeleteFavor(favor.ID())
	if err != nil {
		log.Errorf("Error deleting mirrored favor %v: err: %v", favor.ID().Hex(), err)
	}
	display := model.Project(favor, e.user.Address())
	display.Removed = true
	display.Style = model.StyleRemoved
	display.Controls = []model.Control{}
	e.notify(favor, display, event)
}

func (e *EventProcessor) notify(favor *model.Favor, display model.Display, event model.Event) {
	err := e.notifier.NotifyFavor(favor, display, event)
	if err != nil {
		log.Errorf("Error publishing favor %v: err: %v", favor.ID().Hex(), err)
	}
}
