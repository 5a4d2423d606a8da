package processormain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/event"
	log "github.com/golang/glog"

	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/processor"
)

const (
	eventBufferSize         = 64
	defaultResubscribeDelay = 1 * time.Second
	maxResubscribeDelay     = 2 * time.Minute
)

// NewApp returns an App running the processor with events from the watcher
func NewApp(proc *processor.EventProcessor, watcher EventWatcher) *App {
	return &App{
		proc:             proc,
		watcher:          watcher,
		events:           make(chan model.Event, eventBufferSize),
		refresh:          make(chan struct{}, 1),
		resubscribeDelay: defaultResubscribeDelay,
	}
}

// App owns the billboard for the lifetime of favord. All events, refreshes
// and shutdown are handled on the single loop in Run.
type App struct {
	proc             *processor.EventProcessor
	watcher          EventWatcher
	events           chan model.Event
	refresh          chan struct{}
	resubscribeDelay time.Duration
}

// SetResubscribeDelay sets the initial delay between subscription attempts
func (a *App) SetResubscribeDelay(delay time.Duration) {
	a.resubscribeDelay = delay
}

// Processor returns the event processor of the app
func (a *App) Processor() *processor.EventProcessor {
	return a.proc
}

// RequestRefresh asks the loop for a full refresh. Requests made while one is
// already pending are dropped.
func (a *App) RequestRefresh() {
	select {
	case a.refresh <- struct{}{}:
	default:
		log.Infof("Refresh already pending")
	}
}

// Run subscribes to the contract events, refreshes the billboard and then
// processes events until quit is closed. Closing quit also cancels a refresh
// or event in flight.
func (a *App) Run(ctx context.Context, quit <-chan bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	sub, ok := a.subscribe(ctx, quit)
	if !ok {
		return
	}
	a.runRefresh(ctx)

Loop:
	for {
		select {
		case ev := <-a.events:
			err := a.proc.Process(ctx, ev)
			if err != nil {
				log.Errorf("Error processing %v: err: %v", ev.Name(), err)
			}

		case err := <-sub.Err():
			log.Errorf("Event subscription failed: err: %v", err)
			sub.Unsubscribe()
			sub, ok = a.subscribe(ctx, quit)
			if !ok {
				return
			}
			// events may have been missed while unsubscribed
			a.runRefresh(ctx)

		case <-a.refresh:
			a.runRefresh(ctx)

		case <-quit:
			log.Infof("Quitting")
			break Loop

		case <-ctx.Done():
			log.Infof("Context done, quitting")
			break Loop
		}
	}
	sub.Unsubscribe()
}

func (a *App) runRefresh(ctx context.Context) {
	err := a.proc.Refresh(ctx)
	if err != nil {
		log.Errorf("Error refreshing billboard: err: %v", err)
		return
	}
	log.Infof("Billboard has %v favors", a.proc.Billboard().Len())
}

// subscribe retries with an exponential backoff until the subscription
// succeeds. Returns false if quit was closed or ctx is done first.
func (a *App) subscribe(ctx context.Context, quit <-chan bool) (event.Subscription, bool) {
	delay := a.resubscribeDelay
	for {
		sub, err := a.watcher.WatchEvents(ctx, a.events)
		if err == nil {
			log.Infof("Subscribed to favor exchange events")
			return sub, true
		}
		log.Errorf("Error subscribing to events, retrying in %v: err: %v", delay, err)
		select {
		case <-time.After(delay):
		case <-quit:
			return nil, false
		case <-ctx.Done():
			return nil, false
		}
		delay *= 2
		if delay > maxResubscribeDelay {
			delay = maxResubscribeDelay
		}
	}
}
