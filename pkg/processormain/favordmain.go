package processormain

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/processor"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

func setupKillNotify(quitChan chan<- bool) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		close(quitChan)
	}()
}

// FavordMain wires the billboard, the processor and its outputs from the
// config and runs the loop until SIGINT or SIGTERM
func FavordMain(config *utils.FavorConfig) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.UserAddress == "" {
		return errors.New("FAVOR_USER_ADDRESS or FAVOR_PRIVATE_KEY required")
	}

	persisters, err := InitPersisters(config)
	if err != nil {
		return errors.WithMessage(err, "error initializing persisters")
	}

	notifier, err := helpers.Notifier(ctx, config)
	if err != nil {
		return err
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

	names := billboard.NewNameResolver(favorExchange, config.NameCacheExpiry())
	bb := billboard.NewBillboard(favorExchange, names, &billboard.Config{
		MaxHops:     config.MaxListHops,
		CallsPerSec: config.RPCCallsPerSec,
	})
	proc := processor.NewEventProcessor(&processor.EventProcessorParams{
		Billboard:     bb,
		FavorSource:   favorExchange,
		User:          user,
		Persister:     persisters.Billboard,
		SyncPersister: persisters.Sync,
		Notifier:      notifier,
	})
	app := NewApp(proc, favorExchange)

	cr, err := startRefreshCron(config, app)
	if err != nil {
		return errors.WithMessage(err, "error starting refresh cron")
	}
	defer cr.Stop()

	quit := make(chan bool)
	setupKillNotify(quit)
	app.Run(ctx, quit)

	if closer, ok := notifier.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Errorf("Error closing notifier: err: %v", err)
		}
	}
	log.Infof("Done running favord: %v", runtime.NumGoroutine())
	return nil
}
