package processormain

import (
	log "github.com/golang/glog"
	"github.com/robfig/cron"

	"github.com/favorexchange/favor-billboard/pkg/utils"
)

func checkCron(cr *cron.Cron) {
	entries := cr.Entries()
	for _, entry := range entries {
		log.Infof("Refresh run times: prev: %v, next: %v", entry.Prev, entry.Next)
	}
}

// startRefreshCron requests a full refresh from the app on the configured
// schedule. The refresh itself runs on the app loop.
func startRefreshCron(config *utils.FavorConfig, app *App) (*cron.Cron, error) {
	schedule, err := utils.RefreshSchedule(config.RefreshCronConfig)
	if err != nil {
		return nil, err
	}
	cr := cron.New()
	cr.Schedule(schedule, cron.FuncJob(func() {
		app.RequestRefresh()
		checkCron(cr)
	}))
	cr.Start()
	return cr, nil
}
