package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"

	"github.com/favorexchange/favor-billboard/pkg/processormain"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

func main() {
	config := &utils.FavorConfig{}
	flag.Usage = func() {
		config.OutputUsage()
		os.Exit(0)
	}
	flag.Parse()

	err := config.PopulateFromEnv()
	if err != nil {
		config.OutputUsage()
		log.Errorf("Invalid favord config: err: %v\n", err)
		os.Exit(2)
	}

	err = processormain.FavordMain(config)
	if err != nil {
		log.Errorf("Error running favord: err: %v", err)
		log.Flush()
		os.Exit(2)
	}
	log.Flush()
}
