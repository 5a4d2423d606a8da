// Package main contains logic to rebuild the postgres billboard mirror
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
		log.Errorf("Invalid rebuild config: err: %v\n", err)
		os.Exit(2)
	}

	err = processormain.RebuildMirrorMain(config)
	if err != nil {
		log.Errorf("Error rebuilding mirror: err: %v", err)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
