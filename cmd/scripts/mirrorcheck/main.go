package main

// This script checks the postgres billboard mirror against the favor list on
// chain. Favors missing from the mirror or differing from the chain are
// printed, nothing is written.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/persistence"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

func sameFavor(chain *model.Favor, mirror *model.Favor) bool {
	return chain.ClientAddr() == mirror.ClientAddr() &&
		chain.ProviderAddr() == mirror.ProviderAddr() &&
		chain.Cost().Cmp(mirror.Cost()) == 0 &&
		chain.Title() == mirror.Title() &&
		model.ProjectState(chain) == model.ProjectState(mirror) &&
		chain.ClientVoteCancel() == mirror.ClientVoteCancel() &&
		chain.ProviderVoteCancel() == mirror.ProviderVoteCancel() &&
		chain.ClientVoteDone() == mirror.ClientVoteDone() &&
		chain.ProviderVoteDone() == mirror.ProviderVoteDone()
}

func run(config *utils.FavorConfig) {
	ctx := context.Background()

	if config.PersisterType != utils.PersisterTypePostgresql {
		fmt.Printf("error: mirrorcheck requires the postgresql persister\n")
		os.Exit(2)
	}
	p, err := helpers.Persister(config)
	if err != nil {
		fmt.Printf("error with persister: err: %v\n", err)
		os.Exit(2)
	}
	persister := p.(*persistence.PostgresPersister)
	defer persister.Close() // nolint: errcheck

	client, favorExchange, err := helpers.FavorExchange(config)
	if err != nil {
		fmt.Printf("error with eth client: err: %v\n", err)
		os.Exit(2)
	}
	defer client.Close()

	bb := billboard.NewBillboard(favorExchange, nil, &billboard.Config{
		MaxHops:     config.MaxListHops,
		CallsPerSec: config.RPCCallsPerSec,
	})
	err = bb.Refresh(ctx)
	if err != nil {
		fmt.Printf("error refreshing billboard: err: %v\n", err)
		os.Exit(2)
	}

	missing, mismatched := 0, 0
	for _, favor := range bb.Favors() {
		mirrored, err := persister.FavorByID(favor.ID())
		if err == persistence.ErrPersisterNoResults {
			fmt.Printf("Missing favor: %v, title: %v\n", favor.ID().Hex(), favor.Title())
			missing++
			continue
		}
		if err != nil {
			fmt.Printf("error retrieving favor %v: err: %v\n", favor.ID().Hex(), err)
			continue
		}
		if !sameFavor(favor, mirrored) {
			fmt.Printf("Mismatched favor: %v\nchain: %vmirror: %v", favor.ID().Hex(),
				spew.Sdump(favor), spew.Sdump(mirrored))
			mismatched++
		}
	}
	fmt.Printf("Done. checked: %v, missing: %v, mismatched: %v\n", bb.Len(), missing, mismatched)
}

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
		os.Exit(2)
	}

	run(config)
}
