package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/render"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

func runBillboard(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	names := billboard.NewNameResolver(m.exchange, m.config.NameCacheExpiry())
	bb := billboard.NewBillboard(m.exchange, names, &billboard.Config{
		MaxHops:     m.config.MaxListHops,
		CallsPerSec: m.config.RPCCallsPerSec,
	})
	err = bb.Refresh(ctx)
	if err != nil {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "favors: %d\n", bb.Len()) // nolint: errcheck
	}
	return render.WriteBillboard(m.w, bb.Favors(), m.config.UserAddressHex())
}

func runFavor(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	id, err := checkFavorID(c.String("id"))
	if err != nil {
		return err
	}
	favor, err := m.exchange.Favor(ctx, id)
	if err != nil {
		return err
	}
	if favor.IsEmpty() {
		return fmt.Errorf("favor not found: %s", id.Hex())
	}
	names := billboard.NewNameResolver(m.exchange, m.config.NameCacheExpiry())
	names.Resolve(ctx, favor)

	if c.Bool("dump") {
		spew.Fdump(m.w, favor)
		return nil
	}
	return render.WriteFavor(m.w, favor, m.config.UserAddressHex())
}

// runMine reads the favors of the local user from the mirror kept by favord,
// the node is not contacted
func runMine(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	config, err := m.loadConfig()
	if err != nil {
		return err
	}
	if config.PersisterType != utils.PersisterTypePostgresql {
		return fmt.Errorf("mine requires the postgresql persister")
	}
	user := config.UserAddressHex()
	if model.IsNullAddress(user) {
		return fmt.Errorf("user address is required")
	}

	p, err := helpers.Persister(config)
	if err != nil {
		return err
	}
	if closer, ok := p.(io.Closer); ok {
		defer closer.Close() // nolint: errcheck
	}
	favors, err := p.(model.BillboardPersister).FavorsByUser(user)
	if err != nil {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "favors: %d\n", len(favors)) // nolint: errcheck
	}
	return render.WriteBillboard(m.w, favors, user)
}

func runCategories(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	for i, name := range model.Categories {
		if model.IsValidFavorCategory(i) {
			fmt.Fprintf(m.w, "%2d  %s\n", i, name) // nolint: errcheck
		}
	}
	return nil
}
