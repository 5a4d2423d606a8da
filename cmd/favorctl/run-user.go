package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/favorexchange/favor-billboard/pkg/model"
	"github.com/favorexchange/favor-billboard/pkg/render"
)

func runUser(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	addr := m.config.UserAddressHex()
	if s := c.String("address"); s != "" {
		addr, err = checkAddress(s)
		if err != nil {
			return err
		}
	}
	if model.IsNullAddress(addr) {
		return fmt.Errorf("user address is required")
	}

	info, err := m.exchange.UserInfo(ctx, addr)
	if err != nil {
		return err
	}
	return render.WriteUserInfo(m.w, info)
}

func runRegister(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	a, err := newActions(ctx, m, true)
	if err != nil {
		return err
	}
	tx, err := a.RegisterUser(ctx, c.String("name"), c.String("public-key"), c.String("contact"))
	if err != nil {
		return err
	}
	printTx(m, tx)
	return nil
}

func runSupply(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	supply, err := m.exchange.TotalSupply(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.w, "total supply: %s\n", supply) // nolint: errcheck
	return nil
}
