package main

import (
	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	to, err := checkAddress(c.String("receiver"))
	if err != nil {
		return err
	}
	amount, err := checkAmount("amount", c.String("amount"))
	if err != nil {
		return err
	}
	a, err := newActions(ctx, m, false)
	if err != nil {
		return err
	}
	tx, err := a.Transfer(ctx, to, amount)
	if err != nil {
		return err
	}
	printTx(m, tx)
	return nil
}

func runBuy(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	wei, err := checkAmount("wei", c.String("wei"))
	if err != nil {
		return err
	}
	a, err := newActions(ctx, m, false)
	if err != nil {
		return err
	}
	tx, err := a.DemoBuy(ctx, wei)
	if err != nil {
		return err
	}
	printTx(m, tx)
	return nil
}
