package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/urfave/cli"

	"github.com/favorexchange/favor-billboard/pkg/actions"
)

func runCreate(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	kind, err := actions.ParseFavorKind(c.String("kind"))
	if err != nil {
		return err
	}
	cost, err := checkAmount("cost", c.String("cost"))
	if err != nil {
		return err
	}
	params := &actions.CreateFavorParams{
		Kind:        kind,
		Cost:        cost,
		Title:       c.String("title"),
		Location:    c.String("location"),
		Description: c.String("description"),
		Category:    c.Int("category"),
	}
	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s\n", kind)          // nolint: errcheck
		fmt.Fprintf(m.e, "cost: %s\n", cost)          // nolint: errcheck
		fmt.Fprintf(m.e, "title: %s\n", params.Title) // nolint: errcheck
	}

	a, err := newActions(ctx, m, false)
	if err != nil {
		return err
	}
	tx, err := a.CreateFavor(ctx, params)
	if err != nil {
		return err
	}
	printTx(m, tx)
	return nil
}

func runAccept(c *cli.Context) error {
	return runFavorAction(c, (*actions.Actions).AcceptFavor)
}

func runVoteCancel(c *cli.Context) error {
	return runFavorAction(c, (*actions.Actions).VoteCancel)
}

func runVoteDone(c *cli.Context) error {
	return runFavorAction(c, (*actions.Actions).VoteDone)
}

type favorAction func(a *actions.Actions, ctx context.Context, id common.Hash) (*types.Transaction, error)

func runFavorAction(c *cli.Context, action favorAction) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	id, err := checkFavorID(c.String("id"))
	if err != nil {
		return err
	}
	a, err := newActions(ctx, m, false)
	if err != nil {
		return err
	}
	tx, err := action(a, ctx, id)
	if err != nil {
		return err
	}
	printTx(m, tx)
	return nil
}
