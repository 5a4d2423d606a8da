package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runHistory(c *cli.Context) error {
	m, ctx, cancel, err := getMetadata(c)
	if err != nil {
		return err
	}
	defer cancel()

	from := c.Uint64("from")
	var to *uint64
	if last := c.Uint64("to"); last != 0 {
		if last < from {
			return fmt.Errorf("invalid block range: %d-%d", from, last)
		}
		to = &last
	}

	events, err := m.exchange.FilterEvents(ctx, from, to)
	if err != nil {
		return err
	}
	for _, ev := range events {
		meta := ev.Meta()
		fmt.Fprintf(m.w, "%d\t%s\t%s\n", meta.BlockNumber, meta.TxHash.Hex(), ev) // nolint: errcheck
	}
	return nil
}
