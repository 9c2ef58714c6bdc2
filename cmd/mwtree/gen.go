package main

import (
	"fmt"

	"github.com/bluesky-social/mwtree/internal/valueio"

	"github.com/urfave/cli/v2"
)

var cmdGen = &cli.Command{
	Name:  "gen",
	Usage: "print random distinct values of the selected type, one per line",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of values to generate",
			Value:   100,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed",
			Value: 1,
		},
	},
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	kind, err := valueKind(cctx)
	if err != nil {
		return err
	}
	count := cctx.Int("count")
	if count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	vals, err := valueio.Fake(kind, count, cctx.Int64("seed"))
	if err != nil {
		return err
	}
	for _, v := range vals {
		fmt.Fprintln(cctx.App.Writer, v)
	}
	return nil
}
