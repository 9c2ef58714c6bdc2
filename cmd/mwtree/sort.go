package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var cmdSort = &cli.Command{
	Name:      "sort",
	Usage:     "print values in ascending order",
	ArgsUsage: `[<value>...]`,
	Action:    runSort,
}

var cmdReverse = &cli.Command{
	Name:      "reverse",
	Usage:     "print values in descending order",
	ArgsUsage: `[<value>...]`,
	Action:    runReverse,
}

func runSort(cctx *cli.Context) error {
	tree, err := loadTree(cctx, cctx.Args().Slice())
	if err != nil {
		return err
	}
	var out []string
	for c := tree.Begin(); !c.IsEnd(); c.Next() {
		out = append(out, c.Value().String())
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(out, " "))
	return nil
}

func runReverse(cctx *cli.Context) error {
	tree, err := loadTree(cctx, cctx.Args().Slice())
	if err != nil {
		return err
	}
	var out []string
	for r := tree.RBegin(); !r.IsEnd(); r.Next() {
		out = append(out, r.Value().String())
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(out, " "))
	return nil
}
