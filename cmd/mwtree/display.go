package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdLevels = &cli.Command{
	Name:      "levels",
	Usage:     "print values in breadth-first (tree level) order",
	ArgsUsage: `[<value>...]`,
	Action:    runLevels,
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Aliases:   []string{"tree"},
	Usage:     "pretty-print the node structure of the tree",
	ArgsUsage: `[<value>...]`,
	Action:    runPrint,
}

func runLevels(cctx *cli.Context) error {
	tree, err := loadTree(cctx, cctx.Args().Slice())
	if err != nil {
		return err
	}
	if err := tree.WriteLevelOrder(cctx.App.Writer); err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer)
	return nil
}

func runPrint(cctx *cli.Context) error {
	tree, err := loadTree(cctx, cctx.Args().Slice())
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, tree.DebugTree().String())
	return nil
}
