package main

import (
	"errors"
	"fmt"

	"github.com/bluesky-social/mwtree/internal/valueio"

	"github.com/urfave/cli/v2"
)

var ErrNotFound = errors.New("value not found")

var cmdFind = &cli.Command{
	Name:      "find",
	Usage:     "look up a value, printing it along with its neighbours in sorted order",
	ArgsUsage: `<query> [<value>...]`,
	Action:    runFind,
}

var cmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "verify tree structure, and print summary statistics",
	ArgsUsage: `[<value>...]`,
	Action:    runCheck,
}

func runFind(cctx *cli.Context) error {
	if cctx.Args().Len() < 1 {
		return fmt.Errorf("need to provide a value to look up")
	}
	kind, err := valueKind(cctx)
	if err != nil {
		return err
	}
	query, err := valueio.Parse(kind, cctx.Args().First())
	if err != nil {
		return err
	}
	tree, err := loadTree(cctx, cctx.Args().Tail())
	if err != nil {
		return err
	}

	c := tree.Find(query)
	if c.IsEnd() {
		return fmt.Errorf("%w: %s", ErrNotFound, query)
	}
	prev := c.Clone()
	prev.Prev()
	next := c.Clone()
	next.Next()

	fmt.Fprintf(cctx.App.Writer, "found: %s\n", c.Value())
	if prev.Valid() {
		fmt.Fprintf(cctx.App.Writer, "prev: %s\n", prev.Value())
	}
	if next.Valid() {
		fmt.Fprintf(cctx.App.Writer, "next: %s\n", next.Value())
	}
	return nil
}

func runCheck(cctx *cli.Context) error {
	tree, err := loadTree(cctx, cctx.Args().Slice())
	if err != nil {
		return err
	}
	if err := tree.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "values: %d\n", tree.Len())
	fmt.Fprintf(cctx.App.Writer, "nodes: %d\n", tree.NodeCount())
	fmt.Fprintf(cctx.App.Writer, "depth: %d\n", tree.Depth())
	fmt.Fprintf(cctx.App.Writer, "max-node-elems: %d\n", tree.MaxNodeElems())
	fmt.Fprintln(cctx.App.Writer, "verified tree")
	return nil
}
