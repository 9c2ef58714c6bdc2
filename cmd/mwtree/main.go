package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bluesky-social/mwtree/internal/valueio"
	"github.com/bluesky-social/mwtree/mwtree"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "mwtree",
		Usage:   "build multiway search trees from values, and display them",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-node-elems",
				Aliases: []string{"m"},
				Usage:   "maximum number of values stored in each tree node",
				Value:   mwtree.DefaultMaxNodeElems,
				EnvVars: []string{"MWTREE_MAX_NODE_ELEMS"},
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "value type: int, float, string, or time",
				Value:   "int",
				EnvVars: []string{"MWTREE_VALUE_TYPE"},
			},
			&cli.StringFlag{
				Name:    "collate",
				Usage:   "order strings by the collation rules of this language (eg: en, de, sv)",
				EnvVars: []string{"MWTREE_COLLATE"},
			},
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read values from file (repeatable); ints and floats are whitespace separated, strings and times one per line",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: error, warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"MWTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			return configLogger(cctx, cctx.App.ErrWriter)
		},
	}
	app.Commands = []*cli.Command{
		cmdSort,
		cmdReverse,
		cmdLevels,
		cmdPrint,
		cmdFind,
		cmdCheck,
		cmdGen,
	}
	return app
}

// Installs a JSON handler on writer as the default slog logger. Level names are whatever slog accepts: "debug", "WARN", "info+2", and so on.
func configLogger(cctx *cli.Context, writer io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if writer == nil {
		writer = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

func valueKind(cctx *cli.Context) (valueio.Kind, error) {
	return valueio.ParseKind(cctx.String("type"))
}

// Reads values from any --file flags, followed by the given arguments, and inserts them into a new tree.
func loadTree(cctx *cli.Context, args []string) (*mwtree.Tree[valueio.Value], error) {
	kind, err := valueKind(cctx)
	if err != nil {
		return nil, err
	}
	less, err := valueio.Ordering(kind, cctx.String("collate"))
	if err != nil {
		return nil, err
	}

	vals, err := valueio.LoadFiles(cctx.Context, kind, cctx.StringSlice("file"))
	if err != nil {
		return nil, err
	}
	argVals, err := valueio.FromArgs(kind, args)
	if err != nil {
		return nil, err
	}
	vals = append(vals, argVals...)
	if len(vals) == 0 {
		return nil, fmt.Errorf("no values provided (use --file or arguments)")
	}

	opts := mwtree.DefaultOptions[valueio.Value]()
	opts.MaxNodeElems = cctx.Int("max-node-elems")
	opts.Logger = slog.Default()
	tree, dups, err := valueio.Build(vals, less, opts)
	if err != nil {
		return nil, err
	}
	slog.Info("built tree", "values", len(vals), "duplicates", dups, "nodes", tree.NodeCount(), "depth", tree.Depth())
	return tree, nil
}
