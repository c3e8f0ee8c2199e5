// Package cli wires the holes command line together.
package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/t14raptor/go-holes/cli/cmd"
)

const (
	name        = "holes"
	description = "Expand placeholder holes in JavaScript expressions into arrow functions."
)

// CLI is the top-level command-line interface.
type CLI struct {
	Log       logConfig       `embed:"" group:"log" prefix:"log-"`
	Expansion expansionConfig `embed:"" group:"expansion"`

	Watch cmd.Watch `cmd:"" help:"Re-expand sources whenever they change"`
	Repl  cmd.Repl  `cmd:"" help:"Expand lines interactively"`

	Expand cmd.Expand `cmd:"" default:"withargs" help:"Expand sources"`
}

// Run executes the holes CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{
			cli.Log.group(),
			{Key: "expansion", Title: "Expansion options"},
		}),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			NoExpandSubcommands: true,
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	opts, err := cli.Expansion.options()
	if err != nil {
		return err
	}

	// The singleton provider above returns the reassigned ctx.
	ctx = cmd.WithOptions(ctx, opts)

	return ktx.Run(ctx, &cli)
}
