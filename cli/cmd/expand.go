package cmd

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/go-holes/log"
)

// Expand rewrites placeholder expressions in each source and prints the
// result, or writes it back in place.
type Expand struct {
	Sources []string `arg:"" default:"-" help:"Source file(s) or '-' for stdin" optional:""`
	Write   bool     `help:"Write the result back to each source file." short:"w"`
	Jobs    int      `default:"0" help:"Number of files expanded in parallel (0 uses GOMAXPROCS)." short:"j"`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

func (e *Expand) Run(ctx context.Context) error {
	if e.Write && slices.Contains(e.Sources, stdinSource) {
		return ErrStdinWrite
	}

	opts := optionsFrom(ctx)
	results := make([]string, len(e.Sources))

	g, ctx := errgroup.WithContext(ctx)

	jobs := e.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)

	for i, name := range e.Sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := readSource(name, e.Stdin)
			if err != nil {
				return err
			}

			out, n, err := expandSource(name, src, opts)
			if err != nil {
				return err
			}
			logExpanded(ctx, name, n)

			if e.Write {
				// Printing drops comments and formatting, so sources
				// without holes are left untouched.
				if n == 0 || out == src {
					return nil
				}
				return writeSource(name, out)
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if e.Write {
		log.InfoContext(ctx, "expanded sources", slog.Int("files", len(e.Sources)))
		return nil
	}

	w := outputOr(e.Stdout)
	for _, out := range results {
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}

	return nil
}
