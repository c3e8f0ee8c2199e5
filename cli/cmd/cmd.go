// Package cmd implements the holes subcommands.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/t14raptor/go-holes/generator"
	"github.com/t14raptor/go-holes/log"
	"github.com/t14raptor/go-holes/parser"
	"github.com/t14raptor/go-holes/transform/holes"
)

type optionsKey struct{}

// WithOptions returns a new context carrying the expansion options used by
// every command.
func WithOptions(ctx context.Context, opts holes.Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) holes.Options {
	opts, ok := ctx.Value(optionsKey{}).(holes.Options)
	if !ok {
		return holes.DefaultOptions()
	}

	return opts
}

// stdinSource names standard input in argument lists.
const stdinSource = "-"

// expandSource parses src, expands its placeholders and prints the result.
func expandSource(name, src string, opts holes.Options) (string, int, error) {
	prog, err := parser.ParseFile(src)
	if err != nil {
		return "", 0, ErrParse.Wrap(err).With(slog.String("source", name))
	}

	n := holes.Expand(prog, opts)

	return generator.Generate(prog), n, nil
}

// readSource returns the contents of name, reading stdin for "-".
func readSource(name string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinSource {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return "", ErrReadSource.Wrap(err).With(slog.String("source", name))
	}

	return string(data), nil
}

// writeSource replaces the contents of name, keeping its permissions. The
// new contents are renamed into place so watchers never see a partial file.
func writeSource(name, text string) (err error) {
	defer func() {
		if err != nil {
			err = ErrWriteSource.Wrap(err).With(slog.String("source", name))
		}
	}()

	mode := os.FileMode(0o644)
	if info, err := os.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), name)
}

func outputOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}

func logExpanded(ctx context.Context, name string, n int) {
	log.DebugContext(ctx, "expanded source",
		slog.String("source", name),
		slog.Int("expansions", n),
	)
}
