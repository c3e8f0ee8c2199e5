package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/t14raptor/go-holes/log"
	"github.com/t14raptor/go-holes/transform/holes"
)

// Repl prints the expansion of each line read. On a terminal it offers line
// editing and history; otherwise it reads stdin line by line.
type Repl struct {
	History string `help:"History file (default ~/.holes_history)." type:"path"`
	Prompt  string `default:"> " help:"Interactive prompt."`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

func (r *Repl) Run(ctx context.Context) error {
	opts := optionsFrom(ctx)

	if r.Stdin == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		return r.interactive(ctx, opts)
	}

	return r.batch(ctx, opts)
}

// eval expands a single line. Parse errors are reported and the session
// continues.
func (r *Repl) eval(ctx context.Context, input string, opts holes.Options) {
	out, n, err := expandSource("repl", input, opts)
	if err != nil {
		fmt.Fprintln(r.stderr(), err)
		return
	}
	logExpanded(ctx, "repl", n)
	fmt.Fprint(outputOr(r.Stdout), out)
}

func (r *Repl) batch(ctx context.Context, opts holes.Options) error {
	in := r.Stdin
	if in == nil {
		in = os.Stdin
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r.eval(ctx, sc.Text(), opts)
	}

	return sc.Err()
}

func (r *Repl) interactive(ctx context.Context, opts holes.Options) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := r.historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	if err := r.loop(ctx, line, opts); err != nil {
		return err
	}

	if historyPath == "" {
		return nil
	}

	f, err := os.Create(historyPath)
	if err != nil {
		log.WarnContext(ctx, "history not saved",
			slog.Any("error", ErrHistory.Wrap(err).With(slog.String("path", historyPath))))
		return nil
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		return ErrHistory.Wrap(err).With(slog.String("path", historyPath))
	}

	return nil
}

// prompter is the part of *liner.State the read loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// loop reads and expands lines until EOF, cancellation, or Ctrl-C on an
// empty line. Ctrl-C with pending input only discards that input.
func (r *Repl) loop(ctx context.Context, line prompter, opts holes.Options) error {
	for ctx.Err() == nil {
		input, err := line.Prompt(r.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.stderr())
			if strings.TrimSpace(input) == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		r.eval(ctx, input, opts)
	}

	return nil
}

func (r *Repl) historyFile() string {
	if r.History != "" {
		return r.History
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}

	return filepath.Join(home, ".holes_history")
}

func (r *Repl) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}

	return r.Stderr
}
