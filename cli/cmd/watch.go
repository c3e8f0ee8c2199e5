package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/t14raptor/go-holes/log"
	"github.com/t14raptor/go-holes/transform/holes"
)

// Watch expands each source once and again every time it changes, until the
// context is cancelled.
type Watch struct {
	Sources []string `arg:"" help:"Source file(s) to watch" type:"existingfile"`
	Write   bool     `help:"Write the result back to each source file." short:"w"`

	Stdout io.Writer `kong:"-"`
}

func (w *Watch) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer watcher.Close()

	// Editors commonly replace files instead of writing them, so the
	// directories are watched and events filtered by name.
	sources := make(map[string]struct{}, len(w.Sources))
	dirs := make(map[string]struct{})
	for _, name := range w.Sources {
		abs, err := filepath.Abs(name)
		if err != nil {
			return ErrWatch.Wrap(err).With(slog.String("source", name))
		}
		sources[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return ErrWatch.Wrap(err).With(slog.String("dir", dir))
		}
		dirs[dir] = struct{}{}
	}

	opts := optionsFrom(ctx)
	out := outputOr(w.Stdout)

	update := func(name string) {
		if err := w.expand(ctx, out, name, opts); err != nil {
			log.WarnContext(ctx, "expansion failed", slog.Any("error", err))
		}
	}

	for abs := range sources {
		update(abs)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if _, ok := sources[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			log.DebugContext(ctx, "source changed",
				slog.String("source", ev.Name),
				slog.String("op", ev.Op.String()),
			)
			update(filepath.Clean(ev.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WarnContext(ctx, "watcher error", slog.Any("error", err))
		}
	}
}

func (w *Watch) expand(ctx context.Context, out io.Writer, name string, opts holes.Options) error {
	src, err := readSource(name, nil)
	if err != nil {
		return err
	}

	text, n, err := expandSource(name, src, opts)
	if err != nil {
		return err
	}
	logExpanded(ctx, name, n)

	if w.Write {
		// Sources without holes are left untouched, which also keeps a
		// write-back from triggering another event.
		if n == 0 || text == src {
			return nil
		}
		return writeSource(name, text)
	}

	_, err = fmt.Fprintf(out, "// %s\n%s", name, text)

	return err
}
