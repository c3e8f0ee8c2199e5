package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/t14raptor/go-holes/transform/holes"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestExpandPrintsInOrder(t *testing.T) {
	a := writeTemp(t, "a.js", "xs.map(_.length);\n")
	b := writeTemp(t, "b.js", "f(_, 1);\n")

	var out bytes.Buffer
	e := &Expand{Sources: []string{a, b}, Jobs: 2, Stdout: &out}

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Expand.Run() error = %v", err)
	}

	want := "xs.map((_p0) => _p0.length);\n(_p0) => f(_p0, 1);\n"
	if out.String() != want {
		t.Errorf("Expand.Run() output = %q; want %q", out.String(), want)
	}
}

func TestExpandStdin(t *testing.T) {
	var out bytes.Buffer
	e := &Expand{
		Sources: []string{stdinSource},
		Stdin:   strings.NewReader("-_;"),
		Stdout:  &out,
	}

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Expand.Run() error = %v", err)
	}
	if got, want := out.String(), "(_p0) => -_p0;\n"; got != want {
		t.Errorf("Expand.Run() output = %q; want %q", got, want)
	}
}

func TestExpandWrite(t *testing.T) {
	path := writeTemp(t, "w.js", "g(_);\n")

	var out bytes.Buffer
	e := &Expand{Sources: []string{path}, Write: true, Stdout: &out}

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Expand.Run() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expand.Run() wrote %q to stdout with --write", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "(_p0) => g(_p0);\n"; got != want {
		t.Errorf("file contents = %q; want %q", got, want)
	}
}

func TestExpandUsesContextOptions(t *testing.T) {
	path := writeTemp(t, "c.js", "f(_);\n")

	opts := holes.DefaultOptions()
	opts.Curry = "curry"
	opts.ParamPrefix = "$"
	ctx := WithOptions(context.Background(), opts)

	var out bytes.Buffer
	e := &Expand{Sources: []string{path}, Stdout: &out}

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Expand.Run() error = %v", err)
	}
	if got, want := out.String(), "curry(($0) => f($0));\n"; got != want {
		t.Errorf("Expand.Run() output = %q; want %q", got, want)
	}
}

func TestExpandErrors(t *testing.T) {
	bad := writeTemp(t, "bad.js", "f(_;\n")

	tests := []struct {
		name    string
		expand  Expand
		wantErr *Error
	}{
		{
			name:    "write to stdin",
			expand:  Expand{Sources: []string{stdinSource}, Write: true},
			wantErr: ErrStdinWrite,
		},
		{
			name:    "missing file",
			expand:  Expand{Sources: []string{filepath.Join(t.TempDir(), "missing.js")}},
			wantErr: ErrReadSource,
		},
		{
			name:    "syntax error",
			expand:  Expand{Sources: []string{bad}},
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.expand.Stdout = &out

			err := tt.expand.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expand.Run() error = %v; want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("Expand.Run() printed %q after failing", out.String())
			}
		})
	}
}

func TestExpandWriteLeavesHoleFreeFiles(t *testing.T) {
	const src = "// keep me\nf(x)\n"
	path := writeTemp(t, "plain.js", src)

	e := &Expand{Sources: []string{path}, Write: true, Stdout: &bytes.Buffer{}}
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Expand.Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != src {
		t.Errorf("file contents = %q; want %q unchanged", data, src)
	}
}
