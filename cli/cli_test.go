package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/t14raptor/go-holes/config"
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

func noExit(t *testing.T) func(int) {
	return func(code int) {
		t.Helper()
		t.Errorf("unexpected exit(%d)", code)
	}
}

func TestRunExpandWrite(t *testing.T) {
	cfg := writeTemp(t, "holes.yaml", "curry: curry\nparamPrefix: $\n")
	src := writeTemp(t, "src.js", "f(_, 1);\nx + _;\n")

	err := Run(context.Background(), noExit(t),
		"--config", cfg, "--skip", "+", src, "--write")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "curry(($0) => f($0, 1));\nx + curry(($1) => $1);\n"; got != want {
		t.Errorf("file contents = %q; want %q", got, want)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	src := writeTemp(t, "src.js", "f(_);\n")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown operator", []string{"--skip", "<>", src}, config.ErrUnknownOperator},
		{"bad placeholder", []string{"--placeholder", "1x", src}, config.ErrInvalidIdentifier},
		{"bad mode", []string{"--mode", "partial", src}, config.ErrUnknownMode},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), src}, config.ErrReadConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), noExit(t), tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestOptionsOverlayFlags(t *testing.T) {
	cfg := writeTemp(t, "holes.yaml", "placeholder: it\nmode: shorthand\nmemberOperands: false\n")

	var c expansionConfig
	c.Config = cfg
	c.Mode = "full"
	if err := c.MemberOperands.UnmarshalText([]byte("true")); err != nil {
		t.Fatal(err)
	}

	opts, err := c.options()
	if err != nil {
		t.Fatalf("options() error = %v", err)
	}
	if opts.Placeholder != "it" {
		t.Errorf("Placeholder = %q; want it", opts.Placeholder)
	}
	if opts.Mode != holes.ModeFull {
		t.Errorf("Mode = %v; want full", opts.Mode)
	}
	if !opts.MemberOperands {
		t.Error("MemberOperands = false; want the flag to win")
	}
	if opts.Logger == nil {
		t.Error("Logger = nil; want the default logger")
	}
}

func TestFlagBool(t *testing.T) {
	var b flagBool
	if b.ptr() != nil {
		t.Error("unset flag yields a value")
	}
	if err := b.UnmarshalText([]byte("false")); err != nil {
		t.Fatal(err)
	}
	if p := b.ptr(); p == nil || *p {
		t.Errorf("ptr() = %v; want false", p)
	}
	if err := b.UnmarshalText([]byte("maybe")); err == nil {
		t.Error("UnmarshalText(maybe) succeeded")
	}
}

func TestTimeLayout(t *testing.T) {
	if got := timeLayout("RFC3339"); got != time.RFC3339 {
		t.Errorf("timeLayout(RFC3339) = %q", got)
	}
	if got := timeLayout("15:04"); got != "15:04" {
		t.Errorf("timeLayout(15:04) = %q; want it unchanged", got)
	}
}
