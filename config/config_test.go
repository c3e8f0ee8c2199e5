package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/t14raptor/go-holes/token"
	"github.com/t14raptor/go-holes/transform/holes"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
placeholder: it
curry: curry
skip: ["||", "&&"]
mode: shorthand
memberOperands: false
paramPrefix: $p
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	opts, err := f.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.Placeholder != "it" || opts.Curry != "curry" || opts.ParamPrefix != "$p" {
		t.Errorf("identifiers = %q %q %q", opts.Placeholder, opts.Curry, opts.ParamPrefix)
	}
	if opts.Mode != holes.ModeShorthand || opts.MemberOperands {
		t.Errorf("mode = %v, memberOperands = %v", opts.Mode, opts.MemberOperands)
	}
	if !slices.Equal(opts.Exclude, []token.Token{token.LogicalOr, token.LogicalAnd}) {
		t.Errorf("exclude = %v", opts.Exclude)
	}
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := f.Options()
	if err != nil {
		t.Fatal(err)
	}
	def := holes.DefaultOptions()
	if opts.Placeholder != def.Placeholder || opts.Mode != def.Mode || opts.MemberOperands != def.MemberOperands || opts.ParamPrefix != def.ParamPrefix {
		t.Errorf("Options() = %+v; want defaults %+v", opts, def)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrReadConfig) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := Load(writeConfig(t, "colour: blue\n")); !errors.Is(err, ErrReadConfig) {
		t.Errorf("unknown key error = %v", err)
	}
	if _, err := Load(writeConfig(t, "skip: [\n")); !errors.Is(err, ErrReadConfig) {
		t.Errorf("malformed YAML error = %v", err)
	}
}

func TestOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		file File
		want []error
	}{
		{"unknown operator", File{Skip: []string{"<>"}}, []error{ErrUnknownOperator}},
		{"assignment is not binary", File{Skip: []string{"="}}, []error{ErrUnknownOperator}},
		{"unknown mode", File{Mode: "tiny"}, []error{ErrUnknownMode}},
		{"bad placeholder", File{Placeholder: "a b"}, []error{ErrInvalidIdentifier}},
		{"several problems", File{Skip: []string{"nope"}, Mode: "tiny"}, []error{ErrUnknownOperator, ErrUnknownMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Options()
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Options() error = %v; want %v", err, want)
				}
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	off := false
	base := File{Placeholder: "it", Curry: "c", Skip: []string{"+"}}
	got := base.Overlay(File{Curry: "curry", MemberOperands: &off})
	if got.Placeholder != "it" || got.Curry != "curry" || len(got.Skip) != 1 || got.MemberOperands == nil || *got.MemberOperands {
		t.Errorf("Overlay() = %+v", got)
	}
}

func TestOperatorsSorted(t *testing.T) {
	ops := Operators()
	if !slices.IsSorted(ops) {
		t.Errorf("Operators() not sorted: %v", ops)
	}
	for _, want := range []string{"+", "??", "instanceof", "in", "**"} {
		if !slices.Contains(ops, want) {
			t.Errorf("Operators() missing %q", want)
		}
	}
	if slices.Contains(ops, "=") || slices.Contains(ops, "!") {
		t.Errorf("Operators() lists non-binary operators: %v", ops)
	}
}
