// Package config loads expansion settings from YAML files and command-line
// overrides and turns them into [holes.Options].
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/exp/maps"

	"github.com/t14raptor/go-holes/token"
	"github.com/t14raptor/go-holes/transform/holes"
)

var (
	ErrReadConfig        = errors.New("read config")
	ErrUnknownOperator   = holes.ErrUnknownOperator
	ErrInvalidIdentifier = holes.ErrInvalidIdentifier
	ErrUnknownMode       = holes.ErrUnknownMode
)

// File mirrors the YAML configuration file. Unset fields keep their defaults.
type File struct {
	Placeholder    string   `yaml:"placeholder"`
	Curry          string   `yaml:"curry"`
	Skip           []string `yaml:"skip"`
	Mode           string   `yaml:"mode"`
	MemberOperands *bool    `yaml:"memberOperands"`
	ParamPrefix    string   `yaml:"paramPrefix"`
}

// Load reads and decodes the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}
	return f, nil
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File
	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
		return File{}, err
	}
	return f, nil
}

// Overlay returns f with every field that is set in o replacing its own.
func (f File) Overlay(o File) File {
	if o.Placeholder != "" {
		f.Placeholder = o.Placeholder
	}
	if o.Curry != "" {
		f.Curry = o.Curry
	}
	if len(o.Skip) > 0 {
		f.Skip = o.Skip
	}
	if o.Mode != "" {
		f.Mode = o.Mode
	}
	if o.MemberOperands != nil {
		f.MemberOperands = o.MemberOperands
	}
	if o.ParamPrefix != "" {
		f.ParamPrefix = o.ParamPrefix
	}
	return f
}

// Options converts f into validated expansion options. Every problem found is
// reported, joined.
func (f File) Options() (holes.Options, error) {
	opts := holes.DefaultOptions()
	var errs []error

	if f.Placeholder != "" {
		opts.Placeholder = f.Placeholder
	}
	opts.Curry = f.Curry
	if f.ParamPrefix != "" {
		opts.ParamPrefix = f.ParamPrefix
	}
	if f.MemberOperands != nil {
		opts.MemberOperands = *f.MemberOperands
	}
	if f.Mode != "" {
		mode, err := holes.ParseMode(f.Mode)
		if err != nil {
			errs = append(errs, err)
		}
		opts.Mode = mode
	}
	for _, op := range f.Skip {
		tkn, ok := token.LookupBinary(strings.TrimSpace(op))
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q (known: %s)", ErrUnknownOperator, op, strings.Join(Operators(), " ")))
			continue
		}
		opts.Exclude = append(opts.Exclude, tkn)
	}

	if len(errs) > 0 {
		return opts, errors.Join(errs...)
	}
	return opts, opts.Validate()
}

// Operators lists the spelling of every binary operator that can be skipped,
// sorted.
func Operators() []string {
	ops := maps.Keys(token.BinaryOperators())
	slices.Sort(ops)
	return ops
}
