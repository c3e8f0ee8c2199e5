package cli

import (
	"strconv"

	"github.com/t14raptor/go-holes/config"
	"github.com/t14raptor/go-holes/log"
	"github.com/t14raptor/go-holes/transform/holes"
)

// expansionConfig holds the flags that override the configuration file.
type expansionConfig struct {
	Config         string   `help:"YAML configuration file." placeholder:"FILE" short:"c" type:"path"`
	Placeholder    string   `help:"Identifier that marks a hole (default _)."`
	Curry          string   `help:"Pass every synthesized function to this helper."`
	Skip           []string `help:"Binary operator that never roots an expansion (repeatable)." placeholder:"OP"`
	Mode           string   `help:"Expansion mode: full or shorthand."`
	MemberOperands flagBool `help:"Accept _.x as a binary operand hole (true or false)."`
	ParamPrefix    string   `help:"Prefix of generated parameter names (default _p)."`
}

// options loads the configuration file, if any, overlays the flags and
// returns the validated result.
func (c *expansionConfig) options() (holes.Options, error) {
	var (
		file config.File
		err  error
	)

	if c.Config != "" {
		file, err = config.Load(c.Config)
		if err != nil {
			return holes.Options{}, err
		}
	}

	file = file.Overlay(config.File{
		Placeholder:    c.Placeholder,
		Curry:          c.Curry,
		Skip:           c.Skip,
		Mode:           c.Mode,
		MemberOperands: c.MemberOperands.ptr(),
		ParamPrefix:    c.ParamPrefix,
	})

	opts, err := file.Options()
	if err != nil {
		return holes.Options{}, err
	}
	opts.Logger = log.Default().Slog()

	return opts, nil
}

// flagBool is a boolean flag that remembers whether it was given, so that an
// unset flag leaves the configuration file value alone.
type flagBool struct {
	set   bool
	value bool
}

func (b *flagBool) UnmarshalText(text []byte) error {
	v, err := strconv.ParseBool(string(text))
	if err != nil {
		return err
	}
	b.set, b.value = true, v

	return nil
}

func (b flagBool) ptr() *bool {
	if !b.set {
		return nil
	}

	return &b.value
}
