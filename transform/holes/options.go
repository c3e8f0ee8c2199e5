package holes

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/go-holes/parser/scanner"
	"github.com/t14raptor/go-holes/token"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrUnknownOperator   = errors.New("unknown binary operator")
)

// Mode selects which expression shapes are expansion roots.
type Mode uint8

const (
	// ModeFull expands calls, member accesses, binary and unary expressions
	// and bare placeholders.
	ModeFull Mode = iota
	// ModeShorthand expands member accesses, unary expressions and bare
	// placeholders only.
	ModeShorthand
)

var modeNames = [...]string{
	ModeFull:      "full",
	ModeShorthand: "shorthand",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Directives that opt a block and everything nested in it out of expansion.
const (
	NoHolesDirective     = "no holes"
	NoShorthandDirective = "no shorthand"
)

func (m Mode) markers() []string {
	if m == ModeShorthand {
		return []string{NoHolesDirective, NoShorthandDirective}
	}
	return []string{NoHolesDirective}
}

// Options configures an expansion pass.
type Options struct {
	// Placeholder is the identifier that marks a hole.
	Placeholder string
	// Curry names a helper that every synthesized function is passed to.
	// Empty disables currying.
	Curry string
	// Exclude lists binary operators whose expressions are never expansion
	// roots.
	Exclude []token.Token
	Mode    Mode
	// MemberOperands lets a binary operand of the form _.x count as a hole
	// receiver.
	MemberOperands bool
	// ParamPrefix is the prefix of generated parameter names.
	ParamPrefix string
	// Logger receives a debug record per expansion. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Placeholder:    "_",
		Mode:           ModeFull,
		MemberOperands: true,
		ParamPrefix:    "_p",
	}
}

// Validate reports every invalid option, joined.
func (o Options) Validate() error {
	var errs []error
	checkIdent := func(what, name string) {
		if !scanner.IsIdentifier(name) {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, what, name))
		} else if !norm.NFC.IsNormalString(name) {
			errs = append(errs, fmt.Errorf("%w: %s %q is not NFC normalized", ErrInvalidIdentifier, what, name))
		}
	}
	checkIdent("placeholder", o.Placeholder)
	if o.Curry != "" {
		checkIdent("curry helper", o.Curry)
		if o.Curry == o.Placeholder {
			errs = append(errs, fmt.Errorf("%w: curry helper %q is the placeholder", ErrInvalidIdentifier, o.Curry))
		}
	}
	checkIdent("parameter prefix", o.ParamPrefix+"0")
	if int(o.Mode) >= len(modeNames) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownMode, o.Mode))
	}
	for _, op := range o.Exclude {
		if !op.IsBinary() {
			errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownOperator, op))
		}
	}
	return errors.Join(errs...)
}
