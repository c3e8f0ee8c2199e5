package scanner

import (
	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

type Token struct {
	Kind token.Token

	// OnNewLine is set when a line terminator precedes the token.
	OnNewLine bool

	// Value is the cooked value of identifiers, keywords and strings, and the
	// numeric value of numbers.
	Value  string
	Number float64

	Idx0, Idx1 ast.Idx
}

// Raw returns the source text of the token.
func (t Token) Raw(s *Scanner) string {
	return s.Slice(t.Idx0, t.Idx1)
}
