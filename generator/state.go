package generator

import (
	"strings"

	"github.com/t14raptor/go-holes/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

// expr generates e, parenthesized when its precedence is below min.
func (s *state) expr(e *ast.Expression, min int) {
	if e == nil || e.Expr == nil {
		return
	}
	s.exprParen(e, precedenceOf(e.Expr) < min)
}

func (s *state) exprParen(e *ast.Expression, paren bool) {
	if paren {
		s.out.WriteString("(")
		defer s.out.WriteString(")")
	}
	gen(s.wrap(e.Expr))
}

func (s *state) list(exprs ast.Expressions) {
	for i := range exprs {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.expr(&exprs[i], precAssign)
	}
	// A trailing elision needs its comma to survive.
	if n := len(exprs); n > 0 && exprs[n-1].Expr == nil {
		s.out.WriteString(",")
	}
}
