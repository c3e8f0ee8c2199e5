// Package holes rewrites expressions containing placeholder holes into arrow
// functions: `_.length` becomes `(_p0) => _p0.length` and `_ + 1` becomes
// `(_p0) => _p0 + 1`.
package holes

import (
	"log/slog"

	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
	"github.com/t14raptor/go-holes/transform/utils"
)

// Expander is the visitor that performs one expansion pass.
type Expander struct {
	ast.NoopVisitor

	opts    Options
	exclude map[token.Token]struct{}
	markers []string
	names   *NameAllocator
	scope   *scope
	logger  *slog.Logger

	expansions int
}

// Expand rewrites every expansion root of p in place and returns the number
// of synthesized functions. Options are expected to be valid; empty
// placeholder and prefix fall back to the defaults.
func Expand(p *ast.Program, opts Options) int {
	e := NewExpander(p, opts)
	p.VisitWith(e)
	return e.expansions
}

// NewExpander prepares a pass over root. Every identifier already in root is
// reserved so that generated parameters never shadow or capture it.
func NewExpander(root ast.VisitableNode, opts Options) *Expander {
	defaults := DefaultOptions()
	if opts.Placeholder == "" {
		opts.Placeholder = defaults.Placeholder
	}
	if opts.ParamPrefix == "" {
		opts.ParamPrefix = defaults.ParamPrefix
	}

	reserved := utils.CollectNames(root)
	reserved[opts.Placeholder] = struct{}{}
	if opts.Curry != "" {
		reserved[opts.Curry] = struct{}{}
	}

	e := &Expander{
		opts:    opts,
		exclude: make(map[token.Token]struct{}, len(opts.Exclude)),
		markers: opts.Mode.markers(),
		names:   NewNameAllocator(opts.ParamPrefix, reserved),
		logger:  opts.Logger,
	}
	for _, op := range opts.Exclude {
		e.exclude[op] = struct{}{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.V = e
	return e
}

// Expansions returns the number of functions synthesized so far.
func (e *Expander) Expansions() int {
	return e.expansions
}

func (e *Expander) VisitProgram(n *ast.Program) {
	e.enter(n.Directives)
	n.VisitChildrenWith(e)
	e.leave()
}

func (e *Expander) VisitBlockStatement(n *ast.BlockStatement) {
	e.enter(n.Directives)
	n.VisitChildrenWith(e)
	e.leave()
}

func (e *Expander) VisitExpression(n *ast.Expression) {
	if n == nil || n.Expr == nil {
		return
	}
	// Directives only accumulate downwards, so nothing below can opt back in.
	if e.suppressed() {
		return
	}

	kind := n.Kind()
	holes := e.collect(n)
	if len(holes) == 0 {
		n.VisitChildrenWith(e)
		return
	}

	body := e.substitute(n, holes)
	e.expansions++
	e.logger.Debug("expanded placeholder expression",
		slog.String("kind", kind.String()),
		slog.Int("params", len(holes)),
	)

	// Holes in non-hole children belong to their own, inner expansion.
	body.Expr.VisitChildrenWith(e)
}

// Assignment and update targets are left as written.

func (e *Expander) VisitAssignExpression(n *ast.AssignExpression) {
	n.Right.VisitWith(e)
}

func (e *Expander) VisitUpdateExpression(*ast.UpdateExpression) {}
