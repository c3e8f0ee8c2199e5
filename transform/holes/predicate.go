package holes

import "github.com/t14raptor/go-holes/ast"

func (e *Expander) isPlaceholder(n *ast.Expression) bool {
	if n == nil {
		return false
	}
	id, ok := n.Expr.(*ast.Identifier)
	return ok && id.Name == e.opts.Placeholder
}

// isPlaceholderAccess reports whether n is a member access on the
// placeholder, as in _.x or _[x].
func (e *Expander) isPlaceholderAccess(n *ast.Expression) bool {
	m, ok := n.Member()
	return ok && e.isPlaceholder(m.Object)
}
