package holes

import "github.com/t14raptor/go-holes/ast"

// paramQueue hands out parameter references in allocation order.
type paramQueue []string

func (q *paramQueue) pop() *ast.Identifier {
	name := (*q)[0]
	*q = (*q)[1:]
	return &ast.Identifier{Name: name}
}

// substitute moves the root out of n into a new body, fills every hole with
// the next parameter and installs the synthesized function in n. It returns
// the body.
func (e *Expander) substitute(n *ast.Expression, holes []*ast.Expression) *ast.Expression {
	names := make([]string, len(holes))
	params := make([]*ast.Identifier, len(holes))
	for i := range holes {
		names[i] = e.names.Next()
		params[i] = &ast.Identifier{Name: names[i]}
	}

	body := &ast.Expression{Expr: n.Expr}
	queue := paramQueue(names)
	for _, slot := range holes {
		if slot == n {
			slot = body
		}
		slot.Expr = queue.pop()
	}
	if len(queue) != 0 {
		panic("holes: parameters left unconsumed")
	}

	n.Expr = e.curried(ast.NewArrowExpr(params, body)).Expr
	return body
}

func (e *Expander) curried(arrow *ast.Expression) *ast.Expression {
	if e.opts.Curry == "" {
		return arrow
	}
	return ast.NewCallExpr(ast.NewIdentExpr(e.opts.Curry), *arrow)
}
