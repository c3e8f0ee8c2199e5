package holes

import "github.com/t14raptor/go-holes/ast"

// collect returns the hole slots of an expansion root in parameter order.
// A nil result means n is not a root or has no holes.
func (e *Expander) collect(n *ast.Expression) []*ast.Expression {
	var holes []*ast.Expression
	switch n.Kind() {
	case ast.ExprCall:
		if e.opts.Mode == ModeShorthand {
			return nil
		}
		call := n.Expr.(*ast.CallExpression)
		if e.isPlaceholder(call.Callee) {
			holes = append(holes, call.Callee)
		} else if e.isPlaceholderAccess(call.Callee) {
			callee, _ := call.Callee.Member()
			holes = append(holes, callee.Object)
		}
		for i := range call.ArgumentList {
			if arg := &call.ArgumentList[i]; e.isPlaceholder(arg) {
				holes = append(holes, arg)
			}
		}

	case ast.ExprMember:
		member, _ := n.Member()
		if e.isPlaceholder(member.Object) {
			holes = append(holes, member.Object)
		}
		if prop, ok := member.Property.Prop.(*ast.ComputedProperty); ok && e.isPlaceholder(prop.Expr) {
			holes = append(holes, prop.Expr)
		}

	case ast.ExprBinary:
		if e.opts.Mode == ModeShorthand {
			return nil
		}
		bin := n.Expr.(*ast.BinaryExpression)
		if _, skip := e.exclude[bin.Operator]; skip {
			return nil
		}
		holes = e.operand(holes, bin.Left)
		holes = e.operand(holes, bin.Right)

	case ast.ExprUnary:
		if unary := n.Expr.(*ast.UnaryExpression); e.isPlaceholder(unary.Operand) {
			holes = append(holes, unary.Operand)
		}

	case ast.ExprIdent:
		if e.isPlaceholder(n) {
			holes = append(holes, n)
		}
	}
	return holes
}

func (e *Expander) operand(holes []*ast.Expression, n *ast.Expression) []*ast.Expression {
	if e.isPlaceholder(n) {
		return append(holes, n)
	}
	if e.opts.MemberOperands && e.isPlaceholderAccess(n) {
		member, _ := n.Member()
		return append(holes, member.Object)
	}
	return holes
}
