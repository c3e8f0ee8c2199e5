package generator

import (
	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

// Expression precedence levels, lowest to highest. Binary operators occupy
// precBinary+1 through precBinary+token.Exponent.Precedence().
const (
	precSequence    = 1
	precAssign      = 2
	precConditional = 3
	precBinary      = 3
	precUnary       = 16
	precPostfix     = 17
	precCall        = 18
	precPrimary     = 19
)

func precedenceOf(expr ast.Expr) int {
	switch n := expr.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression, *ast.ArrowFunctionLiteral, *ast.SpreadElement:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return precBinary + n.Operator.Precedence()
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.CallExpression, *ast.NewExpression, *ast.MemberExpression:
		return precCall
	}
	return precPrimary
}

// mixesCoalesce reports whether child must be parenthesized under parent
// because ?? cannot be combined with || or && without parentheses.
func mixesCoalesce(parent token.Token, child *ast.Expression) bool {
	bin, ok := child.Expr.(*ast.BinaryExpression)
	if !ok {
		return false
	}
	logical := func(t token.Token) bool { return t == token.LogicalAnd || t == token.LogicalOr }
	return parent == token.Coalesce && logical(bin.Operator) ||
		logical(parent) && bin.Operator == token.Coalesce
}

// containsCall reports whether a new callee reaches a call through its
// member chain, which would otherwise be read as the constructor arguments.
func containsCall(e *ast.Expression) bool {
	for {
		switch n := e.Expr.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object
		default:
			return false
		}
	}
}

// startsAmbiguously reports whether an expression statement would begin with
// `{` or `function` and so be misread as a block or declaration.
func startsAmbiguously(e *ast.Expression) bool {
	for e != nil {
		switch n := e.Expr.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			return true
		case *ast.BinaryExpression:
			if precedenceOf(n.Left.Expr) < precBinary+n.Operator.Precedence() {
				return false
			}
			e = n.Left
		case *ast.AssignExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			if precedenceOf(n.Test.Expr) <= precConditional {
				return false
			}
			e = n.Test
		case *ast.SequenceExpression:
			if len(n.Sequence) == 0 {
				return false
			}
			e = &n.Sequence[0]
		case *ast.MemberExpression:
			if precedenceOf(n.Object.Expr) < precCall {
				return false
			}
			e = n.Object
		case *ast.CallExpression:
			if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
				return false
			}
			if precedenceOf(n.Callee.Expr) < precCall {
				return false
			}
			e = n.Callee
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand
		default:
			return false
		}
	}
	return false
}
