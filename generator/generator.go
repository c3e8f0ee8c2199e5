package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/parser/scanner"
	"github.com/t14raptor/go-holes/token"
)

// Generate prints node as JavaScript source.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

// GenerateExpression prints a single expression.
func GenerateExpression(e *ast.Expression) string {
	s := &state{
		out:    &strings.Builder{},
		parent: &state{},
	}
	s.expr(e, precSequence)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, d := range n.Directives {
				s.out.WriteString(d.Raw + ";")
				s.line()
			}
			for _, b := range n.Body {
				gen(s.wrap(b.Stmt))
				s.line()
			}
		}

	// Statements.

	case *ast.BadStatement:
	case *ast.BlockStatement:
		if len(n.Directives) == 0 && len(n.List) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for _, d := range n.Directives {
			s.lineAndPad()
			s.out.WriteString(d.Raw + ";")
		}
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		s.exprParen(n.Expression, startsAmbiguously(n.Expression))
		s.out.WriteString(";")
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.IfStatement:
		s.out.WriteString("if (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.blockOf(n.Consequent)
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				s.blockOf(n.Alternate)
			}
		}
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.expr(n.Argument, precSequence)
		}
		s.out.WriteString(";")
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Token.String())
		s.out.WriteString(" ")
		for i := range n.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.List[i]))
		}
		s.out.WriteString(";")
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer, precAssign)
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.blockOf(n.Body)

	// Expressions.

	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		s.list(n.Value)
		s.out.WriteString("]")
	case *ast.ArrowFunctionLiteral:
		s.params(&n.ParameterList)
		s.out.WriteString(" => ")
		switch body := n.Body.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(body))
		case *ast.Expression:
			_, object := body.Expr.(*ast.ObjectLiteral)
			if object || startsWithObject(body) {
				s.exprParen(body, true)
			} else {
				s.expr(body, precAssign)
			}
		}
	case *ast.AssignExpression:
		s.expr(n.Left, precCall)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, precAssign)
	case *ast.BinaryExpression:
		prec := precBinary + n.Operator.Precedence()
		left, right := prec, prec+1
		if n.Operator == token.Exponent {
			left, right = precPostfix, prec
		}
		s.exprParen(n.Left, precedenceOf(n.Left.Expr) < left || mixesCoalesce(n.Operator, n.Left))
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.exprParen(n.Right, precedenceOf(n.Right.Expr) < right || mixesCoalesce(n.Operator, n.Right))
	case *ast.CallExpression:
		if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
			s.exprParen(n.Callee, true)
		} else {
			s.expr(n.Callee, precCall)
		}
		s.out.WriteString("(")
		s.list(n.ArgumentList)
		s.out.WriteString(")")
	case *ast.ConditionalExpression:
		s.expr(n.Test, precConditional+1)
		s.out.WriteString(" ? ")
		s.expr(n.Consequent, precAssign)
		s.out.WriteString(" : ")
		s.expr(n.Alternate, precAssign)
	case *ast.FunctionLiteral:
		s.out.WriteString("function")
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		s.params(&n.ParameterList)
		s.out.WriteString(" ")
		gen(s.wrap(n.Body))
	case *ast.InvalidExpression:
	case *ast.MemberExpression:
		_, number := n.Object.Expr.(*ast.NumberLiteral)
		switch prop := n.Property.Prop.(type) {
		case *ast.Identifier:
			s.exprParen(n.Object, number || precedenceOf(n.Object.Expr) < precCall)
			s.out.WriteString("." + prop.Name)
		case *ast.ComputedProperty:
			s.expr(n.Object, precCall)
			s.out.WriteString("[")
			s.expr(prop.Expr, precSequence)
			s.out.WriteString("]")
		}
	case *ast.NewExpression:
		s.out.WriteString("new ")
		s.exprParen(n.Callee, containsCall(n.Callee) || precedenceOf(n.Callee.Expr) < precCall)
		s.out.WriteString("(")
		s.list(n.ArgumentList)
		s.out.WriteString(")")
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for i := range n.Value {
			s.lineAndPad()
			gen(s.wrap(n.Value[i].Prop))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.PropertyKeyed:
		if n.Computed {
			s.out.WriteString("[")
			s.expr(n.Key, precAssign)
			s.out.WriteString("]")
		} else {
			s.out.WriteString(propertyKey(n.Key))
		}
		s.out.WriteString(": ")
		s.expr(n.Value, precAssign)
	case *ast.PropertyShort:
		s.out.WriteString(n.Name.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer, precAssign)
		}
	case *ast.SequenceExpression:
		s.list(n.Sequence)
	case *ast.SpreadElement:
		s.out.WriteString("...")
		s.expr(n.Expression, precAssign)
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.out.WriteString(op)
		if len(op) > 1 || collides(n.Operator, n.Operand) {
			s.out.WriteString(" ")
		}
		s.expr(n.Operand, precUnary)
	case *ast.UpdateExpression:
		if n.Postfix {
			s.expr(n.Operand, precCall)
			s.out.WriteString(n.Operator.String())
		} else {
			s.out.WriteString(n.Operator.String())
			s.expr(n.Operand, precCall)
		}

	// Leaves.

	case *ast.Identifier:
		if n != nil {
			s.out.WriteString(n.Name)
		}
	case *ast.BooleanLiteral:
		s.out.WriteString(n.Literal())
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(Quote(n.Value))
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// blockOf prints st, wrapping anything but a block in braces.
func (s *state) blockOf(st *ast.Statement) {
	if _, ok := st.Stmt.(*ast.BlockStatement); ok {
		gen(s.wrap(st.Stmt))
		return
	}
	gen(s.wrap(&ast.BlockStatement{List: ast.Statements{*st}}))
}

// params always parenthesizes, including single arrow parameters.
func (s *state) params(list *ast.ParameterList) {
	s.out.WriteString("(")
	for i := range list.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(&list.List[i]))
	}
	if list.Rest != nil {
		if len(list.List) > 0 {
			s.out.WriteString(", ")
		}
		s.out.WriteString("..." + list.Rest.Name)
	}
	s.out.WriteString(")")
}

func startsWithObject(e *ast.Expression) bool {
	if !startsAmbiguously(e) {
		return false
	}
	for {
		switch n := e.Expr.(type) {
		case *ast.ObjectLiteral:
			return true
		case *ast.FunctionLiteral:
			return false
		case *ast.BinaryExpression:
			e = n.Left
		case *ast.AssignExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			e = n.Test
		case *ast.SequenceExpression:
			e = &n.Sequence[0]
		case *ast.MemberExpression:
			e = n.Object
		case *ast.CallExpression:
			e = n.Callee
		case *ast.UpdateExpression:
			e = n.Operand
		default:
			return false
		}
	}
}

// collides reports whether printing operand right after op would merge into
// a different token, as in `- -a` or `+ ++a`.
func collides(op token.Token, operand *ast.Expression) bool {
	var next token.Token
	switch n := operand.Expr.(type) {
	case *ast.UnaryExpression:
		next = n.Operator
	case *ast.UpdateExpression:
		if n.Postfix {
			return false
		}
		next = n.Operator
	default:
		return false
	}
	switch op {
	case token.Plus:
		return next == token.Plus || next == token.Increment
	case token.Minus:
		return next == token.Minus || next == token.Decrement
	}
	return false
}

func propertyKey(key *ast.Expression) string {
	if lit, ok := key.Expr.(*ast.StringLiteral); ok {
		if lit.Raw != "" {
			return lit.Raw
		}
		if scanner.IsIdentifierName(lit.Value) {
			return lit.Value
		}
		return Quote(lit.Value)
	}
	return GenerateExpression(key)
}

// Quote returns s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
