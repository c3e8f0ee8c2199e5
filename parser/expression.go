package parser

import (
	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

func (p *parser) parseExpression() *ast.Expression {
	first := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return first
	}
	seq := ast.Expressions{*first}
	for p.currentKind() == token.Comma {
		p.next()
		seq = append(seq, *p.parseAssignmentExpression())
	}
	return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: seq}}
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	if arrow := p.tryParseArrowFunction(); arrow != nil {
		return arrow
	}

	start := p.currentOffset()
	left := p.parseConditionalExpression()
	if !p.currentKind().IsAssign() {
		return left
	}
	operator := p.currentKind()
	if !isAssignmentTarget(left) {
		p.errorAt(start, "Invalid left-hand side in assignment")
	}
	p.next()
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: operator,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func isAssignmentTarget(expr *ast.Expression) bool {
	switch expr.Kind() {
	case ast.ExprIdent, ast.ExprMember:
		return true
	}
	return false
}

// tryParseArrowFunction parses `x => ...` or `(params) => ...` and returns nil,
// with the parser rewound, when the input is not an arrow function.
func (p *parser) tryParseArrowFunction() *ast.Expression {
	start := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier:
		if next := p.peek(); next.Kind != token.Arrow || next.OnNewLine {
			return nil
		}
		param := &ast.Identifier{Idx: start, Name: p.token.Value}
		p.next()
		p.next()
		return p.parseArrowFunctionBody(start, ast.ParameterList{
			Opening: start,
			List:    ast.VariableDeclarators{{Target: param}},
			Closing: param.Idx1(),
		})
	case token.LeftParenthesis:
		state := p.mark()
		params, ok := p.parseParameterList()
		if !ok || p.currentKind() != token.Arrow || p.token.OnNewLine {
			p.restore(state)
			return nil
		}
		p.next()
		return p.parseArrowFunctionBody(start, params)
	}
	return nil
}

func (p *parser) parseArrowFunctionBody(start ast.Idx, params ast.ParameterList) *ast.Expression {
	arrow := &ast.ArrowFunctionLiteral{Start: start, ParameterList: params}
	if p.currentKind() == token.LeftBrace {
		arrow.Body = &ast.ConciseBody{Body: p.parseFunctionBody()}
	} else {
		arrow.Body = &ast.ConciseBody{Body: p.parseAssignmentExpression()}
	}
	return &ast.Expression{Expr: arrow}
}

// parseParameterList parses a parenthesized list of simple parameters with
// optional defaults and a trailing rest parameter. It reports false without
// recording an error when the tokens do not form a parameter list.
func (p *parser) parseParameterList() (ast.ParameterList, bool) {
	list := ast.ParameterList{Opening: p.currentOffset()}
	if p.currentKind() != token.LeftParenthesis {
		return list, false
	}
	p.next()
	for p.currentKind() != token.RightParenthesis {
		switch p.currentKind() {
		case token.Ellipsis:
			p.next()
			if p.currentKind() != token.Identifier {
				return list, false
			}
			list.Rest = &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value}
			p.next()
			if p.currentKind() != token.RightParenthesis {
				return list, false
			}
			continue
		case token.Identifier:
		default:
			return list, false
		}

		decl := ast.VariableDeclarator{
			Target: &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value},
		}
		p.next()
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		}
		list.List = append(list.List, decl)

		if p.currentKind() == token.Comma {
			p.next()
		} else if p.currentKind() != token.RightParenthesis {
			return list, false
		}
	}
	list.Closing = p.currentOffset()
	p.next()
	return list, true
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	test := p.parseBinaryExpression(PrecedenceLowest)
	if p.currentKind() != token.QuestionMark {
		return test
	}
	p.next()
	consequent := p.parseAssignmentExpression()
	p.expect(token.Colon)
	return &ast.Expression{Expr: &ast.ConditionalExpression{
		Test:       test,
		Consequent: consequent,
		Alternate:  p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseBinaryExpression(minBP Precedence) *ast.Expression {
	left := p.parseUnaryExpression()
	for {
		operator := p.currentKind()
		lbp := kindToPrecedence(operator)
		if lbp == 0 || lbp <= minBP {
			return left
		}
		p.next()
		right := p.parseBinaryExpression(lbp ^ 1)
		left = &ast.Expression{Expr: &ast.BinaryExpression{
			Operator: operator,
			Left:     left,
			Right:    right,
		}}
	}
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch kind := p.currentKind(); {
	case kind.IsUnary():
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{
			Operator: kind,
			Idx:      idx,
			Operand:  p.parseUnaryExpression(),
		}}
	case kind == token.Increment || kind == token.Decrement:
		idx := p.currentOffset()
		p.next()
		start := p.currentOffset()
		operand := p.parseUnaryExpression()
		if !isAssignmentTarget(operand) {
			p.errorAt(start, "Invalid left-hand side in prefix operation")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{
			Operator: kind,
			Idx:      idx,
			Operand:  operand,
		}}
	}
	return p.parsePostfixExpression()
}

func (p *parser) parsePostfixExpression() *ast.Expression {
	start := p.currentOffset()
	operand := p.parseLeftHandSideExpressionAllowCall()
	kind := p.currentKind()
	if (kind != token.Increment && kind != token.Decrement) || p.token.OnNewLine {
		return operand
	}
	if !isAssignmentTarget(operand) {
		p.errorAt(start, "Invalid left-hand side in postfix operation")
	}
	idx := p.currentOffset()
	p.next()
	return &ast.Expression{Expr: &ast.UpdateExpression{
		Operator: kind,
		Idx:      idx,
		Operand:  operand,
		Postfix:  true,
	}}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			lp, args, rp := p.parseArguments()
			left = &ast.Expression{Expr: &ast.CallExpression{
				Callee:           left,
				LeftParenthesis:  lp,
				ArgumentList:     args,
				RightParenthesis: rp,
			}}
		default:
			return left
		}
	}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)
	var callee *ast.Expression
	if p.currentKind() == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	for {
		if p.currentKind() == token.Period {
			callee = p.parseDotMember(callee)
		} else if p.currentKind() == token.LeftBracket {
			callee = p.parseBracketMember(callee)
		} else {
			break
		}
	}
	node := &ast.NewExpression{New: idx, Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		node.LeftParenthesis, node.ArgumentList, node.RightParenthesis = p.parseArguments()
	}
	return &ast.Expression{Expr: node}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	p.expect(token.Period)
	if !token.ID(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
		return left
	}
	name := &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value}
	p.next()
	return ast.NewMemberExpr(left, name)
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	p.expect(token.LeftBracket)
	prop := p.parseExpression()
	p.expect(token.RightBracket)
	return ast.NewMemberExpr(left, &ast.ComputedProperty{Expr: prop})
}

func (p *parser) parseArguments() (leftParen ast.Idx, args ast.Expressions, rightParen ast.Idx) {
	leftParen = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		args = append(args, *p.parseSpreadOrAssignment())
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	rightParen = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseSpreadOrAssignment() *ast.Expression {
	if p.currentKind() != token.Ellipsis {
		return p.parseAssignmentExpression()
	}
	p.next()
	return &ast.Expression{Expr: &ast.SpreadElement{Expression: p.parseAssignmentExpression()}}
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier:
		name := p.token.Value
		p.next()
		return &ast.Expression{Expr: &ast.Identifier{Idx: idx, Name: name}}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.token.Value == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.String:
		lit := &ast.StringLiteral{Idx: idx, Value: p.token.Value, Raw: p.token.Raw(p.scanner)}
		p.next()
		return &ast.Expression{Expr: lit}
	case token.Number:
		lit := &ast.NumberLiteral{Idx: idx, Value: p.token.Number, Raw: p.token.Raw(p.scanner)}
		p.next()
		return &ast.Expression{Expr: lit}
	case token.This:
		p.next()
		return &ast.Expression{Expr: &ast.ThisExpression{Idx: idx}}
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false)}
	case token.LeftParenthesis:
		p.next()
		expr := p.parseExpression()
		p.expect(token.RightParenthesis)
		return expr
	}

	p.errorUnexpectedToken(p.currentKind())
	if p.currentKind() != token.Eof {
		p.next()
	}
	return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}
}

func (p *parser) parseArrayLiteral() *ast.Expression {
	lit := &ast.ArrayLiteral{LeftBracket: p.expect(token.LeftBracket)}
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			// Elision.
			p.next()
			lit.Value = append(lit.Value, ast.Expression{})
			continue
		}
		lit.Value = append(lit.Value, *p.parseSpreadOrAssignment())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	lit.RightBracket = p.expect(token.RightBracket)
	return &ast.Expression{Expr: lit}
}

func (p *parser) parseObjectLiteral() *ast.Expression {
	lit := &ast.ObjectLiteral{LeftBrace: p.expect(token.LeftBrace)}
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		lit.Value = append(lit.Value, ast.Property{Prop: p.parseObjectProperty()})
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	lit.RightBrace = p.expect(token.RightBrace)
	return &ast.Expression{Expr: lit}
}

func (p *parser) parseObjectProperty() ast.Prop {
	switch kind := p.currentKind(); {
	case kind == token.Ellipsis:
		p.next()
		return &ast.SpreadElement{Expression: p.parseAssignmentExpression()}

	case kind == token.LeftBracket:
		p.next()
		key := p.parseAssignmentExpression()
		p.expect(token.RightBracket)
		p.expect(token.Colon)
		return &ast.PropertyKeyed{Key: key, Value: p.parseAssignmentExpression(), Computed: true}

	case kind == token.Identifier:
		if next := p.peek().Kind; next == token.Comma || next == token.RightBrace || next == token.Assign {
			name := &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value}
			p.next()
			prop := &ast.PropertyShort{Name: name}
			if p.currentKind() == token.Assign {
				p.next()
				prop.Initializer = p.parseAssignmentExpression()
			}
			return prop
		}
		fallthrough

	case token.ID(kind), kind == token.String, kind == token.Number:
		key := &ast.StringLiteral{
			Idx:   p.currentOffset(),
			Value: p.token.Value,
			Raw:   p.token.Raw(p.scanner),
		}
		p.next()
		p.expect(token.Colon)
		return &ast.PropertyKeyed{
			Key:   &ast.Expression{Expr: key},
			Value: p.parseAssignmentExpression(),
		}
	}

	idx := p.currentOffset()
	p.errorUnexpectedToken(p.currentKind())
	if p.currentKind() != token.Eof {
		p.next()
	}
	return &ast.PropertyKeyed{
		Key:   &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}},
		Value: &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}},
	}
}

func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	fn := &ast.FunctionLiteral{Function: p.expect(token.Function)}
	if p.currentKind() == token.Identifier {
		fn.Name = &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value}
		p.next()
	} else if declaration {
		p.errorUnexpectedToken(p.currentKind())
	}

	params, ok := p.parseParameterList()
	if !ok {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		fn.ParameterList = params
		fn.Body = &ast.BlockStatement{LeftBrace: p.currentOffset(), RightBrace: p.currentOffset()}
		return fn
	}
	fn.ParameterList = params
	fn.Body = p.parseFunctionBody()
	return fn
}
