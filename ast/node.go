package ast

// Idx is a compact encoding of a source position within JS code. Nodes created
// by transforms carry the zero Idx.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type Program struct {
	Directives []Directive
	Body       Statements
}

// Directive is one entry of a directive prologue, e.g. "use strict".
type Directive struct {
	Idx Idx
	// Value is the directive text without quotes.
	Value string
	// Raw is the quoted source form.
	Raw string
}

// HasDirective reports whether the list contains a directive with the given value.
func HasDirective(list []Directive, value string) bool {
	for _, d := range list {
		if d.Value == value {
			return true
		}
	}
	return false
}

func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *ArrowFunctionLiteral) Idx0() Idx  { return n.Start }
func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Expression.Idx0() }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}
func (n *Expression) Idx0() Idx {
	if n == nil || n.Expr == nil {
		return 0
	}
	return n.Expr.Idx0()
}

func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BooleanLiteral) Idx1() Idx        { return n.Idx + Idx(len(n.Literal())) }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *FunctionLiteral) Idx1() Idx       { return n.Body.Idx1() }
func (n *ArrowFunctionLiteral) Idx1() Idx  { return n.Body.Idx1() }
func (n *Identifier) Idx1() Idx            { return n.Idx + Idx(len(n.Name)) }
func (n *InvalidExpression) Idx1() Idx     { return n.To }
func (n *MemberExpression) Idx1() Idx      { return n.Property.Idx1() }
func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis > 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx        { return n.Idx + 4 } // "null"
func (n *NumberLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Raw)) }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx      { return n.Expression.Idx1() }
func (n *StringLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Raw)) }
func (n *ThisExpression) Idx1() Idx     { return n.Idx + 4 }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Idx + 2 // x++ x--
	}
	return n.Operand.Idx1()
}
func (n *Expression) Idx1() Idx {
	if n == nil || n.Expr == nil {
		return 0
	}
	return n.Expr.Idx1()
}

func (n *MemberProperty) Idx0() Idx   { return n.Prop.Idx0() }
func (n *MemberProperty) Idx1() Idx   { return n.Prop.Idx1() }
func (n *ComputedProperty) Idx0() Idx { return n.Expr.Idx0() }
func (n *ComputedProperty) Idx1() Idx { return n.Expr.Idx1() + 1 }
func (n *ConciseBody) Idx0() Idx      { return n.Body.Idx0() }
func (n *ConciseBody) Idx1() Idx      { return n.Body.Idx1() }
func (n *ParameterList) Idx0() Idx    { return n.Opening }
func (n *ParameterList) Idx1() Idx    { return n.Closing + 1 }
func (n *PropertyShort) Idx0() Idx    { return n.Name.Idx }
func (n *PropertyKeyed) Idx0() Idx    { return n.Key.Idx0() }
func (n *PropertyShort) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Name.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }

func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *VariableDeclarator) Idx0() Idx  { return n.Target.Idx0() }
func (n *WhileStatement) Idx0() Idx      { return n.While }
func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}
func (n *Statement) Idx0() Idx { return n.Stmt.Idx0() }

func (n *BlockStatement) Idx1() Idx      { return n.RightBrace + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *VariableDeclaration) Idx1() Idx { return n.List[len(n.List)-1].Idx1() }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}
func (n *WhileStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}
func (n *Statement) Idx1() Idx { return n.Stmt.Idx1() }
