package ast

// Constructors for synthesized nodes. They carry no source positions.

func NewIdentExpr(name string) *Expression {
	return &Expression{Expr: &Identifier{Name: name}}
}

func NewCallExpr(callee *Expression, args ...Expression) *Expression {
	return &Expression{Expr: &CallExpression{Callee: callee, ArgumentList: args}}
}

func NewMemberExpr(object *Expression, prop MemberProp) *Expression {
	return &Expression{Expr: &MemberExpression{Object: object, Property: &MemberProperty{Prop: prop}}}
}

// NewArrowExpr returns an expression-bodied arrow function over the named
// parameters.
func NewArrowExpr(params []*Identifier, body *Expression) *Expression {
	list := make(VariableDeclarators, len(params))
	for i, p := range params {
		list[i] = VariableDeclarator{Target: p}
	}
	return &Expression{Expr: &ArrowFunctionLiteral{
		ParameterList: ParameterList{List: list},
		Body:          &ConciseBody{Body: body},
	}}
}
