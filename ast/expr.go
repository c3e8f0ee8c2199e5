package ast

import "github.com/t14raptor/go-holes/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it, and to give
	// transforms a slot they can overwrite in place.
	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		VisitableNode
		_expr()
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	MemberExpression struct {
		Object   *Expression
		Property *MemberProperty
	}

	MemberProperty struct {
		Prop MemberProp
	}

	// MemberProp is either an *Identifier (dot form) or a *ComputedProperty
	// (bracket form).
	MemberProp interface {
		Node
		VisitableNode
		_memberProperty()
	}

	ComputedProperty struct {
		Expr *Expression
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	ConciseBody struct {
		Body Body
	}

	// Body is either a *BlockStatement or an *Expression.
	Body interface {
		Node
		VisitableNode
		_conciseBody()
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList ParameterList
		Body          *ConciseBody
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SpreadElement struct {
		Expression *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // position of the operator
		Operand  *Expression
		Postfix  bool
	}
)

// Computed reports whether the member access uses bracket notation.
func (n *MemberExpression) Computed() bool {
	_, ok := n.Property.Prop.(*ComputedProperty)
	return ok
}

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*Identifier) _memberProperty()       {}
func (*ComputedProperty) _memberProperty() {}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*InvalidExpression) _expr()     {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*FunctionLiteral) _expr()       {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*SpreadElement) _expr()         {}
func (*ThisExpression) _expr()        {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*Identifier) _expr()            {}
func (*BooleanLiteral) _expr()        {}
func (*NullLiteral) _expr()           {}
func (*NumberLiteral) _expr()         {}
func (*StringLiteral) _expr()         {}
