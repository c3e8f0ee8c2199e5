package ast

// ExprKind is a closed enumeration of expression node types, so that callers
// can switch over an expression without open-ended type assertions.
type ExprKind uint8

const (
	ExprNone ExprKind = iota
	ExprArrLit
	ExprArrow
	ExprAssign
	ExprBinary
	ExprBoolLit
	ExprCall
	ExprCond
	ExprFuncLit
	ExprIdent
	ExprInvalid
	ExprMember
	ExprNew
	ExprNullLit
	ExprNumLit
	ExprObjLit
	ExprSequence
	ExprSpread
	ExprStrLit
	ExprThis
	ExprUnary
	ExprUpdate
)

var exprKindNames = [...]string{
	ExprNone:     "none",
	ExprArrLit:   "array",
	ExprArrow:    "arrow",
	ExprAssign:   "assign",
	ExprBinary:   "binary",
	ExprBoolLit:  "boolean",
	ExprCall:     "call",
	ExprCond:     "conditional",
	ExprFuncLit:  "function",
	ExprIdent:    "identifier",
	ExprInvalid:  "invalid",
	ExprMember:   "member",
	ExprNew:      "new",
	ExprNullLit:  "null",
	ExprNumLit:   "number",
	ExprObjLit:   "object",
	ExprSequence: "sequence",
	ExprSpread:   "spread",
	ExprStrLit:   "string",
	ExprThis:     "this",
	ExprUnary:    "unary",
	ExprUpdate:   "update",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "unknown"
}

// Kind returns the kind of the wrapped expression.
func (n *Expression) Kind() ExprKind {
	if n == nil {
		return ExprNone
	}
	switch n.Expr.(type) {
	case *ArrayLiteral:
		return ExprArrLit
	case *ArrowFunctionLiteral:
		return ExprArrow
	case *AssignExpression:
		return ExprAssign
	case *BinaryExpression:
		return ExprBinary
	case *BooleanLiteral:
		return ExprBoolLit
	case *CallExpression:
		return ExprCall
	case *ConditionalExpression:
		return ExprCond
	case *FunctionLiteral:
		return ExprFuncLit
	case *Identifier:
		return ExprIdent
	case *InvalidExpression:
		return ExprInvalid
	case *MemberExpression:
		return ExprMember
	case *NewExpression:
		return ExprNew
	case *NullLiteral:
		return ExprNullLit
	case *NumberLiteral:
		return ExprNumLit
	case *ObjectLiteral:
		return ExprObjLit
	case *SequenceExpression:
		return ExprSequence
	case *SpreadElement:
		return ExprSpread
	case *StringLiteral:
		return ExprStrLit
	case *ThisExpression:
		return ExprThis
	case *UnaryExpression:
		return ExprUnary
	case *UpdateExpression:
		return ExprUpdate
	}
	return ExprNone
}

// Ident returns the wrapped identifier, if the expression is one.
func (n *Expression) Ident() (*Identifier, bool) {
	if n == nil {
		return nil, false
	}
	id, ok := n.Expr.(*Identifier)
	return id, ok
}

// Member returns the wrapped member expression, if the expression is one.
func (n *Expression) Member() (*MemberExpression, bool) {
	if n == nil {
		return nil, false
	}
	m, ok := n.Expr.(*MemberExpression)
	return m, ok
}

// IsSpread reports whether the expression is a spread element.
func (n *Expression) IsSpread() bool {
	_, ok := n.Expr.(*SpreadElement)
	return ok
}
