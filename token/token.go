package token

import (
	"strconv"
)

// Token is the set of lexical tokens understood by the parser.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding strength of a binary operator, or 0 if t is
// not one. Higher binds tighter.
func (t Token) Precedence() int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf, In:
		return 8
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// IsBinary reports whether t can appear as the operator of a binary
// expression, including the logical operators.
func (t Token) IsBinary() bool {
	return t.Precedence() > 0
}

// IsAssign reports whether t is = or one of the compound assignment operators.
func (t Token) IsAssign() bool {
	return t == Assign || (t >= AddAssign && t <= UnsignedShiftRightAssign) ||
		t == LogicalAndAssign || t == LogicalOrAssign || t == CoalesceAssign
}

// IsUnary reports whether t is a prefix unary operator.
func (t Token) IsUnary() bool {
	switch t {
	case Plus, Minus, Not, BitwiseNot, Typeof, Void, Delete:
		return true
	}
	return false
}

// LiteralKeyword returns the keyword token for literal, if it is one.
func LiteralKeyword(literal string) (Token, bool) {
	tkn, ok := keywordTable[literal]
	return tkn, ok
}

// LookupBinary maps the source spelling of a binary operator, such as "+" or
// "instanceof", to its token.
func LookupBinary(op string) (Token, bool) {
	tkn, ok := operatorTable[op]
	if !ok || !tkn.IsBinary() {
		return 0, false
	}
	return tkn, true
}

// LookupUnary maps the source spelling of a prefix unary operator to its token.
func LookupUnary(op string) (Token, bool) {
	tkn, ok := operatorTable[op]
	if !ok || !tkn.IsUnary() {
		return 0, false
	}
	return tkn, true
}

var operatorTable = func() map[string]Token {
	m := make(map[string]Token, len(token2string))
	for i, s := range token2string {
		if s != "" {
			m[s] = Token(i)
		}
	}
	return m
}()

// ID reports whether token can be used where an identifier name is expected,
// such as after a period.
func ID(token Token) bool {
	return token >= Identifier
}

// BinaryOperators returns the source spelling of every binary operator,
// including the logical ones.
func BinaryOperators() map[string]Token {
	m := make(map[string]Token)
	for s, tkn := range operatorTable {
		if tkn.IsBinary() {
			m[s] = tkn
		}
	}
	return m
}
