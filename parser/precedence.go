package parser

import "github.com/t14raptor/go-holes/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Even values are left-associative and odd values right-associative. The
// binary loop stops when lbp <= minBP and recurses with lbp ^ 1, which for a
// left-associative operator stops at the same level and for a
// right-associative one continues.
type Precedence uint8

const (
	PrecedenceLowest            Precedence = 0
	PrecedenceNullishCoalescing Precedence = 12 // ??            (left-assoc)
	PrecedenceLogicalOr         Precedence = 14 // ||            (left-assoc)
	PrecedenceLogicalAnd        Precedence = 16 // &&            (left-assoc)
	PrecedenceBitwiseOr         Precedence = 18 // |             (left-assoc)
	PrecedenceBitwiseXor        Precedence = 20 // ^             (left-assoc)
	PrecedenceBitwiseAnd        Precedence = 22 // &             (left-assoc)
	PrecedenceEquals            Precedence = 24 // == != === !== (left-assoc)
	PrecedenceCompare           Precedence = 26 // < > <= >= instanceof in (left-assoc)
	PrecedenceShift             Precedence = 28 // << >> >>>     (left-assoc)
	PrecedenceAdd               Precedence = 30 // + -           (left-assoc)
	PrecedenceMultiply          Precedence = 32 // * / %         (left-assoc)
	PrecedenceExponentiation    Precedence = 35 // **            (right-assoc)
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.Coalesce] = PrecedenceNullishCoalescing
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Or] = PrecedenceBitwiseOr
	tokenPrecedence[token.ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[token.And] = PrecedenceBitwiseAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.StrictEqual] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.InstanceOf] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.ShiftLeft] = PrecedenceShift
	tokenPrecedence[token.ShiftRight] = PrecedenceShift
	tokenPrecedence[token.UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
	tokenPrecedence[token.Exponent] = PrecedenceExponentiation
}

// kindToPrecedence returns the left binding power for a token kind.
func kindToPrecedence(kind token.Token) Precedence {
	if kind < 0 || int(kind) >= len(tokenPrecedence) {
		return 0
	}
	return tokenPrecedence[kind]
}
