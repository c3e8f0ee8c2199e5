package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Idx   Idx
		Value float64
		// Raw is the literal as written in the source, empty for synthesized numbers.
		Raw string
	}

	StringLiteral struct {
		Idx   Idx
		Value string
		// Raw includes the quotes, empty for synthesized strings.
		Raw string
	}
)

func (n *BooleanLiteral) Literal() string {
	if n.Value {
		return "true"
	}
	return "false"
}
