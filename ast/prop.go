package ast

type (
	Properties []Property

	Property struct {
		Prop Prop
	}

	// Prop is a *PropertyShort, *PropertyKeyed or *SpreadElement.
	Prop interface {
		Node
		VisitableNode
		_property()
	}

	// PropertyShort is the shorthand form {a} or a binding default {a = 1}.
	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression
	}

	// PropertyKeyed is {key: value}. A non-computed key is stored as a
	// *StringLiteral whose Raw holds the key exactly as written.
	PropertyKeyed struct {
		Key      *Expression
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}
