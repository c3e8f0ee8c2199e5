package ast

type (
	Statements []Statement

	Statement struct {
		Stmt
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		VisitableNode
		_stmt()
	}

	BadStatement struct {
		From Idx
		To   Idx
	}

	BlockStatement struct {
		LeftBrace Idx
		// Directives is only populated for function bodies by the parser, but
		// transforms honor it on any block.
		Directives []Directive
		List       Statements
		RightBrace Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}
)

func (n *BadStatement) Idx0() Idx { return n.From }
func (n *BadStatement) Idx1() Idx { return n.To }

func (*BadStatement) _stmt()        {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*FunctionDeclaration) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*ReturnStatement) _stmt()     {}
func (*VariableDeclaration) _stmt() {}
func (*WhileStatement) _stmt()      {}
