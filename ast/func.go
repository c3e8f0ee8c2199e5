package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier
		ParameterList ParameterList
		Body          *BlockStatement
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Rest    *Identifier
		Closing Idx
	}
)
