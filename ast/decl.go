package ast

import "github.com/t14raptor/go-holes/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	VariableDeclaration struct {
		Idx   Idx
		Token token.Token // Var, Let or Const
		List  VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression
	}
)
