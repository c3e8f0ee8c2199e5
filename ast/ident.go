package ast

type Identifier struct {
	Idx  Idx
	Name string
}
