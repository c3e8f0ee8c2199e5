package utils

import "github.com/t14raptor/go-holes/ast"

type NameCollector struct {
	ast.NoopVisitor
	names map[string]struct{}
}

func (v *NameCollector) VisitIdentifier(n *ast.Identifier) {
	if n != nil {
		v.names[n.Name] = struct{}{}
	}
}

// CollectNames collects the name of every identifier in the tree, including
// bindings, references and dot-form property names.
func CollectNames(n ast.VisitableNode) map[string]struct{} {
	visitor := &NameCollector{
		names: make(map[string]struct{}),
	}
	visitor.V = visitor
	n.VisitWith(visitor)
	return visitor.names
}
