package holes

import "github.com/t14raptor/go-holes/ast"

// scope is one enclosing block with its directive prologue.
type scope struct {
	parent     *scope
	directives []ast.Directive
}

func (e *Expander) enter(directives []ast.Directive) {
	e.scope = &scope{parent: e.scope, directives: directives}
}

func (e *Expander) leave() {
	e.scope = e.scope.parent
}

// suppressed reports whether any enclosing block opts out of expansion in the
// active mode.
func (e *Expander) suppressed() bool {
	for s := e.scope; s != nil; s = s.parent {
		for _, marker := range e.markers {
			if ast.HasDirective(s.directives, marker) {
				return true
			}
		}
	}
	return false
}
