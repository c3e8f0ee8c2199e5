package parser

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// Error is a syntax error at a source position.
type Error struct {
	Line, Column int
	Message      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) error {
	line, col := p.scanner.Position(idx)
	err := &Error{Line: line, Column: col, Message: fmt.Sprintf(msg, msgValues...)}
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorf(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Illegal:
		// Already reported by the scanner.
		return nil
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Keyword:
		return p.errorf("Unexpected reserved word %s", p.token.Value)
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}
