package parser

import (
	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/parser/scanner"
	"github.com/t14raptor/go-holes/token"
)

type parser struct {
	token scanner.Token

	scanner *scanner.Scanner

	errors error
}

func newParser(src string) *parser {
	p := &parser{}
	p.scanner = scanner.NewScanner(src, &p.errors)
	return p
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node. The program is returned even
// when errors are reported; the error joins every problem found.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

// ParseExpression parses a single expression, such as a REPL line.
func ParseExpression(src string) (*ast.Expression, error) {
	p := newParser(src)
	p.next()
	expr := p.parseExpression()
	if p.currentKind() == token.Semicolon {
		p.next()
	}
	if p.currentKind() != token.Eof {
		p.errorUnexpectedToken(p.currentKind())
	}
	return expr, p.errors
}

func (p *parser) parse() (*ast.Program, error) {
	p.next()
	program := &ast.Program{
		Directives: p.parseDirectives(),
	}
	for p.currentKind() != token.Eof {
		program.Body = append(program.Body, p.parseStatement())
	}
	return program, p.errors
}

func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:      p.scanner.Checkpoint(),
		tok:    p.token,
		errors: p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.scanner.Next()
	tok := p.scanner.Token
	p.restore(st)
	return tok
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

// semicolon consumes an explicit or automatically inserted semicolon.
func (p *parser) semicolon() {
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		return
	}
	if p.currentKind() == token.Semicolon {
		p.next()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.currentKind() != value {
		p.errorUnexpectedToken(p.currentKind())
	}
	p.next()
	return idx
}

// nextStatement skips tokens until a plausible statement boundary.
func (p *parser) nextStatement() {
	if p.currentKind() != token.Eof && p.currentKind() != token.RightBrace {
		p.next()
	}
	for {
		switch p.currentKind() {
		case token.Eof, token.RightBrace:
			return
		case token.Semicolon:
			p.next()
			return
		}
		if p.token.OnNewLine {
			return
		}
		p.next()
	}
}
