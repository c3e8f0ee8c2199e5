package parser

import (
	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

func (p *parser) parseStatement() ast.Statement {
	switch p.currentKind() {
	case token.Semicolon:
		idx := p.currentOffset()
		p.next()
		return ast.Statement{Stmt: &ast.EmptyStatement{Semicolon: idx}}
	case token.LeftBrace:
		return ast.Statement{Stmt: p.parseBlockStatement()}
	case token.Var, token.Let, token.Const:
		return ast.Statement{Stmt: p.parseVariableStatement()}
	case token.Function:
		return ast.Statement{Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(true)}}
	case token.If:
		return ast.Statement{Stmt: p.parseIfStatement()}
	case token.While:
		return ast.Statement{Stmt: p.parseWhileStatement()}
	case token.Return:
		return ast.Statement{Stmt: p.parseReturnStatement()}
	case token.Keyword, token.Else, token.In, token.InstanceOf:
		from := p.currentOffset()
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		return ast.Statement{Stmt: &ast.BadStatement{From: from, To: p.currentOffset()}}
	}

	expr := p.parseExpression()
	p.semicolon()
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: expr}}
}

// parseDirectives consumes a directive prologue: leading string literal
// expression statements. A string that turns out to start a larger
// expression is left for the statement parser.
func (p *parser) parseDirectives() []ast.Directive {
	var directives []ast.Directive
	for p.currentKind() == token.String {
		state := p.mark()
		raw := p.token.Raw(p.scanner)
		if len(raw) < 2 {
			break
		}
		directive := ast.Directive{
			Idx:   p.currentOffset(),
			Value: raw[1 : len(raw)-1],
			Raw:   raw,
		}
		p.next()
		if p.currentKind() == token.Semicolon {
			p.next()
		} else if !p.canInsertSemicolon() || continuesExpression(p.currentKind()) {
			p.restore(state)
			break
		}
		directives = append(directives, directive)
	}
	return directives
}

// continuesExpression reports whether a token on the next line still belongs
// to the expression before it.
func continuesExpression(kind token.Token) bool {
	switch kind {
	case token.Period, token.LeftBracket, token.LeftParenthesis, token.Comma,
		token.QuestionMark:
		return true
	}
	return kind.IsBinary() || kind.IsAssign()
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{LeftBrace: p.expect(token.LeftBrace)}
	block.List = p.parseStatementList()
	block.RightBrace = p.expect(token.RightBrace)
	return block
}

func (p *parser) parseFunctionBody() *ast.BlockStatement {
	block := &ast.BlockStatement{LeftBrace: p.expect(token.LeftBrace)}
	block.Directives = p.parseDirectives()
	block.List = p.parseStatementList()
	block.RightBrace = p.expect(token.RightBrace)
	return block
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, p.parseStatement())
	}
	return
}

func (p *parser) parseVariableStatement() *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{Idx: p.currentOffset(), Token: p.currentKind()}
	p.next()
	for {
		if p.currentKind() != token.Identifier {
			p.errorUnexpectedToken(p.currentKind())
			p.nextStatement()
			return decl
		}
		declarator := ast.VariableDeclarator{
			Target: &ast.Identifier{Idx: p.currentOffset(), Name: p.token.Value},
		}
		p.next()
		if p.currentKind() == token.Assign {
			p.next()
			declarator.Initializer = p.parseAssignmentExpression()
		} else if decl.Token == token.Const {
			p.errorf("Missing initializer in const declaration")
		}
		decl.List = append(decl.List, declarator)
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.semicolon()
	return decl
}

func (p *parser) parseIfStatement() *ast.IfStatement {
	node := &ast.IfStatement{If: p.expect(token.If)}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	consequent := p.parseStatement()
	node.Consequent = &consequent
	if p.currentKind() == token.Else {
		p.next()
		alternate := p.parseStatement()
		node.Alternate = &alternate
	}
	return node
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	node := &ast.WhileStatement{While: p.expect(token.While)}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	node.Body = &body
	return node
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	node := &ast.ReturnStatement{Return: p.expect(token.Return)}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	return node
}
