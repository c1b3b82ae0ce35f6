package parser

import (
	"loom/internal/green"
	"loom/internal/kind"
)

// function-def := ['public'] 'function' ident '(' params ')' ['returns' type-desc] block
func (p *Parser) parseFunctionDef(vis green.Node) green.Node {
	kw := p.advance()
	name := p.want(kind.Identifier)
	sig := p.parseSignature()
	body := p.parseBlock()
	return p.node(kind.FunctionDefinition, vis, kw, name, sig, body)
}

func (p *Parser) parseSignature() green.Node {
	open := p.want(kind.OpenParen)

	var params []green.Node
	if p.atTypeStart() {
		params = append(params, p.parseParam())
		for p.at(kind.Comma) {
			params = append(params, p.advance(), p.parseParam())
		}
	}
	// мусор до ')' уходит в minutiae, но не дальше начала тела
	for !p.at_or(kind.CloseParen, kind.OpenBrace, kind.ReturnsKeyword, kind.EOF) && !p.atMemberKeyword() {
		p.unexpected()
	}
	closeParen := p.want(kind.CloseParen)

	var ret green.Node
	if p.at(kind.ReturnsKeyword) {
		returns := p.advance()
		ret = p.node(kind.ReturnTypeDescriptor, returns, p.parseTypeDesc())
	}
	return p.node(kind.FunctionSignature, open, p.list(params), closeParen, ret)
}

// param := type-desc ident
func (p *Parser) parseParam() green.Node {
	typ := p.parseTypeDesc()
	return p.node(kind.RequiredParameter, typ, p.want(kind.Identifier))
}

// atMemberKeyword: токены, с которых начинается только член модуля.
func (p *Parser) atMemberKeyword() bool {
	return p.at_or(kind.PublicKeyword, kind.ListenerKeyword, kind.ConstKeyword, kind.FunctionKeyword, kind.ImportKeyword)
}

// block := '{' statement* '}'
// Блок заканчивается на '}', EOF или ключевом слове следующего члена модуля.
func (p *Parser) parseBlock() green.Node {
	open := p.want(kind.OpenBrace)
	var stmts []green.Node
	for !p.at_or(kind.CloseBrace, kind.EOF) && !p.atMemberKeyword() {
		if !p.atStatementStart() {
			p.unexpected()
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}
	closeBrace := p.want(kind.CloseBrace)
	return p.node(kind.FunctionBodyBlock, open, p.list(stmts), closeBrace)
}

func (p *Parser) atStatementStart() bool {
	switch p.peek().Kind {
	case kind.FinalKeyword, kind.ReturnKeyword:
		return true
	}
	return p.atTypeStart() || p.atExprStart()
}

func (p *Parser) parseStatement() green.Node {
	switch {
	case p.at(kind.ReturnKeyword):
		return p.parseReturn()
	case p.at(kind.FinalKeyword), p.atVarDecl():
		return p.parseVarDecl()
	default:
		expr := p.parseExpr()
		return p.node(kind.ExpressionStatement, expr, p.want(kind.Semicolon))
	}
}

// atVarDecl различает `T x ...` и выражение, начинающееся с имени.
func (p *Parser) atVarDecl() bool {
	if p.peek().Kind.IsBuiltinType() {
		return true
	}
	if !p.at(kind.Identifier) {
		return false
	}
	i := 1
	if p.peekN(1).Kind == kind.Colon && p.peekN(2).Kind == kind.Identifier {
		i = 3
	}
	if p.peekN(i).Kind == kind.QuestionMark {
		i++
	}
	return p.peekN(i).Kind == kind.Identifier
}

// statement := ['final'] type-desc ident ['=' expr] ';'
func (p *Parser) parseVarDecl() green.Node {
	final := p.accept(kind.FinalKeyword)
	typ := p.parseTypeDesc()
	name := p.want(kind.Identifier)
	var eq, initExpr green.Node
	if p.at(kind.Equal) {
		eq = p.advance()
		initExpr = p.parseExpr()
	}
	semi := p.want(kind.Semicolon)
	return p.node(kind.VariableDeclaration, final, typ, name, eq, initExpr, semi)
}

// 'return' [expr] ';'
func (p *Parser) parseReturn() green.Node {
	kw := p.advance()
	var expr green.Node
	if p.atExprStart() {
		expr = p.parseExpr()
	}
	return p.node(kind.ReturnStatement, kw, expr, p.want(kind.Semicolon))
}
