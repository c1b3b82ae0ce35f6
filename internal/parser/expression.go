package parser

import (
	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
)

func (p *Parser) atExprStart() bool {
	k := p.peek().Kind
	if k.IsLiteral() {
		return true
	}
	switch k {
	case kind.Identifier, kind.OpenParen, kind.Minus, kind.Exclamation, kind.NewKeyword:
		return true
	}
	return false
}

// parseExpr разбирает выражение, приоритеты по возрастанию: additive < multiplicative < unary < postfix.
func (p *Parser) parseExpr() green.Node {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() green.Node {
	lhs := p.parseMultiplicative()
	for p.at_or(kind.Plus, kind.Minus) {
		op := p.advance()
		lhs = p.node(kind.BinaryExpression, lhs, op, p.parseMultiplicative())
	}
	return lhs
}

func (p *Parser) parseMultiplicative() green.Node {
	lhs := p.parseUnary()
	for p.at_or(kind.Asterisk, kind.Slash, kind.Percent) {
		op := p.advance()
		lhs = p.node(kind.BinaryExpression, lhs, op, p.parseUnary())
	}
	return lhs
}

func (p *Parser) parseUnary() green.Node {
	if p.at_or(kind.Minus, kind.Exclamation) {
		op := p.advance()
		return p.node(kind.UnaryExpression, op, p.parseUnary())
	}
	return p.parsePostfix()
}

// postfix := primary ( '.' ident ['(' args ')'] )*
func (p *Parser) parsePostfix() green.Node {
	expr := p.parsePrimary()
	for p.at(kind.Dot) {
		dot := p.advance()
		name := p.parseSimpleName()
		if !p.at(kind.OpenParen) {
			expr = p.node(kind.FieldAccessExpression, expr, dot, name)
			continue
		}
		open, args, closeParen := p.parseArgs()
		expr = p.node(kind.MethodCallExpression, expr, dot, name, open, args, closeParen)
	}
	return expr
}

func (p *Parser) parsePrimary() green.Node {
	k := p.peek().Kind
	switch {
	case k.IsLiteral():
		return p.node(kind.BasicLiteral, p.advance())
	case k == kind.Identifier:
		ref := p.parseNameRef()
		if !p.at(kind.OpenParen) {
			return ref
		}
		open, args, closeParen := p.parseArgs()
		return p.node(kind.FunctionCallExpression, ref, open, args, closeParen)
	case k == kind.OpenParen:
		open := p.advance()
		inner := p.parseExpr()
		return p.node(kind.BracedExpression, open, inner, p.want(kind.CloseParen))
	case k == kind.NewKeyword:
		kw := p.advance()
		var argList green.Node
		if p.at(kind.OpenParen) {
			open, args, closeParen := p.parseArgs()
			argList = p.node(kind.ParenthesizedArgList, open, args, closeParen)
		}
		return p.node(kind.ImplicitNewExpression, kw, argList)
	default:
		name := green.NewMissingToken(kind.Identifier,
			green.NewDiagnostic(diag.SynMissingExpression, "missing expression"))
		return p.node(kind.SimpleNameReference, name)
	}
}

// args := [arg (',' arg)*]; текущий токен: '('.
func (p *Parser) parseArgs() (open, args, closeParen green.Node) {
	open = p.advance()
	var items []green.Node
	if p.atExprStart() {
		items = append(items, p.parseArg())
		for p.at(kind.Comma) {
			items = append(items, p.advance(), p.parseArg())
		}
	}
	return open, p.list(items), p.want(kind.CloseParen)
}

// arg := ident '=' expr | expr
func (p *Parser) parseArg() green.Node {
	if p.at(kind.Identifier) && p.peekN(1).Kind == kind.Equal {
		name := p.node(kind.SimpleNameReference, p.advance())
		eq := p.advance()
		return p.node(kind.NamedArgument, name, eq, p.parseExpr())
	}
	return p.node(kind.PositionalArgument, p.parseExpr())
}
