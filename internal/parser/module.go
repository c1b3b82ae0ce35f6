package parser

import (
	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
)

// parseModulePart крутит основной цикл верхнего уровня: imports, затем члены модуля до EOF.
func (p *Parser) parseModulePart() green.Node {
	var imports []green.Node
	for p.at(kind.ImportKeyword) {
		imports = append(imports, p.parseImportDecl())
	}

	var members []green.Node
	for !p.at(kind.EOF) {
		if p.at(kind.ImportKeyword) {
			p.skipMisplacedImport()
			continue
		}
		if !p.atMemberStart() {
			p.unexpected()
			continue
		}
		if m := p.parseMember(); m != nil {
			members = append(members, m)
		}
	}
	eof := p.advance()
	return p.node(kind.ModulePart, p.list(imports), p.list(members), eof)
}

func (p *Parser) atMemberStart() bool {
	k := p.peek().Kind
	switch k {
	case kind.PublicKeyword, kind.FinalKeyword, kind.ListenerKeyword, kind.ConstKeyword,
		kind.FunctionKeyword, kind.Identifier:
		return true
	}
	return k.IsBuiltinType()
}

// parseMember выбирает по первому токену нужный распознаватель.
// Лишний 'public' без декларации уходит в minutiae.
func (p *Parser) parseMember() green.Node {
	var vis *green.Token
	if p.at(kind.PublicKeyword) {
		switch p.peekN(1).Kind {
		case kind.ListenerKeyword, kind.ConstKeyword, kind.FunctionKeyword, kind.FinalKeyword, kind.Identifier:
			vis = p.advance()
		default:
			if !p.peekN(1).Kind.IsBuiltinType() {
				p.skip(diag.SynInvalidMember, "{0} must be followed by a declaration")
				return nil
			}
			vis = p.advance()
		}
	}

	switch p.peek().Kind {
	case kind.ListenerKeyword:
		sp := p.span("listener")
		defer sp.End("")
		return p.parseListenerDecl(vis)
	case kind.ConstKeyword:
		sp := p.span("const")
		defer sp.End("")
		return p.parseConstDecl(vis)
	case kind.FunctionKeyword:
		sp := p.span("function")
		defer sp.End("")
		return p.parseFunctionDef(vis)
	default:
		sp := p.span("var")
		defer sp.End("")
		return p.parseModuleVarDecl(vis)
	}
}

// skipMisplacedImport прокручивает import после членов модуля до ';'
// включительно или до начала следующего члена.
func (p *Parser) skipMisplacedImport() {
	p.skip(diag.SynInvalidMember, "{0} declarations must precede module members")
	for !p.at(kind.EOF) {
		if p.at(kind.Semicolon) {
			p.unexpected()
			return
		}
		switch p.peek().Kind {
		case kind.PublicKeyword, kind.FinalKeyword, kind.ListenerKeyword, kind.ConstKeyword,
			kind.FunctionKeyword, kind.ImportKeyword:
			p.skipping = false
			return
		}
		p.unexpected()
	}
}

// import-decl := 'import' [ident '/'] ident ('.' ident)* ['as' ident] ';'
func (p *Parser) parseImportDecl() green.Node {
	importKw := p.advance()

	var org green.Node
	if p.at(kind.Identifier) && p.peekN(1).Kind == kind.Slash {
		name := p.advance()
		org = p.node(kind.ImportOrgName, name, p.advance())
	}

	parts := []green.Node{p.want(kind.Identifier)}
	for p.at(kind.Dot) {
		parts = append(parts, p.advance(), p.want(kind.Identifier))
	}

	var prefix green.Node
	if p.at(kind.AsKeyword) {
		as := p.advance()
		prefix = p.node(kind.ImportPrefix, as, p.want(kind.Identifier))
	}

	semi := p.want(kind.Semicolon)
	return p.node(kind.ImportDeclaration, importKw, org, p.list(parts), prefix, semi)
}

// listener-decl := ['public'] 'listener' type-desc ident '=' expr ';'
func (p *Parser) parseListenerDecl(vis green.Node) green.Node {
	kw := p.advance()
	typ := p.parseTypeDesc()
	name := p.want(kind.Identifier)
	eq := p.want(kind.Equal)
	initExpr := p.parseExpr()
	semi := p.want(kind.Semicolon)
	return p.node(kind.ListenerDeclaration, vis, kw, typ, name, eq, initExpr, semi)
}

// const-decl := ['public'] 'const' [type-desc] ident '=' expr ';'
// Тип есть, если после первого токена ещё один идентификатор (или '?', ':').
func (p *Parser) parseConstDecl(vis green.Node) green.Node {
	kw := p.advance()
	var typ green.Node
	if p.constHasType() {
		typ = p.parseTypeDesc()
	}
	name := p.want(kind.Identifier)
	eq := p.want(kind.Equal)
	initExpr := p.parseExpr()
	semi := p.want(kind.Semicolon)
	return p.node(kind.ConstantDeclaration, vis, kw, typ, name, eq, initExpr, semi)
}

func (p *Parser) constHasType() bool {
	first := p.peek().Kind
	if first.IsBuiltinType() {
		return true
	}
	if first != kind.Identifier {
		return false
	}
	switch p.peekN(1).Kind {
	case kind.Identifier, kind.QuestionMark, kind.Colon:
		return true
	}
	return false
}

// module-var-decl := ['public'] ['final'] type-desc ident '=' expr ';'
func (p *Parser) parseModuleVarDecl(vis green.Node) green.Node {
	final := p.accept(kind.FinalKeyword)
	typ := p.parseTypeDesc()
	name := p.want(kind.Identifier)
	eq := p.want(kind.Equal)
	initExpr := p.parseExpr()
	semi := p.want(kind.Semicolon)
	return p.node(kind.ModuleVariableDeclaration, vis, final, typ, name, eq, initExpr, semi)
}
