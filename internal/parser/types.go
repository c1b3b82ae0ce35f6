package parser

import (
	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
)

// type-desc := (builtin | name-ref) ['?']
// Если типа нет, возвращаем SimpleNameReference с missing идентификатором.
func (p *Parser) parseTypeDesc() green.Node {
	var typ green.Node
	switch k := p.peek().Kind; {
	case k.IsBuiltinType():
		typ = p.node(kind.BuiltinSimpleNameReference, p.advance())
	case k == kind.Identifier:
		typ = p.parseNameRef()
	default:
		name := green.NewMissingToken(kind.Identifier,
			green.NewDiagnostic(diag.SynMissingTypeDesc, "missing type descriptor"))
		return p.node(kind.SimpleNameReference, name)
	}
	if p.at(kind.QuestionMark) {
		typ = p.node(kind.OptionalTypeDescriptor, typ, p.advance())
	}
	return typ
}

// name-ref := ident [':' ident]
func (p *Parser) parseNameRef() green.Node {
	name := p.advance()
	if !p.at(kind.Colon) {
		return p.node(kind.SimpleNameReference, name)
	}
	colon := p.advance()
	return p.node(kind.QualifiedNameReference, name, colon, p.want(kind.Identifier))
}

func (p *Parser) parseSimpleName() green.Node {
	return p.node(kind.SimpleNameReference, p.want(kind.Identifier))
}

func (p *Parser) atTypeStart() bool {
	k := p.peek().Kind
	return k == kind.Identifier || k.IsBuiltinType()
}
