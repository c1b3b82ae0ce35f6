package syntax_test

import (
	"loom/internal/kind"
	"loom/internal/syntax"
)

var none = syntax.MinutiaeList{}

func newline() syntax.MinutiaeList {
	return syntax.CreateMinutiaeList(syntax.CreateEndOfLine("\n"))
}

func ident(name string, trailing syntax.MinutiaeList) *syntax.Token {
	return syntax.CreateIdentifierToken(name, none, trailing)
}

func punct(k kind.Kind, trailing syntax.MinutiaeList) *syntax.Token {
	return syntax.CreateToken(k, none, trailing)
}

// listenerDecl builds "[public ]listener X l = init();\n".
func listenerDecl(public bool, semicolon *syntax.Token) *syntax.ListenerDeclaration {
	var vis *syntax.Token
	if public {
		vis = punct(kind.PublicKeyword, syntax.Space())
	}
	if semicolon == nil {
		semicolon = punct(kind.Semicolon, newline())
	}
	call := syntax.CreateFunctionCallExpression(
		syntax.CreateSimpleNameReference(ident("init", none)),
		punct(kind.OpenParen, none),
		syntax.SeparatedNodeList[syntax.Argument]{},
		punct(kind.CloseParen, none),
	)
	return syntax.CreateListenerDeclaration(
		vis,
		punct(kind.ListenerKeyword, syntax.Space()),
		syntax.CreateSimpleNameReference(ident("X", syntax.Space())),
		ident("l", syntax.Space()),
		punct(kind.Equal, syntax.Space()),
		call,
		semicolon,
	)
}

func module(eof *syntax.Token, members ...syntax.ModuleMember) *syntax.ModulePart {
	if eof == nil {
		eof = punct(kind.EOF, none)
	}
	return syntax.CreateModulePart(
		syntax.NodeList[*syntax.ImportDeclaration]{},
		syntax.CreateNodeList(members...),
		eof,
	)
}

func listenerTree(public bool) *syntax.Tree {
	return syntax.NewTree(module(nil, listenerDecl(public, nil)).Internal(), 1)
}

func firstListener(t *syntax.Tree) *syntax.ListenerDeclaration {
	return t.Module().Members().Get(0).(*syntax.ListenerDeclaration)
}
