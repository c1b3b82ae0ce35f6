package token

import (
	"loom/internal/kind"
	"loom/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     kind.Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunct() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == kind.Identifier }

// FullSpan covers the token together with its trivia.
func (t Token) FullSpan() source.Span {
	sp := t.Span
	if len(t.Leading) > 0 {
		sp = sp.Cover(t.Leading[0].Span)
	}
	if len(t.Trailing) > 0 {
		sp = sp.Cover(t.Trailing[len(t.Trailing)-1].Span)
	}
	return sp
}
