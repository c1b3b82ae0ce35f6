package syntax

import (
	"loom/internal/green"
	"loom/internal/kind"
)

var _ Node = (*Token)(nil)

// Token is the external view of a green token.
type Token struct {
	green  *green.Token
	pos    uint32
	parent Node
}

func newToken(g *green.Token, pos uint32, parent Node) *Token {
	return &Token{green: g, pos: pos, parent: parent}
}

// Internal returns the green token, or nil for a nil receiver.
func (t *Token) Internal() green.Node {
	if t == nil {
		return nil
	}
	return t.green
}

// Green returns the typed green token.
func (t *Token) Green() *green.Token { return t.green }

func (t *Token) Kind() kind.Kind      { return t.green.Kind() }
func (t *Token) Position() uint32     { return t.pos }
func (t *Token) Width() uint32        { return t.green.Width() }
func (t *Token) Parent() Node         { return t.parent }
func (t *Token) Children() []Node     { return nil }
func (t *Token) Accept(v Visitor)     { v.VisitToken(t) }
func (t *Token) ToSourceCode() string { return green.Text(t.green) }
func (t *Token) HasDiagnostics() bool { return t.green.HasDiagnostics() }
func (t *Token) IsMissing() bool      { return t.green.IsMissing() }
func (t *Token) sealed()              {}

// Text is the token text without trivia.
func (t *Token) Text() string { return t.green.Text() }

func (t *Token) TextRange() TextRange {
	start := t.pos + t.green.LeadingMinutiae().Width()
	return TextRange{Start: start, End: start + t.green.TextWidth()}
}

func (t *Token) TextRangeWithMinutiae() TextRange {
	return TextRange{Start: t.pos, End: t.pos + t.green.Width()}
}

func (t *Token) LeadingMinutiae() MinutiaeList {
	return MinutiaeList{green: t.green.LeadingMinutiae(), pos: t.pos, token: t}
}

func (t *Token) TrailingMinutiae() MinutiaeList {
	off := t.pos + t.green.LeadingMinutiae().Width() + t.green.TextWidth()
	return MinutiaeList{green: t.green.TrailingMinutiae(), pos: off, token: t}
}

// Modify returns a token at the same position with other trivia, or t when
// both lists are the current ones.
func (t *Token) Modify(leading, trailing MinutiaeList) *Token {
	gl, gt := leading.internal(), trailing.internal()
	if gl == t.green.LeadingMinutiae() && gt == t.green.TrailingMinutiae() {
		return t
	}
	return newToken(t.green.WithMinutiae(gl, gt), t.pos, t.parent)
}

// WithText returns a token of the same kind and trivia with other text.
func (t *Token) WithText(text string) *Token {
	if text == t.green.Text() && !t.green.IsMissing() {
		return t
	}
	return newToken(t.green.WithText(text), t.pos, t.parent)
}

// FirstToken and LastToken let a token stand where a node is expected.
func (t *Token) FirstToken() *Token { return t }
func (t *Token) LastToken() *Token  { return t }
