package lexer

import (
	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/token"
)

var singleCharOps = [utf8RuneSelf]kind.Kind{
	';': kind.Semicolon,
	',': kind.Comma,
	'.': kind.Dot,
	':': kind.Colon,
	'/': kind.Slash,
	'=': kind.Equal,
	'(': kind.OpenParen,
	')': kind.CloseParen,
	'{': kind.OpenBrace,
	'}': kind.CloseBrace,
	'?': kind.QuestionMark,
	'+': kind.Plus,
	'-': kind.Minus,
	'*': kind.Asterisk,
	'%': kind.Percent,
	'!': kind.Exclamation,
}

// В языке только односимвольные операторы. Неизвестный символ (или руна)
// становится Invalid токеном; парсер превратит его в invalid-node minutiae.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	if ch < utf8RuneSelf {
		if k := singleCharOps[ch]; k != kind.Invalid {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	} else {
		lx.cursor.BumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	lx.report(diag.LexUnknownChar, sp, "unknown character '{0}'", diag.StringProperty(text))
	return token.Token{Kind: kind.Invalid, Span: sp, Text: text}
}
