package lexer

import (
	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/token"
)

// "..." с escape-последовательностями; глубоко escape не валидируем.
// Перевод строки или EOF до закрывающей кавычки → Invalid токен.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind.StringLiteral, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: kind.Invalid, Span: sp, Text: lx.text(sp)}
}
