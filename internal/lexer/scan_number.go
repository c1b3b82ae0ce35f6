package lexer

import (
	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/token"
)

// Поддержка: 0, 123, 1.0, .5, 1e-3, 1.0e+10.
// Неверная экспонента: репорт и Invalid токен со всем прочитанным текстом.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	k := kind.DecimalIntegerLiteral

	lx.cursor.SkipWhile(isDec)

	// дробная часть только если после точки цифра: "a.b" и "1.foo()" не числа
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		k = kind.DecimalFloatLiteral
		lx.cursor.SkipWhile(isDec)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if !lx.cursor.Eat('+') {
			lx.cursor.Eat('-')
		}
		if !isDec(lx.cursor.Peek()) {
			if k == kind.DecimalIntegerLiteral {
				// "1e" без цифр: пусть 'e' станет идентификатором
				lx.cursor.Reset(mark)
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
			}
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: kind.Invalid, Span: sp, Text: lx.text(sp)}
		}
		k = kind.DecimalFloatLiteral
		lx.cursor.SkipWhile(isDec)
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}
