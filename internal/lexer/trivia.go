package lexer

import (
	"loom/internal/kind"
	"loom/internal/token"
)

// collectLeadingTrivia собирает все trivia перед значимым токеном,
// включая целые предыдущие строки.
func (lx *Lexer) collectLeadingTrivia() []token.Trivia {
	var out []token.Trivia
	for {
		t, ok := lx.scanTrivia()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

// collectTrailingTrivia собирает trivia на той же строке после токена,
// включая первый перевод строки, и останавливается на нём.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for {
		t, ok := lx.scanTrivia()
		if !ok {
			return out
		}
		out = append(out, t)
		if t.Kind == kind.EndOfLineMinutiae {
			return out
		}
	}
}

// scanTrivia reads one trivia piece:
//   - a run of ' ', '\t' (and a leading byte order mark) → WhitespaceMinutiae
//   - "\n", "\r\n" or a lone '\r' → EndOfLineMinutiae, one line end per piece
//   - "//" up to the line end → CommentMinutiae
func (lx *Lexer) scanTrivia() (token.Trivia, bool) {
	start := lx.cursor.Mark()
	bom := lx.cursor.Off == 0 && lx.cursor.EatString(byteOrderMark)
	if lx.cursor.SkipWhile(isBlank) > 0 || bom {
		return lx.trivia(kind.WhitespaceMinutiae, start), true
	}
	if lx.cursor.EatEOL() {
		return lx.trivia(kind.EndOfLineMinutiae, start), true
	}
	if lx.cursor.EatString("//") {
		lx.cursor.SkipWhile(func(b byte) bool { return !isLineEnd(b) })
		return lx.trivia(kind.CommentMinutiae, start), true
	}
	return token.Trivia{}, false
}

const byteOrderMark = "\xEF\xBB\xBF"

func (lx *Lexer) trivia(k kind.Kind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{Kind: k, Span: sp, Text: lx.text(sp)}
}
