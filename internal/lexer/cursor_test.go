package lexer

import (
	"testing"
	"unicode/utf8"

	"loom/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.bal", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = (%q, %q, %v)", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail with one byte left")
	}
}

// TestSpanFromUTF8 проверяет SpanFrom на многобайтовых символах
func TestSpanFromUTF8(t *testing.T) {
	cursor := NewCursor(createFile("α\nβ"))
	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Errorf("Expected span (0,2), got (%d,%d)", span.Start, span.End)
	}
}

func TestEatAndReset(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	if !cursor.Eat('a') || !cursor.Eat('\n') || !cursor.Eat('b') {
		t.Fatal("Eat sequence failed")
	}
	if cursor.Eat('x') {
		t.Error("Expected Eat at EOF to fail")
	}
	cursor.Reset(Mark(0))
	if cursor.Eat('x') {
		t.Error("Expected Eat('x') to fail when current char is 'a'")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected cursor position unchanged after failed Eat, got %c", cursor.Peek())
	}
}

func TestRuneAndBumpRune(t *testing.T) {
	cursor := NewCursor(createFile("яx\xff"))
	r, sz := cursor.Rune()
	if r != 'я' || sz != 2 {
		t.Fatalf("Rune = (%q, %d)", r, sz)
	}
	cursor.BumpRune()
	if r, sz := cursor.Rune(); r != 'x' || sz != 1 {
		t.Fatalf("Rune = (%q, %d)", r, sz)
	}
	cursor.BumpRune()
	// битый UTF-8 читается как RuneError длиной 1
	if r, sz := cursor.Rune(); r != utf8.RuneError || sz != 1 {
		t.Fatalf("Rune on invalid byte = (%q, %d)", r, sz)
	}
	cursor.BumpRune()
	if _, sz := cursor.Rune(); sz != 0 || !cursor.EOF() {
		t.Fatal("expected EOF")
	}
	cursor.BumpRune()
	if cursor.Off != 4 {
		t.Errorf("BumpRune at EOF moved the cursor to %d", cursor.Off)
	}
}

func TestSkipWhileAndEatString(t *testing.T) {
	cursor := NewCursor(createFile(" \t// note\r\nx"))
	if n := cursor.SkipWhile(isBlank); n != 2 {
		t.Fatalf("SkipWhile = %d, want 2", n)
	}
	if cursor.EatString("/*") || !cursor.At("//") {
		t.Fatal("At/EatString mismatch")
	}
	if !cursor.EatString("//") {
		t.Fatal("EatString(//) failed")
	}
	cursor.SkipWhile(func(b byte) bool { return !isLineEnd(b) })
	if !cursor.EatEOL() || cursor.Peek() != 'x' {
		t.Fatalf("EatEOL must consume \\r\\n, at %d", cursor.Off)
	}
	if cursor.EatEOL() {
		t.Error("EatEOL on 'x' must fail")
	}
	cursor.Bump()
	if cursor.At("") || cursor.EatString("x") {
		t.Error("At/EatString must fail at EOF")
	}
}

func TestEatEOLLoneCR(t *testing.T) {
	cursor := NewCursor(createFile("\r\r\n\n"))
	for i := range 3 {
		if !cursor.EatEOL() {
			t.Fatalf("line end %d not consumed", i)
		}
	}
	if !cursor.EOF() {
		t.Errorf("expected EOF, at %d", cursor.Off)
	}
}
