package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Text()))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.bal", []byte(input))
	reporter := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}), reporter
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []kind.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// reconstruct склеивает Leading + Text + Trailing всех токенов
func reconstruct(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(tok.Text)
		for _, tr := range tok.Trailing {
			sb.WriteString(tr.Text)
		}
	}
	return sb.String()
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectTokens(t, "public listener http:Listener ep = new (9090);", []kind.Kind{
		kind.PublicKeyword, kind.ListenerKeyword, kind.Identifier, kind.Colon, kind.Identifier,
		kind.Identifier, kind.Equal, kind.NewKeyword, kind.OpenParen, kind.DecimalIntegerLiteral,
		kind.CloseParen, kind.Semicolon,
	})
	expectTokens(t, "Public LISTENER", []kind.Kind{kind.Identifier, kind.Identifier})
	expectTokens(t, "int string boolean float decimal any error", []kind.Kind{
		kind.IntKeyword, kind.StringKeyword, kind.BooleanKeyword, kind.FloatKeyword,
		kind.DecimalKeyword, kind.AnyKeyword, kind.ErrorKeyword,
	})
}

func TestIdentifiers_Unicode(t *testing.T) {
	lx, _ := makeTestLexer("имя _x1 α2")
	for _, want := range []string{"имя", "_x1", "α2"} {
		tok := lx.Next()
		if tok.Kind != kind.Identifier || tok.Text != want {
			t.Fatalf("got %v %q, want Identifier %q", tok.Kind, tok.Text, want)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  kind.Kind
	}{
		{"0", kind.DecimalIntegerLiteral},
		{"12345", kind.DecimalIntegerLiteral},
		{"1.5", kind.DecimalFloatLiteral},
		{".5", kind.DecimalFloatLiteral},
		{"1e10", kind.DecimalFloatLiteral},
		{"2.5E-3", kind.DecimalFloatLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind || tok.Text != tt.input {
				t.Fatalf("got %v %q", tok.Kind, tok.Text)
			}
		})
	}
}

func TestNumbers_MethodCallOnInt(t *testing.T) {
	expectTokens(t, "1.foo()", []kind.Kind{
		kind.DecimalIntegerLiteral, kind.Dot, kind.Identifier, kind.OpenParen, kind.CloseParen,
	})
}

func TestNumbers_InvalidExponent(t *testing.T) {
	lx, reporter := makeTestLexer("1.5e+")
	tok := lx.Next()
	if tok.Kind != kind.Invalid || tok.Text != "1.5e+" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected a bad number report")
	}
}

func TestString(t *testing.T) {
	lx, reporter := makeTestLexer(`"a\"b" "open`)
	tok := lx.Next()
	if tok.Kind != kind.StringLiteral || tok.Text != `"a\"b"` {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	tok = lx.Next()
	if tok.Kind != kind.Invalid || tok.Text != `"open` {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("unexpected diagnostics %v", reporter.ErrorMessages())
	}
}

func TestString_NewlineEndsLiteral(t *testing.T) {
	lx, _ := makeTestLexer("\"abc\nx")
	tok := lx.Next()
	if tok.Kind != kind.Invalid || tok.Text != `"abc` {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if len(tok.Trailing) != 1 || tok.Trailing[0].Kind != kind.EndOfLineMinutiae {
		t.Fatalf("newline must stay trailing trivia, got %+v", tok.Trailing)
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "; , . : / = ( ) { } ? + - * % !", []kind.Kind{
		kind.Semicolon, kind.Comma, kind.Dot, kind.Colon, kind.Slash, kind.Equal,
		kind.OpenParen, kind.CloseParen, kind.OpenBrace, kind.CloseBrace, kind.QuestionMark,
		kind.Plus, kind.Minus, kind.Asterisk, kind.Percent, kind.Exclamation,
	})
}

func TestTrivia_LeadingAndTrailing(t *testing.T) {
	input := "// header\n\n  a  // tail\nb\n"
	lx, _ := makeTestLexer(input)

	a := lx.Next()
	wantLeading := []kind.Kind{kind.CommentMinutiae, kind.EndOfLineMinutiae, kind.EndOfLineMinutiae, kind.WhitespaceMinutiae}
	if len(a.Leading) != len(wantLeading) {
		t.Fatalf("leading = %+v", a.Leading)
	}
	for i, k := range wantLeading {
		if a.Leading[i].Kind != k {
			t.Errorf("leading[%d] = %v, want %v", i, a.Leading[i].Kind, k)
		}
	}
	wantTrailing := []kind.Kind{kind.WhitespaceMinutiae, kind.CommentMinutiae, kind.EndOfLineMinutiae}
	if len(a.Trailing) != len(wantTrailing) {
		t.Fatalf("trailing = %+v", a.Trailing)
	}
	for i, k := range wantTrailing {
		if a.Trailing[i].Kind != k {
			t.Errorf("trailing[%d] = %v, want %v", i, a.Trailing[i].Kind, k)
		}
	}

	b := lx.Next()
	if len(b.Leading) != 0 || len(b.Trailing) != 1 {
		t.Fatalf("b trivia: leading=%+v trailing=%+v", b.Leading, b.Trailing)
	}
	eof := lx.Next()
	if eof.Kind != kind.EOF || len(eof.Leading) != 0 {
		t.Fatalf("eof = %+v", eof)
	}
}

func TestTrivia_CRLFAndBOM(t *testing.T) {
	input := "\xEF\xBB\xBFint x;\r\n// c\r\n"
	lx, _ := makeTestLexer(input)
	tokens := lx.All()
	if got := reconstruct(tokens); got != input {
		t.Fatalf("round trip mismatch: %q", got)
	}
	first := tokens[0]
	if len(first.Leading) != 1 || first.Leading[0].Text != "\xEF\xBB\xBF" {
		t.Fatalf("BOM must be leading whitespace, got %+v", first.Leading)
	}
	semi := tokens[2]
	if len(semi.Trailing) != 1 || semi.Trailing[0].Text != "\r\n" {
		t.Fatalf("CRLF must be one EOL piece, got %+v", semi.Trailing)
	}
	eof := tokens[len(tokens)-1]
	if len(eof.Leading) != 2 {
		t.Fatalf("EOF must carry the trailing comment line, got %+v", eof.Leading)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"   \t\n  ",
		"// only a comment",
		"import ballerina/io;\n\npublic function main() {\n    io:println(\"hi\"); // greet\n}\n",
		"int x = @ 3 $;\n",
		"\"unterminated\nnext",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		if got := reconstruct(lx.All()); got != input {
			t.Errorf("round trip mismatch:\nwant %q\ngot  %q", input, got)
		}
	}
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b c")

	peek1 := lx.Peek()
	if peek1.Kind != kind.Identifier || peek1.Text != "a" {
		t.Errorf("First peek: expected Identifier 'a', got %v '%s'", peek1.Kind, peek1.Text)
	}
	if peek2 := lx.Peek(); peek2.Text != peek1.Text {
		t.Error("Second peek should return the same token")
	}
	if next1 := lx.Next(); next1.Text != peek1.Text {
		t.Error("Next should return the peeked token")
	}
	if next2 := lx.Next(); next2.Text != "b" {
		t.Errorf("Expected 'b', got '%s'", next2.Text)
	}
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	if tok := lx.Next(); tok.Kind != kind.Identifier {
		t.Fatalf("Expected Identifier, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != kind.EOF {
		t.Fatalf("Expected EOF, got %v", tok.Kind)
	}
	// Повторные вызовы Next после EOF должны продолжать возвращать EOF
	if tok := lx.Next(); tok.Kind != kind.EOF || len(tok.Leading) != 0 {
		t.Errorf("Expected empty EOF again, got %+v", tok)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	for _, input := range []string{"#", "$", "§", "€"} {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != kind.Invalid || tok.Text != input {
				t.Errorf("Expected Invalid %q, got %v %q", input, tok.Kind, tok.Text)
			}
			if !reporter.HasErrors() {
				t.Error("Expected error report for unknown character")
			}
		})
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	var sb strings.Builder
	for i := range 100 {
		fmt.Fprintf(&sb, "function f%d(int a, int b) returns int {\n    return a + b; // sum\n}\n", i)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bench.bal", []byte(sb.String())))

	b.ResetTimer()
	for b.Loop() {
		lx := lexer.New(file, lexer.Options{})
		for lx.Next().Kind != kind.EOF {
		}
	}
}
