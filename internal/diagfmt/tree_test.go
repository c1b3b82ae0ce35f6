package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"loom/internal/kind"
	"loom/internal/lexer"
	"loom/internal/parser"
	"loom/internal/source"
	"loom/internal/token"
)

func TestFormatTreePretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tree.bal", []byte("int a = 1"))
	res := parser.ParseFile(fs.Get(fileID), parser.Options{})

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, res.Tree, fs, TreeOpts{PathMode: PathModeBasename, Minutiae: true}); err != nil {
		t.Fatalf("FormatTreePretty() error: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"tree.bal\n",
		"ModulePart [0..9] !\n",
		"└─ ModuleVariableDeclaration [0..9] !",
		"IntKeyword \"int\" [0..3]",
		"Semicolon <missing> [9..9] !",
		"· trailing WhitespaceMinutiae \" \" [3..4]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatTreeJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tree.bal", []byte("int a = 1;"))
	res := parser.ParseFile(fs.Get(fileID), parser.Options{})

	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, res.Tree, fs, TreeOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("FormatTreeJSON() error: %v", err)
	}
	var out TreeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if out.File != "tree.bal" || out.Root.Kind != "ModulePart" {
		t.Fatalf("unexpected root: %+v", out)
	}

	var texts []string
	var walk func(n TreeNodeOutput)
	walk = func(n TreeNodeOutput) {
		if n.Text != "" {
			texts = append(texts, n.Text)
		}
		if n.Leading != nil {
			t.Errorf("minutiae must be omitted: %+v", n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(out.Root)
	if got := strings.Join(texts, " "); got != "int a = 1 ;" {
		t.Errorf("unexpected token texts: %q", got)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("toks.bal", []byte("int a; // c\n"))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == kind.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty() error: %v", err)
	}
	if !strings.Contains(buf.String(), "(trailing: WhitespaceMinutiae, CommentMinutiae, EndOfLineMinutiae)") {
		t.Errorf("expected trailing trivia of ';', got:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON() error: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(out) != 4 || out[3].Kind != "EOF" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}
