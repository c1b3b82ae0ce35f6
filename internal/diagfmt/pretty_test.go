package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"loom/internal/diag"
	"loom/internal/source"
)

func prettyString(bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) string {
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, opts)
	return buf.String()
}

func TestPrettyPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	short := fs.AddVirtual("/home/user/project/src/unterminated.bal", []byte("string x = \"open\n"))
	long := fs.AddVirtual("/very/long/absolute/path/to/some/nested/directory/file.bal", []byte("$\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: short, Start: 11, End: 16}, "unterminated string literal"))
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: long, Start: 0, End: 1}, "unknown character"))

	for _, tt := range []struct {
		mode PathMode
		want []string
	}{
		{PathModeAbsolute, []string{"/home/user/project/src/unterminated.bal:1:12:", "/very/long/absolute/path/to/some/nested/directory/file.bal:1:1:"}},
		{PathModeRelative, []string{"\nsrc/unterminated.bal:1:12:"}},
		{PathModeBasename, []string{"\nunterminated.bal:1:12:", "\nfile.bal:1:1:"}},
		// auto: длинный абсолютный путь сокращается до имени файла
		{PathModeAuto, []string{"\nfile.bal:1:1:"}},
	} {
		output := "\n" + prettyString(bag, fs, PrettyOpts{PathMode: tt.mode})
		for _, want := range tt.want {
			if !strings.Contains(output, want) {
				t.Errorf("mode %d: expected %q in:\n%s", tt.mode, want, output)
			}
		}
		if !strings.Contains(output, "ERROR LEX1002: unterminated string literal") {
			t.Errorf("mode %d: missing header:\n%s", tt.mode, output)
		}
	}
}

func TestPrettyNotesFixesAndPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fix.bal", []byte("int a = 1;\r\nint a = 42 // again\r\n"))

	insert := source.Span{File: fileID, Start: 22, End: 22}
	d := diag.New(diag.SevError, diag.SynMissingSemicolon, insert, "missing {0}", diag.StringProperty("';'")).
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "'a' is also declared here").
		WithFix("insert ';'", diag.FixEdit{Span: insert, NewText: ";"})
	bag := diag.NewBag(1)
	bag.Add(d)

	output := prettyString(bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(output, "note:") || strings.Contains(output, "fix #1") {
		t.Fatalf("notes and fixes must be hidden by default:\n%s", output)
	}

	output = prettyString(bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
	for _, want := range []string{
		"fix.bal:2:11: ERROR SYN2003: missing ';'",
		"note: fix.bal:1:5: 'a' is also declared here",
		"fix #1: insert ';'",
		`apply=";"`,
		"preview:\n      - int a = 42 // again\n      + int a = 42; // again\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in:\n%s", want, output)
		}
	}
}

func TestEditPreviewOutOfRange(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("x.bal", []byte("int a;"))
	if _, _, err := editPreview(fs, diag.FixEdit{Span: source.Span{File: fileID, Start: 3, End: 40}}); err == nil {
		t.Error("expected error for span past the end")
	}
	if _, _, err := editPreview(fs, diag.FixEdit{Span: source.Span{File: 9}}); err == nil {
		t.Error("expected error for unknown file")
	}
	before, after, err := editPreview(fs, diag.FixEdit{Span: source.Span{File: fileID, Start: 4, End: 5}, NewText: "b\nc"})
	if err != nil {
		t.Fatal(err)
	}
	if len(before) != 1 || len(after) != 2 || after[0] != "int b" || after[1] != "c;" {
		t.Errorf("unexpected preview %q -> %q", before, after)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.bal", []byte("$"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, End: 1}, "unknown character"))

	if out := prettyString(bag, fs, PrettyOpts{}); strings.Contains(out, "\x1b[") {
		t.Errorf("escape codes without Color: %q", out)
	}
	if out := prettyString(bag, fs, PrettyOpts{Color: true}); !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape codes with Color: %q", out)
	}
}

func TestPrettySnippetCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("caret.bal", []byte("int a = 1;\nint \u4e16\u754c = $;\n"))

	bag := diag.NewBag(2)
	// "$" стоит после двух широких рун
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, Start: 24, End: 25},
		"unknown character {0}", diag.StringProperty("'$'")))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	output := buf.String()

	if !strings.Contains(output, "caret.bal:2:14: ERROR LEX1001: unknown character '$'") {
		t.Fatalf("unexpected header, got:\n%s", output)
	}
	if !strings.Contains(output, "1 | int a = 1;") {
		t.Fatalf("expected context line, got:\n%s", output)
	}
	if !strings.Contains(output, " |            ^\n") {
		t.Fatalf("expected caret under '$', got:\n%s", output)
	}
}

func TestPrettyUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.IOLoadFileError, source.Span{File: 7, Start: 3, End: 3}, "cannot read"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got := buf.String(); got != "<file 7>:3: WARNING IO4001: cannot read\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		got, err := ParsePathMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePathMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if got := PathMode(9).String(); got != "PathMode(9)" {
		t.Errorf("String() = %q", got)
	}
}
