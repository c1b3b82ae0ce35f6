package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.bal", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.bal")
	if !exists || latestID != id1 {
		t.Fatalf("GetLatest = %d,%v, want %d,true", latestID, exists, id1)
	}

	id2 := fs.Add("test.bal", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("test.bal")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first revision content = %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("second revision content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.bal", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestLoadKeepsContentVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.bal")
	raw := []byte("\xEF\xBB\xBFint x = 1;\r\nint y = 2;\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(raw) {
		t.Fatalf("content was rewritten: %q", f.Content)
	}
	if f.Flags&FileHasBOM == 0 || f.Flags&FileHasCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if got := f.GetLine(2); got != "int y = 2;" {
		t.Fatalf("GetLine(2) = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.bal")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.bal", []byte("ab\ncd\n\nx"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // the '\n' belongs to line 1
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.bal", []byte("listener"))
	f := fs.Get(id)
	if got := f.Text(Span{File: id, Start: 0, End: 4}); got != "list" {
		t.Fatalf("Text = %q", got)
	}
	if got := f.Text(Span{File: id, Start: 4, End: 100}); got != "ener" {
		t.Fatalf("clamped Text = %q", got)
	}
	if got := f.Text(Span{File: id, Start: 9, End: 9}); got != "" {
		t.Fatalf("out of range Text = %q", got)
	}
}

func TestGetLineOutOfRange(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.bal", []byte("one\ntwo")))
	if f.GetLine(0) != "" || f.GetLine(3) != "" {
		t.Fatal("expected empty strings for missing lines")
	}
	if f.GetLine(2) != "two" {
		t.Fatalf("GetLine(2) = %q", f.GetLine(2))
	}
}

func TestPositionAndFormatPath(t *testing.T) {
	fs := NewFileSetWithBase("/work")
	f := fs.Get(fs.Add("/work/pkg/main.bal", []byte("a\nbc"), 0))
	if got := f.Position(3); got != (LineCol{2, 2}) {
		t.Fatalf("Position(3) = %+v", got)
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "pkg/main.bal" {
		t.Errorf("relative = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "main.bal" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "/work/pkg/main.bal" {
		t.Errorf("auto kept short path? got %q", got)
	}
	if got := f.FormatPath("bogus", ""); got != "/work/pkg/main.bal" {
		t.Errorf("unknown mode = %q", got)
	}
}
