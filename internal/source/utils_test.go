package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	target := filepath.Join(otherDir, "file.bal")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := t.TempDir()
	target := filepath.Join(baseDir, "nested", "file.bal")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.bal"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestBuildLineIndexAndFlags(t *testing.T) {
	if got := buildLineIndex([]byte("x\r\ny\n")); len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("buildLineIndex = %v", got)
	}
	if !hasCRLF([]byte("a\r\n")) || hasCRLF([]byte("a\r")) {
		t.Fatal("hasCRLF is wrong")
	}
	if !hasBOM([]byte("\xEF\xBB\xBFa")) || hasBOM([]byte("ab")) {
		t.Fatal("hasBOM is wrong")
	}
}
