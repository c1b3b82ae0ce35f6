package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
	"loom/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	return parseWith(t, src, parser.Options{})
}

func parseWith(t *testing.T, src string, opts parser.Options) *syntax.Tree {
	t.Helper()
	fs := source.NewFileSetWithBase("")
	fid := fs.AddVirtual("test.bal", []byte(src))
	res := parser.ParseFile(fs.Get(fid), opts)
	if res.Tree == nil {
		t.Fatalf("no tree for %q", src)
	}
	if got := res.Tree.ToSourceCode(); got != src {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", got, src)
	}
	return res.Tree
}

func diagnosticsSummary(ds []diag.Diagnostic) string {
	if len(ds) == 0 {
		return "<none>"
	}
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = fmt.Sprintf("[%s] %s @%d", d.Code.ID(), d.Text(), d.Primary.Start)
	}
	return strings.Join(lines, "; ")
}

func member[T syntax.ModuleMember](t *testing.T, tree *syntax.Tree, i int) T {
	t.Helper()
	members := tree.Module().Members()
	if members.Len() <= i {
		t.Fatalf("want member %d, have %d", i, members.Len())
	}
	m, ok := members.Get(i).(T)
	if !ok {
		t.Fatalf("member %d is %v", i, members.Get(i).Kind())
	}
	return m
}
