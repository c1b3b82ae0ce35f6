package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/parser"
	"loom/internal/source"
)

func TestTreeCacheRoundTrip(t *testing.T) {
	tc, err := OpenTreeCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	src := "import a/b as c;\nlistener X l = new ( 1 ) $ ;\nstring s = \"abc\n;"
	path := filepath.Join(t.TempDir(), "a.bal")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	first, err := Parse(context.Background(), path, Options{TreeCache: tc})
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first parse cannot be a hit")
	}
	second, err := Parse(context.Background(), path, Options{TreeCache: tc, Cache: green.NewCache()})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second parse must come from the cache")
	}
	if got := second.Tree.ToSourceCode(); got != src {
		t.Fatalf("round trip: %q", got)
	}

	a, b := first.Bag.Items(), second.Bag.Items()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("diagnostics differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Primary != b[i].Primary || a[i].Text() != b[i].Text() {
			t.Errorf("diagnostic %d: %v %q vs %v %q", i, a[i].Code, a[i].Text(), b[i].Code, b[i].Text())
		}
	}
}

func TestTreeCacheMissAndDrop(t *testing.T) {
	tc, err := OpenTreeCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.bal", []byte("int a = 1;"))
	res := parser.ParseFile(fs.Get(id), parser.Options{})

	if _, _, ok, err := tc.Get([]byte("int a = 1;"), id, nil); ok || err != nil {
		t.Fatalf("empty cache: %v %v", ok, err)
	}
	if err := tc.Put([]byte("int a = 1;"), res.Tree.Green(), nil); err != nil {
		t.Fatal(err)
	}
	root, _, ok, err := tc.Get([]byte("int a = 1;"), id, nil)
	if !ok || err != nil || green.Text(root) != "int a = 1;" {
		t.Fatalf("hit: %v %v", ok, err)
	}
	if err := tc.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, _, ok, _ := tc.Get([]byte("int a = 1;"), id, nil); ok {
		t.Fatal("dropped cache must miss")
	}
	if err := tc.DropAll(); err != nil {
		t.Fatalf("dropping an empty cache: %v", err)
	}
}

func TestWirePropsAndMissingTokens(t *testing.T) {
	props := []diag.Property{
		diag.NumericProperty(-3),
		diag.FloatProperty(1.5),
		diag.CollectionProperty(diag.StringProperty("x")),
	}
	back := decodeProps(encodeProps(props))
	if v, ok := back[0].Int(); !ok || v != -3 {
		t.Errorf("int: %v", back[0])
	}
	if v, ok := back[1].Float(); !ok || v != 1.5 {
		t.Errorf("float: %v", back[1])
	}
	if items := back[2].Items(); len(items) != 1 || items[0].String() != "x" {
		t.Errorf("collection: %v", back[2])
	}

	missing := green.NewMissingToken(kind.Semicolon, green.NewDiagnostic(diag.SynMissingSemicolon, "missing {0}", diag.StringProperty("';'")))
	w := encodeNode(missing)
	n, err := decodeNode(&w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsMissing() || n.Width() != 0 || len(n.Diagnostics()) != 1 {
		t.Fatalf("missing token lost: %+v", n)
	}
}
