package kind_test

import (
	"testing"

	"loom/internal/kind"
)

func TestRangesAreDisjoint(t *testing.T) {
	for k := kind.Kind(0); int(k) < kind.Count; k++ {
		n := 0
		if k.IsToken() {
			n++
		}
		if k.IsMinutiae() {
			n++
		}
		if k.IsNode() {
			n++
		}
		if n != 1 {
			t.Fatalf("%v belongs to %d categories", k, n)
		}
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	for k := kind.Kind(0); int(k) < kind.Count; k++ {
		if !k.IsKeyword() {
			continue
		}
		got, ok := kind.LookupKeyword(k.Text())
		if !ok || got != k {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v", k.Text(), got, ok, k)
		}
	}
	if _, ok := kind.LookupKeyword("Listener"); ok {
		t.Fatal("keywords must be case sensitive")
	}
}

func TestText(t *testing.T) {
	cases := map[kind.Kind]string{
		kind.Semicolon:       ";",
		kind.ListenerKeyword: "listener",
		kind.Identifier:      "",
		kind.ModulePart:      "",
		kind.CommentMinutiae: "",
	}
	for k, want := range cases {
		if got := k.Text(); got != want {
			t.Errorf("%v.Text() = %q, want %q", k, got, want)
		}
	}
	for k := kind.Kind(0); int(k) < kind.Count; k++ {
		if (k.IsKeyword() || k.IsPunct()) && k.Text() == "" {
			t.Errorf("%v has no fixed text", k)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !kind.IntKeyword.IsBuiltinType() || kind.ListenerKeyword.IsBuiltinType() {
		t.Fatal("IsBuiltinType mismatch")
	}
	if !kind.TrueKeyword.IsLiteral() || !kind.StringLiteral.IsLiteral() || kind.Identifier.IsLiteral() {
		t.Fatal("IsLiteral mismatch")
	}
	if kind.Kind(kind.Count).Valid() {
		t.Fatal("out of range kind reported valid")
	}
}

func TestString(t *testing.T) {
	if got := kind.ListenerDeclaration.String(); got != "ListenerDeclaration" {
		t.Fatalf("String() = %q", got)
	}
	if got := kind.Kind(9999).String(); got != "Kind(9999)" {
		t.Fatalf("String() = %q", got)
	}
}
