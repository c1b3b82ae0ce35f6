package source

import "testing"

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 10}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := b.Cover(Span{File: 1, Start: 7, End: 7}); got != b {
		t.Fatalf("Cover of an inner empty span = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files = %v, want %v", got, a)
	}
}

func TestSpan_LenEmptyString(t *testing.T) {
	s := Span{File: 3, Start: 2, End: 6}
	if s.Len() != 4 || s.Empty() {
		t.Fatalf("Len/Empty wrong for %v", s)
	}
	if !(Span{Start: 9, End: 9}).Empty() {
		t.Fatal("zero-width span must be empty")
	}
	if s.String() != "3:2-6" {
		t.Fatalf("String = %q", s.String())
	}
}
