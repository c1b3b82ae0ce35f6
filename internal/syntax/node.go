package syntax

import (
	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/source"
)

// Node is any element of the external tree. The set of implementations is
// closed: tokens, lists and the generated node types.
type Node interface {
	Kind() kind.Kind
	// Position is the absolute offset of the node, leading minutiae included.
	Position() uint32
	Width() uint32
	// Parent is nil for a root.
	Parent() Node
	Internal() green.Node
	// Children returns the present children in slot order.
	Children() []Node
	Accept(v Visitor)
	ToSourceCode() string
	TextRange() TextRange
	TextRangeWithMinutiae() TextRange
	HasDiagnostics() bool
	IsMissing() bool
	sealed()
}

// TextRange is a half-open byte range [Start, End).
type TextRange struct {
	Start uint32
	End   uint32
}

func (r TextRange) Len() uint32 { return r.End - r.Start }

// Span attaches the range to a file.
func (r TextRange) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: r.Start, End: r.End}
}

// Contains reports whether off lies in the range.
func (r TextRange) Contains(off uint32) bool { return off >= r.Start && off < r.End }

// nonTerminal is the shared body of the generated node types and ListNode.
type nonTerminal struct {
	green    green.Node
	pos      uint32
	parent   Node
	self     Node
	children []Node
}

func (nt *nonTerminal) init(self Node, g green.Node, pos uint32, parent Node) {
	nt.green = g
	nt.pos = pos
	nt.parent = parent
	nt.self = self
	nt.children = make([]Node, g.SlotCount())
}

// childInBucket materializes slot i once and caches it. Absent slots
// return nil.
func (nt *nonTerminal) childInBucket(i int) Node {
	if c := nt.children[i]; c != nil {
		return c
	}
	g := nt.green.Slot(i)
	if g == nil {
		return nil
	}
	pos := nt.pos
	for j := 0; j < i; j++ {
		if s := nt.green.Slot(j); s != nil {
			pos += s.Width()
		}
	}
	c := Wrap(g, pos, nt.self)
	nt.children[i] = c
	return c
}

func childAs[T Node](nt *nonTerminal, i int) T {
	var zero T
	c := nt.childInBucket(i)
	if c == nil {
		return zero
	}
	return c.(T)
}

func (nt *nonTerminal) Kind() kind.Kind      { return nt.green.Kind() }
func (nt *nonTerminal) Position() uint32     { return nt.pos }
func (nt *nonTerminal) Width() uint32        { return nt.green.Width() }
func (nt *nonTerminal) Parent() Node         { return nt.parent }
func (nt *nonTerminal) ToSourceCode() string { return green.Text(nt.green) }
func (nt *nonTerminal) HasDiagnostics() bool { return nt.green.HasDiagnostics() }
func (nt *nonTerminal) IsMissing() bool      { return nt.green.IsMissing() }
func (nt *nonTerminal) SlotCount() int       { return nt.green.SlotCount() }
func (nt *nonTerminal) sealed()              {}

func (nt *nonTerminal) Children() []Node {
	out := make([]Node, 0, len(nt.children))
	for i := range nt.children {
		if c := nt.childInBucket(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ChildInSlot returns the child in slot i, materializing it.
func (nt *nonTerminal) ChildInSlot(i int) Node {
	if i < 0 || i >= len(nt.children) {
		return nil
	}
	return nt.childInBucket(i)
}

func (nt *nonTerminal) TextRangeWithMinutiae() TextRange {
	return TextRange{Start: nt.pos, End: nt.pos + nt.green.Width()}
}

// TextRange excludes the leading minutiae of the first token and the
// trailing minutiae of the last one.
func (nt *nonTerminal) TextRange() TextRange {
	start := nt.pos + green.LeadingMinutiaeWidth(nt.green)
	end := nt.pos + nt.green.Width() - green.TrailingMinutiaeWidth(nt.green)
	if end < start {
		end = start
	}
	return TextRange{Start: start, End: end}
}

// FirstToken returns the first token below the node, or nil for an empty
// list.
func (nt *nonTerminal) FirstToken() *Token {
	for i := range nt.children {
		switch c := nt.childInBucket(i).(type) {
		case nil:
		case *Token:
			return c
		case interface{ FirstToken() *Token }:
			if t := c.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last token below the node.
func (nt *nonTerminal) LastToken() *Token {
	for i := len(nt.children) - 1; i >= 0; i-- {
		switch c := nt.childInBucket(i).(type) {
		case nil:
		case *Token:
			return c
		case interface{ LastToken() *Token }:
			if t := c.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LeadingMinutiae returns the trivia before the first token.
func (nt *nonTerminal) LeadingMinutiae() MinutiaeList {
	if t := nt.FirstToken(); t != nil {
		return t.LeadingMinutiae()
	}
	return MinutiaeList{}
}

// TrailingMinutiae returns the trivia after the last token.
func (nt *nonTerminal) TrailingMinutiae() MinutiaeList {
	if t := nt.LastToken(); t != nil {
		return t.TrailingMinutiae()
	}
	return MinutiaeList{}
}

// internalOf returns the green node of n, or nil for both a nil interface
// and a typed nil pointer.
func internalOf(n Node) green.Node {
	if n == nil {
		return nil
	}
	return n.Internal()
}

// Ancestors lists the parents of n from the closest to the root.
func Ancestors(n Node) []Node {
	var out []Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Root follows parent links up to the root.
func Root(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}
