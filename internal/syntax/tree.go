package syntax

import (
	"errors"
	"fmt"
	"sort"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/source"
)

var (
	ErrForeignNode = errors.New("node does not belong to this tree")
	ErrNilRoot     = errors.New("transform produced no root")
)

// Tree is one revision: an external root over a green root, tied to a file.
type Tree struct {
	root Node
	file source.FileID
}

// NewTree wraps root at offset 0.
func NewTree(root green.Node, file source.FileID) *Tree {
	return &Tree{root: Wrap(root, 0, nil), file: file}
}

func (t *Tree) Root() Node          { return t.root }
func (t *Tree) Green() green.Node   { return t.root.Internal() }
func (t *Tree) File() source.FileID { return t.file }

// Module returns the root as a module part, or nil for other roots.
func (t *Tree) Module() *ModulePart {
	m, _ := t.root.(*ModulePart)
	return m
}

// Fork returns a tree with a fresh external root over the same green root.
// Each goroutine that walks the tree needs its own fork.
func (t *Tree) Fork() *Tree { return NewTree(t.Green(), t.file) }

func (t *Tree) ToSourceCode() string { return t.root.ToSourceCode() }

func (t *Tree) HasDiagnostics() bool { return t.root.HasDiagnostics() }

// Diagnostics returns the construction-time diagnostics of the whole tree
// with spans, ordered by position. Diagnostics on the same offset keep tree
// order.
func (t *Tree) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	if !t.root.HasDiagnostics() {
		return out
	}
	add := func(ds []green.Diagnostic, r TextRange) {
		for _, d := range ds {
			out = append(out, diag.New(d.Severity, d.Code, r.Span(t.file), d.Message, d.Props...))
		}
	}
	var walkTrivia func(l *green.MinutiaeList, pos uint32)
	walkToken := func(g *green.Token, pos uint32) {
		lead := g.LeadingMinutiae()
		walkTrivia(lead, pos)
		start := pos + lead.Width()
		add(g.Diagnostics(), TextRange{Start: start, End: start + g.TextWidth()})
		walkTrivia(g.TrailingMinutiae(), start+g.TextWidth())
	}
	walkTrivia = func(l *green.MinutiaeList, pos uint32) {
		if !l.HasDiagnostics() {
			return
		}
		for i := 0; i < l.Len(); i++ {
			m := l.Get(i)
			if tok := m.InvalidToken(); tok != nil {
				walkToken(tok, pos)
			}
			pos += m.Width()
		}
	}
	green.Inspect(t.Green(), t.root.Position(), func(n green.Node, off uint32) bool {
		if !n.HasDiagnostics() {
			return false
		}
		if tok, ok := n.(*green.Token); ok {
			walkToken(tok, off)
			return false
		}
		if ds := n.Diagnostics(); len(ds) > 0 {
			start := off + green.LeadingMinutiaeWidth(n)
			end := off + n.Width() - green.TrailingMinutiaeWidth(n)
			add(ds, TextRange{Start: start, End: max(start, end)})
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Primary.Start < out[j].Primary.Start
	})
	return out
}

// ReplaceNode returns a new revision with target replaced. Only the path
// from target to the root is rebuilt; every other green node is shared with
// t. A replacement that does not fit the slot is reported as the
// construction error.
func (t *Tree) ReplaceNode(target, replacement Node) (*Tree, error) {
	if internalOf(target) == nil {
		return nil, fmt.Errorf("replace: %w", ErrForeignNode)
	}
	if Root(target) != t.root {
		return nil, fmt.Errorf("replace %s: %w", target.Kind(), ErrForeignNode)
	}
	g := internalOf(replacement)
	child := target
	for p := target.Parent(); p != nil; p = p.Parent() {
		nt, ok := p.(interface{ base() *nonTerminal })
		if !ok {
			return nil, fmt.Errorf("replace: parent %s has no slots", p.Kind())
		}
		base := nt.base()
		idx := base.slotOf(child)
		if idx < 0 {
			return nil, fmt.Errorf("replace %s: %w", child.Kind(), ErrForeignNode)
		}
		var err error
		if g, err = withSlot(base.green, idx, g); err != nil {
			return nil, fmt.Errorf("replace %s: %w", target.Kind(), err)
		}
		child = p
	}
	if g == nil {
		return nil, fmt.Errorf("replace: %w", ErrNilRoot)
	}
	return NewTree(g, t.file), nil
}

func withSlot(parent green.Node, i int, c green.Node) (green.Node, error) {
	switch p := parent.(type) {
	case *green.NonTerminal:
		return p.WithSlot(i, c)
	case *green.List:
		return p.WithSlot(i, c)
	}
	return nil, fmt.Errorf("%s has no slots", parent.Kind())
}

// ModifyWith applies a transformer, usually an embedded TreeModifier, to the
// root and returns the resulting revision. An unchanged root gives back t.
func (t *Tree) ModifyWith(tr Transformer[Node]) (*Tree, error) {
	r := Apply[Node](t.root, tr)
	if internalOf(r) == nil {
		return nil, ErrNilRoot
	}
	if r == t.root {
		return t, nil
	}
	return NewTree(r.Internal(), t.file), nil
}

// FindToken returns the token whose text range, trivia included, contains
// off. The end offset maps to the last token.
func (t *Tree) FindToken(off uint32) *Token {
	return FindToken(t.root, off)
}

// FindToken searches below n.
func FindToken(n Node, off uint32) *Token {
	r := n.TextRangeWithMinutiae()
	if off < r.Start || off > r.End {
		return nil
	}
	for {
		switch c := n.(type) {
		case *Token:
			return c
		case interface{ base() *nonTerminal }:
			next := c.base().childAt(off)
			if next == nil {
				return nil
			}
			n = next
		default:
			return nil
		}
	}
}

func (nt *nonTerminal) base() *nonTerminal { return nt }

// slotOf finds the slot holding the materialized child c.
func (nt *nonTerminal) slotOf(c Node) int {
	for i, cached := range nt.children {
		if cached == c {
			return i
		}
	}
	return -1
}

// childAt returns the child covering off. An offset on a boundary goes to
// the child starting there; the end offset goes to the last child that is a
// token or has width.
func (nt *nonTerminal) childAt(off uint32) Node {
	var last Node
	for i := range nt.children {
		c := nt.childInBucket(i)
		if c == nil {
			continue
		}
		if _, tok := c.(*Token); c.Width() == 0 && !tok {
			continue
		}
		last = c
		r := c.TextRangeWithMinutiae()
		if off >= r.Start && off < r.End {
			return c
		}
	}
	if off == nt.pos+nt.green.Width() {
		return last
	}
	return nil
}
