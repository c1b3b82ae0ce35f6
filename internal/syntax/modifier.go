package syntax

import (
	"fmt"

	"loom/internal/green"
)

// TreeModifier rebuilds a tree bottom-up: every node is rebuilt from its
// transformed children through Modify, so subtrees nobody changed come back
// as the same instances. Embed it and set Outer to override single kinds.
//
//	type renamer struct{ syntax.TreeModifier }
//	r := &renamer{}
//	r.Outer = r
//	root := syntax.Apply[syntax.Node](tree.Root(), r)
type TreeModifier struct {
	Outer Transformer[Node]
}

var _ Transformer[Node] = (*TreeModifier)(nil)

func (m *TreeModifier) outer() Transformer[Node] {
	if m.Outer != nil {
		return m.Outer
	}
	return m
}

func (m *TreeModifier) TransformToken(n *Token) Node { return n }

// TransformList transforms each item of an untyped list. Items mapped to
// nil are dropped.
func (m *TreeModifier) TransformList(n *ListNode) Node {
	t := m.outer()
	changed := false
	slots := make([]green.Node, 0, n.SlotCount())
	for _, c := range n.Children() {
		r := Apply[Node](c, t)
		if internalOf(r) != c.Internal() {
			changed = true
		}
		if g := internalOf(r); g != nil {
			slots = append(slots, g)
		}
	}
	if !changed {
		return n
	}
	return n.rebuild(slots)
}

// modifyNode transforms an optional child. A nil child stays nil; a result
// of the wrong type is a programming error.
func modifyNode[T Node](t Transformer[Node], n T) T {
	var zero T
	if internalOf(n) == nil {
		return n
	}
	r := Apply[Node](n, t)
	if internalOf(r) == nil {
		return zero
	}
	v, ok := r.(T)
	if !ok {
		panic(fmt.Sprintf("syntax: transform of %s returned incompatible %s", n.Kind(), r.Kind()))
	}
	return v
}

func modifyNodeList[T Node](t Transformer[Node], l NodeList[T]) NodeList[T] {
	if l.Len() == 0 {
		return l
	}
	changed := false
	slots := make([]green.Node, 0, l.Len())
	for _, item := range l.Items() {
		r := modifyNode(t, item)
		if internalOf(r) != internalOf(item) {
			changed = true
		}
		if g := internalOf(r); g != nil {
			slots = append(slots, g)
		}
	}
	if !changed {
		return l
	}
	return NodeList[T]{list: l.list.rebuild(slots)}
}

// modifySeparatedList transforms items and separators. When an item is
// dropped its following separator goes with it; the last kept item never
// keeps a trailing separator.
func modifySeparatedList[T Node](t Transformer[Node], l SeparatedNodeList[T]) SeparatedNodeList[T] {
	if l.Len() == 0 {
		return l
	}
	type entry struct {
		item green.Node
		sep  green.Node
	}
	changed := false
	entries := make([]entry, 0, l.Len())
	for i := range l.Len() {
		item := l.Get(i)
		r := modifyNode(t, item)
		if internalOf(r) != internalOf(item) {
			changed = true
		}
		var sep green.Node
		if i < l.SeparatorCount() {
			old := l.Separator(i)
			s := modifyNode(t, old)
			if s != old {
				changed = true
			}
			sep = internalOf(s)
		}
		if g := internalOf(r); g != nil {
			entries = append(entries, entry{item: g, sep: sep})
		}
	}
	if !changed {
		return l
	}
	slots := make([]green.Node, 0, 2*len(entries))
	for i, e := range entries {
		if i > 0 {
			prev := entries[i-1].sep
			if prev == nil {
				panic("syntax: separated list lost a separator")
			}
			slots = append(slots, prev)
		}
		slots = append(slots, e.item)
	}
	return SeparatedNodeList[T]{list: l.list.rebuild(slots)}
}
