package syntax

import (
	"fmt"

	"loom/internal/green"
)

// ListNode is the external node for a green list. Typed access goes through
// NodeList and SeparatedNodeList.
type ListNode struct {
	nonTerminal
}

func newListNode(g green.Node, pos uint32, parent Node) *ListNode {
	n := &ListNode{}
	n.init(n, g, pos, parent)
	return n
}

// Internal returns the green list, or nil for a nil receiver.
func (n *ListNode) Internal() green.Node {
	if n == nil {
		return nil
	}
	return n.green
}

func (n *ListNode) Accept(v Visitor) { v.VisitList(n) }

// slotNodes returns the green slots of a list, or nil.
func (n *ListNode) slotNodes() []green.Node {
	if n == nil {
		return nil
	}
	out := make([]green.Node, n.green.SlotCount())
	for i := range out {
		out[i] = n.green.Slot(i)
	}
	return out
}

// rebuild wraps a new green list at the position and parent of n.
func (n *ListNode) rebuild(slots []green.Node) *ListNode {
	g := green.NewList(slots...)
	if n == nil {
		return newListNode(g, 0, nil)
	}
	return newListNode(g, n.pos, n.parent)
}

var _ Node = (*ListNode)(nil)

// NodeList is a typed view of a list of nodes. The zero value is empty.
// Edits are persistent: they return a new list and leave l unchanged.
type NodeList[T Node] struct {
	list *ListNode
}

// CreateNodeList builds an unlinked list.
func CreateNodeList[T Node](items ...T) NodeList[T] {
	slots := make([]green.Node, 0, len(items))
	for _, it := range items {
		slots = append(slots, internalOf(it))
	}
	return NodeList[T]{list: newListNode(green.NewList(slots...), 0, nil)}
}

func (l NodeList[T]) Len() int {
	if l.list == nil {
		return 0
	}
	return l.list.SlotCount()
}

func (l NodeList[T]) IsEmpty() bool { return l.Len() == 0 }

// Get returns item i; it panics when i is out of range.
func (l NodeList[T]) Get(i int) T {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("syntax: list index %d out of range [0,%d)", i, l.Len()))
	}
	return childAs[T](&l.list.nonTerminal, i)
}

func (l NodeList[T]) Items() []T {
	out := make([]T, 0, l.Len())
	for i := range l.Len() {
		out = append(out, l.Get(i))
	}
	return out
}

// Node returns the underlying list node, nil for the zero value.
func (l NodeList[T]) Node() *ListNode { return l.list }

// Add appends items.
func (l NodeList[T]) Add(items ...T) NodeList[T] {
	slots := l.list.slotNodes()
	for _, it := range items {
		slots = append(slots, internalOf(it))
	}
	return NodeList[T]{list: l.list.rebuild(slots)}
}

// Insert puts item before position i; i == Len appends.
func (l NodeList[T]) Insert(i int, item T) NodeList[T] {
	if i < 0 || i > l.Len() {
		panic(fmt.Sprintf("syntax: insert index %d out of range [0,%d]", i, l.Len()))
	}
	slots := l.list.slotNodes()
	slots = append(slots[:i], append([]green.Node{internalOf(item)}, slots[i:]...)...)
	return NodeList[T]{list: l.list.rebuild(slots)}
}

// Remove drops item i.
func (l NodeList[T]) Remove(i int) NodeList[T] {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("syntax: remove index %d out of range [0,%d)", i, l.Len()))
	}
	slots := l.list.slotNodes()
	slots = append(slots[:i], slots[i+1:]...)
	return NodeList[T]{list: l.list.rebuild(slots)}
}

// Set replaces item i. Setting the current item returns l.
func (l NodeList[T]) Set(i int, item T) NodeList[T] {
	if internalOf(item) == internalOf(l.Get(i)) {
		return l
	}
	slots := l.list.slotNodes()
	slots[i] = internalOf(item)
	return NodeList[T]{list: l.list.rebuild(slots)}
}

func (l NodeList[T]) internal() green.Node {
	if l.list == nil {
		return green.EmptyList()
	}
	return l.list.green
}

// SeparatedNodeList is a typed view of a list alternating items and
// separator tokens: item (sep item)*.
type SeparatedNodeList[T Node] struct {
	list *ListNode
}

// CreateSeparatedNodeList builds an unlinked list from items and separators
// in source order.
func CreateSeparatedNodeList[T Node](itemsAndSeparators ...Node) SeparatedNodeList[T] {
	slots := make([]green.Node, 0, len(itemsAndSeparators))
	for i, n := range itemsAndSeparators {
		if i%2 == 0 {
			if _, ok := n.(T); !ok {
				panic(fmt.Sprintf("syntax: separated list item %d has kind %s", i/2, n.Kind()))
			}
		} else if _, ok := n.(*Token); !ok {
			panic(fmt.Sprintf("syntax: separated list separator %d is not a token", i/2))
		}
		slots = append(slots, internalOf(n))
	}
	return SeparatedNodeList[T]{list: newListNode(green.NewList(slots...), 0, nil)}
}

// Len is the number of items, separators excluded.
func (l SeparatedNodeList[T]) Len() int {
	if l.list == nil {
		return 0
	}
	return (l.list.SlotCount() + 1) / 2
}

func (l SeparatedNodeList[T]) IsEmpty() bool { return l.Len() == 0 }

// SeparatorCount is the number of separator tokens.
func (l SeparatedNodeList[T]) SeparatorCount() int {
	if l.list == nil {
		return 0
	}
	return l.list.SlotCount() / 2
}

func (l SeparatedNodeList[T]) Get(i int) T {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("syntax: list index %d out of range [0,%d)", i, l.Len()))
	}
	return childAs[T](&l.list.nonTerminal, 2*i)
}

// Separator returns the separator after item i.
func (l SeparatedNodeList[T]) Separator(i int) *Token {
	if i < 0 || i >= l.SeparatorCount() {
		panic(fmt.Sprintf("syntax: separator index %d out of range [0,%d)", i, l.SeparatorCount()))
	}
	return childAs[*Token](&l.list.nonTerminal, 2*i+1)
}

func (l SeparatedNodeList[T]) Items() []T {
	out := make([]T, 0, l.Len())
	for i := range l.Len() {
		out = append(out, l.Get(i))
	}
	return out
}

func (l SeparatedNodeList[T]) Node() *ListNode { return l.list }

// Add appends item; sep goes before it unless the list is empty.
func (l SeparatedNodeList[T]) Add(sep *Token, item T) SeparatedNodeList[T] {
	slots := l.list.slotNodes()
	if len(slots) > 0 {
		slots = append(slots, internalOf(sep))
	}
	slots = append(slots, internalOf(item))
	return SeparatedNodeList[T]{list: l.list.rebuild(slots)}
}

// Insert puts item before item i, followed by sep. Inserting at Len
// behaves like Add.
func (l SeparatedNodeList[T]) Insert(i int, item T, sep *Token) SeparatedNodeList[T] {
	if i < 0 || i > l.Len() {
		panic(fmt.Sprintf("syntax: insert index %d out of range [0,%d]", i, l.Len()))
	}
	if i == l.Len() {
		return l.Add(sep, item)
	}
	slots := l.list.slotNodes()
	at := 2 * i
	ins := []green.Node{internalOf(item), internalOf(sep)}
	slots = append(slots[:at], append(ins, slots[at:]...)...)
	return SeparatedNodeList[T]{list: l.list.rebuild(slots)}
}

// Remove drops item i with the separator after it, or before it for the
// last item.
func (l SeparatedNodeList[T]) Remove(i int) SeparatedNodeList[T] {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("syntax: remove index %d out of range [0,%d)", i, l.Len()))
	}
	slots := l.list.slotNodes()
	from, to := 2*i, 2*i+2
	if to > len(slots) {
		from, to = max(0, 2*i-1), len(slots)
	}
	slots = append(slots[:from], slots[to:]...)
	return SeparatedNodeList[T]{list: l.list.rebuild(slots)}
}

func (l SeparatedNodeList[T]) Set(i int, item T) SeparatedNodeList[T] {
	if internalOf(item) == internalOf(l.Get(i)) {
		return l
	}
	slots := l.list.slotNodes()
	slots[2*i] = internalOf(item)
	return SeparatedNodeList[T]{list: l.list.rebuild(slots)}
}

func (l SeparatedNodeList[T]) internal() green.Node {
	if l.list == nil {
		return green.EmptyList()
	}
	return l.list.green
}
