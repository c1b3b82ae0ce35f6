package green

import (
	"strings"

	"loom/internal/kind"
)

// slotted is the shared body of NonTerminal and List.
type slotted struct {
	kind     kind.Kind
	slots    []Node
	width    uint32
	missing  bool
	hasDiags bool
	diags    []Diagnostic
}

func newSlotted(k kind.Kind, slots []Node, diags []Diagnostic) slotted {
	s := slotted{kind: k, slots: slots, diags: diags, hasDiags: len(diags) > 0}
	present := 0
	allMissing := true
	for _, c := range slots {
		if c == nil {
			continue
		}
		s.width += c.Width()
		s.hasDiags = s.hasDiags || c.HasDiagnostics()
		if c.SlotCount() == 0 && c.Kind() == kind.List {
			continue
		}
		present++
		allMissing = allMissing && c.IsMissing()
	}
	s.missing = present > 0 && allMissing
	return s
}

func (s *slotted) Kind() kind.Kind           { return s.kind }
func (s *slotted) Width() uint32             { return s.width }
func (s *slotted) SlotCount() int            { return len(s.slots) }
func (s *slotted) Diagnostics() []Diagnostic { return s.diags }
func (s *slotted) HasDiagnostics() bool      { return s.hasDiags }

// IsMissing reports a node made only of missing tokens.
func (s *slotted) IsMissing() bool { return s.missing }

func (s *slotted) Slot(i int) Node {
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return s.slots[i]
}

func (s *slotted) writeTo(sb *strings.Builder) {
	for _, c := range s.slots {
		if c != nil {
			c.writeTo(sb)
		}
	}
}

// NonTerminal is a node with a fixed, kind-specific slot layout.
type NonTerminal struct {
	slotted
}

// WithDiagnostics returns a copy of n carrying extra diagnostics.
func (n *NonTerminal) WithDiagnostics(diags ...Diagnostic) *NonTerminal {
	return &NonTerminal{slotted: newSlotted(n.kind, n.slots, appendDiags(n.diags, diags))}
}

// WithSlot returns a copy of n with slot i replaced. The result is validated
// like any other node.
func (n *NonTerminal) WithSlot(i int, c Node) (*NonTerminal, error) {
	slots := make([]Node, len(n.slots))
	copy(slots, n.slots)
	if i < 0 || i >= len(slots) {
		return nil, &ConstructionError{Kind: n.kind, Slot: i, Reason: "slot index out of range"}
	}
	slots[i] = c
	nt, err := NewNode(n.kind, slots...)
	if err != nil {
		return nil, err
	}
	if len(n.diags) > 0 {
		nt = nt.WithDiagnostics(n.diags...)
	}
	return nt, nil
}

// List is a variable-arity node of kind.List. Separated lists alternate
// elements and separator tokens.
type List struct {
	slotted
}

var emptyList = &List{slotted: slotted{kind: kind.List}}

// EmptyList returns the shared empty list.
func EmptyList() *List { return emptyList }

// NewList builds a list; nil items are dropped.
func NewList(items ...Node) *List {
	slots := make([]Node, 0, len(items))
	for _, it := range items {
		if !isNil(it) {
			slots = append(slots, it)
		}
	}
	if len(slots) == 0 {
		return emptyList
	}
	return &List{slotted: newSlotted(kind.List, slots, nil)}
}

// WithSlot returns a copy of l with item i replaced.
func (l *List) WithSlot(i int, c Node) (*List, error) {
	if i < 0 || i >= len(l.slots) {
		return nil, &ConstructionError{Kind: kind.List, Slot: i, Reason: "slot index out of range"}
	}
	if isNil(c) {
		return nil, &ConstructionError{Kind: kind.List, Slot: i, Reason: "list items cannot be absent"}
	}
	slots := make([]Node, len(l.slots))
	copy(slots, l.slots)
	slots[i] = c
	return NewList(slots...), nil
}

// isNil catches typed nil pointers stored in a Node interface.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Token:
		return v == nil
	case *NonTerminal:
		return v == nil
	case *List:
		return v == nil
	case *Minutiae:
		return v == nil
	}
	return false
}
