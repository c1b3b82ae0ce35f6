package green

import (
	"errors"
	"fmt"
	"slices"

	"loom/internal/kind"
)

// SlotCategory says what a slot may hold.
type SlotCategory uint8

const (
	TokenSlot SlotCategory = iota
	NodeSlot
	ListSlot
	SeparatedListSlot
)

// SlotSpec describes one slot of a node layout.
type SlotSpec struct {
	Name     string
	Category SlotCategory
	Optional bool
	// Kinds are the accepted kinds of the slot value, or of the list
	// elements for list slots. Empty accepts any kind of the category.
	Kinds []kind.Kind
	// Separators are the accepted separator kinds of a separated list.
	Separators []kind.Kind
}

func tokenSlot(name string, optional bool, kinds ...kind.Kind) SlotSpec {
	return SlotSpec{Name: name, Category: TokenSlot, Optional: optional, Kinds: kinds}
}

func nodeSlot(name string, optional bool, kinds ...kind.Kind) SlotSpec {
	return SlotSpec{Name: name, Category: NodeSlot, Optional: optional, Kinds: kinds}
}

func listSlot(name string, elems ...kind.Kind) SlotSpec {
	return SlotSpec{Name: name, Category: ListSlot, Kinds: elems}
}

func separatedListSlot(name string, elems []kind.Kind, seps ...kind.Kind) SlotSpec {
	return SlotSpec{Name: name, Category: SeparatedListSlot, Kinds: elems, Separators: seps}
}

// Layout returns the slot layout of a node kind.
func Layout(k kind.Kind) ([]SlotSpec, bool) {
	return layoutOf(k)
}

// ConstructionError reports slots that do not fit a kind's layout.
type ConstructionError struct {
	Kind     kind.Kind
	Slot     int
	SlotName string
	Reason   string
}

func (e *ConstructionError) Error() string {
	if e.SlotName != "" {
		return fmt.Sprintf("green: %v slot %d (%s): %s", e.Kind, e.Slot, e.SlotName, e.Reason)
	}
	if e.Slot >= 0 {
		return fmt.Sprintf("green: %v slot %d: %s", e.Kind, e.Slot, e.Reason)
	}
	return fmt.Sprintf("green: %v: %s", e.Kind, e.Reason)
}

// NewNode validates slots against the layout of k and builds the node.
// Absent list slots become the empty list.
func NewNode(k kind.Kind, slots ...Node) (*NonTerminal, error) {
	layout, ok := layoutOf(k)
	if !ok {
		return nil, &ConstructionError{Kind: k, Slot: -1, Reason: "not a node kind"}
	}
	if len(slots) != len(layout) {
		return nil, &ConstructionError{
			Kind:   k,
			Slot:   -1,
			Reason: fmt.Sprintf("expected %d slots, got %d", len(layout), len(slots)),
		}
	}
	norm := make([]Node, len(slots))
	for i, spec := range layout {
		v, err := checkSlot(spec, slots[i])
		if err != nil {
			return nil, &ConstructionError{Kind: k, Slot: i, SlotName: spec.Name, Reason: err.Error()}
		}
		norm[i] = v
	}
	return &NonTerminal{slotted: newSlotted(k, norm, nil)}, nil
}

// MustNode is NewNode that panics with the *ConstructionError.
func MustNode(k kind.Kind, slots ...Node) *NonTerminal {
	n, err := NewNode(k, slots...)
	if err != nil {
		panic(err)
	}
	return n
}

func checkSlot(spec SlotSpec, v Node) (Node, error) {
	if isNil(v) {
		switch {
		case spec.Category == ListSlot || spec.Category == SeparatedListSlot:
			return emptyList, nil
		case spec.Optional:
			return nil, nil
		default:
			return nil, errors.New("required slot is absent")
		}
	}
	switch spec.Category {
	case TokenSlot:
		t, ok := v.(*Token)
		if !ok {
			return nil, fmt.Errorf("expected a token, got %v", v.Kind())
		}
		if !accepts(spec.Kinds, t.Kind()) {
			return nil, fmt.Errorf("token %v not allowed", t.Kind())
		}
	case NodeSlot:
		n, ok := v.(*NonTerminal)
		if !ok {
			return nil, fmt.Errorf("expected a node, got %v", v.Kind())
		}
		if !accepts(spec.Kinds, n.Kind()) {
			return nil, fmt.Errorf("node %v not allowed", n.Kind())
		}
	case ListSlot, SeparatedListSlot:
		l, ok := v.(*List)
		if !ok {
			return nil, fmt.Errorf("expected a list, got %v", v.Kind())
		}
		if err := checkList(spec, l); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func checkList(spec SlotSpec, l *List) error {
	separated := spec.Category == SeparatedListSlot
	if separated && len(l.slots)%2 == 0 && len(l.slots) > 0 {
		// trailing separators are not part of the grammar
		return errors.New("separated list ends with a separator")
	}
	for i, it := range l.slots {
		if separated && i%2 == 1 {
			if _, ok := it.(*Token); !ok || !accepts(spec.Separators, it.Kind()) {
				return fmt.Errorf("item %d: separator %v not allowed", i, it.Kind())
			}
			continue
		}
		if _, ok := it.(*Minutiae); ok {
			return fmt.Errorf("item %d: minutiae cannot be a list item", i)
		}
		if !accepts(spec.Kinds, it.Kind()) {
			return fmt.Errorf("item %d: %v not allowed", i, it.Kind())
		}
	}
	return nil
}

func accepts(kinds []kind.Kind, k kind.Kind) bool {
	return len(kinds) == 0 || slices.Contains(kinds, k)
}
