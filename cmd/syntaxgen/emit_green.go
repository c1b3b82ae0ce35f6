package main

import (
	"fmt"
	"strings"
)

// kindArgs renders the accepted kinds of a slot as variadic arguments.
func (s *Spec) kindArgs(sl Slot) string {
	elem := sl.Elem()
	switch {
	case elem == "Token":
		return kindList(sl.Kinds)
	case s.isGroup(elem):
		return lowerFirst(elem) + "Kinds..."
	default:
		return "kind." + elem
	}
}

// kindSlice renders the accepted kinds of a slot as a slice expression.
func (s *Spec) kindSlice(sl Slot) string {
	elem := sl.Elem()
	switch {
	case elem == "Token":
		return "[]kind.Kind{" + kindList(sl.Kinds) + "}"
	case s.isGroup(elem):
		return lowerFirst(elem) + "Kinds"
	default:
		return "[]kind.Kind{kind." + elem + "}"
	}
}

func kindList(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "kind." + n
	}
	return strings.Join(out, ", ")
}

func genLayout(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package green\n\nimport \"loom/internal/kind\"\n")
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "\nvar %sKinds = []kind.Kind{%s}\n", lowerFirst(g.Name), kindList(s.members(g.Name)))
	}
	b.WriteString("\nfunc layoutOf(k kind.Kind) ([]SlotSpec, bool) {\n\tswitch k {\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\tcase kind.%s:\n\t\treturn %sLayout, true\n", n.Name, lowerFirst(n.Name))
	}
	b.WriteString("\tdefault:\n\t\treturn nil, false\n\t}\n}\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\nvar %sLayout = []SlotSpec{\n", lowerFirst(n.Name))
		for _, sl := range n.Slots {
			switch {
			case sl.ListKind() == "NodeList":
				fmt.Fprintf(&b, "\tlistSlot(%q, %s),\n", sl.Name, s.kindArgs(sl))
			case sl.ListKind() == "SeparatedNodeList":
				fmt.Fprintf(&b, "\tseparatedListSlot(%q, %s, %s),\n", sl.Name, s.kindSlice(sl), kindList(sl.Separators))
			case sl.Elem() == "Token":
				fmt.Fprintf(&b, "\ttokenSlot(%q, %t, %s),\n", sl.Name, sl.Optional, s.kindArgs(sl))
			default:
				fmt.Fprintf(&b, "\tnodeSlot(%q, %t, %s),\n", sl.Name, sl.Optional, s.kindArgs(sl))
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func genGreenFactory(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package green\n\nimport \"loom/internal/kind\"\n")
	for _, n := range s.Nodes {
		params := make([]string, len(n.Slots))
		for i, sl := range n.Slots {
			params[i] = param(sl.Name)
		}
		ps := strings.Join(params, ", ")
		fmt.Fprintf(&b, "\n// New%s builds a kind.%s node. It panics with a *ConstructionError\n// when the slots do not fit the layout.\n", n.Name, n.Name)
		fmt.Fprintf(&b, "func New%s(%s Node) *NonTerminal {\n", n.Name, ps)
		fmt.Fprintf(&b, "\treturn MustNode(kind.%s, %s)\n}\n", n.Name, ps)
	}
	return b.String()
}
