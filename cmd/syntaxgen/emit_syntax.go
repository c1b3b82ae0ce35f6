package main

import (
	"fmt"
	"strings"
)

// goType is the external Go type of a slot.
func (s *Spec) goType(sl Slot) string {
	elem := s.elemType(sl.Elem())
	if lk := sl.ListKind(); lk != "" {
		return lk + "[" + elem + "]"
	}
	return elem
}

func (s *Spec) elemType(name string) string {
	switch {
	case name == "Token":
		return "*Token"
	case s.isGroup(name):
		return name
	default:
		return "*" + name
	}
}

func greenArg(sl Slot) string {
	if sl.ListKind() != "" {
		return param(sl.Name) + ".internal()"
	}
	return "internalOf(" + param(sl.Name) + ")"
}

func (s *Spec) params(n Node) string {
	out := make([]string, len(n.Slots))
	for i, sl := range n.Slots {
		out[i] = param(sl.Name) + " " + s.goType(sl)
	}
	return strings.Join(out, ", ")
}

func writeGreenCall(b *strings.Builder, n Node) {
	fmt.Fprintf(b, "\tg := green.New%s(\n", n.Name)
	for _, sl := range n.Slots {
		fmt.Fprintf(b, "\t\t%s,\n", greenArg(sl))
	}
	b.WriteString("\t)\n")
}

func genGroups(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n")
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "\n// %s\ntype %s interface {\n\tNode\n\t%sNode()\n}\n", g.Doc, g.Name, lowerFirst(g.Name))
	}
	b.WriteString("\nvar (\n")
	for _, g := range s.Groups {
		for _, m := range s.members(g.Name) {
			fmt.Fprintf(&b, "\t_ %s = (*%s)(nil)\n", g.Name, m)
		}
	}
	b.WriteString(")\n")
	return b.String()
}

func genNodes(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n\nimport \"loom/internal/green\"\n")
	for _, n := range s.Nodes {
		doc := n.Doc
		if doc == "" {
			doc = fmt.Sprintf("%s is a node of kind.%s.", n.Name, n.Name)
		}
		fmt.Fprintf(&b, "\n// %s\ntype %s struct {\n\tnonTerminal\n}\n", doc, n.Name)
		fmt.Fprintf(&b, "\nfunc new%s(g green.Node, pos uint32, parent Node) *%s {\n\tn := &%s{}\n\tn.init(n, g, pos, parent)\n\treturn n\n}\n", n.Name, n.Name, n.Name)
		fmt.Fprintf(&b, "\n// Internal returns the green node, or nil for a nil receiver.\nfunc (n *%s) Internal() green.Node {\n\tif n == nil {\n\t\treturn nil\n\t}\n\treturn n.green\n}\n", n.Name)

		for i, sl := range n.Slots {
			typ := s.goType(sl)
			if sl.ListKind() != "" {
				fmt.Fprintf(&b, "\nfunc (n *%s) %s() %s {\n\treturn %s{list: childAs[*ListNode](&n.nonTerminal, %d)}\n}\n", n.Name, upperFirst(sl.Name), typ, typ, i)
				continue
			}
			fmt.Fprintf(&b, "\nfunc (n *%s) %s() %s {\n\treturn childAs[%s](&n.nonTerminal, %d)\n}\n", n.Name, upperFirst(sl.Name), typ, typ, i)
		}

		fmt.Fprintf(&b, "\nfunc (n *%s) Accept(v Visitor) { v.Visit%s(n) }\n", n.Name, n.Name)
		if len(n.Groups) > 0 {
			b.WriteString("\n")
			for _, g := range n.Groups {
				fmt.Fprintf(&b, "func (n *%s) %sNode() {}\n", n.Name, lowerFirst(g))
			}
		}

		fmt.Fprintf(&b, "\n// Modify returns n when every argument is its current child; otherwise a new\n// %s at the same position with the same parent.\n", n.Name)
		fmt.Fprintf(&b, "func (n *%s) Modify(%s) *%s {\n", n.Name, s.params(n), n.Name)
		conds := make([]string, len(n.Slots))
		for i, sl := range n.Slots {
			conds[i] = fmt.Sprintf("%s == n.%s()", param(sl.Name), upperFirst(sl.Name))
		}
		fmt.Fprintf(&b, "\tif %s {\n\t\treturn n\n\t}\n", strings.Join(conds, " &&\n\t\t"))
		writeGreenCall(&b, n)
		fmt.Fprintf(&b, "\treturn new%s(g, n.pos, n.parent)\n}\n", n.Name)
	}
	return b.String()
}

func genSyntaxFactory(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n\nimport \"loom/internal/green\"\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\n// Create%s builds an unlinked %s root at position 0.\n", n.Name, n.Name)
		fmt.Fprintf(&b, "func Create%s(%s) *%s {\n", n.Name, s.params(n), n.Name)
		writeGreenCall(&b, n)
		fmt.Fprintf(&b, "\treturn new%s(g, 0, nil)\n}\n", n.Name)
	}
	return b.String()
}

func genWrap(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n\nimport (\n\t\"loom/internal/green\"\n\t\"loom/internal/kind\"\n)\n")
	b.WriteString("\nfunc wrapNode(g green.Node, pos uint32, parent Node) Node {\n\tswitch g.Kind() {\n")
	b.WriteString("\tcase kind.List:\n\t\treturn newListNode(g, pos, parent)\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\tcase kind.%s:\n\t\treturn new%s(g, pos, parent)\n", n.Name, n.Name)
	}
	b.WriteString("\tdefault:\n\t\treturn nil\n\t}\n}\n")
	return b.String()
}

func genVisitor(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n\n// Visitor has one method per node kind plus tokens and lists. Node.Accept\n// calls exactly one of them.\n")
	b.WriteString("type Visitor interface {\n\tVisitToken(n *Token)\n\tVisitList(n *ListNode)\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\tVisit%s(n *%s)\n", n.Name, n.Name)
	}
	b.WriteString("}\n\nvar _ Visitor = (*BaseVisitor)(nil)\n\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "func (b *BaseVisitor) Visit%s(n *%s) { b.visitChildren(n) }\n", n.Name, n.Name)
	}
	return b.String()
}

func genTransformer(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n\n// Transformer maps every node kind to a T. Use Apply to run one.\n")
	b.WriteString("type Transformer[T any] interface {\n\tTransformToken(n *Token) T\n\tTransformList(n *ListNode) T\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\tTransform%s(n *%s) T\n", n.Name, n.Name)
	}
	b.WriteString("}\n\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "func (d DefaultTransformer[T]) Transform%s(n *%s) T { return d.transform(n) }\n", n.Name, n.Name)
	}
	b.WriteString("\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "func (a *applier[T]) Visit%s(n *%s) { a.result = a.t.Transform%s(n) }\n", n.Name, n.Name, n.Name)
	}
	return b.String()
}

func genModifier(s *Spec) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package syntax\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "\nfunc (m *TreeModifier) Transform%s(n *%s) Node {\n\tt := m.outer()\n", n.Name, n.Name)
		args := make([]string, len(n.Slots))
		for i, sl := range n.Slots {
			fn := "modifyNode"
			switch sl.ListKind() {
			case "NodeList":
				fn = "modifyNodeList"
			case "SeparatedNodeList":
				fn = "modifySeparatedList"
			}
			fmt.Fprintf(&b, "\t%s := %s(t, n.%s())\n", param(sl.Name), fn, upperFirst(sl.Name))
			args[i] = param(sl.Name)
		}
		fmt.Fprintf(&b, "\treturn n.Modify(%s)\n}\n", strings.Join(args, ", "))
	}
	return b.String()
}
