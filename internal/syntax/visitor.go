package syntax

// BaseVisitor visits the children of every node in slot order. Embed it and
// set Outer to the embedding value so recursion reaches the overrides.
type BaseVisitor struct {
	Outer Visitor
}

func (b *BaseVisitor) outer() Visitor {
	if b.Outer != nil {
		return b.Outer
	}
	return b
}

func (b *BaseVisitor) visitChildren(n Node) {
	v := b.outer()
	for _, c := range n.Children() {
		c.Accept(v)
	}
}

func (b *BaseVisitor) VisitToken(*Token)       {}
func (b *BaseVisitor) VisitList(n *ListNode) { b.visitChildren(n) }

// Inspect calls fn for n and, while fn returns true, for its descendants in
// depth-first pre-order. Tokens are included; minutiae are not.
func Inspect(n Node, fn func(Node) bool) {
	if internalOf(n) == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, fn)
	}
}

// Tokens returns every token under n in source order.
func Tokens(n Node) []*Token {
	var out []*Token
	Inspect(n, func(c Node) bool {
		if t, ok := c.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
