package syntax

// DefaultTransformer answers every kind with Default. Embed it to handle
// only a few kinds.
type DefaultTransformer[T any] struct {
	Default func(n Node) T
}

func (d DefaultTransformer[T]) transform(n Node) T {
	if d.Default == nil {
		var zero T
		return zero
	}
	return d.Default(n)
}

func (d DefaultTransformer[T]) TransformToken(n *Token) T   { return d.transform(n) }
func (d DefaultTransformer[T]) TransformList(n *ListNode) T { return d.transform(n) }

// applier runs a Transformer through Accept.
type applier[T any] struct {
	t      Transformer[T]
	result T
}

var (
	_ Visitor             = (*applier[Node])(nil)
	_ Transformer[Node]   = DefaultTransformer[Node]{}
	_ Transformer[string] = DefaultTransformer[string]{}
)

func (a *applier[T]) VisitToken(n *Token)   { a.result = a.t.TransformToken(n) }
func (a *applier[T]) VisitList(n *ListNode) { a.result = a.t.TransformList(n) }

// Apply dispatches n to the matching Transform method of t. A nil node
// yields the zero T.
func Apply[T any](n Node, t Transformer[T]) T {
	if internalOf(n) == nil {
		var zero T
		return zero
	}
	a := &applier[T]{t: t}
	n.Accept(a)
	return a.result
}
