package green

// FirstToken returns the first token of n in text order, or nil for a node
// without tokens (an empty list).
func FirstToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	if isNil(n) {
		return nil
	}
	for i := 0; i < n.SlotCount(); i++ {
		if c := n.Slot(i); c != nil {
			if t := FirstToken(c); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last token of n in text order.
func LastToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	if isNil(n) {
		return nil
	}
	for i := n.SlotCount() - 1; i >= 0; i-- {
		if c := n.Slot(i); c != nil {
			if t := LastToken(c); t != nil {
				return t
			}
		}
	}
	return nil
}

// LeadingMinutiaeWidth is the width of the trivia before the first token.
func LeadingMinutiaeWidth(n Node) uint32 {
	if t := FirstToken(n); t != nil {
		return t.leading.Width()
	}
	return 0
}

// TrailingMinutiaeWidth is the width of the trivia after the last token.
func TrailingMinutiaeWidth(n Node) uint32 {
	if t := LastToken(n); t != nil {
		return t.trailing.Width()
	}
	return 0
}

// Inspect walks n depth-first in slot order. fn receives every node and
// token together with its absolute offset; returning false skips the
// children.
func Inspect(n Node, offset uint32, fn func(n Node, offset uint32) bool) {
	if isNil(n) || !fn(n, offset) {
		return
	}
	for i := 0; i < n.SlotCount(); i++ {
		c := n.Slot(i)
		if c == nil {
			continue
		}
		Inspect(c, offset, fn)
		offset += c.Width()
	}
}
