package syntax

import (
	"fmt"

	"loom/internal/green"
)

// Wrap returns the external node for g at pos under parent. A nil g gives a
// nil Node.
func Wrap(g green.Node, pos uint32, parent Node) Node {
	switch g := g.(type) {
	case nil:
		return nil
	case *green.Token:
		if g == nil {
			return nil
		}
		return newToken(g, pos, parent)
	case *green.Minutiae:
		panic("syntax: minutiae are not nodes")
	}
	if n := wrapNode(g, pos, parent); n != nil {
		return n
	}
	panic(fmt.Sprintf("syntax: no external type for kind %s", g.Kind()))
}
