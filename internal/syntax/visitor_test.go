package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loom/internal/kind"
	"loom/internal/syntax"
)

type identCollector struct {
	syntax.BaseVisitor
	names     []string
	skipNames bool
}

func (c *identCollector) VisitToken(n *syntax.Token) {
	if n.Kind() == kind.Identifier {
		c.names = append(c.names, n.Text())
	}
}

func (c *identCollector) VisitSimpleNameReference(n *syntax.SimpleNameReference) {
	if c.skipNames {
		return
	}
	c.BaseVisitor.VisitSimpleNameReference(n)
}

func TestBaseVisitorRoutesThroughOuter(t *testing.T) {
	tree := listenerTree(true)

	c := &identCollector{}
	c.Outer = c
	tree.Root().Accept(c)
	assert.Equal(t, []string{"X", "l", "init"}, c.names)

	c = &identCollector{skipNames: true}
	c.Outer = c
	tree.Root().Accept(c)
	assert.Equal(t, []string{"l"}, c.names)
}

func TestBaseVisitorWithoutOuterSeesNothing(t *testing.T) {
	c := &identCollector{}
	listenerTree(true).Root().Accept(c)
	assert.Empty(t, c.names, "without Outer the recursion stays in BaseVisitor")
}

type kindCounter struct {
	syntax.BaseVisitor
	counts map[kind.Kind]int
}

func (k *kindCounter) VisitListenerDeclaration(n *syntax.ListenerDeclaration) {
	k.counts[n.Kind()]++
	k.BaseVisitor.VisitListenerDeclaration(n)
}

func (k *kindCounter) VisitToken(n *syntax.Token) { k.counts[n.Kind()]++ }

func TestVisitorPreOrderCounts(t *testing.T) {
	tree := syntax.NewTree(module(nil, listenerDecl(true, nil), listenerDecl(false, nil)).Internal(), 1)
	k := &kindCounter{counts: map[kind.Kind]int{}}
	k.Outer = k
	tree.Root().Accept(k)

	assert.Equal(t, 2, k.counts[kind.ListenerDeclaration])
	assert.Equal(t, 1, k.counts[kind.PublicKeyword])
	assert.Equal(t, 6, k.counts[kind.Identifier])
	assert.Equal(t, 1, k.counts[kind.EOF])
}

func TestInspectStopsDescent(t *testing.T) {
	tree := listenerTree(true)
	var kinds []kind.Kind
	syntax.Inspect(tree.Root(), func(n syntax.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != kind.ListenerDeclaration
	})
	assert.Equal(t, []kind.Kind{kind.ModulePart, kind.List, kind.List, kind.ListenerDeclaration, kind.EOF}, kinds)
}
