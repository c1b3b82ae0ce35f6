package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/diag"
	"loom/internal/kind"
)

type fakeNode struct {
	k    kind.Kind
	text string
}

func (n fakeNode) Kind() kind.Kind      { return n.k }
func (n fakeNode) ToSourceCode() string { return n.text }

func TestPropertyKinds(t *testing.T) {
	n := fakeNode{k: kind.SimpleNameReference, text: " foo "}
	cases := []struct {
		name string
		prop diag.Property
		kind diag.PropertyKind
		str  string
	}{
		{"int", diag.NumericProperty(42), diag.PropNumeric, "42"},
		{"float", diag.FloatProperty(1.5), diag.PropNumeric, "1.5"},
		{"string", diag.StringProperty("x"), diag.PropString, "x"},
		{"node", diag.NodeProperty(n), diag.PropNode, "foo"},
		{"collection", diag.CollectionProperty(diag.NumericProperty(1), diag.StringProperty("a")), diag.PropCollection, "1, a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.prop.Kind())
			assert.Equal(t, tc.str, tc.prop.String())
		})
	}
}

func TestPropertyAccessorsRejectOtherKinds(t *testing.T) {
	s := diag.StringProperty("x")
	_, ok := s.Int()
	assert.False(t, ok)
	_, ok = s.Node()
	assert.False(t, ok)
	assert.Nil(t, s.Items())

	v, ok := diag.FloatProperty(2.75).Int()
	require.True(t, ok)
	assert.Equal(t, int64(2), v)
	assert.True(t, diag.FloatProperty(2.75).IsFloat())
	assert.False(t, diag.NumericProperty(2).IsFloat())

	f, ok := diag.NumericProperty(3).Float()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
}

func TestCollectionPropertyIsImmutable(t *testing.T) {
	items := []diag.Property{diag.NumericProperty(1), diag.NumericProperty(2)}
	p := diag.CollectionProperty(items...)
	items[0] = diag.StringProperty("changed")

	got := p.Items()
	require.Len(t, got, 2)
	assert.Equal(t, diag.PropNumeric, got[0].Kind())

	got[1] = diag.StringProperty("changed")
	assert.Equal(t, diag.PropNumeric, p.Items()[1].Kind())
}

func TestNodePropertyKeepsReference(t *testing.T) {
	n := fakeNode{k: kind.ListenerDeclaration, text: "listener"}
	ref, ok := diag.NodeProperty(n).Node()
	require.True(t, ok)
	assert.Equal(t, kind.ListenerDeclaration, ref.Kind())
	assert.Equal(t, n, diag.NodeProperty(n).Value())
}

func TestFormatMessage(t *testing.T) {
	props := []diag.Property{diag.StringProperty("x"), diag.NumericProperty(3)}
	assert.Equal(t, "x has 3 uses", diag.FormatMessage("{0} has {1} uses", props))
	assert.Equal(t, "{2} {a} {", diag.FormatMessage("{2} {a} {", props))
	assert.Equal(t, "plain", diag.FormatMessage("plain", nil))
}
