package syntax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/syntax"
)

func TestModifyWithCurrentChildrenIsIdentity(t *testing.T) {
	decl := firstListener(listenerTree(true))
	same := decl.Modify(
		decl.VisibilityQualifier(),
		decl.ListenerKeyword(),
		decl.TypeDescriptor(),
		decl.VariableName(),
		decl.EqualsToken(),
		decl.Initializer(),
		decl.SemicolonToken(),
	)
	assert.Same(t, decl, same)

	mod := syntax.Root(decl).(*syntax.ModulePart)
	assert.Same(t, mod, mod.Modify(mod.Imports(), mod.Members(), mod.EofToken()))
}

func TestModifySharesUntouchedChildren(t *testing.T) {
	decl := firstListener(listenerTree(true))
	renamed := decl.Modify(
		decl.VisibilityQualifier(),
		decl.ListenerKeyword(),
		decl.TypeDescriptor(),
		ident("m", syntax.Space()),
		decl.EqualsToken(),
		decl.Initializer(),
		decl.SemicolonToken(),
	)
	require.NotSame(t, decl, renamed)
	assert.Equal(t, "public listener X m = init();\n", renamed.ToSourceCode())
	assert.Equal(t, "public listener X l = init();\n", decl.ToSourceCode())

	assert.Equal(t, decl.Position(), renamed.Position())
	assert.Same(t, decl.Parent(), renamed.Parent())

	for _, slot := range []int{0, 1, 2, 4, 5, 6} {
		assert.True(t, decl.Internal().Slot(slot) == renamed.Internal().Slot(slot), "slot %d", slot)
	}
	assert.NotSame(t, decl.Initializer(), renamed.Initializer())
	assert.Equal(t, decl.Initializer().Internal(), renamed.Initializer().Internal())
}

func TestModifyDropsOptionalSlot(t *testing.T) {
	decl := firstListener(listenerTree(true))
	private := decl.Modify(
		nil,
		decl.ListenerKeyword(),
		decl.TypeDescriptor(),
		decl.VariableName(),
		decl.EqualsToken(),
		decl.Initializer(),
		decl.SemicolonToken(),
	)
	assert.Equal(t, "listener X l = init();\n", private.ToSourceCode())
	assert.Nil(t, private.VisibilityQualifier())
}

func TestCreateRejectsWrongTokenKind(t *testing.T) {
	assert.PanicsWithError(t,
		"green: ListenerDeclaration slot 3 (variableName): token Semicolon not allowed",
		func() {
			syntax.CreateListenerDeclaration(
				nil,
				punct(kind.ListenerKeyword, syntax.Space()),
				syntax.CreateSimpleNameReference(ident("X", syntax.Space())),
				punct(kind.Semicolon, none),
				punct(kind.Equal, none),
				syntax.CreateBasicLiteral(syntax.CreateLiteralToken(kind.DecimalIntegerLiteral, "1", none, none)),
				punct(kind.Semicolon, none),
			)
		})
}

type renamer struct {
	syntax.TreeModifier
	from, to string
}

func (r *renamer) TransformToken(n *syntax.Token) syntax.Node {
	if n.Kind() == kind.Identifier && n.Text() == r.from {
		return n.WithText(r.to)
	}
	return n
}

func newRenamer(from, to string) *renamer {
	r := &renamer{from: from, to: to}
	r.Outer = r
	return r
}

func TestTreeModifierRenames(t *testing.T) {
	tree := listenerTree(true)
	next, err := tree.ModifyWith(newRenamer("init", "start"))
	require.NoError(t, err)

	assert.Equal(t, "public listener X l = start();\n", next.ToSourceCode())
	assert.Equal(t, "public listener X l = init();\n", tree.ToSourceCode())

	before, after := firstListener(tree), firstListener(next)
	assert.Equal(t, before.TypeDescriptor().Internal(), after.TypeDescriptor().Internal())
	assert.Equal(t, before.VariableName().Internal(), after.VariableName().Internal())
	assert.NotEqual(t, before.Initializer().Internal(), after.Initializer().Internal())
}

func TestTreeModifierWithoutChangesReturnsSameTree(t *testing.T) {
	tree := listenerTree(true)
	m := &syntax.TreeModifier{}
	next, err := tree.ModifyWith(m)
	require.NoError(t, err)
	assert.Same(t, tree, next)

	next, err = tree.ModifyWith(newRenamer("nothing", "else"))
	require.NoError(t, err)
	assert.Same(t, tree, next)
}

type literalDropper struct {
	syntax.TreeModifier
}

func (d *literalDropper) TransformPositionalArgument(n *syntax.PositionalArgument) syntax.Node {
	if lit, ok := n.Expression().(*syntax.BasicLiteral); ok && lit.LiteralToken().Text() == "2" {
		return nil
	}
	return n
}

func TestTreeModifierDropsSeparatedItems(t *testing.T) {
	arg := func(text string) syntax.Node {
		return syntax.CreatePositionalArgument(
			syntax.CreateBasicLiteral(syntax.CreateLiteralToken(kind.DecimalIntegerLiteral, text, none, none)))
	}
	comma := func() syntax.Node { return punct(kind.Comma, syntax.Space()) }

	args := syntax.CreateSeparatedNodeList[syntax.Argument](arg("1"), comma(), arg("2"), comma(), arg("3"))
	call := syntax.CreateFunctionCallExpression(
		syntax.CreateSimpleNameReference(ident("f", none)),
		punct(kind.OpenParen, none),
		args,
		punct(kind.CloseParen, none),
	)
	require.Equal(t, "f(1, 2, 3)", call.ToSourceCode())

	d := &literalDropper{}
	d.Outer = d
	out := syntax.Apply[syntax.Node](call, d)
	assert.Equal(t, "f(1, 3)", out.ToSourceCode())
	assert.Equal(t, 2, out.(*syntax.FunctionCallExpression).Arguments().Len())
}

func TestReplaceNode(t *testing.T) {
	tree := listenerTree(true)
	decl := firstListener(tree)
	lit := syntax.CreateBasicLiteral(syntax.CreateLiteralToken(kind.DecimalIntegerLiteral, "42", none, none))

	next, err := tree.ReplaceNode(decl.Initializer(), lit)
	require.NoError(t, err)
	assert.Equal(t, "public listener X l = 42;\n", next.ToSourceCode())
	assert.Equal(t, "public listener X l = init();\n", tree.ToSourceCode())

	after := firstListener(next)
	assert.Equal(t, decl.TypeDescriptor().Internal(), after.TypeDescriptor().Internal())
	assert.Equal(t, tree.Module().EofToken().Internal(), next.Module().EofToken().Internal())
}

func TestReplaceNodeErrors(t *testing.T) {
	tree := listenerTree(true)
	decl := firstListener(tree)
	lit := syntax.CreateBasicLiteral(syntax.CreateLiteralToken(kind.DecimalIntegerLiteral, "42", none, none))

	_, err := tree.ReplaceNode(decl.VariableName(), lit)
	var cerr *green.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, kind.ListenerDeclaration, cerr.Kind)
	assert.Equal(t, 3, cerr.Slot)

	other := listenerTree(true)
	_, err = tree.ReplaceNode(firstListener(other).VariableName(), ident("x", none))
	assert.True(t, errors.Is(err, syntax.ErrForeignNode))

	_, err = tree.ReplaceNode(decl.VisibilityQualifier(), nil)
	require.NoError(t, err, "optional slot may be cleared")
}

type namer struct {
	syntax.DefaultTransformer[string]
}

func (namer) TransformListenerDeclaration(n *syntax.ListenerDeclaration) string {
	return "listener " + n.VariableName().Text()
}

func TestApplyDispatchesByKind(t *testing.T) {
	decl := firstListener(listenerTree(true))
	tr := namer{syntax.DefaultTransformer[string]{Default: func(n syntax.Node) string { return n.Kind().String() }}}

	assert.Equal(t, "listener l", syntax.Apply[string](decl, tr))
	assert.Equal(t, "Identifier", syntax.Apply[string](decl.VariableName(), tr))
	assert.Equal(t, "List", syntax.Apply[string](syntax.Root(decl).(*syntax.ModulePart).Members().Node(), tr))
	assert.Equal(t, "", syntax.Apply[string](nil, tr))
}
