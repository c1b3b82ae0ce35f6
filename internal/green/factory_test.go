package green_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
)

func sp() *green.MinutiaeList {
	return green.NewMinutiaeList(green.NewMinutiae(kind.WhitespaceMinutiae, " "))
}

func ident(name string) *green.Token {
	return green.NewToken(kind.Identifier, name, nil, sp())
}

func TestWidthIsSumOfSlots(t *testing.T) {
	ref := green.NewSimpleNameReference(ident("x"))
	tok := green.NewToken(kind.Plus, "", nil, sp())
	bin := green.NewBinaryExpression(ref, tok, green.NewSimpleNameReference(green.NewToken(kind.Identifier, "y", nil, nil)))

	assert.Equal(t, uint32(2), ref.Width())
	assert.Equal(t, uint32(5), bin.Width())
	assert.Equal(t, "x + y", green.Text(bin))
	assert.Equal(t, 3, bin.SlotCount())
	assert.Nil(t, bin.Slot(7))
}

func TestNewNodeValidation(t *testing.T) {
	semi := green.NewToken(kind.Semicolon, "", nil, nil)
	ret := green.NewToken(kind.ReturnKeyword, "", nil, sp())

	tests := []struct {
		name   string
		kind   kind.Kind
		slots  []green.Node
		slot   int
		reason string
	}{
		{"token kind", kind.ReturnStatement, []green.Node{semi, nil, semi}, 0, "token Semicolon not allowed"},
		{"required absent", kind.ReturnStatement, []green.Node{ret, nil, nil}, 2, "required slot is absent"},
		{"arity", kind.ReturnStatement, []green.Node{ret}, -1, "expected 3 slots, got 1"},
		{"node for token", kind.ExpressionStatement, []green.Node{green.NewSimpleNameReference(ident("a")), green.NewSimpleNameReference(ident("b"))}, 1, "expected a token, got SimpleNameReference"},
		{"token for node", kind.ExpressionStatement, []green.Node{semi, semi}, 0, "expected a node, got Semicolon"},
		{"not a node kind", kind.Identifier, nil, -1, "not a node kind"},
		{"list item kind", kind.FunctionBodyBlock, []green.Node{
			green.NewToken(kind.OpenBrace, "", nil, nil),
			green.NewList(semi),
			green.NewToken(kind.CloseBrace, "", nil, nil),
		}, 1, "item 0: Semicolon not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := green.NewNode(tt.kind, tt.slots...)
			var cerr *green.ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.kind, cerr.Kind)
			assert.Equal(t, tt.slot, cerr.Slot)
			assert.Equal(t, tt.reason, cerr.Reason)
		})
	}
}

func TestSeparatedListShape(t *testing.T) {
	dot := green.NewToken(kind.Dot, "", nil, nil)
	comma := green.NewToken(kind.Comma, "", nil, nil)
	imp := green.NewToken(kind.ImportKeyword, "", nil, sp())
	semi := green.NewToken(kind.Semicolon, "", nil, nil)
	a, b := green.NewToken(kind.Identifier, "a", nil, nil), green.NewToken(kind.Identifier, "b", nil, nil)

	n, err := green.NewNode(kind.ImportDeclaration, imp, nil, green.NewList(a, dot, b), nil, semi)
	require.NoError(t, err)
	assert.Equal(t, "import a.b;", green.Text(n))

	_, err = green.NewNode(kind.ImportDeclaration, imp, nil, green.NewList(a, dot), nil, semi)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ends with a separator")

	_, err = green.NewNode(kind.ImportDeclaration, imp, nil, green.NewList(a, comma, b), nil, semi)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "separator Comma not allowed")
}

func TestAbsentListBecomesEmptyList(t *testing.T) {
	n, err := green.NewNode(kind.FunctionBodyBlock,
		green.NewToken(kind.OpenBrace, "", nil, nil), nil, green.NewToken(kind.CloseBrace, "", nil, nil))
	require.NoError(t, err)
	require.NotNil(t, n.Slot(1))
	assert.Equal(t, kind.List, n.Slot(1).Kind())
	assert.Same(t, green.EmptyList(), n.Slot(1))
	assert.Equal(t, "{}", green.Text(n))
}

func TestGeneratedFactoryPanics(t *testing.T) {
	assert.Panics(t, func() {
		green.NewReturnStatement(green.NewToken(kind.Semicolon, "", nil, nil), nil, nil)
	})
}

func TestMissingAndDiagnostics(t *testing.T) {
	d := green.NewDiagnostic(diag.SynMissingSemicolon, "missing {0}", diag.StringProperty("';'"))
	semi := green.NewMissingToken(kind.Semicolon, d)
	assert.True(t, semi.IsMissing())
	assert.Equal(t, uint32(0), semi.Width())
	assert.Equal(t, "", semi.Text())
	require.Len(t, semi.Diagnostics(), 1)

	ret := green.NewToken(kind.ReturnKeyword, "", nil, nil)
	stmt := green.NewReturnStatement(ret, nil, semi)
	assert.True(t, stmt.HasDiagnostics())
	assert.Empty(t, stmt.Diagnostics(), "diagnostics stay on the node that carries them")
	assert.False(t, stmt.IsMissing())

	allMissing := green.NewReturnStatement(green.NewMissingToken(kind.ReturnKeyword), nil, semi)
	assert.True(t, allMissing.IsMissing())

	clean := green.NewReturnStatement(ret, nil, green.NewToken(kind.Semicolon, "", nil, nil))
	assert.False(t, clean.HasDiagnostics())
	tagged := clean.WithDiagnostics(d)
	assert.True(t, tagged.HasDiagnostics())
	assert.False(t, clean.HasDiagnostics())
}

func TestWithSlot(t *testing.T) {
	ret := green.NewToken(kind.ReturnKeyword, "", nil, sp())
	semi := green.NewToken(kind.Semicolon, "", nil, nil)
	stmt := green.NewReturnStatement(ret, nil, semi)

	lit := green.NewBasicLiteral(green.NewToken(kind.DecimalIntegerLiteral, "1", nil, nil))
	next, err := stmt.WithSlot(1, lit)
	require.NoError(t, err)
	assert.Equal(t, "return 1;", green.Text(next))
	assert.Equal(t, "return ;", green.Text(stmt))
	assert.True(t, next.Slot(0) == stmt.Slot(0))

	_, err = stmt.WithSlot(0, lit)
	require.Error(t, err)
	_, err = stmt.WithSlot(9, lit)
	require.Error(t, err)
}

func TestInvalidNodeMinutiae(t *testing.T) {
	bad := green.NewToken(kind.Invalid, "$", nil, nil).
		WithDiagnostics(green.NewDiagnostic(diag.SynUnexpectedToken, "unexpected"))
	m := green.NewInvalidNodeMinutiae(bad)
	assert.Equal(t, "$", m.Text())
	assert.True(t, m.HasDiagnostics())

	eof := green.NewToken(kind.EOF, "", green.NewMinutiaeList(m), nil)
	assert.True(t, eof.HasDiagnostics())
	assert.Equal(t, uint32(1), eof.Width())
	assert.Equal(t, "$", green.Text(eof))
}

func TestInspectOffsets(t *testing.T) {
	stmt := green.NewExpressionStatement(
		green.NewSimpleNameReference(ident("go")),
		green.NewToken(kind.Semicolon, "", nil, nil),
	)
	var offsets []uint32
	green.Inspect(stmt, 10, func(n green.Node, off uint32) bool {
		if _, ok := n.(*green.Token); ok {
			offsets = append(offsets, off)
		}
		return true
	})
	assert.Equal(t, []uint32{10, 13}, offsets)
	assert.Equal(t, "go", green.FirstToken(stmt).Text())
	assert.Equal(t, uint32(0), green.TrailingMinutiaeWidth(stmt))
	assert.Equal(t, uint32(0), green.LeadingMinutiaeWidth(stmt))
}
