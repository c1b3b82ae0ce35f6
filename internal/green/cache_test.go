package green_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
)

func TestCacheSharesIdenticalStructure(t *testing.T) {
	c := green.NewCache()
	space := c.MinutiaeList(c.Minutiae(kind.WhitespaceMinutiae, " "))
	assert.Same(t, space, c.MinutiaeList(c.Minutiae(kind.WhitespaceMinutiae, " ")))

	a := c.Token(kind.Identifier, "x", nil, space)
	b := c.Token(kind.Identifier, "x", green.EmptyMinutiae(), space)
	assert.Same(t, a, b)
	assert.NotSame(t, a, c.Token(kind.Identifier, "y", nil, space))

	r1 := c.MustNode(kind.SimpleNameReference, a)
	r2 := c.MustNode(kind.SimpleNameReference, b)
	assert.Same(t, r1, r2)

	st := c.Stats()
	assert.Greater(t, st.Hits, uint64(0))
	assert.Greater(t, st.Size, 0)
}

func TestCacheSkipsDiagnostics(t *testing.T) {
	c := green.NewCache()
	bad := green.NewToken(kind.Invalid, "#", nil, nil).
		WithDiagnostics(green.NewDiagnostic(diag.SynUnexpectedToken, "unexpected"))
	m := green.NewInvalidNodeMinutiae(bad)
	l1 := c.MinutiaeList(m)
	l2 := c.MinutiaeList(m)
	assert.NotSame(t, l1, l2)

	t1 := c.Token(kind.EOF, "", l1, nil)
	t2 := c.Token(kind.EOF, "", l1, nil)
	assert.NotSame(t, t1, t2)
}

func TestCacheLargeNodesAreFresh(t *testing.T) {
	c := green.NewCache()
	build := func() *green.NonTerminal {
		return c.MustNode(kind.ReturnStatement,
			c.Token(kind.ReturnKeyword, "", nil, nil), nil, c.Token(kind.Semicolon, "", nil, nil))
	}
	assert.Same(t, build(), build(), "three slots still fit the cache")

	args := green.EmptyList()
	call1 := c.MustNode(kind.FunctionCallExpression,
		c.MustNode(kind.SimpleNameReference, c.Token(kind.Identifier, "f", nil, nil)),
		c.Token(kind.OpenParen, "", nil, nil), args, c.Token(kind.CloseParen, "", nil, nil))
	call2 := c.MustNode(kind.FunctionCallExpression,
		c.MustNode(kind.SimpleNameReference, c.Token(kind.Identifier, "f", nil, nil)),
		c.Token(kind.OpenParen, "", nil, nil), args, c.Token(kind.CloseParen, "", nil, nil))
	assert.NotSame(t, call1, call2)
	assert.True(t, call1.Slot(0) == call2.Slot(0))
}

func TestNilCacheBuildsFresh(t *testing.T) {
	var c *green.Cache
	a := c.Token(kind.Identifier, "x", nil, nil)
	b := c.Token(kind.Identifier, "x", nil, nil)
	assert.NotSame(t, a, b)
	assert.Equal(t, green.CacheStats{}, c.Stats())
}

func TestCacheConcurrentUse(t *testing.T) {
	c := green.NewCache()
	var wg sync.WaitGroup
	toks := make([]*green.Token, 8)
	for i := range toks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			space := c.MinutiaeList(c.Minutiae(kind.WhitespaceMinutiae, " "))
			toks[i] = c.Token(kind.Identifier, "shared", nil, space)
		}()
	}
	wg.Wait()
	for _, tok := range toks[1:] {
		require.Same(t, toks[0], tok)
	}
}
