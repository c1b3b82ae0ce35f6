package green

import (
	"sync"

	"loom/internal/kind"
	"loom/internal/source"
)

// maxCachedSlots bounds the arity of nodes the cache interns.
const maxCachedSlots = 3

type minutiaeKey struct {
	kind kind.Kind
	text source.StringID
}

type minutiaeListKey struct {
	n       int
	a, b, c *Minutiae
}

type tokenKey struct {
	kind              kind.Kind
	text              source.StringID
	leading, trailing *MinutiaeList
}

type nodeKey struct {
	kind    kind.Kind
	n       int
	a, b, c Node
}

// CacheStats counts lookups served from the cache.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// Cache interns minutiae, small minutiae lists, tokens and small nodes, so
// identical structure is shared by pointer within a file and across files.
// It is safe for concurrent use. A nil *Cache builds fresh nodes every time.
type Cache struct {
	mu       sync.Mutex
	strs     *source.Interner
	minutiae map[minutiaeKey]*Minutiae
	lists    map[minutiaeListKey]*MinutiaeList
	tokens   map[tokenKey]*Token
	nodes    map[nodeKey]*NonTerminal
	hits     uint64
	misses   uint64
}

func NewCache() *Cache {
	return &Cache{
		strs:     source.NewInterner(),
		minutiae: make(map[minutiaeKey]*Minutiae),
		lists:    make(map[minutiaeListKey]*MinutiaeList),
		tokens:   make(map[tokenKey]*Token),
		nodes:    make(map[nodeKey]*NonTerminal),
	}
}

// Minutiae returns a shared text minutiae piece.
func (c *Cache) Minutiae(k kind.Kind, text string) *Minutiae {
	if c == nil {
		return NewMinutiae(k, text)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := minutiaeKey{kind: k, text: c.strs.Intern(text)}
	if m, ok := c.minutiae[key]; ok {
		c.hits++
		return m
	}
	c.misses++
	m := NewMinutiae(k, text)
	c.minutiae[key] = m
	return m
}

// MinutiaeList returns a shared list when it is short and holds only
// diagnostic-free pieces; otherwise a fresh list.
func (c *Cache) MinutiaeList(items ...*Minutiae) *MinutiaeList {
	if len(items) == 0 {
		return emptyMinutiae
	}
	if c == nil || len(items) > maxCachedSlots || hasInvalid(items) {
		return NewMinutiaeList(items...)
	}
	key := minutiaeListKey{n: len(items)}
	key.a = items[0]
	if len(items) > 1 {
		key.b = items[1]
	}
	if len(items) > 2 {
		key.c = items[2]
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.lists[key]; ok {
		c.hits++
		return l
	}
	c.misses++
	l := NewMinutiaeList(items...)
	c.lists[key] = l
	return l
}

// Token returns a shared present token. Minutiae lists take part in the key
// by identity, so callers get the most sharing when the lists come from the
// same cache.
func (c *Cache) Token(k kind.Kind, text string, leading, trailing *MinutiaeList) *Token {
	if c == nil {
		return NewToken(k, text, leading, trailing)
	}
	if leading == nil {
		leading = emptyMinutiae
	}
	if trailing == nil {
		trailing = emptyMinutiae
	}
	if leading.HasDiagnostics() || trailing.HasDiagnostics() {
		return NewToken(k, text, leading, trailing)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tokenKey{kind: k, text: c.strs.Intern(text), leading: leading, trailing: trailing}
	if t, ok := c.tokens[key]; ok {
		c.hits++
		return t
	}
	c.misses++
	t := NewToken(k, text, leading, trailing)
	c.tokens[key] = t
	return t
}

// Node is NewNode with interning of small diagnostic-free nodes.
func (c *Cache) Node(k kind.Kind, slots ...Node) (*NonTerminal, error) {
	if c == nil || len(slots) > maxCachedSlots {
		return NewNode(k, slots...)
	}
	n, err := NewNode(k, slots...)
	if err != nil || n.HasDiagnostics() {
		return n, err
	}
	key := nodeKey{kind: k, n: len(n.slots)}
	if len(n.slots) > 0 {
		key.a = n.slots[0]
	}
	if len(n.slots) > 1 {
		key.b = n.slots[1]
	}
	if len(n.slots) > 2 {
		key.c = n.slots[2]
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if shared, ok := c.nodes[key]; ok {
		c.hits++
		return shared, nil
	}
	c.misses++
	c.nodes[key] = n
	return n, nil
}

// MustNode is Node that panics with the *ConstructionError.
func (c *Cache) MustNode(k kind.Kind, slots ...Node) *NonTerminal {
	n, err := c.Node(k, slots...)
	if err != nil {
		panic(err)
	}
	return n
}

func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:   c.hits,
		Misses: c.misses,
		Size:   len(c.minutiae) + len(c.lists) + len(c.tokens) + len(c.nodes),
	}
}

func hasInvalid(items []*Minutiae) bool {
	for _, m := range items {
		if m == nil || m.kind == kind.InvalidNodeMinutiae {
			return true
		}
	}
	return false
}
