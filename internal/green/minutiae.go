package green

import (
	"strings"

	"loom/internal/kind"
)

// Minutiae is one piece of trivia. Invalid-node minutiae wrap a token the
// parser skipped, so malformed input still belongs to the tree text.
type Minutiae struct {
	kind    kind.Kind
	text    string
	invalid *Token
	width   uint32
}

// NewMinutiae returns a whitespace, end-of-line or comment piece.
func NewMinutiae(k kind.Kind, text string) *Minutiae {
	if !k.IsMinutiae() || k == kind.InvalidNodeMinutiae {
		panic("green: " + k.String() + " is not a text minutiae kind")
	}
	return &Minutiae{kind: k, text: text, width: widthOf(text)}
}

// NewInvalidNodeMinutiae wraps a skipped token.
func NewInvalidNodeMinutiae(t *Token) *Minutiae {
	return &Minutiae{kind: kind.InvalidNodeMinutiae, invalid: t, width: t.Width()}
}

func (m *Minutiae) Kind() kind.Kind { return m.kind }
func (m *Minutiae) Width() uint32   { return m.width }
func (m *Minutiae) SlotCount() int  { return 0 }
func (m *Minutiae) Slot(int) Node   { return nil }
func (m *Minutiae) IsMissing() bool { return false }

// InvalidToken returns the wrapped token of invalid-node minutiae.
func (m *Minutiae) InvalidToken() *Token { return m.invalid }

// Text returns the trivia text; for invalid-node minutiae the skipped
// token's full text.
func (m *Minutiae) Text() string {
	if m.invalid != nil {
		return Text(m.invalid)
	}
	return m.text
}

func (m *Minutiae) Diagnostics() []Diagnostic {
	if m.invalid == nil {
		return nil
	}
	return m.invalid.Diagnostics()
}

func (m *Minutiae) HasDiagnostics() bool {
	return m.invalid != nil && m.invalid.HasDiagnostics()
}

func (m *Minutiae) writeTo(sb *strings.Builder) {
	if m.invalid != nil {
		m.invalid.writeTo(sb)
		return
	}
	sb.WriteString(m.text)
}

// MinutiaeList is the ordered trivia on one side of a token.
type MinutiaeList struct {
	items    []*Minutiae
	width    uint32
	hasDiags bool
}

var emptyMinutiae = &MinutiaeList{}

// EmptyMinutiae returns the shared empty list.
func EmptyMinutiae() *MinutiaeList { return emptyMinutiae }

// NewMinutiaeList copies items into a new list. nil items are skipped.
func NewMinutiaeList(items ...*Minutiae) *MinutiaeList {
	if len(items) == 0 {
		return emptyMinutiae
	}
	l := &MinutiaeList{items: make([]*Minutiae, 0, len(items))}
	for _, m := range items {
		if m == nil {
			continue
		}
		l.items = append(l.items, m)
		l.width += m.width
		l.hasDiags = l.hasDiags || m.HasDiagnostics()
	}
	return l
}

func (l *MinutiaeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

func (l *MinutiaeList) Get(i int) *Minutiae { return l.items[i] }

func (l *MinutiaeList) Width() uint32 {
	if l == nil {
		return 0
	}
	return l.width
}

func (l *MinutiaeList) HasDiagnostics() bool { return l != nil && l.hasDiags }

// Append returns a new list with extra items after the existing ones.
func (l *MinutiaeList) Append(extra ...*Minutiae) *MinutiaeList {
	items := make([]*Minutiae, 0, l.Len()+len(extra))
	if l != nil {
		items = append(items, l.items...)
	}
	return NewMinutiaeList(append(items, extra...)...)
}

// Text renders the list.
func (l *MinutiaeList) Text() string {
	var sb strings.Builder
	l.writeTo(&sb)
	return sb.String()
}

func (l *MinutiaeList) writeTo(sb *strings.Builder) {
	if l == nil {
		return
	}
	for _, m := range l.items {
		m.writeTo(sb)
	}
}
