package syntax

import (
	"loom/internal/green"
	"loom/internal/kind"
)

// Minutiae is one positioned piece of trivia. Minutiae are not nodes: they
// hang off tokens and are never visited.
type Minutiae struct {
	green *green.Minutiae
	pos   uint32
	token *Token
}

func (m Minutiae) Kind() kind.Kind  { return m.green.Kind() }
func (m Minutiae) Position() uint32 { return m.pos }
func (m Minutiae) Width() uint32    { return m.green.Width() }
func (m Minutiae) Text() string     { return m.green.Text() }

// Token returns the token the minutiae is attached to.
func (m Minutiae) Token() *Token { return m.token }

func (m Minutiae) Internal() *green.Minutiae { return m.green }

func (m Minutiae) IsWhitespace() bool  { return m.green.Kind() == kind.WhitespaceMinutiae }
func (m Minutiae) IsEndOfLine() bool   { return m.green.Kind() == kind.EndOfLineMinutiae }
func (m Minutiae) IsComment() bool     { return m.green.Kind() == kind.CommentMinutiae }
func (m Minutiae) IsInvalidNode() bool { return m.green.Kind() == kind.InvalidNodeMinutiae }

// InvalidToken returns the skipped token wrapped by invalid-node minutiae,
// positioned inside the trivia. Parent is the owning token.
func (m Minutiae) InvalidToken() *Token {
	g := m.green.InvalidToken()
	if g == nil {
		return nil
	}
	return newToken(g, m.pos, m.token)
}

func (m Minutiae) TextRange() TextRange {
	return TextRange{Start: m.pos, End: m.pos + m.green.Width()}
}

// MinutiaeList is a positioned view of a token's leading or trailing trivia.
// The zero value is an empty list.
type MinutiaeList struct {
	green *green.MinutiaeList
	pos   uint32
	token *Token
}

func (l MinutiaeList) Len() int         { return l.green.Len() }
func (l MinutiaeList) Width() uint32    { return l.green.Width() }
func (l MinutiaeList) Text() string     { return l.green.Text() }
func (l MinutiaeList) Token() *Token    { return l.token }
func (l MinutiaeList) IsEmpty() bool    { return l.green.Len() == 0 }
func (l MinutiaeList) Position() uint32 { return l.pos }

// Get returns the i-th piece with its absolute position.
func (l MinutiaeList) Get(i int) Minutiae {
	pos := l.pos
	for j := 0; j < i; j++ {
		pos += l.green.Get(j).Width()
	}
	return Minutiae{green: l.green.Get(i), pos: pos, token: l.token}
}

// Items returns all pieces in order.
func (l MinutiaeList) Items() []Minutiae {
	out := make([]Minutiae, 0, l.Len())
	pos := l.pos
	for i := 0; i < l.Len(); i++ {
		g := l.green.Get(i)
		out = append(out, Minutiae{green: g, pos: pos, token: l.token})
		pos += g.Width()
	}
	return out
}

// Add returns an unlinked list with m appended.
func (l MinutiaeList) Add(m Minutiae) MinutiaeList {
	return MinutiaeList{green: l.green.Append(m.green)}
}

func (l MinutiaeList) internal() *green.MinutiaeList {
	if l.green == nil {
		return green.EmptyMinutiae()
	}
	return l.green
}
