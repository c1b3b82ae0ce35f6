package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"loom/internal/source"
)

// Cursor: байтовая позиция в содержимом файла. Все смещения uint32,
// как в source.Span.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, end: f.Len()}
}

// EOF reports whether the whole content is consumed.
func (c *Cursor) EOF() bool {
	return c.Off >= c.end
}

// Peek returns the current byte, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and the next byte; ok is false when fewer than two remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.end {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump consumes one byte and returns it, 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Rune decodes the rune at the cursor without consuming it. size is 0 at EOF;
// invalid UTF-8 decodes as utf8.RuneError of size 1.
func (c *Cursor) Rune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.File.Content[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.end])
}

// BumpRune consumes the rune at the cursor.
func (c *Cursor) BumpRune() {
	_, sz := c.Rune()
	c.advance(sz)
}

func (c *Cursor) advance(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor advance overflow: %w", err))
	}
	c.Off = min(c.Off+un, c.end)
}

// At reports whether the remaining content starts with prefix.
func (c *Cursor) At(prefix string) bool {
	return !c.EOF() && bytes.HasPrefix(c.File.Content[c.Off:c.end], []byte(prefix))
}

// Eat consumes b if it is the current byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatString consumes prefix if the remaining content starts with it.
func (c *Cursor) EatString(prefix string) bool {
	if !c.At(prefix) {
		return false
	}
	c.advance(len(prefix))
	return true
}

// SkipWhile consumes bytes while keep holds and returns how many it took.
func (c *Cursor) SkipWhile(keep func(byte) bool) uint32 {
	from := c.Off
	for !c.EOF() && keep(c.File.Content[c.Off]) {
		c.Off++
	}
	return c.Off - from
}

// EatEOL consumes one line end: "\n", "\r\n" or a lone '\r'.
func (c *Cursor) EatEOL() bool {
	if c.Eat('\n') {
		return true
	}
	if c.Eat('\r') {
		c.Eat('\n')
		return true
	}
	return false
}

// Mark: сохранённое смещение для SpanFrom и Reset.
type Mark uint32

// Mark remembers the current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
