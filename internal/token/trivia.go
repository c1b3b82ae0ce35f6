package token

import (
	"loom/internal/kind"
	"loom/internal/source"
)

// Trivia is a piece of insignificant text around a token. Kind is one of the
// minutiae kinds: whitespace, end of line or comment.
type Trivia struct {
	Kind kind.Kind
	Span source.Span
	Text string
}

// IsNewline reports whether the trivia ends a line.
func (t Trivia) IsNewline() bool { return t.Kind == kind.EndOfLineMinutiae }
