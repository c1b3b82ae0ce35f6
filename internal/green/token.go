package green

import (
	"strings"

	"loom/internal/kind"
)

// Token is a leaf with its leading and trailing minutiae.
type Token struct {
	kind     kind.Kind
	text     string
	leading  *MinutiaeList
	trailing *MinutiaeList
	width    uint32
	missing  bool
	hasDiags bool
	diags    []Diagnostic
}

// NewToken builds a present token. An empty text for a keyword or
// punctuation kind means the kind's fixed spelling.
func NewToken(k kind.Kind, text string, leading, trailing *MinutiaeList) *Token {
	if !k.IsToken() {
		panic("green: " + k.String() + " is not a token kind")
	}
	if text == "" {
		text = k.Text()
	}
	return newToken(k, text, leading, trailing, false, nil)
}

// NewMissingToken builds a zero-width token inserted by error recovery.
func NewMissingToken(k kind.Kind, diags ...Diagnostic) *Token {
	return newToken(k, "", nil, nil, true, diags)
}

func newToken(k kind.Kind, text string, leading, trailing *MinutiaeList, missing bool, diags []Diagnostic) *Token {
	if leading == nil {
		leading = emptyMinutiae
	}
	if trailing == nil {
		trailing = emptyMinutiae
	}
	t := &Token{
		kind:     k,
		text:     text,
		leading:  leading,
		trailing: trailing,
		missing:  missing,
		diags:    diags,
	}
	t.width = leading.Width() + widthOf(text) + trailing.Width()
	t.hasDiags = len(diags) > 0 || leading.HasDiagnostics() || trailing.HasDiagnostics()
	return t
}

func (t *Token) Kind() kind.Kind { return t.kind }
func (t *Token) Width() uint32   { return t.width }
func (t *Token) SlotCount() int  { return 0 }
func (t *Token) Slot(int) Node   { return nil }
func (t *Token) IsMissing() bool { return t.missing }

// Text is the token text without minutiae.
func (t *Token) Text() string { return t.text }

// TextWidth is the width of the token text without minutiae.
func (t *Token) TextWidth() uint32 { return widthOf(t.text) }

func (t *Token) LeadingMinutiae() *MinutiaeList  { return t.leading }
func (t *Token) TrailingMinutiae() *MinutiaeList { return t.trailing }

func (t *Token) Diagnostics() []Diagnostic { return t.diags }
func (t *Token) HasDiagnostics() bool      { return t.hasDiags }

// WithMinutiae returns a copy of t with other trivia.
func (t *Token) WithMinutiae(leading, trailing *MinutiaeList) *Token {
	return newToken(t.kind, t.text, leading, trailing, t.missing, t.diags)
}

// WithText returns a copy of t with other text and the same trivia.
func (t *Token) WithText(text string) *Token {
	return newToken(t.kind, text, t.leading, t.trailing, false, t.diags)
}

// WithDiagnostics returns a copy of t carrying extra diagnostics.
func (t *Token) WithDiagnostics(diags ...Diagnostic) *Token {
	return newToken(t.kind, t.text, t.leading, t.trailing, t.missing, appendDiags(t.diags, diags))
}

func (t *Token) writeTo(sb *strings.Builder) {
	t.leading.writeTo(sb)
	sb.WriteString(t.text)
	t.trailing.writeTo(sb)
}
