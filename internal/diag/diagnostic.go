package diag

import (
	"strconv"
	"strings"

	"loom/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is an immutable finding. Message is a template: "{N}" is
// replaced by the N-th property when the diagnostic is rendered.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Primary    source.Span
	Properties []Property
	Notes      []Note
	Fixes      []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string, props ...Property) Diagnostic {
	return Diagnostic{
		Severity:   sev,
		Code:       code,
		Primary:    primary,
		Message:    msg,
		Properties: cloneProps(props),
	}
}

func NewError(code Code, primary source.Span, msg string, props ...Property) Diagnostic {
	return New(SevError, code, primary, msg, props...)
}

// WithNote returns a copy of d with one more note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy of d with one more fix.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(append([]Fix(nil), d.Fixes...), Fix{Title: title, Edits: edits})
	return d
}

// WithProperty returns a copy of d with p appended to its arguments.
func (d Diagnostic) WithProperty(p Property) Diagnostic {
	d.Properties = append(cloneProps(d.Properties), p)
	return d
}

// Text is the message with "{N}" placeholders substituted. Placeholders
// without a matching property are kept as written.
func (d Diagnostic) Text() string {
	return FormatMessage(d.Message, d.Properties)
}

// FormatMessage substitutes "{N}" placeholders in tmpl.
func FormatMessage(tmpl string, props []Property) string {
	if len(props) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			continue
		}
		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		n, err := strconv.Atoi(tmpl[i+1 : i+end])
		if err != nil || n < 0 || n >= len(props) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(props[n].String())
		i += end
	}
	return b.String()
}

func cloneProps(props []Property) []Property {
	if len(props) == 0 {
		return nil
	}
	cp := make([]Property, len(props))
	copy(cp, props)
	return cp
}
