package diagfmt

import (
	"encoding/json"
	"io"

	"loom/internal/diag"
	"loom/internal/source"
)

// JSONLocation is a span; line and column fields appear with
// JSONOpts.IncludePositions.
type JSONLocation struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type JSONNote struct {
	Message  string       `json:"message"`
	Location JSONLocation `json:"location"`
}

// JSONEdit: OldText is the replaced source; the line previews appear with
// JSONOpts.IncludePreviews.
type JSONEdit struct {
	Location    JSONLocation `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

type JSONFix struct {
	Title string     `json:"title"`
	Edits []JSONEdit `json:"edits,omitempty"`
}

// JSONProperty: типизированный аргумент сообщения. NODE пишется
// исходным текстом узла, COLLECTION вложенным массивом.
type JSONProperty struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// JSONDiagnostic is one diagnostic. Message has the placeholders filled;
// Template keeps the raw message when they differ.
type JSONDiagnostic struct {
	Severity   string         `json:"severity"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Template   string         `json:"template,omitempty"`
	Properties []JSONProperty `json:"properties,omitempty"`
	Location   JSONLocation   `json:"location"`
	Notes      []JSONNote     `json:"notes,omitempty"`
	Fixes      []JSONFix      `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON.
type DiagnosticsOutput struct {
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Count       int              `json:"count"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) JSONLocation {
	loc := JSONLocation{StartByte: span.Start, EndByte: span.End}
	if !known(b.fs, span.File) {
		return loc
	}
	loc.File = formatPath(b.fs.Get(span.File), b.fs, b.opts.PathMode)
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (b jsonBuilder) notes(notes []diag.Note) []JSONNote {
	if !b.opts.IncludeNotes || len(notes) == 0 {
		return nil
	}
	out := make([]JSONNote, len(notes))
	for i, n := range notes {
		out[i] = JSONNote{Message: n.Msg, Location: b.location(n.Span)}
	}
	return out
}

func (b jsonBuilder) fixes(fixes []diag.Fix) []JSONFix {
	if !b.opts.IncludeFixes || len(fixes) == 0 {
		return nil
	}
	out := make([]JSONFix, len(fixes))
	for i, fix := range fixes {
		out[i].Title = fix.Title
		for _, e := range fix.Edits {
			out[i].Edits = append(out[i].Edits, b.edit(e))
		}
	}
	return out
}

func (b jsonBuilder) edit(e diag.FixEdit) JSONEdit {
	je := JSONEdit{Location: b.location(e.Span), NewText: e.NewText}
	if !known(b.fs, e.Span.File) {
		return je
	}
	je.OldText = b.fs.Get(e.Span.File).Text(e.Span)
	if b.opts.IncludePreviews {
		// превью необязательно, ошибку диапазона не поднимаем
		je.BeforeLines, je.AfterLines, _ = editPreview(b.fs, e)
	}
	return je
}

func jsonProperties(props []diag.Property) []JSONProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]JSONProperty, len(props))
	for i, p := range props {
		var v any
		switch p.Kind() {
		case diag.PropNode:
			v = p.String()
		case diag.PropCollection:
			v = jsonProperties(p.Items())
		default:
			v = p.Value()
		}
		out[i] = JSONProperty{Kind: p.Kind().String(), Value: v}
	}
	return out
}

func (b jsonBuilder) diagnostic(d diag.Diagnostic) JSONDiagnostic {
	jd := JSONDiagnostic{
		Severity:   d.Severity.String(),
		Code:       d.Code.ID(),
		Message:    d.Text(),
		Properties: jsonProperties(d.Properties),
		Location:   b.location(d.Primary),
		Notes:      b.notes(d.Notes),
		Fixes:      b.fixes(d.Fixes),
	}
	if jd.Message != d.Message {
		jd.Template = d.Message
	}
	return jd
}

// BuildDiagnosticsOutput converts bag without encoding it; JSONOpts.Max
// caps the number of diagnostics.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) (DiagnosticsOutput, error) {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	b := jsonBuilder{fs: fs, opts: opts}
	out := DiagnosticsOutput{Diagnostics: make([]JSONDiagnostic, 0, len(items))}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, b.diagnostic(d))
	}
	out.Count = len(out.Diagnostics)
	return out, nil
}

// JSON пишет диагностики одним документом с отступами.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out, err := BuildDiagnosticsOutput(bag, fs, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
