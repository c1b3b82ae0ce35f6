package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"loom/internal/diag"
	"loom/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, gutter    *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatLocation(d.Primary, fs, opts.PathMode),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Text())

	if known(fs, d.Primary.File) {
		writeSnippet(w, fs, d.Primary, opts.Context, opts.Width, p)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), formatLocation(n.Span, fs, opts.PathMode), n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprintf("fix #%d:", i+1), fix.Title)
			for _, edit := range fix.Edits {
				fmt.Fprintf(w, "    edit %s apply=%q\n", formatLocation(edit.Span, fs, opts.PathMode), edit.NewText)
				if !opts.ShowPreview {
					continue
				}
				before, after, err := editPreview(fs, edit)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range before {
					fmt.Fprintf(w, "      - %s\n", line)
				}
				for _, line := range after {
					fmt.Fprintf(w, "      + %s\n", line)
				}
			}
		}
	}
}

// writeSnippet печатает строку span-а с контекстом и подчёркивание.
// Колонки считаются по ширине рун, чтобы каретка встала под текст.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context, width int, p palette) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	first := max(1, int(start.Line)-context)
	last := int(start.Line) + context
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(uint32(ln))
		if ln != int(start.Line) && line == "" {
			continue
		}
		shown := clip(line, width)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), shown)
		if ln != int(start.Line) {
			continue
		}
		col := min(int(start.Col)-1, len(line))
		endCol := len(line)
		if end.Line == start.Line {
			endCol = min(int(end.Col)-1, len(line))
		}
		pad := padFor(line[:col])
		n := max(1, runewidth.StringWidth(line[col:max(col, endCol)]))
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			pad,
			p.caret.Sprint("^"+strings.Repeat("~", n-1)))
	}
}

// padFor keeps tabs so the caret lines up in any tab width.
func padFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func clip(line string, width int) string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return line
	}
	return runewidth.Truncate(line, width, "...")
}
