package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"loom/internal/source"
)

// ShortLine is one diagnostic (or note) in the compact one-line format:
//
//	error SYN2003 src/main.bal:3:10 missing ';'
type ShortLine struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Col      uint32
	Message  string
}

func (l ShortLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.Severity, l.Code, l.Path, l.Line, l.Col, l.Message)
}

// ShortLines resolves diags against fs and orders them by path, position,
// severity, code and text. Notes follow as "note" lines when withNotes is set.
// Spans in files fs does not know are skipped.
func ShortLines(diags []Diagnostic, fs *source.FileSet, withNotes bool) []ShortLine {
	if fs == nil {
		return nil
	}
	lines := make([]ShortLine, 0, len(diags))
	for _, d := range diags {
		if l, ok := shortLine(fs, d.Primary, severityLabel(d.Severity), d.Code, d.Text()); ok {
			lines = append(lines, l)
		}
		if !withNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := shortLine(fs, n.Span, "note", d.Code, n.Msg); ok {
				lines = append(lines, l)
			}
		}
	}
	slices.SortStableFunc(lines, func(a, b ShortLine) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Col, b.Col),
			cmp.Compare(a.Severity, b.Severity),
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Message, b.Message),
		)
	})
	return lines
}

// FormatShort joins ShortLines with newlines, without a trailing one.
func FormatShort(diags []Diagnostic, fs *source.FileSet, withNotes bool) string {
	lines := ShortLines(diags, fs, withNotes)
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

func shortLine(fs *source.FileSet, sp source.Span, sev string, code Code, msg string) (ShortLine, bool) {
	if int(sp.File) >= fs.Len() {
		return ShortLine{}, false
	}
	start, _ := fs.Resolve(sp)
	path := fs.Get(sp.File).FormatPath("relative", fs.BaseDir())
	return ShortLine{
		Severity: sev,
		Code:     code.ID(),
		Path:     strings.TrimPrefix(path, "./"),
		Line:     start.Line,
		Col:      start.Col,
		Message:  oneLine(msg),
	}, true
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

// oneLine сворачивает переводы строк в пробелы.
func oneLine(msg string) string {
	msg = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
