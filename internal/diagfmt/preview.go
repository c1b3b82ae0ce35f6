package diagfmt

import (
	"bytes"
	"fmt"
	"strings"

	"loom/internal/diag"
	"loom/internal/source"
)

// editPreview returns the whole lines touched by edit, as they are and with
// the edit applied. Line ends are not included.
func editPreview(fs *source.FileSet, edit diag.FixEdit) (before, after []string, err error) {
	sp := edit.Span
	if !known(fs, sp.File) {
		return nil, nil, fmt.Errorf("file %d not found in FileSet", sp.File)
	}
	content := fs.Get(sp.File).Content
	if sp.End < sp.Start || int(sp.End) > len(content) {
		return nil, nil, fmt.Errorf("edit span %d..%d out of range", sp.Start, sp.End)
	}

	from := bytes.LastIndexByte(content[:sp.Start], '\n') + 1
	to := len(content)
	if i := bytes.IndexByte(content[sp.End:], '\n'); i >= 0 {
		to = int(sp.End) + i
	}

	var patched strings.Builder
	patched.Write(content[from:sp.Start])
	patched.WriteString(edit.NewText)
	patched.Write(content[sp.End:to])

	return previewLines(string(content[from:to])), previewLines(patched.String()), nil
}

func previewLines(block string) []string {
	if block == "" {
		return nil
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
