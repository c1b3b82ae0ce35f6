package diagfmt

import (
	"fmt"

	"loom/internal/source"
)

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	default:
		return f.Path
	}
}

// formatLocation renders "path:line:col" for the start of span.
func formatLocation(span source.Span, fs *source.FileSet, mode PathMode) string {
	if !known(fs, span.File) {
		return fmt.Sprintf("<file %d>:%d", span.File, span.Start)
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs.Get(span.File), fs, mode), start.Line, start.Col)
}

func known(fs *source.FileSet, id source.FileID) bool {
	return fs != nil && int(id) < fs.Len()
}
