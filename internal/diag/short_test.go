package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	main := fs.Add("/workspace/src/main.bal", []byte("int a\nint a;\n"), 0)
	lib := fs.Add("/workspace/lib.bal", []byte("import x;\n"), 0)

	diags := []Diagnostic{
		New(SevError, ChkDuplicateName, source.Span{File: main, Start: 10, End: 11},
			"duplicate module-level name '{0}'", StringProperty("a")).
			WithNote(source.Span{File: main, Start: 4, End: 5}, "previous\ndeclaration"),
		New(SevError, SynMissingSemicolon, source.Span{File: main, Start: 5, End: 5}, "missing {0}", StringProperty("';'")),
		New(SevWarning, ChkUnusedImport, source.Span{File: lib, Start: 7, End: 8}, "unused import"),
		// файл, которого нет в наборе
		New(SevError, LexUnknownChar, source.Span{File: 42}, "lost"),
	}

	want := "warning CHK3004 lib.bal:1:8 unused import\n" +
		"note CHK3001 src/main.bal:1:5 previous declaration\n" +
		"error SYN2003 src/main.bal:1:6 missing ';'\n" +
		"error CHK3001 src/main.bal:2:5 duplicate module-level name 'a'"
	assert.Equal(t, want, FormatShort(diags, fs, true))

	lines := ShortLines(diags, fs, false)
	require.Len(t, lines, 3)
	assert.Equal(t, ShortLine{Severity: "error", Code: "SYN2003", Path: "src/main.bal", Line: 1, Col: 6, Message: "missing ';'"}, lines[1])

	assert.Empty(t, FormatShort(nil, fs, true))
	assert.Nil(t, ShortLines(diags, nil, true))
}
