package diagfmt

import "fmt"

// PathMode selects how file paths are printed.
type PathMode uint8

// PathModeAuto печатает путь как записан, длинные абсолютные сокращает до
// имени файла. PathModeRelative считает от FileSet.BaseDir.
const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

var pathModeNames = [...]string{
	PathModeAuto:     "auto",
	PathModeAbsolute: "absolute",
	PathModeRelative: "relative",
	PathModeBasename: "basename",
}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return fmt.Sprintf("PathMode(%d)", m)
}

// ParsePathMode reads the --path-mode value.
func ParsePathMode(s string) (PathMode, error) {
	for i, name := range pathModeNames {
		if name == s {
			return PathMode(i), nil
		}
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q (expected auto|absolute|relative|basename)", s)
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color       bool
	Context     int // строк контекста вокруг первичной строки
	PathMode    PathMode
	Width       int // обрезка строк сниппета, 0 без ограничения
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures JSON.
type JSONOpts struct {
	PathMode         PathMode
	IncludePositions bool
	IncludeNotes     bool
	IncludeFixes     bool
	IncludePreviews  bool
	Max              int // обрезка вывода; Bag не трогаем
}

// TreeOpts configures the tree dumps. Minutiae prints whitespace, comments
// and skipped tokens under each token.
type TreeOpts struct {
	PathMode PathMode
	Minutiae bool
}
