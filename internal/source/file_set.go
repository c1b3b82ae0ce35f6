package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns the source files of one run. Every Add creates a new
// revision; the path index points at the newest one. Not safe for
// concurrent Add.
type FileSet struct {
	files  []*File
	latest map[string]FileID
	base   string
}

// NewFileSet creates an empty FileSet rendering relative paths against the
// working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet that renders paths relative to base.
func NewFileSetWithBase(base string) *FileSet {
	return &FileSet{latest: make(map[string]FileID), base: base}
}

func (s *FileSet) SetBaseDir(dir string) { s.base = dir }

// BaseDir returns the base for relative paths, the working directory if
// none was set.
func (s *FileSet) BaseDir() string {
	if s.base != "" {
		return s.base
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add registers content under path and returns the id of the new revision.
// Content is kept as is.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	if hasBOM(content) {
		flags |= FileHasBOM
	}
	if hasCRLF(content) {
		flags |= FileHasCRLF
	}
	f := &File{
		ID:      FileID(n),
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
	s.files = append(s.files, f)
	s.latest[f.Path] = f.ID
	return f.ID
}

// Load reads path from disk and adds it.
func (s *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return 0, err
	}
	return s.Add(path, content, 0), nil
}

// AddVirtual adds in-memory content (stdin, tests) flagged FileVirtual.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.Add(name, content, FileVirtual)
}

func (s *FileSet) Get(id FileID) *File { return s.files[id] }

func (s *FileSet) Len() int { return len(s.files) }

// GetLatest returns the newest revision registered under path.
func (s *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := s.latest[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span into line and column positions.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.files[span.File]
	return f.Position(span.Start), f.Position(span.End)
}

// Position converts a byte offset into a 1-based line and column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Len returns the content length as uint32.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// Text returns the content covered by span, clamped to the file bounds.
func (f *File) Text(span Span) string {
	end := min(span.End, f.Len())
	if span.Start >= end {
		return ""
	}
	return string(f.Content[span.Start:end])
}

// GetLine returns line n (1-based) without its terminator, "" if there is
// no such line. The '\r' of a CRLF ending is dropped.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	var start uint32
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end := f.Len()
	if int(n) <= len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	if start >= f.Len() {
		return ""
	}
	if end > start && f.Content[end-1] == '\r' {
		end--
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path in mode "absolute", "relative", "basename" or
// "auto". Auto shortens long absolute paths to the base name.
func (f *File) FormatPath(mode, baseDir string) string {
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return BaseName(f.Path)
		}
	}
	if err != nil || out == "" {
		return f.Path
	}
	return out
}
