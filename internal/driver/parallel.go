package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/source"
	"loom/internal/token"
	"loom/internal/trace"
)

// SourceExt is the extension of files picked up by the *Dir functions.
const SourceExt = ".bal"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult is the outcome for one file of a directory run. Result is
// nil when the file could not be loaded; Bag then holds the IO error.
type ParseDirResult struct {
	Path   string
	Result *ParseResult
	Bag    *diag.Bag
}

// ListSourceFiles returns the sorted *.bal files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок результатов
	slices.Sort(files)
	return files, nil
}

// loadAll читает файлы до запуска воркеров: FileSet.Add не потокобезопасен.
func loadAll(dir string, files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSetWithBase(dir)
	ids := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		ids[path] = id
	}
	return fileSet, ids, loadErrors
}

func loadErrorBag(max int, err error) *diag.Bag {
	bag := diag.NewBag(max)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
		"failed to load file: {0}", diag.StringProperty(err.Error())))
	return bag
}

func jobsFor(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

// TokenizeDir tokenizes every *.bal file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet, ids, loadErrors := loadAll(dir, files)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "tokenize-dir", trace.ParentFrom(ctx))
	defer span.End(strconv.Itoa(len(files)) + " files")
	ctx = trace.WithParent(ctx, span.ID())

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobsFor(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[path]; failed {
				results[i] = TokenizeDirResult{Path: path, Bag: loadErrorBag(opts.MaxDiagnostics, loadErr)}
				opts.progress(path, StageLex, StatusError, time.Time{})
				return nil
			}
			bag := diag.NewBag(opts.MaxDiagnostics)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: ids[path],
				Tokens: tokenizeFile(gctx, fileSet.Get(ids[path]), bag, opts),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses every *.bal file under dir in parallel. All workers share
// one green.Cache, so equal tokens and small subtrees are one object across
// files.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet, ids, loadErrors := loadAll(dir, files)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	if opts.Cache == nil {
		opts.Cache = green.NewCache()
	}

	name := "parse-dir"
	if opts.Check {
		name = "diagnose-dir"
	}
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, name, trace.ParentFrom(ctx))
	defer func() {
		st := opts.Cache.Stats()
		span.WithExtra("cache_hits", strconv.FormatUint(st.Hits, 10)).
			WithExtra("cache_size", strconv.Itoa(st.Size)).
			End(strconv.Itoa(len(files)) + " files")
	}()
	ctx = trace.WithParent(ctx, span.ID())

	results := make([]ParseDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobsFor(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[path]; failed {
				results[i] = ParseDirResult{Path: path, Bag: loadErrorBag(opts.MaxDiagnostics, loadErr)}
				opts.progress(path, StageParse, StatusError, time.Time{})
				return nil
			}
			res := ParseSource(gctx, fileSet, ids[path], opts)
			results[i] = ParseDirResult{Path: path, Result: res, Bag: res.Bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// DiagnoseDir is ParseDir with the check pass switched on.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	opts.Check = true
	return ParseDir(ctx, dir, opts)
}

// MergeBags собирает диагностики всех файлов в один отсортированный Bag.
func MergeBags(results []ParseDirResult, max int) *diag.Bag {
	out := diag.NewBag(max)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	return out
}
