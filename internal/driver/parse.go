package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"loom/internal/check"
	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
	"loom/internal/syntax"
	"loom/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *syntax.Tree
	// Bag: диагностики дерева, сироты лексера и, при Options.Check, находки check.
	Bag *diag.Bag
	// Check заполнен только при Options.Check.
	Check check.Result
	// Cached сообщает, что дерево прочитано из TreeCache.
	Cached bool
}

// Parse loads path and builds its syntax tree.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(ctx, fs, fileID, opts), nil
}

// Diagnose is Parse with the check pass switched on.
func Diagnose(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	opts.Check = true
	return Parse(ctx, path, opts)
}

// ParseSource builds the tree of a file already in fs. Failures of the tree
// cache are reported as IO4002 warnings, parsing goes on without it.
func ParseSource(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) *ParseResult {
	file := fs.Get(fileID)
	tracer := trace.FromContext(ctx)
	fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+filepath.Base(file.Path), trace.ParentFrom(ctx))
	parent := fileSpan.ID()
	if parent == 0 {
		parent = trace.ParentFrom(ctx)
	}

	started := time.Now()
	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	var orphans []diag.Diagnostic
	if opts.TreeCache != nil {
		opts.progress(file.Path, StageCache, StatusWorking, time.Time{})
		span := trace.Begin(tracer, trace.ScopePass, "cache", parent)
		phase := opts.Timer.Begin("cache " + file.Path)
		root, cached, ok, err := opts.TreeCache.Get(file.Content, fileID, opts.Cache)
		if err != nil {
			cacheWarning(res.Bag, fileID, "read", err)
		}
		if ok {
			res.Tree = syntax.NewTree(root, fileID)
			res.Cached = true
			orphans = cached
		}
		opts.Timer.End(phase, strconv.FormatBool(ok))
		span.End(hitOrMiss(ok))
	}

	if res.Tree == nil {
		opts.progress(file.Path, StageParse, StatusWorking, time.Time{})
		span := trace.Begin(tracer, trace.ScopePass, "parse", parent)
		phase := opts.Timer.Begin("parse " + file.Path)
		pr := parser.ParseFile(file, parser.Options{
			Cache:      opts.Cache,
			Tracer:     tracer,
			ParentSpan: span.ID(),
		})
		res.Tree = pr.Tree
		orphans = pr.Orphans
		opts.Timer.End(phase, "")
		span.End("")

		if err := opts.TreeCache.Put(file.Content, pr.Tree.Green(), pr.Orphans); err != nil {
			cacheWarning(res.Bag, fileID, "write", err)
		}
	}

	// дерево из кеша и повторный проход не должны удваивать ошибки
	sink := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})
	for _, d := range res.Tree.Diagnostics() {
		sink.Report(d)
	}
	for _, d := range orphans {
		sink.Report(d)
	}

	if opts.Check {
		opts.progress(file.Path, StageCheck, StatusWorking, time.Time{})
		span := trace.Begin(tracer, trace.ScopePass, "check", parent)
		phase := opts.Timer.Begin("check " + file.Path)
		copts := opts.checkOptions()
		copts.Reporter = sink
		res.Check = check.Check(res.Tree, copts)
		note := fmt.Sprintf("%d findings", res.Check.Reported)
		opts.Timer.End(phase, note)
		span.End(note)
	}

	res.Bag.Sort()
	status := StatusDone
	if res.Bag.HasErrors() {
		status = StatusError
	}
	opts.progress(file.Path, lastStage(opts), status, started)
	fileSpan.WithExtra("diagnostics", strconv.Itoa(res.Bag.Len())).End("")
	return res
}

func lastStage(opts Options) Stage {
	if opts.Check {
		return StageCheck
	}
	return StageParse
}

func hitOrMiss(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}

func cacheWarning(bag *diag.Bag, file source.FileID, op string, err error) {
	bag.Add(diag.New(diag.SevWarning, diag.IOTreeCacheError, source.Span{File: file},
		"tree cache {0} failed: {1}", diag.StringProperty(op), diag.StringProperty(err.Error())))
}
