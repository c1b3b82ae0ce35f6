package driver

import (
	"context"
	"fmt"
	"time"

	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
	"loom/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and runs the lexer over it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	tokens := tokenizeFile(ctx, file, bag, opts)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func tokenizeFile(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) []token.Token {
	started := time.Now()
	opts.progress(file.Path, StageLex, StatusWorking, time.Time{})
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.ParentFrom(ctx))
	phase := opts.Timer.Begin("lex " + file.Path)

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == kind.EOF {
			break
		}
	}

	note := fmt.Sprintf("%d tokens", len(tokens))
	opts.Timer.End(phase, note)
	span.End(note)
	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	opts.progress(file.Path, StageLex, status, started)
	return tokens
}
