package lexer

import (
	"loom/internal/diag"
	"loom/internal/source"
)

type Options struct {
	// Reporter может быть nil: тогда ошибки игнорируем (но продолжаем лексить).
	// Парсер подставляет сюда свой сборщик и переносит ошибки на invalid-node
	// minutiae в дереве.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string, props ...diag.Property) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, sp, msg, props...))
	}
}
