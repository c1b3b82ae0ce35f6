package parser

import (
	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/trace"
)

type Options struct {
	// Cache делится между файлами одного прогона; nil означает без интернирования.
	Cache *green.Cache
	// Reporter получает лексические ошибки, которые не удалось привязать к дереву.
	// Все синтаксические ошибки живут в самом дереве (Tree.Diagnostics).
	Reporter diag.Reporter
	// Tracer получает node-scope события для каждого члена модуля.
	Tracer trace.Tracer
	// ParentSpan связывает события парсера со спаном драйвера.
	ParentSpan uint64
}
