
// Package fuzztests houses Go fuzz harnesses for the front half of loom
// (source -> lexer -> parser -> syntax tree). Besides catching panics they
// check that any input, however broken, prints back byte for byte.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер/парсер,
// проверяя инварианты дерева через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/testkit.

package fuzztests
