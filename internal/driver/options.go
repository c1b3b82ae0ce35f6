package driver

import (
	"loom/internal/check"
	"loom/internal/green"
	"loom/internal/observ"
)

// Options configure a driver run over one file or a directory.
type Options struct {
	// MaxDiagnostics ограничивает Bag каждого файла.
	MaxDiagnostics int
	// Jobs: число воркеров для *Dir; 0 означает GOMAXPROCS.
	Jobs int
	// Cache делится всеми файлами прогона. nil: ParseDir создаёт общий кеш,
	// Parse разбирает без интернирования.
	Cache *green.Cache
	// TreeCache хранит зелёные деревья на диске; nil отключает.
	TreeCache *TreeCache
	// Check запускает проход check после разбора.
	Check bool
	// MaxArgs передаётся в check.Options.
	MaxArgs int
	// Timer получает фазы lex/parse/check/cache; может быть nil.
	Timer *observ.Timer
	// Progress получает события по файлам; nil отключает.
	Progress ProgressSink
}

func (o Options) checkOptions() check.Options {
	return check.Options{MaxArgs: o.MaxArgs}
}
