package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	// KindHeartbeat is emitted periodically while a long run is alive.
	KindHeartbeat
)

var kindNames = names[Kind]{
	what:    "event kind",
	byValue: []string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point", KindHeartbeat: "heartbeat"},
}

func (k Kind) String() string { return kindNames.name(k) }

// Scope is the granularity of an event. Smaller values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команды CLI и директории целиком
	ScopePass                    // lex, parse, check, cache
	ScopeFile                    // один исходный файл
	ScopeNode                    // член модуля внутри парсера
)

var scopeNames = names[Scope]{
	what:    "scope",
	byValue: []string{ScopeDriver: "driver", ScopePass: "pass", ScopeFile: "file", ScopeNode: "node"},
}

func (s Scope) String() string { return scopeNames.name(s) }

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // глобальный монотонный номер
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	GID      uint64 // goroutine, в которой событие возникло
	Name     string // "parse", "file:main.bal", "listener"
	Detail   string
	Extra    map[string]string
}
