package trace

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // pass-события копятся в кольце, пишутся только при сбое
	LevelPhase        // driver + pass
	LevelDetail       // + отдельные файлы
	LevelDebug        // + члены модуля
)

var levelNames = names[Level]{
	what:    "level",
	byValue: []string{"off", "error", "phase", "detail", "debug"},
	aliases: map[string]Level{"": LevelOff},
}

func (l Level) String() string { return levelNames.name(l) }

// ParseLevel converts a flag or config value to a Level; "" is off.
func ParseLevel(s string) (Level, error) { return levelNames.parse(s) }

// deepest scope emitted at each level
var levelScope = [...]Scope{
	LevelError:  ScopePass,
	LevelPhase:  ScopePass,
	LevelDetail: ScopeFile,
	LevelDebug:  ScopeNode,
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if l == LevelOff || int(l) >= len(levelScope) {
		return false
	}
	return scope <= levelScope[l]
}
