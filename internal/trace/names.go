package trace

import (
	"fmt"
	"strings"
)

// names maps the small enums of this package to their flag spellings.
// names[v] is the spelling of v; empty slots are unused values.
type names[T ~uint8] struct {
	what    string
	byValue []string
	aliases map[string]T
}

func (n names[T]) name(v T) string {
	if int(v) < len(n.byValue) && n.byValue[int(v)] != "" {
		return n.byValue[int(v)]
	}
	return "unknown"
}

// parse принимает написание без учёта регистра и пробелов по краям.
func (n names[T]) parse(s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := n.aliases[s]; ok {
		return v, nil
	}
	for i, name := range n.byValue {
		if name != "" && name == s {
			return T(i), nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid trace %s: %q (expected: %s)", n.what, s, strings.Join(n.valid(), "|"))
}

func (n names[T]) valid() []string {
	var out []string
	for _, name := range n.byValue {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
