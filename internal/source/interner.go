package source

import "strings"

// StringID is a dense handle of an interned string. The zero id is the
// empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner hands out one StringID per distinct string. Not safe for
// concurrent use: green.Cache calls it under its own lock.
type Interner struct {
	strs []string
	ids  map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{strs: []string{""}, ids: map[string]StringID{"": NoStringID}}
}

// Intern returns the id of s, registering it on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.ids[s]; ok {
		return id
	}
	// s часто режется из буфера файла, храним свою копию
	s = strings.Clone(s)
	id := StringID(len(in.strs))
	in.strs = append(in.strs, s)
	in.ids[s] = id
	return id
}

// Lookup returns the string behind id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.strs[id], true
}

func (in *Interner) Has(id StringID) bool { return int(id) < len(in.strs) }

// Len counts interned strings including the empty one.
func (in *Interner) Len() int { return len(in.strs) }
