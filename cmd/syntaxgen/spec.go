package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Spec is the parsed nodes.toml.
type Spec struct {
	Groups []Group `toml:"group"`
	Nodes  []Node  `toml:"node"`

	groupSet map[string]bool
}

type Group struct {
	Name string `toml:"name"`
	Doc  string `toml:"doc"`
}

type Node struct {
	Name   string   `toml:"name"`
	Doc    string   `toml:"doc"`
	Groups []string `toml:"groups"`
	Slots  []Slot   `toml:"slots"`
}

type Slot struct {
	Name       string   `toml:"name"`
	Type       string   `toml:"type"`
	Optional   bool     `toml:"optional"`
	Kinds      []string `toml:"kinds"`
	Separators []string `toml:"separators"`
}

var listType = regexp.MustCompile(`^(NodeList|SeparatedNodeList)<(\w+)>$`)

// ListKind returns "NodeList", "SeparatedNodeList" or "".
func (s Slot) ListKind() string {
	if m := listType.FindStringSubmatch(s.Type); m != nil {
		return m[1]
	}
	return ""
}

// Elem is the slot type, or the element type of a list slot.
func (s Slot) Elem() string {
	if m := listType.FindStringSubmatch(s.Type); m != nil {
		return m[2]
	}
	return s.Type
}

func loadSpec(path string) (*Spec, error) {
	var spec Spec
	md, err := toml.DecodeFile(path, &spec)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	spec.groupSet = make(map[string]bool, len(spec.Groups))
	for _, g := range spec.Groups {
		spec.groupSet[g.Name] = true
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	names := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if names[n.Name] || s.groupSet[n.Name] {
			return fmt.Errorf("duplicate name %s", n.Name)
		}
		names[n.Name] = true
	}
	var errs []error
	for _, n := range s.Nodes {
		if len(n.Slots) == 0 {
			errs = append(errs, fmt.Errorf("%s: no slots", n.Name))
		}
		for _, g := range n.Groups {
			if !s.groupSet[g] {
				errs = append(errs, fmt.Errorf("%s: unknown group %s", n.Name, g))
			}
		}
		for _, sl := range n.Slots {
			elem := sl.Elem()
			if elem != "Token" && !s.groupSet[elem] && !names[elem] {
				errs = append(errs, fmt.Errorf("%s.%s: unknown type %s", n.Name, sl.Name, sl.Type))
			}
			if sl.ListKind() == "SeparatedNodeList" && len(sl.Separators) == 0 {
				errs = append(errs, fmt.Errorf("%s.%s: separated list without separators", n.Name, sl.Name))
			}
			if sl.ListKind() != "" && sl.Optional {
				errs = append(errs, fmt.Errorf("%s.%s: lists are never optional", n.Name, sl.Name))
			}
		}
	}
	return errors.Join(errs...)
}

func (s *Spec) isGroup(name string) bool { return s.groupSet[name] }

// members lists the nodes of a group in declaration order.
func (s *Spec) members(group string) []string {
	var out []string
	for _, n := range s.Nodes {
		for _, g := range n.Groups {
			if g == group {
				out = append(out, n.Name)
				break
			}
		}
	}
	return out
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// param is the Go parameter name of a slot.
func param(name string) string {
	if goKeywords[name] {
		return "typ"
	}
	return name
}

func lowerFirst(s string) string { return strings.ToLower(s[:1]) + s[1:] }
func upperFirst(s string) string { return strings.ToUpper(s[:1]) + s[1:] }
