package diag

import (
	"strconv"
	"strings"

	"loom/internal/kind"
)

// PropertyKind is the tag of a Property.
type PropertyKind uint8

const (
	// PropNumeric carries an integer or floating point value.
	PropNumeric PropertyKind = iota
	// PropString carries a string value.
	PropString
	// PropNode carries a reference to a syntax node.
	PropNode
	// PropCollection carries an ordered list of properties.
	PropCollection
)

func (k PropertyKind) String() string {
	switch k {
	case PropNumeric:
		return "NUMERIC"
	case PropString:
		return "STRING"
	case PropNode:
		return "NODE"
	case PropCollection:
		return "COLLECTION"
	}
	return "UNKNOWN"
}

// NodeRef is the view of a syntax node that a diagnostic property keeps.
// Syntax nodes satisfy it without this package importing them.
type NodeRef interface {
	Kind() kind.Kind
	ToSourceCode() string
}

// Property is an immutable typed argument of a diagnostic. The zero value is
// a numeric zero. Construct values with NumericProperty, FloatProperty,
// StringProperty, NodeProperty and CollectionProperty.
type Property struct {
	kind    PropertyKind
	isFloat bool
	i       int64
	f       float64
	s       string
	node    NodeRef
	items   []Property
}

// NumericProperty returns an integer NUMERIC property.
func NumericProperty(v int64) Property {
	return Property{kind: PropNumeric, i: v}
}

// FloatProperty returns a floating point NUMERIC property.
func FloatProperty(v float64) Property {
	return Property{kind: PropNumeric, isFloat: true, f: v}
}

// StringProperty returns a STRING property.
func StringProperty(v string) Property {
	return Property{kind: PropString, s: v}
}

// NodeProperty returns a NODE property referring to n.
func NodeProperty(n NodeRef) Property {
	return Property{kind: PropNode, node: n}
}

// CollectionProperty returns a COLLECTION property. The items are copied.
func CollectionProperty(items ...Property) Property {
	cp := make([]Property, len(items))
	copy(cp, items)
	return Property{kind: PropCollection, items: cp}
}

// Kind reports the tag of the property.
func (p Property) Kind() PropertyKind { return p.kind }

// Int returns the integer value of a NUMERIC property. Float values are
// truncated; ok is false for other kinds.
func (p Property) Int() (v int64, ok bool) {
	if p.kind != PropNumeric {
		return 0, false
	}
	if p.isFloat {
		return int64(p.f), true
	}
	return p.i, true
}

// Float returns the value of a NUMERIC property as float64.
func (p Property) Float() (v float64, ok bool) {
	if p.kind != PropNumeric {
		return 0, false
	}
	if p.isFloat {
		return p.f, true
	}
	return float64(p.i), true
}

// IsFloat reports whether a NUMERIC property holds a floating point value.
func (p Property) IsFloat() bool { return p.kind == PropNumeric && p.isFloat }

// Str returns the value of a STRING property.
func (p Property) Str() (string, bool) {
	if p.kind != PropString {
		return "", false
	}
	return p.s, true
}

// Node returns the referenced node of a NODE property.
func (p Property) Node() (NodeRef, bool) {
	if p.kind != PropNode {
		return nil, false
	}
	return p.node, true
}

// Items returns a copy of the elements of a COLLECTION property.
func (p Property) Items() []Property {
	if p.kind != PropCollection {
		return nil
	}
	cp := make([]Property, len(p.items))
	copy(cp, p.items)
	return cp
}

// Value returns the payload as int64, float64, string, NodeRef or []Property.
func (p Property) Value() any {
	switch p.kind {
	case PropNumeric:
		if p.isFloat {
			return p.f
		}
		return p.i
	case PropString:
		return p.s
	case PropNode:
		return p.node
	case PropCollection:
		return p.Items()
	}
	return nil
}

// String renders the property the way it is substituted into messages.
func (p Property) String() string {
	switch p.kind {
	case PropNumeric:
		if p.isFloat {
			return strconv.FormatFloat(p.f, 'g', -1, 64)
		}
		return strconv.FormatInt(p.i, 10)
	case PropString:
		return p.s
	case PropNode:
		if p.node == nil {
			return ""
		}
		return strings.TrimSpace(p.node.ToSourceCode())
	case PropCollection:
		parts := make([]string, len(p.items))
		for i, it := range p.items {
			parts[i] = it.String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
