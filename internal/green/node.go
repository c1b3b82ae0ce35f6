package green

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"loom/internal/diag"
	"loom/internal/kind"
)

// Node is any element of the internal layer.
type Node interface {
	Kind() kind.Kind
	// Width is the text length including leading and trailing minutiae.
	Width() uint32
	SlotCount() int
	// Slot returns nil for an absent optional slot.
	Slot(i int) Node
	Diagnostics() []Diagnostic
	// HasDiagnostics reports diagnostics on the node or anywhere below it.
	HasDiagnostics() bool
	IsMissing() bool
	writeTo(sb *strings.Builder)
}

// Diagnostic is a finding recorded on a node while it is built. It has no
// position; the external layer supplies one from the node it sits on.
type Diagnostic struct {
	Code     diag.Code
	Severity diag.Severity
	Message  string
	Props    []diag.Property
}

// NewDiagnostic returns an error-severity construction diagnostic.
func NewDiagnostic(code diag.Code, msg string, props ...diag.Property) Diagnostic {
	return Diagnostic{Code: code, Severity: diag.SevError, Message: msg, Props: props}
}

// Text renders the full source text of n.
func Text(n Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(n.Width()))
	n.writeTo(&sb)
	return sb.String()
}

func widthOf(s string) uint32 {
	w, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("text width overflow: %w", err))
	}
	return w
}

func appendDiags(base []Diagnostic, extra []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
