// Package diag defines the diagnostic model shared by the lexer, the parser,
// the tree core and the check pass.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Message: a template; "{N}" is replaced by the N-th property on render.
//   - Primary span: the source.Span the finding points at.
//   - Properties: ordered typed arguments (property.go).
//   - Notes and Fixes: optional secondary context and text edits.
//
// Property is a closed tagged union with four kinds: NUMERIC, STRING, NODE
// and COLLECTION. Values are built only through the constructor functions and
// never change after construction; accessors hand out copies.
//
// # Attachment paths
//
// Findings known while a node is built (missing tokens, skipped input) live on
// the green node itself as positionless records and are surfaced with spans by
// syntax.Tree.Diagnostics. Findings produced after the fact go through a
// Reporter into a Bag, which keeps detection order until Sort is called.
//
// Package diag does not render anything; see internal/diagfmt.
package diag
