// Package green holds the internal layer of the syntax tree: immutable,
// position-free nodes that know their kind, their width and their slots.
//
// Invariants:
//   - Nodes never change after construction; every "modification" returns a
//     new node and reuses the untouched children by pointer.
//   - Width is the length in bytes of the text the node covers, minutiae
//     included, and is computed once when the node is built.
//   - Concatenating the text of all tokens (with their minutiae) in slot order
//     reproduces the source exactly.
//   - A node may be shared by any number of parents and goroutines.
//
// Nodes of a given kind have a fixed slot layout (layout_gen.go). NewNode
// validates slots against it; the generated New<Kind> helpers panic when the
// caller breaks the layout.
package green

//go:generate go run ../../cmd/syntaxgen -spec ../../cmd/syntaxgen/nodes.toml -green . -syntax ../syntax
