// Package kind enumerates every syntax kind of the loom tree: tokens,
// minutiae (trivia) and non-terminal nodes.
//
// Invariants:
//   - The set is closed; every green and external node reports exactly one Kind.
//   - Token kinds, minutiae kinds and node kinds occupy disjoint, contiguous
//     ranges, so the IsToken / IsMinutiae / IsNode predicates are range checks.
//   - Keywords are case sensitive. Built-in type names (int, string, ...) are
//     keywords, unlike identifiers that merely name user types.
package kind
