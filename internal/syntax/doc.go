// Package syntax is the external layer of the syntax tree: typed nodes with
// absolute positions and parent links, built lazily over the green layer.
//
// A node materializes a child the first time an accessor asks for it and
// keeps it, so repeated calls return the same instance. Children of one
// revision are never shared with another; after Modify the untouched
// subtrees are new wrappers around the same green nodes.
//
// External trees are single-owner: the child cache is written without
// locking. Goroutines that want to walk the same green tree each take their
// own root with Tree.Fork.
//
// Every node kind has a generated struct, accessors, a Modify method, a
// Create function and a Visit/Transform method (see the *_gen.go files,
// regenerated with go generate ./internal/green).
package syntax
