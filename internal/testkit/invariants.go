package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"loom/internal/green"
	"loom/internal/source"
	"loom/internal/syntax"
)

// CheckTree runs the structural invariants of a parsed file:
// 1) the tree prints back exactly the file content
// 2) the root is as wide as the content
// 3) every child starts where its previous sibling ended and children cover
// their parent
// 4) every child points back to its parent
// 5) minutiae of a token lie between the token's position and its text
func CheckTree(tree *syntax.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got := tree.ToSourceCode(); got != string(sf.Content) {
		return fmt.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(sf.Content))
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := tree.Root()
	if root.Position() != 0 || root.Width() != lenContent {
		return fmt.Errorf("root covers [%d..%d), want [0..%d)", root.Position(), root.Position()+root.Width(), lenContent)
	}
	if root.Parent() != nil {
		return fmt.Errorf("root has a parent %s", root.Parent().Kind())
	}
	return checkNode(root)
}

func checkNode(n syntax.Node) error {
	if tok, ok := n.(*syntax.Token); ok {
		return checkToken(tok)
	}
	pos := n.Position()
	for _, c := range n.Children() {
		if c.Parent() != n {
			return fmt.Errorf("%s at %d: parent link broken", c.Kind(), c.Position())
		}
		if c.Position() != pos {
			return fmt.Errorf("%s starts at %d, previous sibling ended at %d", c.Kind(), c.Position(), pos)
		}
		if err := checkNode(c); err != nil {
			return err
		}
		pos += c.Width()
	}
	if end := n.Position() + n.Width(); pos != end {
		return fmt.Errorf("%s [%d..%d): children end at %d", n.Kind(), n.Position(), end, pos)
	}
	r := n.TextRange()
	if r.Start < n.Position() || r.End > n.Position()+n.Width() || r.Start > r.End {
		return fmt.Errorf("%s: text range [%d..%d) outside node", n.Kind(), r.Start, r.End)
	}
	return nil
}

func checkToken(tok *syntax.Token) error {
	g := tok.Green()
	if tok.IsMissing() && g.TextWidth() != 0 {
		return fmt.Errorf("missing %s has text %q", tok.Kind(), g.Text())
	}
	lead, trail := tok.LeadingMinutiae(), tok.TrailingMinutiae()
	if lead.Position() != tok.Position() {
		return fmt.Errorf("%s: leading minutiae at %d, token at %d", tok.Kind(), lead.Position(), tok.Position())
	}
	textStart := tok.Position() + lead.Width()
	if want := textStart + g.TextWidth(); trail.Position() != want {
		return fmt.Errorf("%s: trailing minutiae at %d, want %d", tok.Kind(), trail.Position(), want)
	}
	if lead.Width()+g.TextWidth()+trail.Width() != tok.Width() {
		return fmt.Errorf("%s: parts do not add up to width %d", tok.Kind(), tok.Width())
	}
	for _, m := range lead.Items() {
		if inv := m.InvalidToken(); inv != nil && green.Text(inv.Green()) != m.Text() {
			return fmt.Errorf("invalid-node minutiae at %d lost its text", m.Position())
		}
	}
	return nil
}
