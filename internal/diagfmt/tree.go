package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"loom/internal/source"
	"loom/internal/syntax"
)

// TreeNodeOutput is one node of the JSON tree dump.
type TreeNodeOutput struct {
	Kind     string           `json:"kind"`
	Start    uint32           `json:"start"`
	End      uint32           `json:"end"`
	Text     string           `json:"text,omitempty"`
	Missing  bool             `json:"missing,omitempty"`
	Errors   bool             `json:"has_diagnostics,omitempty"`
	Leading  []MinutiaeOutput `json:"leading,omitempty"`
	Trailing []MinutiaeOutput `json:"trailing,omitempty"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// MinutiaeOutput is a trivia piece in the JSON tree dump.
type MinutiaeOutput struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	Text  string `json:"text"`
}

// TreeOutput is the root of the JSON tree dump.
type TreeOutput struct {
	File string         `json:"file"`
	Root TreeNodeOutput `json:"root"`
}

// FormatTreePretty печатает дерево с отступами:
//
//	ModulePart [0..29]
//	└─ ListenerDeclaration [0..29]
//	   ├─ PublicKeyword "public" [0..6]
//
// Для токенов выводится текст, для отсутствующих <missing>.
func FormatTreePretty(w io.Writer, tree *syntax.Tree, fs *source.FileSet, opts TreeOpts) error {
	if tree == nil {
		return nil
	}
	if known(fs, tree.File()) {
		if _, err := fmt.Fprintf(w, "%s\n", formatPath(fs.Get(tree.File()), fs, opts.PathMode)); err != nil {
			return err
		}
	}
	p := &treePrinter{w: w, opts: opts}
	p.node(tree.Root(), "", "", true)
	return p.err
}

type treePrinter struct {
	w    io.Writer
	opts TreeOpts
	err  error
}

func (p *treePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *treePrinter) node(n syntax.Node, prefix, branch string, last bool) {
	p.printf("%s%s%s\n", prefix, branch, label(n))

	childPrefix := prefix
	if branch != "" {
		if last {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}

	if tok, ok := n.(*syntax.Token); ok {
		if p.opts.Minutiae {
			p.minutiae(childPrefix, "leading", tok.LeadingMinutiae())
			p.minutiae(childPrefix, "trailing", tok.TrailingMinutiae())
		}
		return
	}

	children := n.Children()
	for i, c := range children {
		b := "├─ "
		isLast := i == len(children)-1
		if isLast {
			b = "└─ "
		}
		p.node(c, childPrefix, b, isLast)
	}
}

func (p *treePrinter) minutiae(prefix, side string, list syntax.MinutiaeList) {
	for _, m := range list.Items() {
		r := m.TextRange()
		p.printf("%s· %s %s %q [%d..%d]\n", prefix, side, m.Kind(), m.Text(), r.Start, r.End)
	}
}

func label(n syntax.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Kind().String())
	if tok, ok := n.(*syntax.Token); ok {
		if tok.IsMissing() {
			sb.WriteString(" <missing>")
		} else {
			fmt.Fprintf(&sb, " %q", tok.Text())
		}
	}
	r := n.TextRange()
	fmt.Fprintf(&sb, " [%d..%d]", r.Start, r.End)
	if n.HasDiagnostics() {
		sb.WriteString(" !")
	}
	return sb.String()
}

// BuildTreeOutput converts a tree into its JSON form without encoding it.
func BuildTreeOutput(tree *syntax.Tree, fs *source.FileSet, opts TreeOpts) TreeOutput {
	var out TreeOutput
	if tree == nil {
		return out
	}
	if known(fs, tree.File()) {
		out.File = formatPath(fs.Get(tree.File()), fs, opts.PathMode)
	}
	out.Root = treeNode(tree.Root(), opts)
	return out
}

func treeNode(n syntax.Node, opts TreeOpts) TreeNodeOutput {
	r := n.TextRange()
	out := TreeNodeOutput{
		Kind:    n.Kind().String(),
		Start:   r.Start,
		End:     r.End,
		Missing: n.IsMissing(),
		Errors:  n.HasDiagnostics(),
	}
	if tok, ok := n.(*syntax.Token); ok {
		out.Text = tok.Text()
		if opts.Minutiae {
			out.Leading = minutiaeOutput(tok.LeadingMinutiae())
			out.Trailing = minutiaeOutput(tok.TrailingMinutiae())
		}
		return out
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, treeNode(c, opts))
	}
	return out
}

func minutiaeOutput(list syntax.MinutiaeList) []MinutiaeOutput {
	if list.IsEmpty() {
		return nil
	}
	out := make([]MinutiaeOutput, 0, list.Len())
	for _, m := range list.Items() {
		out = append(out, MinutiaeOutput{
			Kind:  m.Kind().String(),
			Start: m.Position(),
			Text:  m.Text(),
		})
	}
	return out
}

// FormatTreeJSON выводит дерево в JSON формате
func FormatTreeJSON(w io.Writer, tree *syntax.Tree, fs *source.FileSet, opts TreeOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(tree, fs, opts))
}
