package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/kind"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/syntax"
)

func newRenameCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [flags] <file.bal> <old> <new>",
		Short: "Rename an identifier everywhere in a file",
		Long: `Rename rewrites every identifier token spelled <old> to <new> through a tree
transformation. Trivia and untouched subtrees are kept as they are. Prints the
result, or replaces the file with --write.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runRename(cmd, args[0], args[1], args[2])
		},
	}
	cmd.Flags().Bool("write", false, "write the result back to the file")
	return cmd
}

// renamer заменяет текст идентификаторов; остальное дерево переиспользуется.
type renamer struct {
	syntax.TreeModifier
	from, to string
	count    int
}

func newRenamer(from, to string) *renamer {
	r := &renamer{from: from, to: to}
	r.Outer = r
	return r
}

func (r *renamer) TransformToken(n *syntax.Token) syntax.Node {
	if n.Kind() == kind.Identifier && !n.IsMissing() && n.Text() == r.from {
		r.count++
		return n.WithText(r.to)
	}
	return n
}

// validIdentifier reports whether name lexes as exactly one identifier.
func validIdentifier(name string) bool {
	fs := source.NewFileSet()
	bag := diag.NewBag(1)
	lx := lexer.New(fs.Get(fs.AddVirtual("name", []byte(name))), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tok := lx.Next()
	if tok.Kind != kind.Identifier || tok.Text != name || len(tok.Leading) > 0 || len(tok.Trailing) > 0 {
		return false
	}
	return lx.Next().Kind == kind.EOF && bag.Len() == 0
}

func (st *cliState) runRename(cmd *cobra.Command, path, from, to string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	if !validIdentifier(from) {
		return fmt.Errorf("%q is not an identifier", from)
	}
	if !validIdentifier(to) {
		return fmt.Errorf("%q is not an identifier", to)
	}

	opts, err := st.driverOptions(cmd, nil)
	if err != nil {
		return err
	}
	result, err := driver.Parse(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	errOut := cmd.ErrOrStderr()
	if result.Bag.HasErrors() {
		diagfmt.Pretty(errOut, result.Bag, result.FileSet, st.prettyOpts(cmd, errOut))
		return fmt.Errorf("%s has syntax errors, not renaming", path)
	}

	r := newRenamer(from, to)
	next, err := result.Tree.ModifyWith(r)
	if err != nil {
		return err
	}
	if !quiet(cmd) {
		fmt.Fprintf(errOut, "renamed %d occurrence(s) of %s\n", r.count, from)
	}

	if !write {
		_, err = fmt.Fprint(cmd.OutOrStdout(), next.ToSourceCode())
		return err
	}
	if r.count == 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(next.ToSourceCode()), info.Mode().Perm())
}
