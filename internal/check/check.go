package check

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"loom/internal/diag"
	"loom/internal/kind"
	"loom/internal/source"
	"loom/internal/syntax"
)

// DefaultMaxArgs is the argument limit used when Options.MaxArgs is zero.
const DefaultMaxArgs = 255

// Options configure a check pass over a tree.
type Options struct {
	Reporter diag.Reporter
	// MaxArgs limits call arguments; negative disables the check.
	MaxArgs int
}

// Result stores what the pass learned about the module.
type Result struct {
	// Declared maps NFC-normalised module-level names to their first declaration.
	Declared map[string]syntax.ModuleMember
	// Unused lists import prefixes that no qualified name refers to.
	Unused   []string
	Reported int
}

// Check walks a built tree and reports findings that need the whole module:
// duplicate names, integer literals out of range, calls with too many
// arguments and unused imports. Trees with construction diagnostics are
// checked too; missing tokens are ignored.
func Check(tree *syntax.Tree, opts Options) Result {
	res := Result{Declared: make(map[string]syntax.ModuleMember)}
	if tree == nil || tree.Module() == nil {
		return res
	}
	maxArgs := opts.MaxArgs
	if maxArgs == 0 {
		maxArgs = DefaultMaxArgs
	}
	c := &checker{
		tree:     tree,
		reporter: opts.Reporter,
		maxArgs:  maxArgs,
		used:     make(map[string]bool),
		result:   &res,
	}
	c.Outer = c
	c.run()
	return res
}

type checker struct {
	syntax.BaseVisitor
	tree     *syntax.Tree
	reporter diag.Reporter
	maxArgs  int
	used     map[string]bool
	result   *Result
}

func (c *checker) run() {
	mod := c.tree.Module()
	c.checkDuplicates(mod.Members())
	mod.Accept(c)
	c.checkImports(mod.Imports())
}

func (c *checker) report(b *diag.ReportBuilder) {
	b.Emit()
	c.result.Reported++
}

func (c *checker) span(n syntax.Node) source.Span {
	return n.TextRange().Span(c.tree.File())
}

// memberName returns the declared name token, nil for a missing one.
func memberName(m syntax.ModuleMember) *syntax.Token {
	var tok *syntax.Token
	switch d := m.(type) {
	case *syntax.ListenerDeclaration:
		tok = d.VariableName()
	case *syntax.ConstantDeclaration:
		tok = d.VariableName()
	case *syntax.ModuleVariableDeclaration:
		tok = d.VariableName()
	case *syntax.FunctionDefinition:
		tok = d.FunctionName()
	}
	if tok == nil || tok.IsMissing() {
		return nil
	}
	return tok
}

func (c *checker) checkDuplicates(members syntax.NodeList[syntax.ModuleMember]) {
	for _, m := range members.Items() {
		name := memberName(m)
		if name == nil {
			continue
		}
		key := norm.NFC.String(name.Text())
		first, seen := c.result.Declared[key]
		if !seen {
			c.result.Declared[key] = m
			continue
		}
		b := diag.ReportError(c.reporter, diag.ChkDuplicateName, c.span(name),
			"duplicate module-level name '{0}'; first declared as {1}").
			WithProperty(diag.StringProperty(name.Text())).
			WithProperty(diag.NodeProperty(first))
		if prev := memberName(first); prev != nil {
			b = b.WithNote(c.span(prev), "previous declaration")
		}
		c.report(b)
	}
}

func (c *checker) checkImports(imports syntax.NodeList[*syntax.ImportDeclaration]) {
	for _, imp := range imports.Items() {
		prefix := importPrefix(imp)
		if prefix == "" || prefix == "_" || c.used[prefix] {
			continue
		}
		c.result.Unused = append(c.result.Unused, prefix)
		c.report(diag.ReportWarning(c.reporter, diag.ChkUnusedImport, c.span(imp),
			"unused import '{0}'").
			WithProperty(diag.StringProperty(prefix)))
	}
}

// importPrefix is the explicit "as" prefix or the last module name part.
func importPrefix(imp *syntax.ImportDeclaration) string {
	if p := imp.Prefix(); p != nil {
		if tok := p.Prefix(); !tok.IsMissing() {
			return norm.NFC.String(tok.Text())
		}
		return ""
	}
	parts := imp.ModuleName()
	if parts.Len() == 0 {
		return ""
	}
	last := parts.Get(parts.Len() - 1)
	if last.IsMissing() {
		return ""
	}
	return norm.NFC.String(last.Text())
}

func (c *checker) VisitImportDeclaration(*syntax.ImportDeclaration) {}

func (c *checker) VisitQualifiedNameReference(n *syntax.QualifiedNameReference) {
	if p := n.ModulePrefix(); !p.IsMissing() {
		c.used[norm.NFC.String(p.Text())] = true
	}
}

func (c *checker) VisitUnaryExpression(n *syntax.UnaryExpression) {
	// -9223372036854775808 в диапазоне, хотя сам литерал нет
	if lit, ok := n.Expression().(*syntax.BasicLiteral); ok && n.UnaryOperator().Kind() == kind.Minus {
		if c.intLiteral(lit, "-") {
			return
		}
	}
	c.BaseVisitor.VisitUnaryExpression(n)
}

func (c *checker) VisitBasicLiteral(n *syntax.BasicLiteral) {
	c.intLiteral(n, "")
}

// intLiteral reports an out-of-range integer literal. It returns true when
// the literal was an integer, reported or not.
func (c *checker) intLiteral(n *syntax.BasicLiteral, sign string) bool {
	tok := n.LiteralToken()
	if tok.Kind() != kind.DecimalIntegerLiteral || tok.IsMissing() {
		return false
	}
	_, err := strconv.ParseInt(sign+tok.Text(), 10, 64)
	if err == nil {
		return true
	}
	if !errors.Is(err, strconv.ErrRange) {
		return true
	}
	if sign != "" {
		// пусть отрапортует сам литерал без знака
		return false
	}
	c.report(diag.ReportError(c.reporter, diag.ChkIntOverflow, c.span(tok),
		"integer literal {0} does not fit in int, max is {1}").
		WithProperty(diag.StringProperty(tok.Text())).
		WithProperty(diag.NumericProperty(math.MaxInt64)))
	return true
}

func (c *checker) VisitFunctionCallExpression(n *syntax.FunctionCallExpression) {
	c.checkArgs(n, n.Arguments().Len())
	c.BaseVisitor.VisitFunctionCallExpression(n)
}

func (c *checker) VisitMethodCallExpression(n *syntax.MethodCallExpression) {
	c.checkArgs(n, n.Arguments().Len())
	c.BaseVisitor.VisitMethodCallExpression(n)
}

func (c *checker) VisitParenthesizedArgList(n *syntax.ParenthesizedArgList) {
	c.checkArgs(n, n.Arguments().Len())
	c.BaseVisitor.VisitParenthesizedArgList(n)
}

func (c *checker) checkArgs(call syntax.Node, count int) {
	if c.maxArgs < 0 || count <= c.maxArgs {
		return
	}
	c.report(diag.ReportError(c.reporter, diag.ChkTooManyArgs, c.span(call),
		"call has {0} arguments, the limit is {1}").
		WithProperty(diag.NumericProperty(int64(count))).
		WithProperty(diag.NumericProperty(int64(c.maxArgs))))
}
