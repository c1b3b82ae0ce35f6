package parser

import (
	"slices"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/syntax"
	"loom/internal/token"
	"loom/internal/trace"
)

type Result struct {
	Tree *syntax.Tree
	// Orphans are lexer findings that did not land on an invalid token.
	Orphans []diag.Diagnostic
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx    *lexer.Lexer
	file  *source.File
	opts  Options
	cache *green.Cache
	buf   []lexed // буфер lookahead поверх однотокенного Peek лексера

	// ошибки лексера по началу спана; забираются, когда Invalid токен
	// превращается в invalid-node minutiae
	lexDiags map[uint32][]diag.Diagnostic
	// invalid-node minutiae, которые станут leading у следующего токена
	pending []*green.Minutiae
	// подряд пропущенные токены получают одну диагностику на всех
	skipping bool
}

func (p *Parser) collectLexDiag(d diag.Diagnostic) {
	p.lexDiags[d.Primary.Start] = append(p.lexDiags[d.Primary.Start], d)
}

// ParseFile: входная точка для разбора одного файла.
// Парсер никогда не падает на плохом вводе: всё, что не легло в грамматику,
// оказывается в дереве как missing токены или invalid-node minutiae.
func ParseFile(file *source.File, opts Options) Result {
	p := &Parser{
		file:     file,
		opts:     opts,
		cache:    opts.Cache,
		lexDiags: make(map[uint32][]diag.Diagnostic),
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: diag.ReporterFunc(p.collectLexDiag)})

	root := p.parseModulePart()
	res := Result{Tree: syntax.NewTree(root, file.ID)}
	for _, start := range sortedKeys(p.lexDiags) {
		res.Orphans = append(res.Orphans, p.lexDiags[start]...)
	}
	if opts.Reporter != nil {
		for _, d := range res.Orphans {
			opts.Reporter.Report(d)
		}
	}
	return res
}

func sortedKeys(m map[uint32][]diag.Diagnostic) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// lexed: токен из буфера вместе с невалидными токенами перед ним.
type lexed struct {
	tok     token.Token
	invalid []*green.Minutiae
}

// peekN возвращает n-й токен вперёд, не съедая его; peekN(0): текущий.
// Invalid токены лексера сразу становятся minutiae следующего токена,
// так что грамматика их не видит.
func (p *Parser) peekN(n int) token.Token {
	for len(p.buf) <= n {
		var carry []*green.Minutiae
		tok := p.lx.Next()
		for tok.Kind == kind.Invalid {
			carry = append(carry, p.invalidMinutiae(tok))
			tok = p.lx.Next()
		}
		p.buf = append(p.buf, lexed{tok: tok, invalid: carry})
	}
	return p.buf[n].tok
}

func (p *Parser) peek() token.Token { return p.peekN(0) }

func (p *Parser) at(k kind.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...kind.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// next: снимает токен с буфера без построения зелёного узла; невалидные
// токены перед ним переходят в pending.
func (p *Parser) next() token.Token {
	p.peek()
	head := p.buf[0]
	p.buf = p.buf[1:]
	p.pending = append(p.pending, head.invalid...)
	return head.tok
}

// advance: съедает текущий токен и строит его зелёную версию.
// Накопленные invalid-node minutiae встают в начало его leading.
func (p *Parser) advance() *green.Token {
	p.skipping = false
	tok := p.next()
	lead := p.minutiae(tok.Leading, p.pending)
	p.pending = nil
	return p.cache.Token(tok.Kind, tokenText(tok), lead, p.minutiae(tok.Trailing, nil))
}

func tokenText(tok token.Token) string {
	if tok.Kind == kind.EOF {
		return ""
	}
	return tok.Text
}

func (p *Parser) minutiae(trivia []token.Trivia, prefix []*green.Minutiae) *green.MinutiaeList {
	if len(trivia) == 0 && len(prefix) == 0 {
		return green.EmptyMinutiae()
	}
	items := make([]*green.Minutiae, 0, len(prefix)+len(trivia))
	items = append(items, prefix...)
	for _, tr := range trivia {
		items = append(items, p.cache.Minutiae(tr.Kind, tr.Text))
	}
	return p.cache.MinutiaeList(items...)
}

// expect: ожидаем конкретный токен. Если его нет, ничего не съедаем и
// возвращаем missing токен с диагностикой.
func (p *Parser) expect(k kind.Kind, code diag.Code) *green.Token {
	if p.at(k) {
		return p.advance()
	}
	return missing(k, code)
}

// accept съедает токен только если он есть; иначе nil (пустой слот).
func (p *Parser) accept(k kind.Kind) *green.Token {
	if p.at(k) {
		return p.advance()
	}
	return nil
}

func missing(k kind.Kind, code diag.Code) *green.Token {
	var d green.Diagnostic
	switch k {
	case kind.Identifier:
		d = green.NewDiagnostic(code, "missing identifier")
	default:
		d = green.NewDiagnostic(code, "missing {0}", diag.StringProperty("'"+k.Text()+"'"))
	}
	return green.NewMissingToken(k, d)
}

func missingCode(k kind.Kind) diag.Code {
	switch k {
	case kind.Semicolon:
		return diag.SynMissingSemicolon
	case kind.Identifier:
		return diag.SynMissingIdentifier
	case kind.CloseParen:
		return diag.SynMissingCloseParen
	case kind.CloseBrace:
		return diag.SynMissingCloseBrace
	case kind.Equal:
		return diag.SynMissingEquals
	default:
		return diag.SynMissingToken
	}
}

// want: expect с кодом диагностики по виду токена.
func (p *Parser) want(k kind.Kind) *green.Token {
	return p.expect(k, missingCode(k))
}

// skip съедает текущий токен и откладывает его как invalid-node minutiae.
// Первый токен из серии получает diagnostic с кодом code.
func (p *Parser) skip(code diag.Code, msg string) {
	if p.at(kind.EOF) {
		return
	}
	tok := p.next()
	bad := p.cache.Token(tok.Kind, tok.Text, p.minutiae(tok.Leading, nil), p.minutiae(tok.Trailing, nil))
	if !p.skipping {
		bad = bad.WithDiagnostics(green.NewDiagnostic(code, msg, diag.StringProperty(tok.Text)))
	}
	p.pending = append(p.pending, green.NewInvalidNodeMinutiae(bad))
	p.skipping = true
}

// invalidMinutiae заворачивает токен в minutiae. Ошибки лексера на нём
// переезжают в дерево; без них токен получает SynUnexpectedToken.
func (p *Parser) invalidMinutiae(tok token.Token) *green.Minutiae {
	var diags []green.Diagnostic
	if found, ok := p.lexDiags[tok.Span.Start]; ok {
		delete(p.lexDiags, tok.Span.Start)
		for _, d := range found {
			diags = append(diags, green.Diagnostic{Code: d.Code, Severity: d.Severity, Message: d.Message, Props: d.Properties})
		}
	} else {
		diags = append(diags, green.NewDiagnostic(diag.SynUnexpectedToken, "unexpected {0}", diag.StringProperty(tok.Text)))
	}
	bad := green.NewToken(tok.Kind, tok.Text, p.minutiae(tok.Leading, nil), p.minutiae(tok.Trailing, nil))
	return green.NewInvalidNodeMinutiae(bad.WithDiagnostics(diags...))
}

// unexpected пропускает текущий токен с типовой диагностикой.
func (p *Parser) unexpected() {
	p.skip(diag.SynUnexpectedToken, "unexpected {0}")
}

func (p *Parser) node(k kind.Kind, slots ...green.Node) *green.NonTerminal {
	return p.cache.MustNode(k, slots...)
}

func (p *Parser) list(items []green.Node) *green.List {
	return green.NewList(items...)
}

// span открывает node-scope событие трассировки.
func (p *Parser) span(name string) *trace.Span {
	return trace.Begin(p.opts.Tracer, trace.ScopeNode, name, p.opts.ParentSpan)
}
