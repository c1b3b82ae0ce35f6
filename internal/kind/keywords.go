package kind

var keywords = map[string]Kind{
	"import":   ImportKeyword,
	"as":       AsKeyword,
	"public":   PublicKeyword,
	"final":    FinalKeyword,
	"listener": ListenerKeyword,
	"const":    ConstKeyword,
	"function": FunctionKeyword,
	"returns":  ReturnsKeyword,
	"return":   ReturnKeyword,
	"new":      NewKeyword,
	"true":     TrueKeyword,
	"false":    FalseKeyword,
	"int":      IntKeyword,
	"string":   StringKeyword,
	"boolean":  BooleanKeyword,
	"float":    FloatKeyword,
	"decimal":  DecimalKeyword,
	"any":      AnyKeyword,
	"error":    ErrorKeyword,
}

// LookupKeyword returns the keyword kind for ident. Only the exact
// lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Text returns the fixed spelling of keyword and punctuation kinds, and ""
// for kinds whose text varies (identifiers, literals, minutiae, nodes).
func (k Kind) Text() string {
	if k.IsKeyword() || k.IsPunct() {
		return fixedText[k]
	}
	return ""
}

var fixedText = [...]string{
	ImportKeyword:   "import",
	AsKeyword:       "as",
	PublicKeyword:   "public",
	FinalKeyword:    "final",
	ListenerKeyword: "listener",
	ConstKeyword:    "const",
	FunctionKeyword: "function",
	ReturnsKeyword:  "returns",
	ReturnKeyword:   "return",
	NewKeyword:      "new",
	TrueKeyword:     "true",
	FalseKeyword:    "false",
	IntKeyword:      "int",
	StringKeyword:   "string",
	BooleanKeyword:  "boolean",
	FloatKeyword:    "float",
	DecimalKeyword:  "decimal",
	AnyKeyword:      "any",
	ErrorKeyword:    "error",
	Semicolon:       ";",
	Comma:           ",",
	Dot:             ".",
	Colon:           ":",
	Slash:           "/",
	Equal:           "=",
	OpenParen:       "(",
	CloseParen:      ")",
	OpenBrace:       "{",
	CloseBrace:      "}",
	QuestionMark:    "?",
	Plus:            "+",
	Minus:           "-",
	Asterisk:        "*",
	Percent:         "%",
	Exclamation:     "!",
}
