package kind

//go:generate stringer -type=Kind

// Kind tags a syntax element.
type Kind uint16

const (
	// Invalid is an unrecognized character sequence produced by the lexer.
	Invalid Kind = iota
	// EOF marks the end of input. It carries the trailing minutiae of the file.
	EOF

	// Identifier represents an identifier token.
	Identifier
	// DecimalIntegerLiteral represents an integer literal token.
	DecimalIntegerLiteral
	// DecimalFloatLiteral represents a floating point literal token.
	DecimalFloatLiteral
	// StringLiteral represents a double-quoted string literal token.
	StringLiteral

	ImportKeyword   // import
	AsKeyword       // as
	PublicKeyword   // public
	FinalKeyword    // final
	ListenerKeyword // listener
	ConstKeyword    // const
	FunctionKeyword // function
	ReturnsKeyword  // returns
	ReturnKeyword   // return
	NewKeyword      // new
	TrueKeyword     // true
	FalseKeyword    // false
	IntKeyword      // int
	StringKeyword   // string
	BooleanKeyword  // boolean
	FloatKeyword    // float
	DecimalKeyword  // decimal
	AnyKeyword      // any
	ErrorKeyword    // error

	Semicolon    // ;
	Comma        // ,
	Dot          // .
	Colon        // :
	Slash        // /
	Equal        // =
	OpenParen    // (
	CloseParen   // )
	OpenBrace    // {
	CloseBrace   // }
	QuestionMark // ?
	Plus         // +
	Minus        // -
	Asterisk     // *
	Percent      // %
	Exclamation  // !

	// WhitespaceMinutiae is a run of spaces, tabs or a byte order mark.
	WhitespaceMinutiae
	// EndOfLineMinutiae is a single "\n" or "\r\n".
	EndOfLineMinutiae
	// CommentMinutiae is a "//" comment up to, not including, the line end.
	CommentMinutiae
	// InvalidNodeMinutiae wraps a token the parser skipped during recovery.
	InvalidNodeMinutiae

	// List is a variable-arity child list (repeated or separated elements).
	List
	ModulePart
	ImportDeclaration
	ImportOrgName
	ImportPrefix
	ListenerDeclaration
	ConstantDeclaration
	ModuleVariableDeclaration
	FunctionDefinition
	FunctionSignature
	RequiredParameter
	ReturnTypeDescriptor
	FunctionBodyBlock
	VariableDeclaration
	ExpressionStatement
	ReturnStatement
	BinaryExpression
	UnaryExpression
	BracedExpression
	FunctionCallExpression
	MethodCallExpression
	FieldAccessExpression
	ImplicitNewExpression
	ParenthesizedArgList
	PositionalArgument
	NamedArgument
	BasicLiteral
	SimpleNameReference
	QualifiedNameReference
	BuiltinSimpleNameReference
	OptionalTypeDescriptor

	numKinds
)

const (
	firstKeyword  = ImportKeyword
	lastKeyword   = ErrorKeyword
	firstPunct    = Semicolon
	lastPunct     = Exclamation
	firstMinutiae = WhitespaceMinutiae
	lastMinutiae  = InvalidNodeMinutiae
	firstNode     = List
)

// Count is the number of kinds; valid kinds are in [0, Count).
const Count = int(numKinds)

// IsToken reports whether k tags a token.
func (k Kind) IsToken() bool { return k < firstMinutiae }

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= firstKeyword && k <= lastKeyword }

// IsPunct reports whether k is an operator or punctuation token.
func (k Kind) IsPunct() bool { return k >= firstPunct && k <= lastPunct }

// IsLiteral reports whether k is a literal token, boolean keywords included.
func (k Kind) IsLiteral() bool {
	switch k {
	case DecimalIntegerLiteral, DecimalFloatLiteral, StringLiteral, TrueKeyword, FalseKeyword:
		return true
	default:
		return false
	}
}

// IsBuiltinType reports whether k is a built-in simple type keyword.
func (k Kind) IsBuiltinType() bool {
	switch k {
	case IntKeyword, StringKeyword, BooleanKeyword, FloatKeyword, DecimalKeyword, AnyKeyword, ErrorKeyword:
		return true
	default:
		return false
	}
}

// IsMinutiae reports whether k tags a trivia piece.
func (k Kind) IsMinutiae() bool { return k >= firstMinutiae && k <= lastMinutiae }

// IsNode reports whether k tags a non-terminal (List included).
func (k Kind) IsNode() bool { return k >= firstNode && k < numKinds }

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k < numKinds }
