package syntax

import (
	"loom/internal/green"
	"loom/internal/kind"
)

// CreateToken builds an unlinked token with its fixed spelling.
func CreateToken(k kind.Kind, leading, trailing MinutiaeList) *Token {
	return newToken(green.NewToken(k, "", leading.internal(), trailing.internal()), 0, nil)
}

func CreateIdentifierToken(text string, leading, trailing MinutiaeList) *Token {
	return newToken(green.NewToken(kind.Identifier, text, leading.internal(), trailing.internal()), 0, nil)
}

// CreateLiteralToken builds a literal token of kind k with text as written.
func CreateLiteralToken(k kind.Kind, text string, leading, trailing MinutiaeList) *Token {
	return newToken(green.NewToken(k, text, leading.internal(), trailing.internal()), 0, nil)
}

// CreateMissingToken builds a zero-width token marked missing.
func CreateMissingToken(k kind.Kind, diags ...green.Diagnostic) *Token {
	return newToken(green.NewMissingToken(k, diags...), 0, nil)
}

func CreateWhitespace(text string) Minutiae {
	return Minutiae{green: green.NewMinutiae(kind.WhitespaceMinutiae, text)}
}

func CreateEndOfLine(text string) Minutiae {
	return Minutiae{green: green.NewMinutiae(kind.EndOfLineMinutiae, text)}
}

func CreateComment(text string) Minutiae {
	return Minutiae{green: green.NewMinutiae(kind.CommentMinutiae, text)}
}

// CreateInvalidNodeMinutiae wraps a token that should stay in the text but
// not in the tree.
func CreateInvalidNodeMinutiae(t *Token) Minutiae {
	return Minutiae{green: green.NewInvalidNodeMinutiae(t.green)}
}

func CreateMinutiaeList(items ...Minutiae) MinutiaeList {
	gs := make([]*green.Minutiae, 0, len(items))
	for _, m := range items {
		gs = append(gs, m.green)
	}
	return MinutiaeList{green: green.NewMinutiaeList(gs...)}
}

// Space is a single-space minutiae list.
func Space() MinutiaeList { return CreateMinutiaeList(CreateWhitespace(" ")) }
