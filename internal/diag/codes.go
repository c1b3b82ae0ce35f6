package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexByteOrderMark      Code = 1004

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynMissingToken      Code = 2002
	SynMissingSemicolon  Code = 2003
	SynMissingIdentifier Code = 2004
	SynMissingExpression Code = 2005
	SynMissingTypeDesc   Code = 2006
	SynMissingCloseParen Code = 2007
	SynMissingCloseBrace Code = 2008
	SynMissingEquals     Code = 2009
	SynInvalidMember     Code = 2010

	// Проверки над готовым деревом
	ChkInfo          Code = 3000
	ChkDuplicateName Code = 3001
	ChkIntOverflow   Code = 3002
	ChkTooManyArgs   Code = 3003
	ChkUnusedImport  Code = 3004

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOTreeCacheError Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unknown character",
		LexUnterminatedString: "Unterminated string literal",
		LexBadNumber:          "Malformed number literal",
		LexByteOrderMark:      "Byte order mark",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynMissingToken:       "Missing token",
		SynMissingSemicolon:   "Missing semicolon",
		SynMissingIdentifier:  "Missing identifier",
		SynMissingExpression:  "Missing expression",
		SynMissingTypeDesc:    "Missing type descriptor",
		SynMissingCloseParen:  "Missing close parenthesis",
		SynMissingCloseBrace:  "Missing close brace",
		SynMissingEquals:      "Missing equals",
		SynInvalidMember:      "Invalid module member",
		ChkInfo:               "Check information",
		ChkDuplicateName:      "Duplicate module-level name",
		ChkIntOverflow:        "Integer literal out of range",
		ChkTooManyArgs:        "Too many arguments",
		ChkUnusedImport:       "Unused import",
		IOLoadFileError:       "Failed to load file",
		IOTreeCacheError:      "Tree cache failure",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
