package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexUnterminatedHeredoc Code = 1004

	// Array sniffs
	ArrInfo                  Code = 4000
	ArrDoubleArrowNotAligned Code = 4001

	// IO and driver
	IOInfo            Code = 5000
	IOLoadFileError   Code = 5001
	IOFixNotConverged Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexUnknownChar:           "Unknown character",
	LexUnterminatedString:    "Unterminated string literal",
	LexUnterminatedComment:   "Unterminated block comment",
	LexUnterminatedHeredoc:   "Unterminated heredoc",
	ArrInfo:                  "Array information",
	ArrDoubleArrowNotAligned: "Array double arrow not aligned",
	IOInfo:                   "I/O information",
	IOLoadFileError:          "Cannot read file",
	IOFixNotConverged:        "Fixer did not converge",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ARR%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
