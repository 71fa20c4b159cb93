package diag

import (
	"fmt"
)

// Code identifies a diagnostic. Numeric ranges are reserved per phase
// so IDs stay stable as codes are added.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical (1000-1999). All of these are fatal to the tokenization
	// call: a file that cannot be lexed is excluded from analysis.
	LexInfo                  Code = 1000
	LexUnterminatedConstruct Code = 1001
	LexInvalidIdentifier     Code = 1002
	LexInvalidNumber         Code = 1003
	LexMisplacedBackslash    Code = 1004
	LexInvalidCharacter      Code = 1005
	LexUnknownTokenKind      Code = 1006

	// Rule checks (2000-2999, reserved for the checker passes that
	// consume the token stream).
	ChkInfo Code = 2000

	// I/O (4000-4999).
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown diagnostic",
	LexInfo:                  "lexical note",
	LexUnterminatedConstruct: "unterminated construct",
	LexInvalidIdentifier:     "invalid identifier",
	LexInvalidNumber:         "invalid number",
	LexMisplacedBackslash:    "misplaced backslash",
	LexInvalidCharacter:      "invalid character",
	LexUnknownTokenKind:      "unknown token kind",
	ChkInfo:                  "check note",
	IOInfo:                   "i/o note",
	IOLoadFileError:          "failed to load file",
	IOCacheError:             "token cache error",
}

// ID returns the stable printable identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
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
