package token

import (
	"errors"
	"fmt"
)

// ErrUnknownKind reports a kind value outside the closed enumeration.
// Hitting it means a caller fabricated a Kind; correct use never does.
var ErrUnknownKind = errors.New("unknown token kind")

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwAlignas:         "KwAlignas",
	KwAlignof:         "KwAlignof",
	KwAnd:             "KwAnd",
	KwAndEq:           "KwAndEq",
	KwAsm:             "KwAsm",
	KwAuto:            "KwAuto",
	KwBitand:          "KwBitand",
	KwBitor:           "KwBitor",
	KwBool:            "KwBool",
	KwBreak:           "KwBreak",
	KwCase:            "KwCase",
	KwCatch:           "KwCatch",
	KwChar:            "KwChar",
	KwChar16T:         "KwChar16T",
	KwChar32T:         "KwChar32T",
	KwClass:           "KwClass",
	KwCompl:           "KwCompl",
	KwConst:           "KwConst",
	KwConstexpr:       "KwConstexpr",
	KwConstCast:       "KwConstCast",
	KwContinue:        "KwContinue",
	KwDecltype:        "KwDecltype",
	KwDefault:         "KwDefault",
	KwDelete:          "KwDelete",
	KwDo:              "KwDo",
	KwDouble:          "KwDouble",
	KwDynamicCast:     "KwDynamicCast",
	KwElse:            "KwElse",
	KwEnum:            "KwEnum",
	KwExplicit:        "KwExplicit",
	KwExport:          "KwExport",
	KwExtern:          "KwExtern",
	KwFalse:           "KwFalse",
	KwFloat:           "KwFloat",
	KwFor:             "KwFor",
	KwFriend:          "KwFriend",
	KwGoto:            "KwGoto",
	KwIf:              "KwIf",
	KwInline:          "KwInline",
	KwInt:             "KwInt",
	KwLong:            "KwLong",
	KwMutable:         "KwMutable",
	KwNamespace:       "KwNamespace",
	KwNew:             "KwNew",
	KwNoexcept:        "KwNoexcept",
	KwNot:             "KwNot",
	KwNotEq:           "KwNotEq",
	KwNullptr:         "KwNullptr",
	KwOperator:        "KwOperator",
	KwOr:              "KwOr",
	KwOrEq:            "KwOrEq",
	KwPrivate:         "KwPrivate",
	KwProtected:       "KwProtected",
	KwPublic:          "KwPublic",
	KwRegister:        "KwRegister",
	KwReinterpretCast: "KwReinterpretCast",
	KwReturn:          "KwReturn",
	KwShort:           "KwShort",
	KwSigned:          "KwSigned",
	KwSizeof:          "KwSizeof",
	KwStatic:          "KwStatic",
	KwStaticAssert:    "KwStaticAssert",
	KwStaticCast:      "KwStaticCast",
	KwStruct:          "KwStruct",
	KwSwitch:          "KwSwitch",
	KwTemplate:        "KwTemplate",
	KwThis:            "KwThis",
	KwThreadLocal:     "KwThreadLocal",
	KwThrow:           "KwThrow",
	KwTrue:            "KwTrue",
	KwTry:             "KwTry",
	KwTypedef:         "KwTypedef",
	KwTypeid:          "KwTypeid",
	KwTypename:        "KwTypename",
	KwUnion:           "KwUnion",
	KwUnsigned:        "KwUnsigned",
	KwUsing:           "KwUsing",
	KwVirtual:         "KwVirtual",
	KwVoid:            "KwVoid",
	KwVolatile:        "KwVolatile",
	KwWcharT:          "KwWcharT",
	KwWhile:           "KwWhile",
	KwXor:             "KwXor",
	KwXorEq:           "KwXorEq",

	Number:    "Number",
	CharLit:   "CharLit",
	StringLit: "StringLit",

	Tilde:     "Tilde",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Question:  "Question",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",

	Assign:        "Assign",
	EqEq:          "EqEq",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Caret:         "Caret",
	CaretAssign:   "CaretAssign",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Colon:         "Colon",
	ColonColon:    "ColonColon",

	Amp:        "Amp",
	AndAnd:     "AndAnd",
	AmpAssign:  "AmpAssign",
	Pipe:       "Pipe",
	OrOr:       "OrOr",
	PipeAssign: "PipeAssign",
	Plus:       "Plus",
	Increment:  "Increment",
	PlusAssign: "PlusAssign",

	Lt:          "Lt",
	LtEq:        "LtEq",
	Shl:         "Shl",
	ShlAssign:   "ShlAssign",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Shr:         "Shr",
	ShrAssign:   "ShrAssign",
	Minus:       "Minus",
	Decrement:   "Decrement",
	MinusAssign: "MinusAssign",
	Arrow:       "Arrow",
	ArrowStar:   "ArrowStar",

	Slash:       "Slash",
	SlashAssign: "SlashAssign",

	Dot:      "Dot",
	DotStar:  "DotStar",
	Ellipsis: "Ellipsis",

	Hash:      "Hash",
	HashHash:  "HashHash",
	PpInclude: "PpInclude",
	PpDefine:  "PpDefine",
	PpUndef:   "PpUndef",
	PpIf:      "PpIf",
	PpIfdef:   "PpIfdef",
	PpIfndef:  "PpIfndef",
	PpElse:    "PpElse",
	PpEndif:   "PpEndif",
	PpPragma:  "PpPragma",
	PpLine:    "PpLine",
	PpError:   "PpError",
}

// KindName returns the canonical symbolic name of k for diagnostics.
func KindName(k Kind) (string, error) {
	if int(k) >= len(kindNames) || kindNames[k] == "" {
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return kindNames[k], nil
}

// String returns the canonical name, or Kind(N) for out-of-range values.
func (k Kind) String() string {
	name, err := KindName(k)
	if err != nil {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return name
}
