package token

import "sync"

// keywordTable builds the reserved-word map exactly once, on first use.
// The map is never mutated afterwards, so concurrent lookups are safe
// without further locking.
var keywordTable = sync.OnceValue(func() map[string]Kind {
	return map[string]Kind{
		"alignas":          KwAlignas,
		"alignof":          KwAlignof,
		"and":              KwAnd,
		"and_eq":           KwAndEq,
		"asm":              KwAsm,
		"auto":             KwAuto,
		"bitand":           KwBitand,
		"bitor":            KwBitor,
		"bool":             KwBool,
		"break":            KwBreak,
		"case":             KwCase,
		"catch":            KwCatch,
		"char":             KwChar,
		"char16_t":         KwChar16T,
		"char32_t":         KwChar32T,
		"class":            KwClass,
		"compl":            KwCompl,
		"const":            KwConst,
		"constexpr":        KwConstexpr,
		"const_cast":       KwConstCast,
		"continue":         KwContinue,
		"decltype":         KwDecltype,
		"default":          KwDefault,
		"delete":           KwDelete,
		"do":               KwDo,
		"double":           KwDouble,
		"dynamic_cast":     KwDynamicCast,
		"else":             KwElse,
		"enum":             KwEnum,
		"explicit":         KwExplicit,
		"export":           KwExport,
		"extern":           KwExtern,
		"false":            KwFalse,
		"float":            KwFloat,
		"for":              KwFor,
		"friend":           KwFriend,
		"goto":             KwGoto,
		"if":               KwIf,
		"inline":           KwInline,
		"int":              KwInt,
		"long":             KwLong,
		"mutable":          KwMutable,
		"namespace":        KwNamespace,
		"new":              KwNew,
		"noexcept":         KwNoexcept,
		"not":              KwNot,
		"not_eq":           KwNotEq,
		"nullptr":          KwNullptr,
		"operator":         KwOperator,
		"or":               KwOr,
		"or_eq":            KwOrEq,
		"private":          KwPrivate,
		"protected":        KwProtected,
		"public":           KwPublic,
		"register":         KwRegister,
		"reinterpret_cast": KwReinterpretCast,
		"return":           KwReturn,
		"short":            KwShort,
		"signed":           KwSigned,
		"sizeof":           KwSizeof,
		"static":           KwStatic,
		"static_assert":    KwStaticAssert,
		"static_cast":      KwStaticCast,
		"struct":           KwStruct,
		"switch":           KwSwitch,
		"template":         KwTemplate,
		"this":             KwThis,
		"thread_local":     KwThreadLocal,
		"throw":            KwThrow,
		"true":             KwTrue,
		"try":              KwTry,
		"typedef":          KwTypedef,
		"typeid":           KwTypeid,
		"typename":         KwTypename,
		"union":            KwUnion,
		"unsigned":         KwUnsigned,
		"using":            KwUsing,
		"virtual":          KwVirtual,
		"void":             KwVoid,
		"volatile":         KwVolatile,
		"wchar_t":          KwWcharT,
		"while":            KwWhile,
		"xor":              KwXor,
		"xor_eq":           KwXorEq,
	}
})

// LookupKeyword returns the keyword kind for an identifier spelling.
// Matching is exact and case-sensitive: "Virtual" is an Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywordTable()[ident]
	return k, ok
}
