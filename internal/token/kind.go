package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input. Exactly one EOF token
	// terminates every successful token stream; its text is empty.
	EOF

	// Ident represents an identifier that is not a reserved word.
	Ident

	// Reserved words. The set covers the C++11 keywords, including the
	// alternative operator spellings (and, bitor, ...) that real-world
	// sources actually use.
	KwAlignas         // alignas
	KwAlignof         // alignof
	KwAnd             // and
	KwAndEq           // and_eq
	KwAsm             // asm
	KwAuto            // auto
	KwBitand          // bitand
	KwBitor           // bitor
	KwBool            // bool
	KwBreak           // break
	KwCase            // case
	KwCatch           // catch
	KwChar            // char
	KwChar16T         // char16_t
	KwChar32T         // char32_t
	KwClass           // class
	KwCompl           // compl
	KwConst           // const
	KwConstexpr       // constexpr
	KwConstCast       // const_cast
	KwContinue        // continue
	KwDecltype        // decltype
	KwDefault         // default
	KwDelete          // delete
	KwDo              // do
	KwDouble          // double
	KwDynamicCast     // dynamic_cast
	KwElse            // else
	KwEnum            // enum
	KwExplicit        // explicit
	KwExport          // export
	KwExtern          // extern
	KwFalse           // false
	KwFloat           // float
	KwFor             // for
	KwFriend          // friend
	KwGoto            // goto
	KwIf              // if
	KwInline          // inline
	KwInt             // int
	KwLong            // long
	KwMutable         // mutable
	KwNamespace       // namespace
	KwNew             // new
	KwNoexcept        // noexcept
	KwNot             // not
	KwNotEq           // not_eq
	KwNullptr         // nullptr
	KwOperator        // operator
	KwOr              // or
	KwOrEq            // or_eq
	KwPrivate         // private
	KwProtected       // protected
	KwPublic          // public
	KwRegister        // register
	KwReinterpretCast // reinterpret_cast
	KwReturn          // return
	KwShort           // short
	KwSigned          // signed
	KwSizeof          // sizeof
	KwStatic          // static
	KwStaticAssert    // static_assert
	KwStaticCast      // static_cast
	KwStruct          // struct
	KwSwitch          // switch
	KwTemplate        // template
	KwThis            // this
	KwThreadLocal     // thread_local
	KwThrow           // throw
	KwTrue            // true
	KwTry             // try
	KwTypedef         // typedef
	KwTypeid          // typeid
	KwTypename        // typename
	KwUnion           // union
	KwUnsigned        // unsigned
	KwUsing           // using
	KwVirtual         // virtual
	KwVoid            // void
	KwVolatile        // volatile
	KwWcharT          // wchar_t
	KwWhile           // while
	KwXor             // xor
	KwXorEq           // xor_eq

	// Literals. The lexer does not split numeric literals further:
	// int/float/hex classification is a job for the checks that need it.
	Number    // 123, 0x1p+3f, .5e10L
	CharLit   // 'a'
	StringLit // "..."

	// Punctuators and operators, grouped by how the dispatch loop
	// resolves them: plain one-char tokens, then tokens needing one
	// byte of lookahead, then tokens needing two.
	Tilde     // ~
	Comma     // ,
	Semicolon // ;
	Question  // ?
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }

	Assign        // =
	EqEq          // ==
	Bang          // !
	BangEq        // !=
	Caret         // ^
	CaretAssign   // ^=
	Star          // *
	StarAssign    // *=
	Percent       // %
	PercentAssign // %=
	Colon         // :
	ColonColon    // ::

	Amp        // &
	AndAnd     // &&
	AmpAssign  // &=
	Pipe       // |
	OrOr       // ||
	PipeAssign // |=
	Plus       // +
	Increment  // ++
	PlusAssign // +=

	Lt          // <
	LtEq        // <=
	Shl         // <<
	ShlAssign   // <<=
	Gt          // >
	GtEq        // >=
	Shr         // >>
	ShrAssign   // >>=
	Minus       // -
	Decrement   // --
	MinusAssign // -=
	Arrow       // ->
	ArrowStar   // ->*

	Slash       // /
	SlashAssign // /=

	Dot      // .
	DotStar  // .*
	Ellipsis // ...

	// Preprocessor directives. The lexer recognizes directive keywords
	// but performs no expansion or conditional evaluation. PpError
	// covers both #error and #warning; its text runs to end of line.
	Hash      // #
	HashHash  // ##
	PpInclude // #include
	PpDefine  // #define
	PpUndef   // #undef
	PpIf      // #if
	PpIfdef   // #ifdef
	PpIfndef  // #ifndef
	PpElse    // #else
	PpEndif   // #endif
	PpPragma  // #pragma
	PpLine    // #line
	PpError   // #error ... / #warning ...
)

// Family boundaries. Dispatch and the predicates below rely on the
// declaration order above staying grouped.
const (
	keywordBeg = KwAlignas
	keywordEnd = KwXorEq
	literalBeg = Number
	literalEnd = StringLit
	punctBeg   = Tilde
	punctEnd   = Ellipsis
	preprocBeg = Hash
	preprocEnd = PpError
)
