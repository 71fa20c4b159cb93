package token

import (
	"cxlint/internal/source"
)

// Token represents a single classified lexical unit.
// Tokens are created once by the lexer and never mutated.
type Token struct {
	Kind Kind
	// Text is the exact substring of the source buffer the token
	// occupies. No copying, no normalization. Empty only for EOF.
	Text string
	Span source.Span
	// File and Line locate the token start for diagnostics.
	// Line is 1-based and counts '\n' only; a lone '\r' does not
	// advance it (DOS line-ending tolerance).
	File string
	Line uint32
	// Leading covers the whitespace and comments between the previous
	// token (or start of file) and this token, with no gap and no
	// overlap. Concatenating Leading.Text + Text over the whole stream
	// reconstructs the input exactly.
	Leading Trivia
}

// IsKeyword reports whether the token is a C++ reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= keywordBeg && t.Kind <= keywordEnd
}

// IsLiteral reports whether the token is a numeric, character, or
// string literal.
func (t Token) IsLiteral() bool {
	return t.Kind >= literalBeg && t.Kind <= literalEnd
}

// IsPunctOrOp reports whether the token is a punctuator or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= punctBeg && t.Kind <= punctEnd
}

// IsPreprocessor reports whether the token is a preprocessor directive
// keyword (or a bare # / ##).
func (t Token) IsPreprocessor() bool {
	return t.Kind >= preprocBeg && t.Kind <= preprocEnd
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
