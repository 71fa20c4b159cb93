package lexer

import (
	"cxlint/internal/diag"
	"cxlint/internal/token"
)

// scanCharLit consumes a character literal from its opening quote to
// the matching unescaped closing quote.
func (lx *Lexer) scanCharLit() (token.Token, error) {
	return lx.scanQuoted('\'', token.CharLit, "character constant")
}

// scanStringLit consumes a string literal from its opening quote to
// the matching unescaped closing quote.
func (lx *Lexer) scanStringLit() (token.Token, error) {
	return lx.scanQuoted('"', token.StringLit, "string constant")
}

// scanQuoted is the shared body of both quoted-literal scanners.
// An escape sequence always consumes two bytes atomically, so an
// escaped quote never closes the literal. Embedded newlines are
// tolerated (multi-line literals happen in the wild) and counted.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, what string) (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for {
		if lx.cursor.EOF() {
			return token.Token{}, lx.errf(diag.LexUnterminatedConstruct,
				lx.cursor.SpanFrom(start),
				"unterminated %s: %s", what, lx.restPreview(start))
		}
		b := lx.cursor.Bump()
		switch {
		case b == quote:
			return lx.emit(kind, start), nil
		case b == '\\':
			if lx.cursor.EOF() {
				continue // EOF right after the backslash; loop reports it
			}
			if lx.cursor.Bump() == '\n' {
				lx.line++
			}
		case b == '\n':
			lx.line++
		}
	}
}
