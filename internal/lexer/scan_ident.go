package lexer

import (
	"cxlint/internal/diag"
	"cxlint/internal/token"
)

// scanIdentOrKeyword consumes a maximal identifier span and classifies
// it through the keyword table. Assumes the cursor sits on an
// identifier-start byte.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		// unreachable under correct dispatch; defensive check
		return token.Token{}, lx.errf(diag.LexInvalidIdentifier, sp,
			"invalid identifier at %q", lx.restPreview(start))
	}

	text := string(lx.file.Content[sp.Start:sp.End])
	if kind, ok := token.LookupKeyword(text); ok {
		return lx.emit(kind, start), nil
	}
	return lx.emit(token.Ident, start), nil
}

// restPreview returns a short prefix of the unread input for error
// messages, mirroring what the failing scanner was looking at.
func (lx *Lexer) restPreview(m Mark) string {
	rest := lx.file.Content[uint32(m):]
	const max = 20
	if len(rest) > max {
		rest = rest[:max]
	}
	return string(rest)
}
