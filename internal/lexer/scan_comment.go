package lexer

import (
	"cxlint/internal/diag"
)

// scanBlockComment consumes "/*" through the first "*/", counting
// embedded newlines. The whole comment becomes trivia.
func (lx *Lexer) scanBlockComment() error {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2) // "/*"
	for {
		if lx.cursor.EOF() {
			return lx.errf(diag.LexUnterminatedConstruct, lx.cursor.SpanFrom(start),
				"unterminated comment: %s", lx.restPreview(start))
		}
		b := lx.cursor.Bump()
		if b == '\n' {
			lx.line++
			continue
		}
		if b == '*' && lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			return nil
		}
	}
}

// scanLineComment consumes "//" through an unescaped newline, or end
// of input. A newline immediately preceded by a backslash does NOT
// terminate the comment: the comment continues onto the next line.
// This matches what compilers do with the line splice and is preserved
// exactly, unusual as it looks.
func (lx *Lexer) scanLineComment() {
	lx.cursor.Advance(2) // "//"
	for {
		if lx.cursor.EOF() {
			// line comment at end of file, meh
			return
		}
		if lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
			continue
		}
		prev := lx.file.Content[lx.cursor.Off-1]
		lx.cursor.Bump()
		lx.line++
		if prev == '\\' {
			// multiline single-line comment (sic)
			continue
		}
		return
	}
}
