package lexer

import (
	"bytes"

	"cxlint/internal/diag"
	"cxlint/internal/token"
)

// Directive keywords in match-priority order: prefixes must come after
// the longer words they prefix ("ifdef"/"ifndef" before "if"), which
// is what makes the longest match win.
var directives = []struct {
	word string
	kind token.Kind
	// restOfLine extends the token through the remainder of the
	// current line: #line, #warning, and #error carry a payload.
	restOfLine bool
	// requireNewline makes a missing line terminator fatal.
	requireNewline bool
}{
	{word: "line", kind: token.PpLine, restOfLine: true},
	{word: "warning", kind: token.PpError, restOfLine: true, requireNewline: true},
	{word: "error", kind: token.PpError, restOfLine: true, requireNewline: true},
	{word: "include", kind: token.PpInclude},
	{word: "ifdef", kind: token.PpIfdef},
	{word: "ifndef", kind: token.PpIfndef},
	{word: "if", kind: token.PpIf},
	{word: "undef", kind: token.PpUndef},
	{word: "else", kind: token.PpElse},
	{word: "endif", kind: token.PpEndif},
	{word: "define", kind: token.PpDefine},
	{word: "pragma", kind: token.PpPragma},
}

// scanPreproc handles everything after '#': a directive keyword with
// intervening horizontal whitespace folded into the token, the ##
// paste operator, or a bare # inside a macro body. The token text for
// a directive spans from '#' through the keyword (through end of line
// for #line/#warning/#error).
func (lx *Lexer) scanPreproc() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	rest := lx.file.Content[lx.cursor.Off:]
	for _, d := range directives {
		if !bytes.HasPrefix(rest, []byte(d.word)) {
			continue
		}
		if !d.restOfLine {
			lx.cursor.Advance(uint32(len(d.word)))
			return lx.emit(d.kind, start), nil
		}
		// the entire remainder of the line is the token payload
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			if d.requireNewline {
				return token.Token{}, lx.errf(diag.LexUnterminatedConstruct,
					lx.cursor.SpanFrom(start),
					"unterminated #%s message", d.word)
			}
			nl = len(rest)
		}
		lx.cursor.Advance(uint32(nl))
		return lx.emit(d.kind, start), nil
	}

	if bytes.HasPrefix(rest, []byte("#")) {
		lx.cursor.Bump()
		return lx.emit(token.HashHash, start), nil
	}

	// We can only assume this is inside a macro definition. The bare
	// '#' keeps just its own byte; skipped whitespace returns to the
	// next token's leading trivia.
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	return lx.emit(token.Hash, start), nil
}
