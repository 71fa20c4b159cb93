package lexer

import (
	"cxlint/internal/diag"
	"cxlint/internal/source"
	"cxlint/internal/token"
)

// Lexer is a single-pass maximal-munch scanner over one source file.
// It is not safe for concurrent use; run one Lexer per file instead.
// The only state shared between concurrent lexers is the keyword
// table, which is built once and read-only.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// line is the current 1-based line number; only '\n' advances it.
	line uint32
	// tokLine is the line at the start of the construct being scanned,
	// recorded before any scanner can move line forward.
	tokLine uint32
	// triviaStart marks where the pending leading trivia began: the
	// end of the previous token, or the start of the file.
	triviaStart Mark
}

// New creates a lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		line:    1,
		tokLine: 1,
	}
}

// Tokenize scans the whole file into out, which is truncated first and
// rebuilt. On success the last element is the single EOF token and the
// concatenation of (Leading.Text, Text) over out reproduces the file
// byte for byte. On error out is left empty: a file that cannot be
// lexed has no usable token stream.
func Tokenize(file *source.File, opts Options, out *[]token.Token) error {
	*out = (*out)[:0]
	lx := New(file, opts)
	for {
		tok, err := lx.Next()
		if err != nil {
			*out = (*out)[:0]
			return err
		}
		*out = append(*out, tok)
		if tok.Kind == token.EOF {
			return nil
		}
	}
}

// Next returns the next significant token with its leading trivia, or
// the fatal lexical error that aborts the call. After the EOF token it
// keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	for {
		if lx.cursor.EOF() {
			lx.tokLine = lx.line
			return lx.emit(token.EOF, lx.cursor.Mark()), nil
		}

		b := lx.cursor.Peek()
		lx.tokLine = lx.line

		switch {
		// horizontal whitespace -> trivia
		case b == ' ' || b == '\t':
			for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
				lx.cursor.Bump()
			}

		// newline -> trivia
		case b == '\n':
			lx.cursor.Bump()
			lx.line++

		// part of a DOS newline; does not advance the line counter
		case b == '\r':
			lx.cursor.Bump()

		// line splice: backslash is only valid before a line terminator
		case b == '\\':
			next := lx.cursor.PeekAt(1)
			if next != '\n' && next != '\r' {
				return token.Token{}, lx.errf(diag.LexMisplacedBackslash,
					lx.spanHere(), "misplaced backslash")
			}
			lx.line++
			lx.cursor.Advance(2)

		// divide, divide-assign, or a comment (trivia)
		case b == '/':
			tok, ok, err := lx.scanSlash()
			if err != nil {
				return token.Token{}, err
			}
			if ok {
				return tok, nil
			}

		case isDec(b):
			return lx.scanNumber()

		case b == '.':
			return lx.scanDot()

		case b == '\'':
			return lx.scanCharLit()

		case b == '"':
			return lx.scanStringLit()

		case b == '#':
			return lx.scanPreproc()

		case isIdentStartByte(b):
			return lx.scanIdentOrKeyword()

		// verboten: the backtick is never part of C++ source
		case b == '`':
			return token.Token{}, lx.errf(diag.LexInvalidCharacter,
				lx.spanHere(), "invalid character %q", b)

		// stray control characters are folded into trivia
		case isControl(b):
			lx.cursor.Bump()

		default:
			if tok, ok := lx.scanOperator(); ok {
				return tok, nil
			}
			// what could this be? (BOM? latin-1?)
			return token.Token{}, lx.errf(diag.LexInvalidCharacter,
				lx.spanHere(), "unrecognized character 0x%02x", b)
		}
	}
}

// emit commits one token spanning start..cursor and hands it the
// pending leading trivia. The trivia accumulator restarts right after
// the token.
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	leadSpan := source.Span{
		File:  lx.file.ID,
		Start: uint32(lx.triviaStart),
		End:   sp.Start,
	}
	tok := token.Token{
		Kind: kind,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Span: sp,
		File: lx.file.Path,
		Line: lx.tokLine,
		Leading: token.Trivia{
			Span: leadSpan,
			Text: string(lx.file.Content[leadSpan.Start:leadSpan.End]),
		},
	}
	lx.triviaStart = lx.cursor.Mark()
	return tok
}

func (lx *Lexer) spanHere() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 1}
}
