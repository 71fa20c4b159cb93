package lexer

import (
	"fmt"

	"cxlint/internal/diag"
	"cxlint/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics in addition to the error
	// returned from the failing call. May be nil.
	Reporter diag.Reporter
}

// Error is a fatal lexical error. Any Error aborts the whole
// tokenization call: there is no resynchronization, and no partial
// token stream is valid output.
type Error struct {
	Code diag.Code
	Span source.Span
	Path string
	Line uint32
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// errf builds the fatal error and forwards it to the reporter, if any.
func (lx *Lexer) errf(code diag.Code, sp source.Span, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
	return &Error{
		Code: code,
		Span: sp,
		Path: lx.file.Path,
		Line: lx.line,
		Msg:  msg,
	}
}
