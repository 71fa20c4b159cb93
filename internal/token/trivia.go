package token

import "cxlint/internal/source"

// Trivia is the run of whitespace, comments, line splices, and stray
// control characters preceding a token. It is preserved for exact
// source reconstruction but never appears as a token of its own.
type Trivia struct {
	Span source.Span
	Text string
}

// Empty reports whether no trivia preceded the token.
func (tr Trivia) Empty() bool { return tr.Span.Empty() }
