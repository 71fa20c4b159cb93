// Package lexer turns raw C++ source text into an ordered stream of
// classified tokens for the cxlint rule checkers.
//
// The scanner is hand-rolled maximal munch: at every position the
// dispatch loop inspects the current byte and either folds it into the
// pending trivia (whitespace, comments, line splices, stray control
// characters) or routes to the construct scanner that consumes exactly
// one token. Errors are fatal to the whole call; downstream analysis
// cannot safely operate on an incomplete token stream, so there is no
// skip-and-continue recovery.
package lexer
