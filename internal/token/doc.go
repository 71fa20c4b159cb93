// Package token defines lexical token kinds and trivia for the cxlint
// C++ front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Leading trivia immediately precedes Text; concatenating
//     (Leading.Text, Text) pairs over a stream reproduces the input.
//   - Preprocessor directives are token kinds, not expanded macros;
//     conditional evaluation is out of scope.
//   - The keyword table is built once, lazily, and never mutated.
package token
