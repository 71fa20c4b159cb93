// Package diag defines diagnostic codes, severities, and collection
// primitives shared by the cxlint phases. The lexer reports through a
// Reporter and additionally fails fast: lexical errors abort the whole
// tokenization call, so a Bag never holds a "partial success" for a
// file that failed to lex.
package diag
