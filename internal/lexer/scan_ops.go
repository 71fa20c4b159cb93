package lexer

import (
	"cxlint/internal/token"
)

// The operator tables. Each entry is the full lookahead tree for one
// trigger character: the kind of the bare character, the kinds reached
// by one extra byte, and the kinds reached by a third. Order of the
// seconds encodes match priority. One generic routine interprets the
// table, so no dispatch branch is spelled out twice.
type opThird struct {
	ch   byte
	kind token.Kind
}

type opSecond struct {
	ch     byte
	kind   token.Kind
	thirds []opThird
}

type opEntry struct {
	kind    token.Kind
	seconds []opSecond
}

var opTable = map[byte]opEntry{
	// one-character tokens with no multi-character form
	'~': {kind: token.Tilde},
	',': {kind: token.Comma},
	';': {kind: token.Semicolon},
	'?': {kind: token.Question},
	'(': {kind: token.LParen},
	')': {kind: token.RParen},
	'[': {kind: token.LBracket},
	']': {kind: token.RBracket},
	'{': {kind: token.LBrace},
	'}': {kind: token.RBrace},

	// one-or-two-character tokens
	'=': {kind: token.Assign, seconds: []opSecond{{ch: '=', kind: token.EqEq}}},
	'!': {kind: token.Bang, seconds: []opSecond{{ch: '=', kind: token.BangEq}}},
	'^': {kind: token.Caret, seconds: []opSecond{{ch: '=', kind: token.CaretAssign}}},
	'*': {kind: token.Star, seconds: []opSecond{{ch: '=', kind: token.StarAssign}}},
	'%': {kind: token.Percent, seconds: []opSecond{{ch: '=', kind: token.PercentAssign}}},
	':': {kind: token.Colon, seconds: []opSecond{{ch: ':', kind: token.ColonColon}}},
	'&': {kind: token.Amp, seconds: []opSecond{
		{ch: '&', kind: token.AndAnd},
		{ch: '=', kind: token.AmpAssign},
	}},
	'|': {kind: token.Pipe, seconds: []opSecond{
		{ch: '|', kind: token.OrOr},
		{ch: '=', kind: token.PipeAssign},
	}},
	'+': {kind: token.Plus, seconds: []opSecond{
		{ch: '+', kind: token.Increment},
		{ch: '=', kind: token.PlusAssign},
	}},

	// one-to-three-character tokens
	'<': {kind: token.Lt, seconds: []opSecond{
		{ch: '=', kind: token.LtEq},
		{ch: '<', kind: token.Shl, thirds: []opThird{{ch: '=', kind: token.ShlAssign}}},
	}},
	'>': {kind: token.Gt, seconds: []opSecond{
		{ch: '=', kind: token.GtEq},
		{ch: '>', kind: token.Shr, thirds: []opThird{{ch: '=', kind: token.ShrAssign}}},
	}},
	'-': {kind: token.Minus, seconds: []opSecond{
		{ch: '-', kind: token.Decrement},
		{ch: '=', kind: token.MinusAssign},
		{ch: '>', kind: token.Arrow, thirds: []opThird{{ch: '*', kind: token.ArrowStar}}},
	}},
}

// scanOperator resolves the current character through opTable.
// Returns ok=false when the character has no entry (the dispatch loop
// then treats it as invalid).
func (lx *Lexer) scanOperator() (token.Token, bool) {
	entry, ok := opTable[lx.cursor.Peek()]
	if !ok {
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump()
	kind := entry.kind
	next := lx.cursor.Peek()
	for _, second := range entry.seconds {
		if next != second.ch {
			continue
		}
		lx.cursor.Bump()
		kind = second.kind
		third := lx.cursor.Peek()
		for _, t := range second.thirds {
			if third == t.ch {
				lx.cursor.Bump()
				kind = t.kind
				break
			}
		}
		break
	}
	return lx.emit(kind, start), true
}

// scanDot disambiguates everything that starts with a period:
// a numeric literal (.5), the pointer-to-member operator .*, the
// ellipsis, or plain member access. Kept out of opTable because the
// ellipsis needs both extra dots at once: ".." is two Dot tokens.
func (lx *Lexer) scanDot() (token.Token, error) {
	if isDec(lx.cursor.PeekAt(1)) {
		return lx.scanNumber()
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	switch {
	case lx.cursor.Peek() == '*':
		lx.cursor.Bump()
		return lx.emit(token.DotStar, start), nil
	case lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.':
		lx.cursor.Advance(2)
		return lx.emit(token.Ellipsis, start), nil
	default:
		return lx.emit(token.Dot, start), nil
	}
}

// scanSlash disambiguates division, divide-assign, and both comment
// forms. Comments are folded into trivia by the caller, signalled by
// ok=false.
func (lx *Lexer) scanSlash() (tok token.Token, ok bool, err error) {
	switch lx.cursor.PeekAt(1) {
	case '*':
		return token.Token{}, false, lx.scanBlockComment()
	case '/':
		lx.scanLineComment()
		return token.Token{}, false, nil
	case '=':
		start := lx.cursor.Mark()
		lx.cursor.Advance(2)
		return lx.emit(token.SlashAssign, start), true, nil
	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.emit(token.Slash, start), true, nil
	}
}
