package lexer

import (
	"cxlint/internal/diag"
	"cxlint/internal/token"
)

// scanNumber munches a maximal decimal, hex, or floating-point literal.
// The literal is assumed well-formed (the checker passes care about
// token boundaries, not numeric validity), so the scanner only decides
// where the literal ends:
//   - '.' is consumed once, before any exponent or suffix;
//   - hex digit letters are consumed only under a 0x/0X prefix and
//     before the exponent (the exponent is decimal even in a hex
//     floating-point number);
//   - '+'/'-' continues the literal only right after e/E/p/P,
//     otherwise the sign is the next token;
//   - e/E opens a decimal exponent, p/P a binary exponent (hex only);
//   - suffix letters F/f/L/l/U/u may repeat (LL, ull) and do not
//     terminate the scan by themselves.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	var sawDot, sawExp, sawHex, sawSuffix bool

	for {
		b := lx.cursor.Peek()
		switch {
		case b == '.' && !sawDot && !sawExp && !sawSuffix:
			sawDot = true

		case isDec(b):
			// nothing to track

		case sawHex && !sawExp && isHexLetter(b):
			// hex digit; includes a/A..f/F only while no exponent

		case b == '+' || b == '-':
			if lx.cursor.Off == uint32(start) || !isExponentMarker(lx.file.Content[lx.cursor.Off-1]) {
				// done, the sign is the next token
				return lx.finishNumber(start)
			}

		case (b == 'e' || b == 'E') && !sawExp && !sawSuffix && !sawHex:
			sawExp = true

		case (b == 'p' || b == 'P') && sawHex && !sawExp && !sawSuffix:
			sawExp = true

		case (b == 'x' || b == 'X') && lx.cursor.Off == uint32(start)+1 && lx.file.Content[start] == '0':
			sawHex = true

		case isNumberSuffix(b):
			// there could be several of them (including repeats a la
			// LL), so keep scanning
			sawSuffix = true

		default:
			return lx.finishNumber(start)
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) finishNumber(start Mark) (token.Token, error) {
	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		// unreachable under correct dispatch; defensive check
		return token.Token{}, lx.errf(diag.LexInvalidNumber, sp,
			"invalid number at %q", lx.restPreview(start))
	}
	return lx.emit(token.Number, start), nil
}
