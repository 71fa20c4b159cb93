package lexer

// Классификаторы байтов. Только ASCII: всё с верхним битом лексер
// отвергает как нераспознанный символ.

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// g++ allows '$' in identifiers, and some inline assembler and
// macro-generated code uses '@'. Both are tolerated on purpose.
func isIdentStartByte(b byte) bool {
	return isAlpha(b) || b == '_' || b == '$' || b == '@'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

// Hex digit letters only; plain digits are handled by isDec.
func isHexLetter(b byte) bool {
	return (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'p' || b == 'P'
}

func isNumberSuffix(b byte) bool {
	switch b {
	case 'F', 'f', 'L', 'l', 'U', 'u':
		return true
	}
	return false
}

// Control characters other than the line terminators and horizontal
// whitespace handled explicitly by the dispatch loop.
func isControl(b byte) bool {
	return b < 0x20 || b == 0x7F
}
