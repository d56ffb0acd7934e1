package lexer

import (
	"arrowlint/internal/token"
)

// scanNumber consumes integer and float literals in every PHP base,
// with '_' separators and signed exponents.
func (lx *Lexer) scanNumber() token.Kind {
	start := lx.cursor.Off
	hex := lx.cursor.HasPrefix("0x") || lx.cursor.HasPrefix("0X")
	var last byte
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinue(b) && b < utfSelf:
		case b == '.' && isDec(lx.cursor.PeekAt(1)):
		case (b == '+' || b == '-') && !hex && (last == 'e' || last == 'E') &&
			isDec(lx.cursor.PeekAt(1)) && lx.cursor.Off > start:
		default:
			return token.Number
		}
		last = lx.cursor.Bump()
	}
	return token.Number
}
