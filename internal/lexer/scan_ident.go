package lexer

import (
	"arrowlint/internal/token"
)

func (lx *Lexer) scanVariable() token.Kind {
	lx.cursor.Bump() // '$'
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Variable
}

// scanIdent consumes a name, including namespace separators.
// Names after '->' or '::' are member names and never keywords.
func (lx *Lexer) scanIdent() token.Kind {
	start := lx.cursor.Off
	for {
		b := lx.cursor.Peek()
		if isIdentContinue(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '\\' && isIdentStart(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		break
	}
	switch lx.prev.Kind {
	case token.ObjectOperator, token.DoubleColon:
		return token.String
	}
	if token.IsKeyword(string(lx.file.Content[start:lx.cursor.Off])) {
		return token.Keyword
	}
	return token.String
}
