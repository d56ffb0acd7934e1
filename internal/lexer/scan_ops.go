package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

// scanOperator matches punctuation greedily: three bytes, then two, then one.
func (lx *Lexer) scanOperator() token.Kind {
	switch {
	case lx.try3('?', '-', '>'):
		return token.ObjectOperator
	case lx.try3('<', '<', '='), lx.try3('>', '>', '='), lx.try3('*', '*', '='),
		lx.try3('.', '.', '.'), lx.try3('<', '=', '>'), lx.try3('=', '=', '='),
		lx.try3('!', '=', '='), lx.try3('?', '?', '='):
		return token.Operator
	case lx.try2('=', '>'):
		return token.DoubleArrow
	case lx.try2('-', '>'):
		return token.ObjectOperator
	case lx.try2(':', ':'):
		return token.DoubleColon
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '>'), lx.try2('<', '='),
		lx.try2('>', '='), lx.try2('&', '&'), lx.try2('|', '|'), lx.try2('+', '+'),
		lx.try2('-', '-'), lx.try2('+', '='), lx.try2('-', '='), lx.try2('*', '='),
		lx.try2('/', '='), lx.try2('.', '='), lx.try2('%', '='), lx.try2('&', '='),
		lx.try2('|', '='), lx.try2('^', '='), lx.try2('<', '<'), lx.try2('>', '>'),
		lx.try2('?', '?'), lx.try2('*', '*'):
		return token.Operator
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return token.OpenParenthesis
	case ')':
		return token.CloseParenthesis
	case '{':
		return token.OpenCurlyBracket
	case '}':
		return token.CloseCurlyBracket
	case '[':
		return lx.classifyBracket()
	case ']':
		// retyped by MatchBrackets once the opener is known
		return token.CloseSquareBracket
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	}
	if isPunct(ch) {
		return token.Operator
	}
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character")
	return token.Invalid
}

// classifyBracket decides whether '[' starts an array literal or an index.
func (lx *Lexer) classifyBracket() token.Kind {
	switch lx.prev.Kind {
	case token.Variable, token.String, token.ConstantString,
		token.CloseSquareBracket, token.CloseShortArray,
		token.CloseParenthesis, token.CloseCurlyBracket:
		return token.OpenSquareBracket
	}
	return token.OpenShortArray
}

func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.Peek() != a || lx.cursor.PeekAt(1) != b || lx.cursor.PeekAt(2) != c {
		return false
	}
	lx.cursor.BumpN(3)
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.BumpN(2)
	return true
}
