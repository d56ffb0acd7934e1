package lexer

import (
	"arrowlint/internal/token"
)

// scanString starts a quoted string: '...', "..." or `...`.
func (lx *Lexer) scanString() token.Kind {
	start := lx.cursor.Mark()
	lx.quote = lx.cursor.Bump()
	lx.interp = 0
	lx.contStart = lx.cursor.SpanFrom(start)
	return lx.scanStringBody()
}

// scanStringBody consumes one line of a quoted string.
// Double quoted and backtick strings may embed "{$expr}" in which the
// quote character does not terminate the string.
func (lx *Lexer) scanStringBody() token.Kind {
	lx.mode = modeString
	q := lx.quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		case b == '\n':
			lx.cursor.Bump()
			return token.ConstantString
		case q != '\'' && b == '{' && lx.cursor.PeekAt(1) == '$':
			lx.interp++
		case lx.interp > 0 && b == '}':
			lx.interp--
		case lx.interp == 0 && b == q:
			lx.cursor.Bump()
			lx.mode = modePHP
			return token.ConstantString
		}
		lx.cursor.Bump()
	}
	return token.ConstantString
}

// scanHeredocStart consumes "<<<LABEL", "<<<'LABEL'" or "<<<\"LABEL\"" and
// the rest of its line. It leaves the cursor untouched and returns false
// when the input is not a heredoc opener.
func (lx *Lexer) scanHeredocStart() bool {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(3)
	for isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	quote := lx.cursor.Peek()
	if quote == '\'' || quote == '"' {
		lx.cursor.Bump()
	} else {
		quote = 0
	}
	labelStart := lx.cursor.Off
	if !isIdentStart(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	label := string(lx.file.Content[labelStart:lx.cursor.Off])
	if quote != 0 && !lx.cursor.Eat(quote) {
		lx.cursor.Reset(start)
		return false
	}
	if lx.cursor.Peek() != '\n' && !lx.cursor.EOF() {
		lx.cursor.Reset(start)
		return false
	}
	lx.cursor.Eat('\n')
	lx.label = label
	lx.contStart = lx.cursor.SpanFrom(start)
	lx.mode = modeHeredoc
	return true
}

// scanHeredocLine consumes one body line, or the closing label.
func (lx *Lexer) scanHeredocLine() token.Kind {
	var n uint32
	for isBlank(lx.cursor.PeekAt(n)) {
		n++
	}
	if lx.atLabel(n) {
		lx.cursor.BumpN(int(n) + len(lx.label))
		lx.mode = modePHP
		return token.Heredoc
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	return token.Heredoc
}

func (lx *Lexer) atLabel(off uint32) bool {
	for i := 0; i < len(lx.label); i++ {
		if lx.cursor.PeekAt(off+uint32(i)) != lx.label[i] { // #nosec G115 -- label is a short identifier
			return false
		}
	}
	return !isIdentContinue(lx.cursor.PeekAt(off + uint32(len(lx.label)))) // #nosec G115
}
