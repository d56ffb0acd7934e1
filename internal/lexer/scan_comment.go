package lexer

import (
	"arrowlint/internal/token"
)

// scanLineComment consumes '//' or '#' up to and including the newline.
// A '?>' ends the comment without being part of it.
func (lx *Lexer) scanLineComment() token.Kind {
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("?>") {
			break
		}
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	return token.Comment
}

func (lx *Lexer) scanBlockComment() token.Kind {
	start := lx.cursor.Mark()
	kind := token.Comment
	if lx.cursor.HasPrefix("/**") {
		if b := lx.cursor.PeekAt(3); isBlank(b) || b == '\n' {
			kind = token.DocComment
		}
	}
	lx.cursor.BumpN(2)
	lx.contKind = kind
	lx.contStart = lx.cursor.SpanFrom(start)
	return lx.scanCommentBody(kind)
}

// scanCommentBody consumes one line of a block comment.
func (lx *Lexer) scanCommentBody(kind token.Kind) token.Kind {
	lx.mode = modeComment
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.BumpN(2)
			lx.mode = modePHP
			break
		}
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	return kind
}
