package lexer

import (
	"arrowlint/internal/token"
)

// MatchBrackets links every opener with its closer using a stack and
// gives each ']' the kind that matches its opener. A closer that does not
// match the innermost open bracket pops it and both stay unmatched.
func MatchBrackets(toks []token.Token) {
	stack := make([]int, 0, 16)
	for i := range toks {
		k := toks[i].Kind
		if k.IsOpener() {
			stack = append(stack, i)
			continue
		}
		if !k.IsCloser() || len(stack) == 0 {
			continue
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closer, ok := closerKind(toks[top].Kind, toks[i].Text)
		if !ok {
			continue
		}
		toks[i].Kind = closer
		toks[i].Opener = top
		toks[top].Closer = i
	}
}

func closerKind(opener token.Kind, text string) (token.Kind, bool) {
	switch {
	case opener == token.OpenShortArray && text == "]":
		return token.CloseShortArray, true
	case opener == token.OpenSquareBracket && text == "]":
		return token.CloseSquareBracket, true
	case opener == token.Attribute && text == "]":
		return token.AttributeEnd, true
	case opener == token.OpenParenthesis && text == ")":
		return token.CloseParenthesis, true
	case opener == token.OpenCurlyBracket && text == "}":
		return token.CloseCurlyBracket, true
	}
	return 0, false
}
