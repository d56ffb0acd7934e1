package token

import (
	"arrowlint/internal/source"
)

// NoMatch marks a bracket without a partner.
const NoMatch = -1

// Token is one lexical token of a PHP file.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line int // 1-based
	Col  int // 1-based display column
	// Width is the display width of Text; zero for a bare newline.
	Width  int
	Opener int // index of the opening bracket, set on closers
	Closer int // index of the closing bracket, set on openers
}

// EndCol is the display column just past the token.
func (t Token) EndCol() int { return t.Col + t.Width }

// HasCloser reports whether the token is an opener with a matched closer.
func (t Token) HasCloser() bool { return t.Kind.IsOpener() && t.Closer != NoMatch }

// EndsLine reports whether the token's text ends with a newline.
func (t Token) EndsLine() bool {
	return t.Text != "" && t.Text[len(t.Text)-1] == '\n'
}
