package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const utfSelf = utf8.RuneSelf

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

// Bytes >= 0x80 are valid in PHP names.
func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= utfSelf
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isPunct(b byte) bool {
	return strings.IndexByte("!\"#$%&'*+-./:<=>?@\\^|~", b) >= 0
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// advance returns the display column reached after text starting at col.
// Text is NFC-normalized first so combining sequences occupy one cell.
func (lx *Lexer) advance(col int, text string) int {
	text = strings.TrimSuffix(text, "\n")
	if !isASCII(text) {
		text = norm.NFC.String(text)
	}
	for _, r := range text {
		if r == '\t' {
			col += tabAdvance(col, lx.opts.TabWidth)
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

func tabAdvance(col, width int) int {
	if width <= 0 {
		return 1
	}
	return width - (col-1)%width
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utfSelf {
			return false
		}
	}
	return true
}
