package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

type mode uint8

const (
	modeHTML mode = iota
	modePHP
	modeComment // inside a /* */ comment that continues on the next line
	modeString  // inside a quoted string that continues on the next line
	modeHeredoc
)

// Lexer turns one PHP file into tokens that never cross a line break.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	mode   mode

	line int
	col  int

	// state of a construct split across lines
	contKind  token.Kind
	contStart source.Span
	quote     byte
	interp    int // depth of "{$" inside a double quoted string
	label     string

	prev     token.Token // last token that is not whitespace or a comment
	finished bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		mode:   modeHTML,
		line:   1,
		col:    1,
	}
}

// Tokenize lexes the whole file and links bracket pairs.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	MatchBrackets(toks)
	return toks
}

// Next returns the next token; ok is false once the input is exhausted.
// Bracket links are not set here; see MatchBrackets.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.cursor.EOF() {
		lx.finish()
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.mode {
	case modeHTML:
		kind = lx.scanHTML()
	case modeComment:
		kind = lx.scanCommentBody(lx.contKind)
	case modeString:
		kind = lx.scanStringBody()
	case modeHeredoc:
		kind = lx.scanHeredocLine()
	default:
		kind = lx.scanPHP()
	}
	return lx.emit(kind, start), true
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind:   kind,
		Span:   sp,
		Text:   sp.Text(lx.file.Content),
		Line:   lx.line,
		Col:    lx.col,
		Opener: token.NoMatch,
		Closer: token.NoMatch,
	}
	end := lx.advance(lx.col, tok.Text)
	tok.Width = end - lx.col
	if tok.EndsLine() {
		lx.line++
		lx.col = 1
	} else {
		lx.col = end
	}
	if !kind.IsEmpty() {
		lx.prev = tok
	}
	return tok
}

// finish reports constructs left open at end of input.
func (lx *Lexer) finish() {
	if lx.finished {
		return
	}
	lx.finished = true
	switch lx.mode {
	case modeComment:
		lx.errLex(diag.LexUnterminatedComment, lx.contStart, "unterminated block comment")
	case modeString:
		lx.errLex(diag.LexUnterminatedString, lx.contStart, "unterminated string literal")
	case modeHeredoc:
		lx.errLex(diag.LexUnterminatedHeredoc, lx.contStart, "heredoc closing label "+lx.label+" not found")
	}
}

func (lx *Lexer) scanPHP() token.Kind {
	b := lx.cursor.Peek()
	switch {
	case isBlank(b) || b == '\n':
		return lx.scanWhitespace()
	case lx.cursor.HasPrefix("?>"):
		lx.cursor.BumpN(2)
		lx.cursor.Eat('\n')
		lx.mode = modeHTML
		return token.CloseTag
	case lx.cursor.HasPrefix("#["):
		lx.cursor.BumpN(2)
		return token.Attribute
	case b == '#' || lx.cursor.HasPrefix("//"):
		return lx.scanLineComment()
	case lx.cursor.HasPrefix("/*"):
		return lx.scanBlockComment()
	case b == '$' && isIdentStart(lx.cursor.PeekAt(1)):
		return lx.scanVariable()
	case isIdentStart(b) || (b == '\\' && isIdentStart(lx.cursor.PeekAt(1))):
		return lx.scanIdent()
	case isDec(b) || (b == '.' && isDec(lx.cursor.PeekAt(1))):
		return lx.scanNumber()
	case b == '\'' || b == '"' || b == '`':
		return lx.scanString()
	case lx.cursor.HasPrefix("<<<") && lx.scanHeredocStart():
		return token.Heredoc
	default:
		return lx.scanOperator()
	}
}

// scanHTML consumes inline text up to an open tag or the end of the line.
func (lx *Lexer) scanHTML() token.Kind {
	if lx.atOpenTag() {
		return lx.scanOpenTag()
	}
	for !lx.cursor.EOF() {
		if lx.atOpenTag() {
			break
		}
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	return token.InlineHTML
}

func (lx *Lexer) atOpenTag() bool {
	if lx.cursor.HasPrefix("<?=") {
		return true
	}
	if !lx.cursor.HasPrefix("<?") {
		return false
	}
	tag := make([]byte, 3)
	for i := range tag {
		tag[i] = lower(lx.cursor.PeekAt(uint32(i) + 2))
	}
	return string(tag) == "php"
}

func (lx *Lexer) scanOpenTag() token.Kind {
	if lx.cursor.HasPrefix("<?=") {
		lx.cursor.BumpN(3)
	} else {
		lx.cursor.BumpN(5)
		// "<?php" owns one following blank or newline, as in PHP itself
		if b := lx.cursor.Peek(); isBlank(b) || b == '\n' {
			lx.cursor.Bump()
		}
	}
	lx.mode = modePHP
	return token.OpenTag
}

func (lx *Lexer) scanWhitespace() token.Kind {
	for isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.cursor.Eat('\n')
	return token.Whitespace
}
