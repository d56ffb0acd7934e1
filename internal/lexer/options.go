package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

type Options struct {
	// Reporter receives lexical problems. May be nil: lexing continues either way.
	Reporter diag.Reporter
	// TabWidth is the tab stop distance used for columns; 0 counts a tab as one column.
	TabWidth int
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
}
