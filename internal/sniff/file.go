package sniff

import (
	"fmt"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// Options configure one dispatch over a file.
type Options struct {
	// Reporter receives the diagnostics. Duplicates are filtered before it.
	Reporter diag.Reporter
	// Fixer enables fixing for this pass when non-nil.
	Fixer *fix.Fixer
	// Severity overrides the default severity of a finding. Keys are tried
	// in order: full rule id, sniff code, "*".
	Severity map[string]diag.Severity
}

// File is the view of one tokenized file handed to sniffs.
type File struct {
	Source *source.File
	Tokens []token.Token

	opts     Options
	reporter *diag.DedupReporter
	current  Sniff

	errors   int
	warnings int
}

// NewFile prepares toks of src for dispatch.
func NewFile(src *source.File, toks []token.Token, opts Options) *File {
	next := opts.Reporter
	if next == nil {
		next = diag.NopReporter{}
	}
	return &File{
		Source:   src,
		Tokens:   toks,
		opts:     opts,
		reporter: diag.NewDedupReporter(next),
	}
}

// Fixer returns the fixer of the current pass, or nil when only checking.
func (f *File) Fixer() *fix.Fixer { return f.opts.Fixer }

// IsFixing reports whether the current pass applies fixes.
func (f *File) IsFixing() bool { return f.opts.Fixer != nil }

// ErrorCount returns the number of errors reported so far.
func (f *File) ErrorCount() int { return f.errors }

// WarningCount returns the number of warnings reported so far.
func (f *File) WarningCount() int { return f.warnings }

// AddError reports a non-fixable error. msg is a %s template expanded with data.
func (f *File) AddError(msg string, ptr int, code string, data ...any) {
	f.add(diag.SevError, msg, ptr, code, false, data)
}

// AddWarning reports a non-fixable warning.
func (f *File) AddWarning(msg string, ptr int, code string, data ...any) {
	f.add(diag.SevWarning, msg, ptr, code, false, data)
}

// AddFixableError reports a fixable error and returns true when the caller
// should fix it now: the pass is fixing and this is the first report of the
// rule at this token.
func (f *File) AddFixableError(msg string, ptr int, code string, data ...any) bool {
	return f.add(diag.SevError, msg, ptr, code, true, data)
}

// AddFixableWarning is AddFixableError with warning as default severity.
func (f *File) AddFixableWarning(msg string, ptr int, code string, data ...any) bool {
	return f.add(diag.SevWarning, msg, ptr, code, true, data)
}

func (f *File) add(sev diag.Severity, msg string, ptr int, code string, fixable bool, data []any) bool {
	if ptr < 0 || ptr >= len(f.Tokens) {
		return false
	}
	rule := code
	var num diag.Code
	if f.current != nil {
		rule = f.current.Code() + "." + code
		num = f.current.Codes()[code]
	}
	sev = f.severity(rule, sev)

	accepted := diag.NewReportBuilder(f.reporter, sev, num, f.Tokens[ptr].Span, expand(msg, data)).
		WithRule(rule).
		Fixable(fixable).
		Emit()
	if !accepted {
		return false
	}
	if sev == diag.SevError {
		f.errors++
	} else if sev == diag.SevWarning {
		f.warnings++
	}
	return fixable && f.IsFixing()
}

func (f *File) severity(rule string, def diag.Severity) diag.Severity {
	if len(f.opts.Severity) == 0 {
		return def
	}
	keys := []string{rule, "*"}
	if f.current != nil {
		keys = []string{rule, f.current.Code(), "*"}
	}
	for _, k := range keys {
		if sev, ok := f.opts.Severity[k]; ok {
			return sev
		}
	}
	return def
}

// expand renders data with %v and substitutes it into the %s placeholders.
func expand(msg string, data []any) string {
	if len(data) == 0 {
		return msg
	}
	args := make([]any, len(data))
	for i, d := range data {
		args[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf(msg, args...)
}

// FindPrevious searches backwards from start down to end (inclusive) for a
// token whose kind is in kinds, or with exclude set, is not in kinds.
// A negative end searches to the start of the file. Returns -1 if none.
func (f *File) FindPrevious(kinds []token.Kind, start, end int, exclude bool) int {
	if start >= len(f.Tokens) {
		start = len(f.Tokens) - 1
	}
	if end < 0 {
		end = 0
	}
	for i := start; i >= end; i-- {
		if matches(f.Tokens[i].Kind, kinds) != exclude {
			return i
		}
	}
	return -1
}

// FindNext searches forwards from start up to end (inclusive).
// A negative end searches to the end of the file. Returns -1 if none.
func (f *File) FindNext(kinds []token.Kind, start, end int, exclude bool) int {
	if start < 0 {
		start = 0
	}
	if end < 0 || end >= len(f.Tokens) {
		end = len(f.Tokens) - 1
	}
	for i := start; i <= end; i++ {
		if matches(f.Tokens[i].Kind, kinds) != exclude {
			return i
		}
	}
	return -1
}

func matches(k token.Kind, kinds []token.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
