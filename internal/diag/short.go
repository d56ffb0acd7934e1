package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"arrowlint/internal/source"
)

// Line is one rendered row of short output: a diagnostic or one of its notes.
type Line struct {
	Severity string // error, warning, info or note
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

func (l Line) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.Severity, l.Code, l.Path, l.Line, l.Column, l.Message)
}

func compareLines(a, b Line) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Severity, b.Severity),
		cmp.Compare(a.Code, b.Code),
		cmp.Compare(a.Message, b.Message),
	)
}

// Lines flattens diags into rows ordered by path, position, severity, code
// and message. Paths of files read from disk are relative to the FileSet
// base directory. withRule appends the rule id in brackets.
func Lines(diags []Diagnostic, fs *source.FileSet, includeNotes, withRule bool) []Line {
	if fs == nil {
		return nil
	}
	var out []Line
	for i := range diags {
		d := &diags[i]
		msg := oneLine(d.Message)
		if withRule && d.Rule != "" {
			msg += " [" + d.Rule + "]"
		}
		if l, ok := lineAt(fs, d.Primary); ok {
			l.Severity = strings.ToLower(d.Severity.String())
			l.Code = d.Code.ID()
			l.Message = msg
			out = append(out, l)
		}
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			if l, ok := lineAt(fs, note.Span); ok {
				l.Severity = "note"
				l.Code = d.Code.ID()
				l.Message = oneLine(note.Msg)
				out = append(out, l)
			}
		}
	}
	slices.SortStableFunc(out, compareLines)
	return out
}

// FormatGoldenDiagnostics renders Lines with rule ids, for comparing
// against expected output in tests.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return join(Lines(diags, fs, includeNotes, true))
}

// FormatShortDiagnostics renders Lines for the CLI short format.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return join(Lines(diags, fs, includeNotes, false))
}

func join(lines []Line) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

func lineAt(fs *source.FileSet, span source.Span) (Line, bool) {
	if int(span.File) >= fs.Len() {
		return Line{}, false
	}
	file := fs.Get(span.File)
	path := file.Path
	if file.Flags&source.FileVirtual == 0 {
		path = file.FormatPath("relative", fs.BaseDir())
	}
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	start, _ := fs.Resolve(span)
	return Line{Path: path, Line: start.Line, Column: start.Col}, true
}

// oneLine folds line breaks so each row stays on one line.
func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
