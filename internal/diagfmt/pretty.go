package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	Color     bool
	Context   int8 // source lines shown around the primary line
	PathMode  PathMode
	TabWidth  int // tabs in source excerpts; 0 means 4
	ShowNotes bool
	ShowRule  bool
}

type palette struct {
	err, warn, info *color.Color
	path, gutter    *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans, in bag order (call bag.Sort first):
//
//	path:line:col: ERROR ARR4001: message
//	   3 |     'a' => 1,
//	     |         ^^
//
// followed by the notes in the same layout.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)

		msg := d.Message
		if opts.ShowRule && d.Rule != "" {
			msg += " [" + d.Rule + "]"
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprintf("%s:%d:%d", formatPath(fs, f, opts.PathMode), start.Line, start.Col),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(),
			msg)
		excerpt(w, f, start, end, int(opts.Context), tab, p)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, ne := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), formatPath(fs, nf, opts.PathMode), ns.Line, ns.Col, n.Msg)
			excerpt(w, nf, ns, ne, 0, tab, p)
		}
	}
}

func excerpt(w io.Writer, f *source.File, start, end source.LineCol, context, tab int, p palette) {
	if len(f.Content) == 0 || start.Line == 0 {
		return
	}
	first := max(1, int(start.Line)-context)
	last := min(f.LineCount(), int(start.Line)+context)
	digits := len(strconv.Itoa(last))
	blank := strings.Repeat(" ", digits)

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) //nolint:gosec // ln is bounded by LineCount
		fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprintf("%*d", digits, ln), p.gutter.Sprint("|"), expandTabs(text, tab))
		if ln != int(start.Line) {
			continue
		}
		from := int(start.Col) - 1
		to := len(text)
		if end.Line == start.Line {
			to = min(to, int(end.Col)-1)
		}
		from = min(from, len(text))
		pad := displayWidth(text[:from], tab)
		width := max(1, displayWidth(text[:to], tab)-pad)
		fmt.Fprintf(w, " %s %s %s%s\n", blank, p.gutter.Sprint("|"), strings.Repeat(" ", pad), p.caret.Sprint(strings.Repeat("^", width)))
	}
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

func displayWidth(s string, tab int) int {
	return runewidth.StringWidth(expandTabs(s, tab))
}
