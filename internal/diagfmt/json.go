package diagfmt

import (
	"encoding/json"
	"io"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// JSONOpts configures the JSON report.
type JSONOpts struct {
	PathMode       PathMode
	IncludeNotes   bool
	IncludeOffsets bool // byte offsets next to line/column
	Max            int  // messages kept in the report, 0 for all; totals still count everything
}

// JSONReport groups messages per file with running totals, in the shape
// of the PHP_CodeSniffer json report.
type JSONReport struct {
	Totals JSONTotals `json:"totals"`
	Files  []JSONFile `json:"files"`
}

type JSONTotals struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Fixable  int `json:"fixable"`
}

// JSONFile lists the messages of one file in report order.
type JSONFile struct {
	Path     string        `json:"path"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Messages []JSONMessage `json:"messages"`
}

type JSONMessage struct {
	Message  string     `json:"message"`
	Source   string     `json:"source,omitempty"`
	Code     string     `json:"code"`
	Severity string     `json:"severity"`
	Fixable  bool       `json:"fixable"`
	Line     uint32     `json:"line"`
	Column   uint32     `json:"column"`
	EndLine  uint32     `json:"end_line"`
	EndCol   uint32     `json:"end_column"`
	Start    *uint32    `json:"start_byte,omitempty"`
	End      *uint32    `json:"end_byte,omitempty"`
	Notes    []JSONNote `json:"notes,omitempty"`
}

type JSONNote struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Line    uint32 `json:"line"`
	Column  uint32 `json:"column"`
}

// BuildJSONReport collects bag into a JSONReport without encoding it.
func BuildJSONReport(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) JSONReport {
	report := JSONReport{Files: []JSONFile{}}
	byFile := make(map[source.FileID]int)
	kept := 0

	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			report.Totals.Errors++
		case diag.SevWarning:
			report.Totals.Warnings++
		}
		if d.Fixable {
			report.Totals.Fixable++
		}

		idx, ok := byFile[d.Primary.File]
		if !ok {
			idx = len(report.Files)
			byFile[d.Primary.File] = idx
			report.Files = append(report.Files, JSONFile{
				Path:     formatPath(fs, fs.Get(d.Primary.File), opts.PathMode),
				Messages: []JSONMessage{},
			})
		}
		file := &report.Files[idx]
		switch d.Severity {
		case diag.SevError:
			file.Errors++
		case diag.SevWarning:
			file.Warnings++
		}

		if opts.Max > 0 && kept >= opts.Max {
			continue
		}
		kept++
		file.Messages = append(file.Messages, buildMessage(d, fs, opts))
	}
	return report
}

func buildMessage(d diag.Diagnostic, fs *source.FileSet, opts JSONOpts) JSONMessage {
	start, end := fs.Resolve(d.Primary)
	msg := JSONMessage{
		Message:  d.Message,
		Source:   d.Rule,
		Code:     d.Code.ID(),
		Severity: d.Severity.String(),
		Fixable:  d.Fixable,
		Line:     start.Line,
		Column:   start.Col,
		EndLine:  end.Line,
		EndCol:   end.Col,
	}
	if opts.IncludeOffsets {
		s, e := d.Primary.Start, d.Primary.End
		msg.Start, msg.End = &s, &e
	}
	if opts.IncludeNotes {
		for _, note := range d.Notes {
			pos, _ := fs.Resolve(note.Span)
			msg.Notes = append(msg.Notes, JSONNote{
				Message: note.Msg,
				Path:    formatPath(fs, fs.Get(note.Span.File), opts.PathMode),
				Line:    pos.Line,
				Column:  pos.Col,
			})
		}
	}
	return msg
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildJSONReport(bag, fs, opts))
}
