package cache

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// SchemaVersion is bumped whenever Entry changes shape.
const SchemaVersion uint16 = 1

// Entry is the cached outcome of checking one file.
type Entry struct {
	Schema      uint16
	Diagnostics []Record
}

// Record is a diagnostic with its spans reduced to byte offsets, so it can
// be attached to whatever FileID the file gets in a later run.
type Record struct {
	Severity uint8
	Code     uint16
	Rule     string
	Message  string
	Start    uint32
	End      uint32
	Fixable  bool
	Notes    []NoteRecord
}

type NoteRecord struct {
	Start uint32
	End   uint32
	Msg   string
}

// NewEntry captures diags for storage.
func NewEntry(diags []diag.Diagnostic) *Entry {
	e := &Entry{Schema: SchemaVersion, Diagnostics: make([]Record, 0, len(diags))}
	for _, d := range diags {
		r := Record{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Rule:     d.Rule,
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Fixable:  d.Fixable,
		}
		for _, n := range d.Notes {
			r.Notes = append(r.Notes, NoteRecord{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		e.Diagnostics = append(e.Diagnostics, r)
	}
	return e
}

// Restore rebuilds the diagnostics for file.
func (e *Entry) Restore(file source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(e.Diagnostics))
	for _, r := range e.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(r.Severity),
			Code:     diag.Code(r.Code),
			Rule:     r.Rule,
			Message:  r.Message,
			Primary:  source.Span{File: file, Start: r.Start, End: r.End},
			Fixable:  r.Fixable,
		}
		for _, n := range r.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: file, Start: n.Start, End: n.End}, Msg: n.Msg})
		}
		out = append(out, d)
	}
	return out
}
