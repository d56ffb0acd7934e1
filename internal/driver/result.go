package driver

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/observ"
	"arrowlint/internal/source"
)

// FileResult is the outcome of checking or fixing one file.
type FileResult struct {
	Path   string
	FileID source.FileID // version the diagnostics point into
	Bag    *diag.Bag
	Err    error // load or fixer failure; other files are unaffected

	Virtual bool
	Cached  bool

	// fix mode only
	Original  []byte
	Fixed     []byte // nil when nothing changed
	Passes    int
	Fixes     int
	Converged bool

	Timing observ.Report
}

// Changed reports whether fixing produced new content.
func (r *FileResult) Changed() bool { return r != nil && r.Fixed != nil }

// Summary totals a run.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
	Fixable  int // diagnostics fix would address
	Failed   int // files with Err set
	Fixed    int // files with changed content
	Fixes    int
}

// Summarize counts diagnostics and fixes over results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for i := range results {
		r := &results[i]
		s.Files++
		if r.Err != nil {
			s.Failed++
		}
		if r.Bag != nil {
			s.Errors += r.Bag.Count(diag.SevError)
			s.Warnings += r.Bag.Count(diag.SevWarning)
			s.Fixable += r.Bag.Fixable()
		}
		if r.Changed() {
			s.Fixed++
		}
		s.Fixes += r.Fixes
	}
	return s
}
