package diag

import "arrowlint/internal/source"

// tokenKey identifies a finding by rule and the byte where its token starts.
type tokenKey struct {
	rule string
	file source.FileID
	at   uint32
}

// DedupReporter forwards the first diagnostic of a rule at a token and
// drops later ones. Nested array literals are visited both by dispatch and
// by the recursion of the sniff, so the same finding arrives twice.
type DedupReporter struct {
	next    Reporter
	seen    map[tokenKey]struct{}
	dropped int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[tokenKey]struct{}),
	}
}

// Report returns false for a duplicate, otherwise what next returns.
func (r *DedupReporter) Report(d Diagnostic) bool {
	if r == nil {
		return false
	}
	rule := d.Rule
	if rule == "" {
		rule = d.Code.ID()
	}
	key := tokenKey{rule: rule, file: d.Primary.File, at: d.Primary.Start}
	if _, ok := r.seen[key]; ok {
		r.dropped++
		return false
	}
	r.seen[key] = struct{}{}
	if r.next == nil {
		return true
	}
	return r.next.Report(d)
}

// Dropped returns how many duplicates were filtered.
func (r *DedupReporter) Dropped() int {
	if r == nil {
		return 0
	}
	return r.dropped
}
