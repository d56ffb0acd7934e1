package diag

import "arrowlint/internal/source"

// Reporter receives diagnostics from producers.
// Report returns false when the diagnostic was dropped.
type Reporter interface {
	Report(d Diagnostic) bool
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
	accepted bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, primary, msg),
	}
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

// WithNote appends a note to the diagnostic.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(sp, msg)
	return b
}

// WithRule sets the sniff rule id.
func (b *ReportBuilder) WithRule(rule string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Rule = rule
	return b
}

// Fixable marks the diagnostic as automatically fixable.
func (b *ReportBuilder) Fixable(ok bool) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Fixable = ok
	return b
}

// Emit sends the diagnostic exactly once and reports whether it was kept.
// Later calls return the first result.
func (b *ReportBuilder) Emit() bool {
	if b == nil {
		return false
	}
	if b.emitted {
		return b.accepted
	}
	b.emitted = true
	if b.reporter != nil {
		b.accepted = b.reporter.Report(b.diag)
	}
	return b.accepted
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) bool {
	if r.Bag == nil {
		return false
	}
	return r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) bool { return false }
