// Package diag defines the diagnostic model shared by the lexer, the sniffs
// and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form such as
//     ARR4001 (codes.go).
//   - Rule: the dotted sniff rule id, e.g.
//     Generic.Arrays.ArrowAlignment.DoubleArrowNotAligned. Empty for lexer
//     and I/O diagnostics.
//   - Message: short, actionable text.
//   - Primary: the span of the offending token.
//   - Notes: optional secondary spans.
//   - Fixable: whether the producing sniff can rewrite the finding.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. Report returns false when the diagnostic was
// dropped (bag limit reached or a duplicate), which the sniff host uses to
// refuse a second fix for the same finding. ReportBuilder offers a chained
// form for producers that attach notes or rule ids.
//
// Package diag performs no formatting or IO; renderers live in
// internal/diagfmt.
package diag
