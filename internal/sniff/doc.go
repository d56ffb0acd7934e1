// Package sniff hosts token-stream checks ("sniffs").
//
// A sniff declares which token kinds it listens to; Run walks the stream
// once and calls Process for every matching token. Sniffs report through
// File, which turns a message template plus data into a diag.Diagnostic
// and tells the sniff whether it should fix the finding. Fixes go through
// the fix.Fixer of the current pass as explicit changesets.
//
// Sniffs register themselves from init, so importing a sniff package is
// enough to enable it.
package sniff
