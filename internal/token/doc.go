// Package token defines the PHP token kinds and the Token record that the
// sniffs consume.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - A token never spans a line break except as its last byte: whitespace
//     runs end after a newline, and multi-line comments, strings and heredocs
//     are split into one token per line.
//   - Bracket tokens link to their partner through Opener/Closer; an
//     unmatched bracket keeps NoMatch in both fields.
//   - Keywords are recognized case-insensitively, as PHP does.
package token
