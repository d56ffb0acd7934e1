// Package fuzztests houses Go fuzz harnesses for the lexer and the fixer.
// They feed arbitrary bytes through tokenizing and the arrow alignment fix
// loop, looking for panics, broken token streams and fixes that do not
// converge.
//
// Seeds come from testdata/php and a few inline snippets; nothing is
// written to disk.

package fuzztests
