// Package diff renders unified diffs of fixed files.
package diff

import (
	"fmt"
	"strings"
)

// Context is the number of unchanged lines shown around each hunk.
const Context = 3

// maxCells bounds the LCS table; larger middles are shown as one
// delete-then-insert block.
const maxCells = 1 << 22

type opKind byte

const (
	opEqual  opKind = ' '
	opDelete opKind = '-'
	opInsert opKind = '+'
)

type op struct {
	kind opKind
	line string
}

// Unified returns a unified diff from oldText to newText labelled with
// name, or "" when they are equal.
func Unified(name string, oldText, newText []byte) string {
	if string(oldText) == string(newText) {
		return ""
	}
	ops := lineOps(splitLines(string(oldText)), splitLines(string(newText)))

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", name, name)
	for _, h := range hunks(ops, Context) {
		h.write(&b, ops)
	}
	return b.String()
}

// splitLines keeps the newline on every line; a final line without one
// stays as is.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineOps(a, b []string) []op {
	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(b)-pre && a[len(a)-1-suf] == b[len(b)-1-suf] {
		suf++
	}

	ops := make([]op, 0, len(a)+len(b)-pre-suf)
	for _, l := range a[:pre] {
		ops = append(ops, op{opEqual, l})
	}
	ops = append(ops, middle(a[pre:len(a)-suf], b[pre:len(b)-suf])...)
	for _, l := range a[len(a)-suf:] {
		ops = append(ops, op{opEqual, l})
	}
	return ops
}

// middle diffs the part between the common prefix and suffix with a
// longest-common-subsequence table.
func middle(a, b []string) []op {
	n, m := len(a), len(b)
	ops := make([]op, 0, n+m)
	if n*m > maxCells {
		for _, l := range a {
			ops = append(ops, op{opDelete, l})
		}
		for _, l := range b {
			ops = append(ops, op{opInsert, l})
		}
		return ops
	}

	// lcs[i*(m+1)+j] is the LCS length of a[i:] and b[j:]
	w := m + 1
	lcs := make([]int32, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				lcs[i*w+j] = lcs[(i+1)*w+j+1] + 1
			case lcs[(i+1)*w+j] >= lcs[i*w+j+1]:
				lcs[i*w+j] = lcs[(i+1)*w+j]
			default:
				lcs[i*w+j] = lcs[i*w+j+1]
			}
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, op{opEqual, a[i]})
			i++
			j++
		case lcs[(i+1)*w+j] >= lcs[i*w+j+1]:
			ops = append(ops, op{opDelete, a[i]})
			i++
		default:
			ops = append(ops, op{opInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, op{opDelete, a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, op{opInsert, b[j]})
	}
	return ops
}

type hunk struct {
	from, to           int // op range
	oldStart, oldCount int
	newStart, newCount int
}

func hunks(ops []op, context int) []hunk {
	// oldPos[i], newPos[i]: lines consumed before ops[i]
	oldPos := make([]int, len(ops)+1)
	newPos := make([]int, len(ops)+1)
	for i, o := range ops {
		oldPos[i+1], newPos[i+1] = oldPos[i], newPos[i]
		if o.kind != opInsert {
			oldPos[i+1]++
		}
		if o.kind != opDelete {
			newPos[i+1]++
		}
	}

	var out []hunk
	for i := 0; i < len(ops); {
		if ops[i].kind == opEqual {
			i++
			continue
		}
		from := max(0, i-context)
		last := i
		for j := i + 1; j < len(ops) && j <= last+2*context; j++ {
			if ops[j].kind != opEqual {
				last = j
			}
		}
		to := min(len(ops), last+context+1)

		h := hunk{
			from:     from,
			to:       to,
			oldStart: oldPos[from] + 1,
			oldCount: oldPos[to] - oldPos[from],
			newStart: newPos[from] + 1,
			newCount: newPos[to] - newPos[from],
		}
		if h.oldCount == 0 {
			h.oldStart--
		}
		if h.newCount == 0 {
			h.newStart--
		}
		out = append(out, h)
		i = last + 1
	}
	return out
}

func (h hunk) write(b *strings.Builder, ops []op) {
	fmt.Fprintf(b, "@@ -%s +%s @@\n", rangeOf(h.oldStart, h.oldCount), rangeOf(h.newStart, h.newCount))
	for _, o := range ops[h.from:h.to] {
		b.WriteByte(byte(o.kind))
		b.WriteString(o.line)
		if !strings.HasSuffix(o.line, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}
}

func rangeOf(start, count int) string {
	if count == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}
