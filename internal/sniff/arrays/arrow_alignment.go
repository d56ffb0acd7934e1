package arrays

import (
	"strings"

	"arrowlint/internal/diag"
	"arrowlint/internal/sniff"
	"arrowlint/internal/token"
)

const (
	arrowAlignmentCode = "Generic.Arrays.ArrowAlignment"
	codeNotAligned     = "DoubleArrowNotAligned"
)

func init() {
	sniff.Register(&ArrowAlignment{})
}

// ArrowAlignment aligns the '=>' operators of multi-line short array
// literals. Arrows are grouped by the column of the first token on their
// line; within a group every arrow sits one column past the longest key.
// Nested literals are aligned on their own.
type ArrowAlignment struct{}

func (*ArrowAlignment) Code() string { return arrowAlignmentCode }

func (*ArrowAlignment) Register() []token.Kind {
	return []token.Kind{token.OpenShortArray}
}

func (*ArrowAlignment) Codes() map[string]diag.Code {
	return map[string]diag.Code{codeNotAligned: diag.ArrDoubleArrowNotAligned}
}

type arrowRecord struct {
	arrow    int
	keyStart int
	keyEnd   int
	keyLen   int
}

type indentBucket struct {
	maxKeyLen int
	arrows    []arrowRecord
}

// Process aligns the literal opened at ptr and then each nested literal.
func (a *ArrowAlignment) Process(f *sniff.File, ptr int) {
	toks := f.Tokens
	if !toks[ptr].HasCloser() {
		return
	}
	closer := toks[ptr].Closer
	if toks[ptr].Line == toks[closer].Line {
		return
	}

	buckets, order, nested := collectArrows(f, ptr, closer)

	for _, col := range order {
		b := buckets[col]
		for _, rec := range b.arrows {
			expected := toks[rec.keyStart].Col + b.maxKeyLen + 1
			found := toks[rec.arrow].Col
			if found == expected {
				continue
			}
			fix := f.AddFixableError(
				"Array double arrow not aligned correctly; expected column %s but found %s",
				rec.arrow, codeNotAligned, expected, found,
			)
			if fix {
				fixArrow(f, rec, expected, closer)
			}
		}
	}

	for _, n := range nested {
		a.Process(f, n)
	}
}

// collectArrows scans the immediate body of the literal, skipping nested
// literals, and buckets every arrow by the indentation of its line.
func collectArrows(f *sniff.File, opener, closer int) (map[int]*indentBucket, []int, []int) {
	toks := f.Tokens
	buckets := make(map[int]*indentBucket)
	var order, nested []int

	for i := opener + 1; i < closer; i++ {
		tok := toks[i]
		if tok.Kind == token.OpenShortArray && tok.HasCloser() {
			nested = append(nested, i)
			i = tok.Closer
			continue
		}
		if tok.Kind != token.DoubleArrow {
			continue
		}

		anchor := lineAnchor(toks, i)
		keyEnd := f.FindPrevious([]token.Kind{token.Whitespace}, i-1, anchor, true)
		if keyEnd < 0 {
			// arrow opens the line: there is no key to measure
			continue
		}

		col := toks[anchor].Col
		b, ok := buckets[col]
		if !ok {
			b = &indentBucket{}
			buckets[col] = b
			order = append(order, col)
		}
		keyLen := toks[keyEnd].EndCol() - toks[anchor].Col
		if keyLen > b.maxKeyLen {
			b.maxKeyLen = keyLen
		}
		b.arrows = append(b.arrows, arrowRecord{arrow: i, keyStart: anchor, keyEnd: keyEnd, keyLen: keyLen})
	}
	return buckets, order, nested
}

// lineAnchor returns the first non-whitespace token on the line of ptr,
// or ptr itself when only whitespace precedes it.
func lineAnchor(toks []token.Token, ptr int) int {
	first := ptr
	for first > 0 && toks[first-1].Line == toks[ptr].Line {
		first--
	}
	for first < ptr && toks[first].Kind == token.Whitespace {
		first++
	}
	return first
}

// fixArrow rewrites the whitespace around one arrow as a single changeset.
func fixArrow(f *sniff.File, rec arrowRecord, expected, closer int) {
	toks := f.Tokens
	cs := f.Fixer().BeginChangeset()

	for i := rec.keyEnd + 1; i < rec.arrow; i++ {
		if toks[i].Kind == token.Whitespace {
			cs.ReplaceToken(i, "")
		}
	}
	spaces := max(expected-toks[rec.keyEnd].EndCol(), 1)
	cs.AddContent(rec.keyEnd, strings.Repeat(" ", spaces))

	next := rec.arrow + 1
	switch {
	case next >= closer:
	case toks[next].Kind == token.Whitespace:
		if toks[next].EndsLine() {
			// the value starts on the next line
			break
		}
		cs.ReplaceToken(next, " ")
		for i := next + 1; i < closer && toks[i].Kind == token.Whitespace && toks[i].Line == toks[rec.arrow].Line; i++ {
			cs.ReplaceToken(i, "")
		}
	case toks[next].Line == toks[rec.arrow].Line:
		cs.AddContent(rec.arrow, " ")
	}

	cs.Commit()
}
