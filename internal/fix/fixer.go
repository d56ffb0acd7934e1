package fix

import (
	"fmt"
	"strings"

	"arrowlint/internal/token"
)

// Fixer holds the current text of every token of one pass. Edits are
// addressed by token index into the stream the pass was started from, so
// positions stay stable no matter how many edits were committed before.
type Fixer struct {
	text    []string
	changed []bool // touched by a committed changeset in this pass

	commits  int
	rejected []Rejection
}

// Rejection records a changeset that Commit refused.
type Rejection struct {
	Token  int
	Reason string
}

// NewFixer starts a pass over toks.
func NewFixer(toks []token.Token) *Fixer {
	f := &Fixer{
		text:    make([]string, len(toks)),
		changed: make([]bool, len(toks)),
	}
	for i := range toks {
		f.text[i] = toks[i].Text
	}
	return f
}

// Len returns the number of tokens.
func (f *Fixer) Len() int { return len(f.text) }

// TokenContent returns the current text of token i.
func (f *Fixer) TokenContent(i int) string { return f.text[i] }

// Commits returns how many changesets were committed in this pass.
func (f *Fixer) Commits() int { return f.commits }

// Rejections returns the changesets Commit refused in this pass.
func (f *Fixer) Rejections() []Rejection { return f.rejected }

// Content renders the file with all committed edits applied.
func (f *Fixer) Content() string {
	var b strings.Builder
	for _, s := range f.text {
		b.WriteString(s)
	}
	return b.String()
}

// BeginChangeset opens an edit list that is applied as one unit by Commit.
func (f *Fixer) BeginChangeset() *Changeset {
	return &Changeset{fixer: f}
}

type editOp uint8

const (
	opReplace editOp = iota
	opAppend
	opPrepend
)

type edit struct {
	ptr  int
	op   editOp
	text string
}

// Changeset is an explicit list of token edits. Nothing is visible to the
// Fixer until Commit succeeds.
type Changeset struct {
	fixer *Fixer
	edits []edit
	done  bool
}

// ReplaceToken sets the text of token ptr.
func (c *Changeset) ReplaceToken(ptr int, text string) {
	c.add(edit{ptr: ptr, op: opReplace, text: text})
}

// AddContent appends text to token ptr.
func (c *Changeset) AddContent(ptr int, text string) {
	c.add(edit{ptr: ptr, op: opAppend, text: text})
}

// AddContentBefore prepends text to token ptr.
func (c *Changeset) AddContentBefore(ptr int, text string) {
	c.add(edit{ptr: ptr, op: opPrepend, text: text})
}

func (c *Changeset) add(e edit) {
	if c.done {
		return
	}
	c.edits = append(c.edits, e)
}

// Len returns the number of recorded edits.
func (c *Changeset) Len() int { return len(c.edits) }

// Discard drops the changeset without touching the Fixer.
func (c *Changeset) Discard() {
	c.done = true
	c.edits = nil
}

// Commit applies every edit or none. It refuses the whole changeset when an
// edit addresses a token outside the stream or a token that another
// changeset already changed in this pass. An empty changeset commits
// trivially without counting as a change.
func (c *Changeset) Commit() bool {
	if c.done {
		return false
	}
	c.done = true
	if len(c.edits) == 0 {
		return true
	}
	f := c.fixer

	staged := make(map[int]string, len(c.edits))
	for _, e := range c.edits {
		if e.ptr < 0 || e.ptr >= len(f.text) {
			f.reject(e.ptr, fmt.Sprintf("token %d out of range [0,%d)", e.ptr, len(f.text)))
			return false
		}
		if f.changed[e.ptr] {
			f.reject(e.ptr, fmt.Sprintf("token %d already changed in this pass", e.ptr))
			return false
		}
		cur, ok := staged[e.ptr]
		if !ok {
			cur = f.text[e.ptr]
		}
		switch e.op {
		case opReplace:
			cur = e.text
		case opAppend:
			cur += e.text
		case opPrepend:
			cur = e.text + cur
		}
		staged[e.ptr] = cur
	}

	dirty := false
	for ptr, text := range staged {
		if f.text[ptr] != text {
			dirty = true
		}
	}
	if !dirty {
		return true
	}
	for ptr, text := range staged {
		f.text[ptr] = text
		f.changed[ptr] = true
	}
	f.commits++
	return true
}

func (f *Fixer) reject(ptr int, reason string) {
	f.rejected = append(f.rejected, Rejection{Token: ptr, Reason: reason})
}
