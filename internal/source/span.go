package source

import "fmt"

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// FileStart is the empty span at offset 0 of id, for findings about a whole
// file such as read failures.
func FileStart(id FileID) Span {
	return Span{File: id}
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Text slices the span out of content. Out of range spans are clamped.
func (s Span) Text(content []byte) string {
	n := uint32(len(content)) //nolint:gosec // File content is capped at 4GiB on load
	start, end := min(s.Start, n), min(s.End, n)
	if start >= end {
		return ""
	}
	return string(content[start:end])
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
