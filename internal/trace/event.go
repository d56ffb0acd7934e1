package trace

import "time"

// Kind is what happened: a span opened or closed, or an error.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindError
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindError: "error"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of a span. Lower values are coarser.
type Scope uint8

const (
	ScopeRun  Scope = iota + 1 // one run over all paths
	ScopeFile                  // one file, checked or fixed
	ScopePass                  // one fixer pass over a file
)

var scopeNames = [...]string{ScopeRun: "run", ScopeFile: "file", ScopePass: "pass"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Counter is a named count attached to an end event, such as the number of
// fixes a pass committed.
type Counter struct {
	Name string
	N    int
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // "check", "fix", "pass", "run"
	Path     string
	Pass     int
	Duration time.Duration // end events
	Counters []Counter     // end events, in the order they were set
	Err      string        // error events
}
