package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

func nextSeq() uint64 { return seq.Add(1) }

// Span is one begin/end pair. Spans of a tracer that filters their scope
// are inert: every method is a no-op and ID returns 0.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	path     string
	pass     int
	started  time.Time
	counters []Counter
}

type spanKey struct{}

// Option sets an attribute of a span before its begin event is emitted.
type Option func(*Span)

// Path names the file a span works on.
func Path(path string) Option {
	return func(s *Span) { s.path = path }
}

// Pass numbers a fixer pass, starting at 1.
func Pass(n int) Option {
	return func(s *Span) { s.pass = n }
}

// Start opens a span under the span carried by ctx, on the tracer of ctx,
// emits its begin event and returns a context carrying it.
func Start(ctx context.Context, scope Scope, name string, opts ...Option) (context.Context, *Span) {
	t := FromContext(ctx)
	parent := spanFrom(ctx)
	s := &Span{tracer: t, parentID: parent.ID(), scope: scope, name: name}
	for _, opt := range opts {
		opt(s)
	}
	if !t.Level().Allows(KindBegin, scope) {
		// children of a filtered span hang off the nearest live parent
		return ctx, s
	}
	s.id = spanIDs.Add(1)
	s.started = time.Now()
	s.emit(KindBegin, 0)
	return context.WithValue(ctx, spanKey{}, s), s
}

func spanFrom(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(spanKey{}).(*Span)
	return s
}

func (s *Span) live() bool { return s != nil && s.id != 0 }

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Count attaches a counter to the end event.
func (s *Span) Count(name string, n int) *Span {
	if s.live() {
		s.counters = append(s.counters, Counter{Name: name, N: n})
	}
	return s
}

// Fail emits an error event under the span. It passes every level except off.
func (s *Span) Fail(err error) {
	if s == nil || err == nil || !s.tracer.Level().Allows(KindError, s.scope) {
		return
	}
	id := s.id
	if id == 0 {
		id = s.parentID
	}
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Seq:      nextSeq(),
		Kind:     KindError,
		Scope:    s.scope,
		SpanID:   id,
		ParentID: s.parentID,
		Name:     s.name,
		Path:     s.path,
		Pass:     s.pass,
		Err:      err.Error(),
	})
}

// End emits the end event and returns how long the span was open.
func (s *Span) End() time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.started)
	s.emit(KindEnd, dur)
	return dur
}

func (s *Span) emit(kind Kind, dur time.Duration) {
	ev := &Event{
		Time:     time.Now(),
		Seq:      nextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Path:     s.path,
		Pass:     s.pass,
	}
	if kind == KindEnd {
		ev.Duration = dur
		ev.Counters = s.counters
	}
	s.tracer.Emit(ev)
}
