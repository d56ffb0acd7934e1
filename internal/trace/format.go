package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects the trace encoding.
type Format uint8

const (
	FormatAuto   Format = iota // NDJSON for .ndjson/.jsonl outputs, text otherwise
	FormatText                 // one indented line per event
	FormatNDJSON               // one JSON object per line
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// encode renders ev. Text timestamps are relative to start.
func encode(ev *Event, format Format, start time.Time) []byte {
	if format == FormatNDJSON {
		return encodeNDJSON(ev)
	}
	return encodeText(ev, start)
}

type jsonEvent struct {
	Time       string         `json:"time"`
	Seq        uint64         `json:"seq"`
	Kind       string         `json:"kind"`
	Scope      string         `json:"scope"`
	SpanID     uint64         `json:"span_id,omitempty"`
	ParentID   uint64         `json:"parent_id,omitempty"`
	Name       string         `json:"name"`
	Path       string         `json:"path,omitempty"`
	Pass       int            `json:"pass,omitempty"`
	DurationUS int64          `json:"duration_us,omitempty"`
	Counters   map[string]int `json:"counters,omitempty"`
	Err        string         `json:"error,omitempty"`
}

func encodeNDJSON(ev *Event) []byte {
	je := jsonEvent{
		Time:       ev.Time.Format(time.RFC3339Nano),
		Seq:        ev.Seq,
		Kind:       ev.Kind.String(),
		Scope:      ev.Scope.String(),
		SpanID:     ev.SpanID,
		ParentID:   ev.ParentID,
		Name:       ev.Name,
		Path:       ev.Path,
		Pass:       ev.Pass,
		DurationUS: ev.Duration.Microseconds(),
		Err:        ev.Err,
	}
	if len(ev.Counters) > 0 {
		je.Counters = make(map[string]int, len(ev.Counters))
		for _, c := range ev.Counters {
			je.Counters[c.Name] = c.N
		}
	}
	data, _ := json.Marshal(je)
	return append(data, '\n')
}

// encodeText renders
//
//	[    1.234ms]   <- fix a.php 412µs passes=2 fixes=3
//
// indented two spaces per scope below the run.
func encodeText(ev *Event, start time.Time) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%9.3fms] ", float64(ev.Time.Sub(start))/float64(time.Millisecond))
	if ev.Scope > ScopeRun {
		sb.WriteString(strings.Repeat("  ", int(ev.Scope-ScopeRun)))
	}
	switch ev.Kind {
	case KindBegin:
		sb.WriteString("-> ")
	case KindEnd:
		sb.WriteString("<- ")
	case KindError:
		sb.WriteString("!! ")
	}
	sb.WriteString(ev.Name)
	if ev.Path != "" {
		sb.WriteByte(' ')
		sb.WriteString(ev.Path)
	}
	if ev.Pass > 0 {
		sb.WriteString(" #")
		sb.WriteString(strconv.Itoa(ev.Pass))
	}
	if ev.Kind == KindEnd {
		sb.WriteByte(' ')
		sb.WriteString(ev.Duration.Round(time.Microsecond).String())
	}
	for _, c := range ev.Counters {
		fmt.Fprintf(&sb, " %s=%d", c.Name, c.N)
	}
	if ev.Err != "" {
		sb.WriteString(": ")
		sb.WriteString(ev.Err)
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
