// Package observ measures where time goes for --timings.
package observ

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

type phase struct {
	name    string
	start   time.Time
	dur     time.Duration
	outcome string
}

// Timer records the phases of one file in start order and a few counts
// (tokens, diagnostics). Not safe for concurrent use; the driver keeps one
// Timer per file.
type Timer struct {
	phases []phase
	counts map[string]int
}

func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 4)} }

// Track starts a phase and returns the function that ends it. The outcome
// ("hit", "miss", "converged") is tallied per phase across files, so it
// should be one of a few fixed words.
func (t *Timer) Track(name string) func(outcome string) {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	idx := len(t.phases) - 1
	return func(outcome string) {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
		p.outcome = outcome
	}
}

// Count adds n to the named count.
func (t *Timer) Count(name string, n int) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	t.counts[name] += n
}

// PhaseStat sums one phase over the files of a Report.
type PhaseStat struct {
	Name     string
	Files    int
	Total    time.Duration
	Max      time.Duration
	Outcomes map[string]int
}

// Report is the timing of one file, or the sum of many.
type Report struct {
	Files  int
	Total  time.Duration
	Phases []PhaseStat
	Counts map[string]int
}

// Report freezes the timer into a one-file Report.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	r := Report{Files: 1, Counts: maps.Clone(t.counts)}
	for _, p := range t.phases {
		st := r.stat(p.name)
		st.Files++
		st.Total += p.dur
		st.Max = max(st.Max, p.dur)
		if p.outcome != "" {
			if st.Outcomes == nil {
				st.Outcomes = make(map[string]int)
			}
			st.Outcomes[p.outcome]++
		}
		r.Total += p.dur
	}
	return r
}

// stat returns the PhaseStat named name, appending it on first use.
func (r *Report) stat(name string) *PhaseStat {
	for i := range r.Phases {
		if r.Phases[i].Name == name {
			return &r.Phases[i]
		}
	}
	r.Phases = append(r.Phases, PhaseStat{Name: name})
	return &r.Phases[len(r.Phases)-1]
}

// Add merges other into r, keeping the first-seen phase order.
func (r *Report) Add(other Report) {
	r.Files += other.Files
	r.Total += other.Total
	for _, p := range other.Phases {
		st := r.stat(p.Name)
		st.Files += p.Files
		st.Total += p.Total
		st.Max = max(st.Max, p.Max)
		for k, n := range p.Outcomes {
			if st.Outcomes == nil {
				st.Outcomes = make(map[string]int)
			}
			st.Outcomes[k] += n
		}
	}
	for k, n := range other.Counts {
		if r.Counts == nil {
			r.Counts = make(map[string]int)
		}
		r.Counts[k] += n
	}
}

// Summary renders r as a table for stderr.
func (r Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "timings (%d files):\n", r.Files)
	fmt.Fprintf(&sb, "  %-10s %6s %11s %11s\n", "phase", "files", "total", "max")
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-10s %6d %8.2f ms %8.2f ms", p.Name, p.Files, millis(p.Total), millis(p.Max))
		for _, k := range slices.Sorted(maps.Keys(p.Outcomes)) {
			fmt.Fprintf(&sb, " %s=%d", k, p.Outcomes[k])
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %6s %8.2f ms\n", "total", "", millis(r.Total))
	for _, k := range slices.Sorted(maps.Keys(r.Counts)) {
		fmt.Fprintf(&sb, "  %s: %d\n", k, r.Counts[k])
	}
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
