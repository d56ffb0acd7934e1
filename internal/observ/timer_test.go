package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("cache")
	done("miss")
	done = tm.Track("lex")
	time.Sleep(time.Millisecond)
	done("")
	tm.Count("tokens", 12)

	r := tm.Report()
	if r.Files != 1 || len(r.Phases) != 2 || r.Phases[0].Name != "cache" || r.Phases[0].Outcomes["miss"] != 1 {
		t.Fatalf("unexpected report %+v", r)
	}
	if lex := r.Phases[1]; lex.Total < time.Millisecond || lex.Max != lex.Total || lex.Outcomes != nil {
		t.Errorf("lex %+v", lex)
	}
	if r.Total < r.Phases[1].Total || r.Counts["tokens"] != 12 {
		t.Errorf("report %+v", r)
	}
}

func TestReportAdd(t *testing.T) {
	var sum Report
	sum.Add(Report{
		Files: 1,
		Total: 3 * time.Millisecond,
		Phases: []PhaseStat{
			{Name: "cache", Files: 1, Total: time.Millisecond, Max: time.Millisecond, Outcomes: map[string]int{"hit": 1}},
			{Name: "sniff", Files: 1, Total: 2 * time.Millisecond, Max: 2 * time.Millisecond},
		},
		Counts: map[string]int{"tokens": 5},
	})
	sum.Add(Report{
		Files: 1,
		Total: 4 * time.Millisecond,
		Phases: []PhaseStat{
			{Name: "sniff", Files: 1, Total: 3 * time.Millisecond, Max: 3 * time.Millisecond},
			{Name: "cache", Files: 1, Total: time.Millisecond, Max: time.Millisecond, Outcomes: map[string]int{"miss": 1}},
		},
		Counts: map[string]int{"tokens": 7},
	})
	if sum.Files != 2 || sum.Total != 7*time.Millisecond || len(sum.Phases) != 2 {
		t.Fatalf("sum %+v", sum)
	}
	sniff := sum.Phases[1]
	if sniff.Name != "sniff" || sniff.Files != 2 || sniff.Total != 5*time.Millisecond || sniff.Max != 3*time.Millisecond {
		t.Errorf("sniff %+v", sniff)
	}
	if c := sum.Phases[0].Outcomes; c["hit"] != 1 || c["miss"] != 1 {
		t.Errorf("cache outcomes %v", c)
	}

	s := sum.Summary()
	for _, want := range []string{"timings (2 files):", "hit=1 miss=1", "total", "tokens: 12"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary lacks %q:\n%s", want, s)
		}
	}
	if (*Timer)(nil).Report().Files != 0 {
		t.Error("nil timer")
	}
}
