package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelAllows(t *testing.T) {
	cases := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeRun, false},
		{LevelError, KindBegin, ScopeRun, false},
		{LevelError, KindError, ScopePass, true},
		{LevelPhase, KindBegin, ScopeRun, true},
		{LevelPhase, KindBegin, ScopeFile, false},
		{LevelDetail, KindEnd, ScopeFile, true},
		{LevelDetail, KindEnd, ScopePass, false},
		{LevelDebug, KindBegin, ScopePass, true},
	}
	for _, tc := range cases {
		if got := tc.level.Allows(tc.kind, tc.scope); got != tc.want {
			t.Errorf("%v.Allows(%v, %v) = %v", tc.level, tc.kind, tc.scope, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		lvl, err := ParseLevel(s)
		if err != nil || !strings.EqualFold(lvl.String(), s) {
			t.Errorf("ParseLevel(%q) = %v, %v", s, lvl, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("invalid level accepted")
	}
}

func TestTextSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelDetail, FormatText))

	ctx, run := Start(ctx, ScopeRun, "run")
	fileCtx, file := Start(ctx, ScopeFile, "fix", Path("a.php"))
	_, pass := Start(fileCtx, ScopePass, "pass", Pass(1))
	pass.Fail(errors.New("boom"))
	pass.End()
	file.Count("passes", 2).Count("fixes", 3).End()
	run.End()

	out := buf.String()
	for _, want := range []string{"-> run", "  -> fix a.php", "    !! pass #1: boom", "  <- fix a.php ", " passes=2 fixes=3", "<- run"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "-> pass") {
		t.Errorf("pass span emitted at detail level:\n%s", out)
	}
	if pass.ID() != 0 || file.ID() == 0 {
		t.Errorf("ids: pass %d, file %d", pass.ID(), file.ID())
	}
}

func TestParentFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelDebug, FormatNDJSON))
	ctx, run := Start(ctx, ScopeRun, "run")
	_, file := Start(ctx, ScopeFile, "check")
	if file.parentID != run.ID() || run.parentID != 0 {
		t.Errorf("parents: file %d (run %d), run %d", file.parentID, run.ID(), run.parentID)
	}

	// a filtered span leaves the context to its parent
	phase := WithTracer(context.Background(), NewStreamTracer(&buf, LevelPhase, FormatText))
	phase, run2 := Start(phase, ScopeRun, "run")
	fileCtx, hidden := Start(phase, ScopeFile, "fix")
	_, pass := Start(fileCtx, ScopePass, "pass")
	if hidden.ID() != 0 || pass.parentID != run2.ID() {
		t.Errorf("hidden %d, pass parent %d, run %d", hidden.ID(), pass.parentID, run2.ID())
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	_, span := Start(WithTracer(context.Background(), tr), ScopeRun, "fix", Path("src"))
	span.Count("files", 4).End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "run" || ev.Name != "fix" || ev.Path != "src" || ev.Counters["files"] != 4 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() || tr != Nop {
		t.Fatalf("tracer %v err %v", tr, err)
	}
	ctx := WithTracer(context.Background(), tr)
	_, span := Start(ctx, ScopeRun, "x")
	span.Fail(errors.New("ignored"))
	if d := span.Count("n", 1).End(); d != 0 {
		t.Errorf("inert span measured %v", d)
	}
	if FromContext(context.Background()) != Nop {
		t.Error("default tracer is not Nop")
	}
}

func TestResolveFormat(t *testing.T) {
	cases := []struct {
		format Format
		path   string
		want   Format
	}{
		{FormatAuto, "", FormatText},
		{FormatAuto, "run.ndjson", FormatNDJSON},
		{FormatAuto, "run.jsonl", FormatNDJSON},
		{FormatAuto, "run.log", FormatText},
		{FormatText, "run.ndjson", FormatText},
	}
	for _, tc := range cases {
		if got := resolveFormat(tc.format, tc.path); got != tc.want {
			t.Errorf("resolveFormat(%v, %q) = %v, want %v", tc.format, tc.path, got, tc.want)
		}
	}
}
