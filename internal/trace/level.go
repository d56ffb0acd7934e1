package trace

import (
	"fmt"
	"strings"
)

// Level controls how much is traced.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // error events only
	LevelPhase        // the run span
	LevelDetail       // plus one span per file
	LevelDebug        // plus one span per fixer pass
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// finest is the finest span scope each level lets through.
var finest = [...]Scope{LevelPhase: ScopeRun, LevelDetail: ScopeFile, LevelDebug: ScopePass}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by String, in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether an event of kind in scope passes this level.
func (l Level) Allows(kind Kind, scope Scope) bool {
	switch {
	case l == LevelOff:
		return false
	case kind == KindError:
		return true
	case int(l) < len(finest):
		return scope != 0 && scope <= finest[l]
	default:
		return false
	}
}
