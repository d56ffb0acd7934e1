package sniff

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   []Sniff
)

// Register adds a sniff to the registry. Sniffs run in registration order.
// Registering the same code twice panics.
func Register(s Sniff) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, have := range registry {
		if have.Code() == s.Code() {
			panic(fmt.Sprintf("sniff %s registered twice", s.Code()))
		}
	}
	registry = append(registry, s)
}

// Registered returns all sniffs in execution order.
func Registered() []Sniff {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]Sniff(nil), registry...)
}

// Enabled returns the registered sniffs minus those whose code is disabled.
func Enabled(disabled []string) []Sniff {
	skip := make(map[string]bool, len(disabled))
	for _, code := range disabled {
		skip[code] = true
	}
	all := Registered()
	out := all[:0]
	for _, s := range all {
		if !skip[s.Code()] {
			out = append(out, s)
		}
	}
	return out
}

// Codes lists the codes of all registered sniffs, sorted.
func Codes() []string {
	all := Registered()
	codes := make([]string, 0, len(all))
	for _, s := range all {
		codes = append(codes, s.Code())
	}
	sort.Strings(codes)
	return codes
}
