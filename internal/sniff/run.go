package sniff

import (
	"arrowlint/internal/token"
)

// Run walks the token stream once and calls every sniff registered for the
// kind of each token. A panic inside a sniff is not recovered.
func Run(f *File, sniffs []Sniff) {
	listeners := make(map[token.Kind][]Sniff)
	for _, s := range sniffs {
		for _, k := range s.Register() {
			listeners[k] = append(listeners[k], s)
		}
	}
	if len(listeners) == 0 {
		return
	}
	for ptr := range f.Tokens {
		for _, s := range listeners[f.Tokens[ptr].Kind] {
			f.current = s
			s.Process(f, ptr)
		}
	}
	f.current = nil
}
