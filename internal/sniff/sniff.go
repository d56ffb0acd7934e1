package sniff

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

// Sniff is one check over a token stream.
type Sniff interface {
	// Code is the dotted sniff name, e.g. "Generic.Arrays.ArrowAlignment".
	Code() string
	// Register lists the token kinds Process is called for.
	Register() []token.Kind
	// Process inspects the stream at ptr. It must not keep f after returning.
	Process(f *File, ptr int)
	// Codes maps message codes (the last segment of a rule id) to numeric codes.
	Codes() map[string]diag.Code
}
