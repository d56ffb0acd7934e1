package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

type TokenOutput struct {
	Index  int         `json:"index"`
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
	Span   source.Span `json:"span"`
	Line   int         `json:"line"`
	Col    int         `json:"col"`
	Width  int         `json:"width"`
	Opener *int        `json:"opener,omitempty"`
	Closer *int        `json:"closer,omitempty"`
}

// FormatTokensPretty prints one token per line with its position, display
// width and bracket partner.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-20s %-14q %d:%d w=%d", i, tok.Kind.String(), tok.Text, tok.Line, tok.Col, tok.Width); err != nil {
			return err
		}
		switch {
		case tok.Kind.IsOpener():
			fmt.Fprintf(w, " closer=%d", tok.Closer)
		case tok.Kind.IsCloser():
			fmt.Fprintf(w, " opener=%d", tok.Opener)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON prints the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		out := TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
			Line:  tok.Line,
			Col:   tok.Col,
			Width: tok.Width,
		}
		if tok.Kind.IsOpener() {
			out.Closer = &tok.Closer
		}
		if tok.Kind.IsCloser() {
			out.Opener = &tok.Opener
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
