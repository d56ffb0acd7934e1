package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// CheckTokenInvariants verifies a token stream against the file it came from:
//  1. tokens are non-empty, contiguous and cover the whole content
//  2. Text equals the covered bytes and contains a newline only as its last byte
//  3. Line/Col restart at column 1 after every token that ends a line
//  4. bracket links are symmetric and point from openers to later closers
func CheckTokenInvariants(sf *source.File, toks []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	line, col := 1, 1
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: file mismatch got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start != off {
			return fmt.Errorf("token %d: starts at %d, previous ended at %d", i, sp.Start, off)
		}
		if sp.End <= sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d: bad span %v", i, sp)
		}
		if tok.Text != sp.Text(sf.Content) {
			return fmt.Errorf("token %d: text %q does not match source", i, tok.Text)
		}
		if nl := strings.IndexByte(tok.Text, '\n'); nl >= 0 && nl != len(tok.Text)-1 {
			return fmt.Errorf("token %d (%v) crosses a line break: %q", i, tok.Kind, tok.Text)
		}
		if tok.Line != line || tok.Col != col {
			return fmt.Errorf("token %d: at %d:%d, want %d:%d", i, tok.Line, tok.Col, line, col)
		}
		if tok.Width < 0 {
			return fmt.Errorf("token %d: negative width", i)
		}
		if tok.EndsLine() {
			line, col = line+1, 1
		} else {
			col = tok.EndCol()
		}
		off = sp.End

		if err := checkLinks(toks, i); err != nil {
			return err
		}
	}
	if off != lenContent {
		return fmt.Errorf("tokens cover %d of %d bytes", off, lenContent)
	}
	return nil
}

func checkLinks(toks []token.Token, i int) error {
	tok := toks[i]
	switch {
	case tok.Kind.IsOpener():
		if tok.Opener != token.NoMatch {
			return fmt.Errorf("opener %d has an Opener link", i)
		}
		if c := tok.Closer; c != token.NoMatch {
			if c <= i || c >= len(toks) || toks[c].Opener != i {
				return fmt.Errorf("opener %d: closer %d does not link back", i, c)
			}
		}
	case tok.Kind.IsCloser():
		if tok.Closer != token.NoMatch {
			return fmt.Errorf("closer %d has a Closer link", i)
		}
		if o := tok.Opener; o != token.NoMatch {
			if o >= i || o < 0 || toks[o].Closer != i {
				return fmt.Errorf("closer %d: opener %d does not link back", i, o)
			}
		}
	default:
		if tok.Opener != token.NoMatch || tok.Closer != token.NoMatch {
			return fmt.Errorf("token %d (%v) is not a bracket but has links", i, tok.Kind)
		}
	}
	return nil
}
