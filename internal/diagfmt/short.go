package diagfmt

import (
	"io"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// Short writes one line per diagnostic: "error ARR4001 path:line:col message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	out := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
