package sniff

import (
	"testing"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/lexer"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// commaSniff flags every comma; it exercises dispatch and reporting.
type commaSniff struct {
	seen []int
}

func (*commaSniff) Code() string { return "Test.Comma" }

func (*commaSniff) Register() []token.Kind { return []token.Kind{token.Comma} }

func (*commaSniff) Codes() map[string]diag.Code { return map[string]diag.Code{"Found": diag.ArrInfo} }

func (s *commaSniff) Process(f *File, ptr int) {
	s.seen = append(s.seen, ptr)
	if f.AddFixableWarning("comma %s of %s", ptr, "Found", len(s.seen), "many") {
		cs := f.Fixer().BeginChangeset()
		cs.ReplaceToken(ptr, ";")
		cs.Commit()
	}
	// a second report of the same finding is dropped
	if f.AddFixableWarning("again", ptr, "Found") {
		panic("duplicate report accepted")
	}
}

// varSniff reports every variable once as an error and once as a warning.
type varSniff struct{}

func (varSniff) Code() string { return "Test.Var" }

func (varSniff) Register() []token.Kind { return []token.Kind{token.Variable} }

func (varSniff) Codes() map[string]diag.Code {
	return map[string]diag.Code{"Found": diag.ArrInfo, "Seen": diag.ArrInfo}
}

func (varSniff) Process(f *File, ptr int) {
	f.AddError("variable %s", ptr, "Found", f.Tokens[ptr].Text)
	f.AddWarning("variable %s seen", ptr, "Seen", f.Tokens[ptr].Text)
}

func newFile(t *testing.T, src string, opts Options) *File {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("x.php", []byte(src)))
	return NewFile(sf, lexer.Tokenize(sf, lexer.Options{}), opts)
}

func TestRunDispatchesByKind(t *testing.T) {
	bag := diag.NewBag(0)
	f := newFile(t, "<?php f(1, 2, 3);", Options{Reporter: diag.BagReporter{Bag: bag}})
	s := &commaSniff{}
	Run(f, []Sniff{s})

	if len(s.seen) != 2 {
		t.Fatalf("sniff saw %d commas, want 2", len(s.seen))
	}
	for _, ptr := range s.seen {
		if f.Tokens[ptr].Kind != token.Comma {
			t.Errorf("dispatched on %v", f.Tokens[ptr].Kind)
		}
	}
	if bag.Len() != 2 || f.WarningCount() != 2 || f.ErrorCount() != 0 {
		t.Fatalf("bag %d warnings %d errors %d", bag.Len(), f.WarningCount(), f.ErrorCount())
	}
	d := bag.Items()[0]
	if d.Rule != "Test.Comma.Found" || d.Code != diag.ArrInfo || d.Message != "comma 1 of many" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Severity != diag.SevWarning || !d.Fixable {
		t.Errorf("severity %v fixable %v", d.Severity, d.Fixable)
	}
}

func TestRunFixes(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("x.php", []byte("<?php f(1, 2);")))
	toks := lexer.Tokenize(sf, lexer.Options{})
	fixer := fix.NewFixer(toks)
	f := NewFile(sf, toks, Options{Reporter: diag.BagReporter{Bag: diag.NewBag(0)}, Fixer: fixer})
	if !f.IsFixing() {
		t.Fatal("IsFixing = false with a fixer")
	}
	Run(f, []Sniff{&commaSniff{}})
	if got := fixer.Content(); got != "<?php f(1; 2);" {
		t.Errorf("content = %q", got)
	}
}

func TestPlainReportsAreNotFixable(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("x.php", []byte("<?php $a = $b;")))
	toks := lexer.Tokenize(sf, lexer.Options{})
	fixer := fix.NewFixer(toks)
	bag := diag.NewBag(0)
	f := NewFile(sf, toks, Options{Reporter: diag.BagReporter{Bag: bag}, Fixer: fixer})
	Run(f, []Sniff{varSniff{}})

	if f.ErrorCount() != 2 || f.WarningCount() != 2 || bag.Len() != 4 {
		t.Fatalf("errors %d warnings %d bag %d", f.ErrorCount(), f.WarningCount(), bag.Len())
	}
	msgs := map[string]diag.Severity{}
	for _, d := range bag.Items() {
		if d.Fixable {
			t.Errorf("%q reported as fixable", d.Message)
		}
		msgs[d.Message] = d.Severity
	}
	want := map[string]diag.Severity{
		"variable $a":      diag.SevError,
		"variable $b":      diag.SevError,
		"variable $a seen": diag.SevWarning,
		"variable $b seen": diag.SevWarning,
	}
	for msg, sev := range want {
		if got, ok := msgs[msg]; !ok || got != sev {
			t.Errorf("%q: severity %v present %v, want %v", msg, got, ok, sev)
		}
	}
	if fixer.Commits() != 0 {
		t.Errorf("commits %d", fixer.Commits())
	}
}

func TestRejectedReportDoesNotFix(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("x.php", []byte("<?php f(1, 2);")))
	toks := lexer.Tokenize(sf, lexer.Options{})
	fixer := fix.NewFixer(toks)
	// a refused report must not fix
	f := NewFile(sf, toks, Options{Reporter: diag.NopReporter{}, Fixer: fixer})
	Run(f, []Sniff{&commaSniff{}})
	if fixer.Commits() != 0 || f.WarningCount() != 0 {
		t.Errorf("commits %d warnings %d", fixer.Commits(), f.WarningCount())
	}
}

func TestSeverityOverride(t *testing.T) {
	cases := []struct {
		name string
		sev  map[string]diag.Severity
		want diag.Severity
	}{
		{"default", nil, diag.SevWarning},
		{"rule", map[string]diag.Severity{"Test.Comma.Found": diag.SevError, "*": diag.SevInfo}, diag.SevError},
		{"sniff", map[string]diag.Severity{"Test.Comma": diag.SevError}, diag.SevError},
		{"wildcard", map[string]diag.Severity{"*": diag.SevInfo}, diag.SevInfo},
		{"other", map[string]diag.Severity{"Other": diag.SevError}, diag.SevWarning},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bag := diag.NewBag(0)
			f := newFile(t, "<?php f(1, 2);", Options{Reporter: diag.BagReporter{Bag: bag}, Severity: tc.sev})
			Run(f, []Sniff{&commaSniff{}})
			if bag.Len() == 0 || bag.Items()[0].Severity != tc.want {
				t.Fatalf("got %v, want %v", bag.Items(), tc.want)
			}
		})
	}
}

func TestFindPreviousAndNext(t *testing.T) {
	f := newFile(t, "<?php\n$a = [1];", Options{})
	kinds := func(ks ...token.Kind) []token.Kind { return ks }

	semi := len(f.Tokens) - 1
	if f.Tokens[semi].Kind != token.Semicolon {
		t.Fatalf("last token is %v", f.Tokens[semi].Kind)
	}
	open := f.FindPrevious(kinds(token.OpenShortArray), semi, -1, false)
	if open < 0 || f.Tokens[open].Text != "[" {
		t.Fatalf("FindPrevious([) = %d", open)
	}
	if got := f.FindPrevious(kinds(token.Whitespace), open-1, 0, true); f.Tokens[got].Text != "=" {
		t.Errorf("previous non-whitespace before [ is %q", f.Tokens[got].Text)
	}
	if got := f.FindPrevious(kinds(token.Variable), semi, open, false); got != -1 {
		t.Errorf("bounded FindPrevious found %d", got)
	}
	if got := f.FindNext(kinds(token.CloseShortArray), 0, -1, false); got != f.Tokens[open].Closer {
		t.Errorf("FindNext(]) = %d, want %d", got, f.Tokens[open].Closer)
	}
	if got := f.FindNext(kinds(token.Variable), open, semi, false); got != -1 {
		t.Errorf("bounded FindNext found %d", got)
	}
	if got := f.FindPrevious(kinds(token.Variable), open, open, false); got != -1 {
		t.Errorf("empty range found %d", got)
	}
}

func TestRegistry(t *testing.T) {
	s := &commaSniff{}
	Register(s)
	defer func() {
		registryMu.Lock()
		registry = registry[:len(registry)-1]
		registryMu.Unlock()
	}()

	found := false
	for _, code := range Codes() {
		if code == "Test.Comma" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered sniff not listed")
	}
	for _, e := range Enabled([]string{"Test.Comma"}) {
		if e.Code() == "Test.Comma" {
			t.Fatal("disabled sniff still enabled")
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("registering a code twice did not panic")
		}
	}()
	Register(&commaSniff{})
}
