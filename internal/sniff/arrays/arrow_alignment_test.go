package arrays_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/lexer"
	"arrowlint/internal/sniff"
	"arrowlint/internal/sniff/arrays"
	"arrowlint/internal/source"
)

func php(lines ...string) string {
	return "<?php\n" + strings.Join(lines, "\n") + "\n"
}

func lint(t *testing.T, src string, opts sniff.Options) ([]diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.php", []byte(src)))
	toks := lexer.Tokenize(file, lexer.Options{TabWidth: 4})
	bag := diag.NewBag(0)
	opts.Reporter = diag.BagReporter{Bag: bag}
	f := sniff.NewFile(file, toks, opts)
	sniff.Run(f, []sniff.Sniff{&arrays.ArrowAlignment{}})
	return bag.Items(), fs
}

func fixPass(_ context.Context, content []byte, _ int) (*fix.Fixer, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.php", content))
	toks := lexer.Tokenize(file, lexer.Options{TabWidth: 4})
	fixer := fix.NewFixer(toks)
	f := sniff.NewFile(file, toks, sniff.Options{
		Reporter: diag.BagReporter{Bag: diag.NewBag(0)},
		Fixer:    fixer,
	})
	sniff.Run(f, []sniff.Sniff{&arrays.ArrowAlignment{}})
	return fixer, nil
}

func fixAll(t *testing.T, src string) (string, fix.Result) {
	t.Helper()
	res, err := fix.Loop(context.Background(), []byte(src), 0, fixPass)
	if err != nil && !errors.Is(err, fix.ErrNoChanges) {
		t.Fatalf("fix loop: %v", err)
	}
	return string(res.Content), res
}

func TestArrowAlignment(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		lines []uint32 // lines of the expected findings, in report order
		want  string   // fixed output; empty means unchanged
	}{
		{
			name: "aligned",
			src: php(
				"$x = [",
				"    'a'   => 1,",
				"    'bb'  => 2,",
				"    'ccc' => 3,",
				"];",
			),
		},
		{
			name: "short key",
			src: php(
				"$x = [",
				"    'a' => 1,",
				"    'bb' => 2,",
				"];",
			),
			lines: []uint32{3},
			want: php(
				"$x = [",
				"    'a'  => 1,",
				"    'bb' => 2,",
				"];",
			),
		},
		{
			name: "spacing around arrow",
			src: php(
				"$x = [",
				"    'a'=>1,",
				"    'bb'    =>  2,",
				"];",
			),
			lines: []uint32{3, 4},
			want: php(
				"$x = [",
				"    'a'  => 1,",
				"    'bb' => 2,",
				"];",
			),
		},
		{
			name: "single line",
			src:  php("$x = ['a' => 1, 'bbbb'   => 2];"),
		},
		{
			name: "unclosed",
			src: php(
				"$x = [",
				"    'a' => 1,",
				"    'bbbb' => 2,",
			),
		},
		{
			name: "nested literals align independently",
			src: php(
				"$x = [",
				"    'long_key' => [",
				"        'x' => 1,",
				"        'yy' => 2,",
				"    ],",
				"    'b' => 3,",
				"];",
			),
			lines: []uint32{7, 4},
			want: php(
				"$x = [",
				"    'long_key' => [",
				"        'x'  => 1,",
				"        'yy' => 2,",
				"    ],",
				"    'b'        => 3,",
				"];",
			),
		},
		{
			name: "buckets by indentation",
			src: php(
				"$x = [",
				"    'a' => 1,",
				"  'bbbb' => 2,",
				"    'cc' => 3,",
				"];",
			),
			lines: []uint32{3},
			want: php(
				"$x = [",
				"    'a'  => 1,",
				"  'bbbb' => 2,",
				"    'cc' => 3,",
				"];",
			),
		},
		{
			name: "comment ends the key",
			src: php(
				"$x = [",
				"    'a' /* one */ => 1,",
				"    'bb' => 2,",
				"];",
			),
			lines: []uint32{4},
			want: php(
				"$x = [",
				"    'a' /* one */ => 1,",
				"    'bb'          => 2,",
				"];",
			),
		},
		{
			name: "arrow at line start has no key",
			src: php(
				"$x = [",
				"    'a'",
				"        => 1,",
				"    'bb' => 2,",
				"];",
			),
		},
		{
			name: "value on next line",
			src: php(
				"$x = [",
				"    'a' =>",
				"        1,",
				"    'bb' => 2,",
				"];",
			),
			lines: []uint32{3},
			want: php(
				"$x = [",
				"    'a'  =>",
				"        1,",
				"    'bb' => 2,",
				"];",
			),
		},
		{
			name: "wide runes count by display width",
			src: php(
				"$x = [",
				"    'a' => 1,",
				"    '日本' => 2,",
				"];",
			),
			lines: []uint32{3},
			want: php(
				"$x = [",
				"    'a'    => 1,",
				"    '日本' => 2,",
				"];",
			),
		},
		{
			name: "index brackets are not literals",
			src: php(
				"$x = $y[",
				"    'a'",
				"];",
			),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags, fs := lint(t, tc.src, sniff.Options{})
			if len(diags) != len(tc.lines) {
				t.Fatalf("got %d findings, want %d: %v", len(diags), len(tc.lines), diags)
			}
			for i, d := range diags {
				start, _ := fs.Resolve(d.Primary)
				if start.Line != tc.lines[i] {
					t.Errorf("finding %d on line %d, want %d", i, start.Line, tc.lines[i])
				}
			}

			got, _ := fixAll(t, tc.src)
			want := tc.want
			if want == "" {
				want = tc.src
			}
			if got != want {
				t.Fatalf("fixed output mismatch\n--- got\n%s\n--- want\n%s", got, want)
			}

			again, _ := lint(t, got, sniff.Options{})
			if len(again) != 0 {
				t.Fatalf("fixed output still has %d findings: %v", len(again), again)
			}
		})
	}
}

func TestArrowAlignmentDiagnostic(t *testing.T) {
	src := php(
		"$x = [",
		"    'a' => 1,",
		"    'bb' => 2,",
		"];",
	)
	diags, _ := lint(t, src, sniff.Options{})
	if len(diags) != 1 {
		t.Fatalf("got %d findings, want 1", len(diags))
	}
	d := diags[0]
	if d.Rule != "Generic.Arrays.ArrowAlignment.DoubleArrowNotAligned" {
		t.Errorf("rule = %q", d.Rule)
	}
	if d.Code != diag.ArrDoubleArrowNotAligned {
		t.Errorf("code = %v", d.Code)
	}
	if d.Severity != diag.SevError || !d.Fixable {
		t.Errorf("severity %v fixable %v", d.Severity, d.Fixable)
	}
	if want := "Array double arrow not aligned correctly; expected column 10 but found 9"; d.Message != want {
		t.Errorf("message = %q, want %q", d.Message, want)
	}
	if got := src[d.Primary.Start:d.Primary.End]; got != "=>" {
		t.Errorf("primary span covers %q", got)
	}
}

func TestArrowAlignmentSeverityOverride(t *testing.T) {
	src := php(
		"$x = [",
		"    'a' => 1,",
		"    'bb' => 2,",
		"];",
	)
	for _, key := range []string{
		"Generic.Arrays.ArrowAlignment.DoubleArrowNotAligned",
		"Generic.Arrays.ArrowAlignment",
		"*",
	} {
		diags, _ := lint(t, src, sniff.Options{Severity: map[string]diag.Severity{key: diag.SevWarning}})
		if len(diags) != 1 || diags[0].Severity != diag.SevWarning {
			t.Errorf("override %q: %v", key, diags)
		}
	}
}

func TestArrowAlignmentNestedFixesOnce(t *testing.T) {
	// The inner literal is reached by dispatch and by recursion; it must be
	// fixed in a single pass without conflicting changesets.
	src := php(
		"$x = [",
		"    'k' => [",
		"        'x' => 1,",
		"        'yyy' => 2,",
		"    ],",
		"];",
	)
	got, res := fixAll(t, src)
	want := php(
		"$x = [",
		"    'k' => [",
		"        'x'   => 1,",
		"        'yyy' => 2,",
		"    ],",
		"];",
	)
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	if res.Rejected != 0 {
		t.Errorf("rejected changesets: %d", res.Rejected)
	}
	if res.Passes != 2 || res.Fixes != 1 {
		t.Errorf("passes %d fixes %d, want 2 and 1", res.Passes, res.Fixes)
	}
}

func TestArrowAlignmentSeveralArrowsOnOneLine(t *testing.T) {
	// The second key on line 3 spans from the line anchor to 'b', so both
	// arrows of that line are measured against the longest key below.
	src := php(
		"$x = [",
		"    'a' => 1, 'b' => 2,",
		"    'a-very-long-key-here' => 3,",
		"];",
	)
	diags, fs := lint(t, src, sniff.Options{})
	want := []string{
		"Array double arrow not aligned correctly; expected column 28 but found 9",
		"Array double arrow not aligned correctly; expected column 28 but found 19",
	}
	if len(diags) != len(want) {
		t.Fatalf("got %d findings, want %d: %v", len(diags), len(want), diags)
	}
	for i, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		if start.Line != 3 {
			t.Errorf("finding %d on line %d, want 3", i, start.Line)
		}
		if d.Message != want[i] {
			t.Errorf("finding %d: %q, want %q", i, d.Message, want[i])
		}
	}

	// Every pass widens the second key again, so the loop stops at its
	// pass limit having touched only blanks.
	res, err := fix.Loop(context.Background(), []byte(src), 5, fixPass)
	if !errors.Is(err, fix.ErrDidNotConverge) {
		t.Fatalf("err = %v, want ErrDidNotConverge", err)
	}
	if res.Passes != 5 || res.Rejected != 0 {
		t.Errorf("passes %d rejected %d", res.Passes, res.Rejected)
	}
	blank := strings.NewReplacer(" ", "", "\t", "")
	if blank.Replace(string(res.Content)) != blank.Replace(src) {
		t.Errorf("fix changed more than whitespace:\n%s", res.Content)
	}
}
