package lexer_test

import (
	"strings"
	"testing"

	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/source"
	"arrowlint/internal/testkit"
	"arrowlint/internal/token"
)

func lex(t *testing.T, input string, tabWidth int) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.php", []byte(input)))
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, TabWidth: tabWidth})
	if err := testkit.CheckTokenInvariants(file, toks); err != nil {
		t.Fatalf("token invariants: %v", err)
	}
	return toks, bag
}

// significant drops whitespace so expectations stay readable.
func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind != token.Whitespace {
			out = append(out, tok)
		}
	}
	return out
}

func expectKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	toks, _ := lex(t, input, 4)
	got := significant(toks)
	if len(got) != len(want) {
		t.Fatalf("input %q: got %d tokens, want %d\n%s", input, len(got), len(want), dump(got))
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("input %q: token %d (%q) is %v, want %v", input, i, got[i].Text, got[i].Kind, want[i])
		}
	}
}

func dump(toks []token.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Kind.String())
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(tok.Text, "\n", `\n`))
		b.WriteString("\n")
	}
	return b.String()
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "assignment",
			input: "<?php $a = 1.5e-3;",
			want:  []token.Kind{token.OpenTag, token.Variable, token.Operator, token.Number, token.Semicolon},
		},
		{
			name:  "arrow and strings",
			input: "<?php ['a' => \"b\"];",
			want: []token.Kind{token.OpenTag, token.OpenShortArray, token.ConstantString,
				token.DoubleArrow, token.ConstantString, token.CloseShortArray, token.Semicolon},
		},
		{
			name:  "object and static access",
			input: "<?php $o?->list::class;",
			want: []token.Kind{token.OpenTag, token.Variable, token.ObjectOperator, token.String,
				token.DoubleColon, token.String, token.Semicolon},
		},
		{
			name:  "keywords and names",
			input: "<?php return \\App\\Foo::bar(fn($x) => $x);",
			want: []token.Kind{token.OpenTag, token.Keyword, token.String, token.DoubleColon, token.String,
				token.OpenParenthesis, token.Keyword, token.OpenParenthesis, token.Variable,
				token.CloseParenthesis, token.DoubleArrow, token.Variable, token.CloseParenthesis, token.Semicolon},
		},
		{
			name:  "comments",
			input: "<?php // line\n# hash\n/* block */ /** doc */",
			want:  []token.Kind{token.OpenTag, token.Comment, token.Comment, token.Comment, token.DocComment},
		},
		{
			name:  "greedy operators",
			input: "<?php $a <=> $b ?? $c === $d;",
			want: []token.Kind{token.OpenTag, token.Variable, token.Operator, token.Variable, token.Operator,
				token.Variable, token.Operator, token.Variable, token.Semicolon},
		},
		{
			name:  "inline html around php",
			input: "<p>\n<?php echo 1; ?>\n<b>",
			want: []token.Kind{token.InlineHTML, token.OpenTag, token.Keyword, token.Number,
				token.Semicolon, token.CloseTag, token.InlineHTML},
		},
		{
			name:  "attribute",
			input: "<?php #[Route('/x')] function f() {}",
			want: []token.Kind{token.OpenTag, token.Attribute, token.String, token.OpenParenthesis,
				token.ConstantString, token.CloseParenthesis, token.AttributeEnd, token.Keyword, token.String,
				token.OpenParenthesis, token.CloseParenthesis, token.OpenCurlyBracket, token.CloseCurlyBracket},
		},
		{
			name:  "hex and separators",
			input: "<?php 0x1F + 1_000;",
			want:  []token.Kind{token.OpenTag, token.Number, token.Operator, token.Number, token.Semicolon},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, tt.input, tt.want)
		})
	}
}

func TestShortArrayClassification(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind // kind of the first '['
	}{
		{"<?php $a = [1];", token.OpenShortArray},
		{"<?php return [1];", token.OpenShortArray},
		{"<?php f([1]);", token.OpenShortArray},
		{"<?php $a[0];", token.OpenSquareBracket},
		{"<?php $o->items[0];", token.OpenSquareBracket},
		{"<?php f()[0];", token.OpenSquareBracket},
		{"<?php FOO[0];", token.OpenSquareBracket},
		{"<?php 'abc'[0];", token.OpenSquareBracket},
		{"<?php $a = [1][0];", token.OpenShortArray},
		{"<?php [$a, $b] = $c;", token.OpenShortArray},
	}
	for _, tt := range tests {
		toks, _ := lex(t, tt.input, 4)
		found := false
		for _, tok := range toks {
			if tok.Text == "[" {
				if tok.Kind != tt.want {
					t.Errorf("%q: first '[' is %v, want %v", tt.input, tok.Kind, tt.want)
				}
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q: no '[' token", tt.input)
		}
	}
}

func TestBracketLinks(t *testing.T) {
	toks, _ := lex(t, "<?php $x = [1, [2], $a[3]];", 4)
	var outer, inner, index int = -1, -1, -1
	for i, tok := range toks {
		switch {
		case tok.Kind == token.OpenShortArray && outer < 0:
			outer = i
		case tok.Kind == token.OpenShortArray:
			inner = i
		case tok.Kind == token.OpenSquareBracket:
			index = i
		}
	}
	if outer < 0 || inner < 0 || index < 0 {
		t.Fatalf("missing brackets:\n%s", dump(toks))
	}
	if c := toks[outer].Closer; c != len(toks)-2 || toks[c].Kind != token.CloseShortArray || toks[c].Opener != outer {
		t.Errorf("outer closer = %d (%v)", c, toks[c].Kind)
	}
	if c := toks[inner].Closer; toks[c].Text != "]" || toks[c].Kind != token.CloseShortArray {
		t.Errorf("inner closer kind %v", toks[c].Kind)
	}
	if c := toks[index].Closer; toks[c].Kind != token.CloseSquareBracket {
		t.Errorf("index closer kind %v", toks[c].Kind)
	}
}

func TestUnmatchedBrackets(t *testing.T) {
	toks, _ := lex(t, "<?php $a = [1, 2;\n$b = (3];", 4)
	for _, tok := range toks {
		if tok.Kind.IsOpener() && tok.Closer != token.NoMatch {
			// only '(' ... ']' and the outer '[' exist; none may be linked
			t.Errorf("%v at %d:%d linked to %d", tok.Kind, tok.Line, tok.Col, tok.Closer)
		}
		if tok.Kind.IsCloser() && tok.Opener != token.NoMatch {
			t.Errorf("closer %q linked to %d", tok.Text, tok.Opener)
		}
	}
}

func TestEveryTokenOnOneLine(t *testing.T) {
	input := "<?php\n/* a\n   b */\n$s = 'x\ny';\n$h = <<<EOT\n  one\n  EOT;\n"
	toks, bag := lex(t, input, 4)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	var comments, strs, heredoc int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Comment:
			comments++
		case token.ConstantString:
			strs++
		case token.Heredoc:
			heredoc++
		}
	}
	if comments != 2 || strs != 2 || heredoc != 3 {
		t.Fatalf("comments=%d strings=%d heredoc=%d\n%s", comments, strs, heredoc, dump(toks))
	}
	last := significant(toks)
	if k := last[len(last)-1].Kind; k != token.Semicolon {
		t.Fatalf("heredoc did not return to PHP mode, last kind %v", k)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tabWidth int
		text     string
		wantLine int
		wantCol  int
	}{
		{"spaces", "<?php\n    'a' => 1;", 4, "=>", 2, 9},
		{"tab stop", "<?php\n\t'a' => 1;", 8, "=>", 2, 13},
		{"tab as one", "<?php\n\t'a' => 1;", 0, "=>", 2, 6},
		{"wide runes", "<?php\n'日本' => 1;", 4, "=>", 2, 8},
		{"combining mark", "<?php\n'e\u0301' => 1;", 4, "=>", 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _ := lex(t, tt.input, tt.tabWidth)
			for _, tok := range toks {
				if tok.Text == tt.text {
					if tok.Line != tt.wantLine || tok.Col != tt.wantCol {
						t.Fatalf("%q at %d:%d, want %d:%d", tt.text, tok.Line, tok.Col, tt.wantLine, tt.wantCol)
					}
					return
				}
			}
			t.Fatalf("token %q not found", tt.text)
		})
	}
}

func TestUnterminatedConstructs(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"<?php $a = 'open\n", diag.LexUnterminatedString},
		{"<?php /* open\n", diag.LexUnterminatedComment},
		{"<?php $a = <<<EOT\nbody\n", diag.LexUnterminatedHeredoc},
		{"<?php \x01", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		_, bag := lex(t, tt.input, 4)
		if bag.Len() != 1 || bag.Items()[0].Code != tt.code {
			t.Errorf("%q: diagnostics %+v, want one %s", tt.input, bag.Items(), tt.code.ID())
		}
	}
}

func TestEmptyAndHTMLOnly(t *testing.T) {
	if toks, _ := lex(t, "", 4); len(toks) != 0 {
		t.Fatalf("empty input produced %d tokens", len(toks))
	}
	toks, _ := lex(t, "a\nb", 4)
	if len(toks) != 2 || toks[0].Kind != token.InlineHTML || toks[1].Line != 2 {
		t.Fatalf("html only:\n%s", dump(toks))
	}
}
