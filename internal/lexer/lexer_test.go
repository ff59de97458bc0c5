package lexer

import (
	"testing"

	"github.com/quill-lang/quill/internal/token"
)

// kinds strips the stream down to its token kinds, without the EOF
// sentinel.
func kinds(p *Program) []token.Kind {
	toks := p.Tokens()
	out := make([]token.Kind, 0, len(toks)-1)
	for _, t := range toks[:len(toks)-1] {
		out = append(out, t.Kind)
	}
	return out
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "words by first char",
			input: "foo Bar +",
			want:  []token.Kind{token.Ident, token.UpperIdent, token.Operator},
		},
		{
			name:  "keywords",
			input: "fun let match impl",
			want:  []token.Kind{token.Keyword, token.Keyword, token.Keyword, token.Keyword},
		},
		{
			name:  "keyword prefix is a plain identifier",
			input: "letter",
			want:  []token.Kind{token.Ident},
		},
		{
			name:  "literals",
			input: `12 3.5 "hi"`,
			want:  []token.Kind{token.NumberLit, token.NumberLit, token.StringLit},
		},
		{
			name:  "punctuation is never word class",
			input: "f(x)",
			want:  []token.Kind{token.Ident, token.Punctuation, token.Ident, token.Punctuation},
		},
		{
			name:  "multi char operator",
			input: "a == b",
			want:  []token.Kind{token.Ident, token.Operator, token.Ident},
		},
		{
			name:  "lone equals is punctuation",
			input: "a = b",
			want:  []token.Kind{token.Ident, token.Punctuation, token.Ident},
		},
		{
			name:  "comments and whitespace",
			input: "a # trailing note\n\tb",
			want:  []token.Kind{token.Ident, token.Ident},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := Lex(tt.input)
			if errs := prog.Errors(); len(errs) > 0 {
				t.Fatalf("unexpected lex errors: %v", errs)
			}
			if got := kinds(prog); !kindsEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEOFSentinel(t *testing.T) {
	prog := Lex("ab cd")
	toks := prog.Tokens()
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		t.Fatalf("stream must end with EOF, got %v", last.Kind)
	}
	if last.Span.Start != 5 || last.Span.End != 5 {
		t.Errorf("EOF span = %v, want 5..5", last.Span)
	}
	if toks[0].Span.Text("ab cd") != "ab" || toks[1].Span.Text("ab cd") != "cd" {
		t.Errorf("token spans do not cover their text: %v", prog.Dump())
	}
}

func TestMissingWhitespace(t *testing.T) {
	prog := Lex("x-y")
	errs := prog.Errors()
	if len(errs) != 1 {
		t.Fatalf("want one error, got %d (%s)", len(errs), prog.Dump())
	}
	if errs[0].Err.Code != token.NoWs {
		t.Errorf("error = %v, want NoWs", errs[0].Err)
	}
	// The merged token covers both words.
	if errs[0].Span.Text("x-y") != "x-y" {
		t.Errorf("NoWs span = %v, want the whole input", errs[0].Span)
	}
	// One error token plus EOF.
	if len(prog.Tokens()) != 2 {
		t.Errorf("adjacent words must merge into one token: %s", prog.Dump())
	}
}

func TestInvalidNumberIsOneToken(t *testing.T) {
	prog := Lex("0xF_G")
	errs := prog.Errors()
	if len(errs) != 1 {
		t.Fatalf("want one error, got %d (%s)", len(errs), prog.Dump())
	}
	e := errs[0].Err
	if e.Code != token.InvalidCharInNum || e.Ch != 'G' {
		t.Errorf("error = %v, want InvalidCharInNum('G')", e)
	}
	if len(prog.Tokens()) != 2 {
		t.Errorf("junk after a number must be swallowed into it: %s", prog.Dump())
	}
}

func TestUnterminatedString(t *testing.T) {
	prog := Lex(`"abc`)
	errs := prog.Errors()
	if len(errs) != 1 || errs[0].Err.Code != token.Unexpected {
		t.Fatalf("want one Unexpected error, got %s", prog.Dump())
	}
	// Lexing resumes after the stray quote.
	toks := prog.Tokens()
	if len(toks) != 3 || toks[1].Kind != token.Ident {
		t.Errorf("tokens after the quote must still lex: %s", prog.Dump())
	}
}

func TestStringEscapes(t *testing.T) {
	src := `"a\"b"`
	prog := Lex(src)
	if errs := prog.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	toks := prog.Tokens()
	if len(toks) != 2 || toks[0].Kind != token.StringLit {
		t.Fatalf("want a single string literal, got %s", prog.Dump())
	}
	if got := toks[0].Span.Text(src); got != src {
		t.Errorf("string span covers %q, want %q", got, src)
	}
}

func TestUnknownCharacter(t *testing.T) {
	prog := Lex("$")
	errs := prog.Errors()
	if len(errs) != 1 || errs[0].Err.Code != token.Unexpected {
		t.Fatalf("want one Unexpected error, got %s", prog.Dump())
	}
}

func TestDump(t *testing.T) {
	prog := Lex(`foo Bar + 12 "hi"`)
	want := "[i`foo` I`Bar` o`+` Int(12)`12` s`\"hi\"` EOF]"
	if got := prog.Dump(); got != want {
		t.Errorf("Dump = %s, want %s", got, want)
	}
}

func TestDumpLines(t *testing.T) {
	prog := Lex("a")
	want := "[\n    i`a`\n    EOF\n]"
	if got := prog.DumpLines(); got != want {
		t.Errorf("DumpLines = %q, want %q", got, want)
	}
}
