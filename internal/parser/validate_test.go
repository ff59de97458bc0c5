package parser

import (
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/lexer"
)

func TestOperatorMixingNeedsBlocks(t *testing.T) {
	valid := []string{
		"1 +x 2 +x 3",
		"{1 +x 2} +y 3",
		"1 +x {2 +y 3}",
		"a and b and c",
		"a or {b and c}",
	}
	for _, src := range valid {
		t.Run(src, func(t *testing.T) {
			mustExpr(t, src)
		})
	}

	invalid := []string{
		"1 +x 2 +y 3",
		"a and b or c",
		"a or b and c",
	}
	for _, src := range invalid {
		t.Run(src, func(t *testing.T) {
			got := exprErr(t, src)
			if !strings.Contains(got, "disambiguated with a block") {
				t.Errorf("error = %q, want the block disambiguation message", got)
			}
		})
	}
}

func TestAssignmentTargets(t *testing.T) {
	valid := []string{
		"x = 2",
		"a.x = 2",
		"x = y = 2",
	}
	for _, src := range valid {
		t.Run(src, func(t *testing.T) {
			mustExpr(t, src)
		})
	}

	invalid := []struct {
		input string
		want  string
	}{
		{"1 = 2", "not a place expression"},
		{"f() = 2", "not a place expression"},
		{"(a, b) = 2", "not a place expression"},
		{"x[Int] = 2", "no generics were expected here"},
		{"X = 2", "expected identifier, got type"},
	}
	for _, tt := range invalid {
		t.Run(tt.input, func(t *testing.T) {
			got := exprErr(t, tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("error for %q = %q, want it to mention %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestArgumentOrder(t *testing.T) {
	mustExpr(t, "f(x: 1, y)")
	mustExpr(t, "f(x, y)")
	mustExpr(t, "f(x: 1, y: 2)")

	got := exprErr(t, "f(y, x: 1)")
	if !strings.Contains(got, "named argument after unnamed argument") {
		t.Errorf("error = %q, want the argument order message", got)
	}
}

func TestTupleArgumentsAreUnnamed(t *testing.T) {
	got := exprErr(t, "(x: 1, y)")
	if !strings.Contains(got, "named argument not allowed in tuple") {
		t.Errorf("error = %q, want the tuple argument message", got)
	}
}

func TestFunctionCompleteness(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "untyped parameter",
			input: "fun f(a) Int { a }",
			want:  "argument doesn't specify its type",
		},
		{
			name:  "required after default",
			input: "fun f(a Int = 1, b Int) Int { a }",
			want:  "an argument without a default can't appear after an argument with a default",
		},
		{
			name:  "missing return type",
			input: "fun f() { 1 }",
			want:  "function doesn't have a return type",
		},
		{
			name:  "missing body",
			input: "fun f() Int;",
			want:  "function doesn't have a body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseErr(t, tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("error for %q = %q, want it to mention %q", tt.input, got, tt.want)
			}
		})
	}

	mustParse(t, "fun f(a Int = 1, b Int = 2) Int { a }")
}

func TestImplContents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no classes", "impl Foo { class Bar() }", "impl blocks can't contain classes"},
		{"no enums", "impl Foo { enum Bar { a } }", "impl blocks can't contain enums"},
		{"no uses", "impl Foo { use std.io }", "impl blocks can't contain use items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseErr(t, tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("error for %q = %q, want it to mention %q", tt.input, got, tt.want)
			}
		})
	}

	mustParse(t, "impl Foo { fun f(self Foo) Int { 1 } }")
}

func TestValidationCoversNestedExprs(t *testing.T) {
	// The walk must reach default values, lambda bodies and match arms.
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "default value",
			input: "fun f(a Int = {1 = 2}) Int { a }",
			want:  "not a place expression",
		},
		{
			name:  "lambda body",
			input: "fun f() Int { |x| 1 = 2 }",
			want:  "not a place expression",
		},
		{
			name:  "match arm",
			input: "fun f(x Int) Int { match x { _: 1 = 2 } }",
			want:  "not a place expression",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseErr(t, tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("error for %q = %q, want it to mention %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsNothing(t *testing.T) {
	// An empty stream is a valid, empty item list.
	prog := lexer.Lex("  # only a comment\n")
	items, err := Parse(prog)
	if err != nil {
		t.Fatalf("Parse of empty input failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want none", len(items))
	}
}
