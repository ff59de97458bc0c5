package parser

import (
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/lexer"
)

// lines joins dump lines into the renderer's trailing-newline form.
func lines(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

func mustExpr(t *testing.T, src string) string {
	t.Helper()
	prog := lexer.Lex(src)
	if errs := prog.Errors(); len(errs) > 0 {
		t.Fatalf("lex errors in %q: %v", src, errs)
	}
	expr, err := ParseExpr(prog)
	if err != nil {
		t.Fatalf("ParseExpr(%q) failed: %v", src, err)
	}
	return ast.DumpExpr(expr, prog.Interner())
}

func exprErr(t *testing.T, src string) string {
	t.Helper()
	prog := lexer.Lex(src)
	if errs := prog.Errors(); len(errs) > 0 {
		t.Fatalf("lex errors in %q: %v", src, errs)
	}
	_, err := ParseExpr(prog)
	if err == nil {
		t.Fatalf("ParseExpr(%q) unexpectedly succeeded", src)
	}
	return err.Error()
}

func mustParse(t *testing.T, src string) string {
	t.Helper()
	prog := lexer.Lex(src)
	if errs := prog.Errors(); len(errs) > 0 {
		t.Fatalf("lex errors in %q: %v", src, errs)
	}
	items, err := Parse(prog)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return ast.Dump(items, prog.Interner())
}

func parseErr(t *testing.T, src string) string {
	t.Helper()
	prog := lexer.Lex(src)
	if errs := prog.Errors(); len(errs) > 0 {
		t.Fatalf("lex errors in %q: %v", src, errs)
	}
	_, err := Parse(prog)
	if err == nil {
		t.Fatalf("Parse(%q) unexpectedly succeeded", src)
	}
	return err.Error()
}

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "operator application",
			input: "1 + 2",
			want: lines(
				"Operation +",
				"  Literal Int(1)",
				"  Literal Int(2)"),
		},
		{
			name:  "same operator is left associative",
			input: "1 + 2 + 3",
			want: lines(
				"Operation +",
				"  Operation +",
				"    Literal Int(1)",
				"    Literal Int(2)",
				"  Literal Int(3)"),
		},
		{
			name:  "member chain",
			input: "a.b.c",
			want: lines(
				"MemberCall .c",
				"  MemberCall .b",
				"    Invokable a"),
		},
		{
			name:  "member of call result",
			input: "a(b).c",
			want: lines(
				"MemberCall .c",
				"  ParenCall",
				"    Invokable a",
				"    Invokable b"),
		},
		{
			name:  "method call",
			input: "a.b(c)",
			want: lines(
				"ParenCall",
				"  MemberCall .b",
				"    Invokable a",
				"  Invokable c"),
		},
		{
			name:  "dot binds tighter than operators",
			input: "a + b.c",
			want: lines(
				"Operation +",
				"  Invokable a",
				"  MemberCall .c",
				"    Invokable b"),
		},
		{
			name:  "type ascription",
			input: "5 Int",
			want: lines(
				"TypeAscription Int",
				"  Literal Int(5)"),
		},
		{
			name:  "ascription binds tighter than operators",
			input: "1 + 2 Int",
			want: lines(
				"Operation +",
				"  Literal Int(1)",
				"  TypeAscription Int",
				"    Literal Int(2)"),
		},
		{
			name:  "assignment is right associative",
			input: "a = b = c",
			want: lines(
				"Assignment",
				"  Invokable a",
				"  Assignment",
				"    Invokable b",
				"    Invokable c"),
		},
		{
			name:  "assignment binds loosest",
			input: "a = 1 + 2",
			want: lines(
				"Assignment",
				"  Invokable a",
				"  Operation +",
				"    Literal Int(1)",
				"    Literal Int(2)"),
		},
		{
			name:  "short circuit chain",
			input: "a and b and c",
			want: lines(
				"ShortCircuit and",
				"  ShortCircuit and",
				"    Invokable a",
				"    Invokable b",
				"  Invokable c"),
		},
		{
			name:  "mixed connectives with a block",
			input: "a or {b and c}",
			want: lines(
				"ShortCircuit or",
				"  Invokable a",
				"  Block",
				"    ShortCircuit and",
				"      Invokable b",
				"      Invokable c"),
		},
		{
			name:  "generic call",
			input: "id[Int](5)",
			want: lines(
				"ParenCall",
				"  Invokable id[Int]",
				"  Literal Int(5)"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustExpr(t, tt.input); got != tt.want {
				t.Errorf("tree for %q:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestExprForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lambda",
			input: "|x, y Int| x",
			want: lines(
				"Lambda \\x, y Int",
				"  Invokable x"),
		},
		{
			name:  "lambda body extends right",
			input: "|x| x + 1",
			want: lines(
				"Lambda \\x",
				"  Operation +",
				"    Invokable x",
				"    Literal Int(1)"),
		},
		{
			name:  "block",
			input: "{1; 2}",
			want: lines(
				"Block",
				"  Literal Int(1)",
				"  Literal Int(2)"),
		},
		{
			name:  "trailing semicolon yields unit",
			input: "{1; 2;}",
			want: lines(
				"Block (semicolon)",
				"  Literal Int(1)",
				"  Literal Int(2)",
				"  Empty"),
		},
		{
			name:  "tuple",
			input: "(1, 2)",
			want: lines(
				"Tuple",
				"  Literal Int(1)",
				"  Literal Int(2)"),
		},
		{
			name:  "named call arguments",
			input: "f(x: 1, y: 2)",
			want: lines(
				"ParenCall",
				"  Invokable f",
				"  arg x =",
				"    Literal Int(1)",
				"  arg y =",
				"    Literal Int(2)"),
		},
		{
			name:  "declaration",
			input: "let x = 5 Int",
			want: lines(
				"Declaration let x",
				"  TypeAscription Int",
				"    Literal Int(5)"),
		},
		{
			name:  "operator in a block is a value",
			input: "{+}",
			want: lines(
				"Block",
				"  Invokable +"),
		},
		{
			name:  "string literal",
			input: `"hello"`,
			want:  lines(`Literal "\"hello\""`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustExpr(t, tt.input); got != tt.want {
				t.Errorf("tree for %q:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestExprErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare operator operand", "1 + +", "operators are not allowed here"},
		{"operator tip", "1 + +", "wrap the operator in braces"},
		{"operand in operator slot", "+ 1", "expected operator, got Literal"},
		{"two operands in a row", "a b", "expected operator, got Invokable"},
		{"connective alone", ".", "expected expression"},
		{"missing right operand", "a and", "expected expression"},
		{"member must be a name", "a.5", "expected member name"},
		{"trailing tokens", "1 ; 2", "remaining tokens"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exprErr(t, tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("error for %q = %q, want it to mention %q", tt.input, got, tt.want)
			}
		})
	}
}
