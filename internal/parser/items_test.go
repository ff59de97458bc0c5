package parser

import (
	"strings"
	"testing"
)

func TestParseFunction(t *testing.T) {
	src := "fun foo() Bool { let x = 5 Int; x }"
	want := lines(
		"Function foo",
		"  returns Bool",
		"  Block",
		"    Declaration let x",
		"      TypeAscription Int",
		"        Literal Int(5)",
		"    Invokable x")
	if got := mustParse(t, src); got != want {
		t.Errorf("tree for %q:\n%swant:\n%s", src, got, want)
	}
}

func TestParseFunctionSignatures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "generics and typed params",
			input: "fun map[T, U](list List[T], f Fun[T, U]) List[U] { list }",
			want: lines(
				"Function map[T, U]",
				"  param list List[T]",
				"  param f Fun[T, U]",
				"  returns List[U]",
				"  Block",
				"    Invokable list"),
		},
		{
			name:  "operator name",
			input: "fun +[T](a T, b T) T { a }",
			want: lines(
				"Function +[T]",
				"  param a T",
				"  param b T",
				"  returns T",
				"  Block",
				"    Invokable a"),
		},
		{
			name:  "default parameter",
			input: "fun greet(name String, punct String = \"!\") String { name }",
			want: lines(
				"Function greet",
				"  param name String",
				"  param punct String =",
				`    Literal "\"!\""`,
				"  returns String",
				"  Block",
				"    Invokable name"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustParse(t, tt.input); got != tt.want {
				t.Errorf("tree for %q:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClass(t *testing.T) {
	src := "class Point[T](x T, y T)"
	want := lines(
		"Class Point[T]",
		"  field x T",
		"  field y T")
	if got := mustParse(t, src); got != want {
		t.Errorf("tree for %q:\n%swant:\n%s", src, got, want)
	}
}

func TestParseEnum(t *testing.T) {
	src := "enum Option[T] { some(value T), none }"
	want := lines(
		"Enum Option[T]",
		"  variant some",
		"    field value T",
		"  variant none")
	if got := mustParse(t, src); got != want {
		t.Errorf("tree for %q:\n%swant:\n%s", src, got, want)
	}
}

func TestParseImpl(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inherent impl",
			input: "impl Point { fun norm(self Point) Float { self } }",
			want: lines(
				"Impl Point",
				"  Function norm",
				"    param self Point",
				"    returns Float",
				"    Block",
				"      Invokable self"),
		},
		{
			name:  "trait impl with generics",
			input: "impl[T] Hash for List[T] { fun hash(self List[T]) Int { 1 } }",
			want: lines(
				"Impl[T] Hash for List[T]",
				"  Function hash",
				"    param self List[T]",
				"    returns Int",
				"    Block",
				"      Literal Int(1)"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustParse(t, tt.input); got != tt.want {
				t.Errorf("tree for %q:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain path", "use std.collections.Map", lines("Use std.collections.Map")},
		{"wildcard", "use std.io._", lines("Use std.io._")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustParse(t, tt.input); got != tt.want {
				t.Errorf("tree for %q:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMultipleItems(t *testing.T) {
	src := "class Id(n Int) fun id(x Id) Id { x }"
	want := lines(
		"Class Id",
		"  field n Int",
		"Function id",
		"  param x Id",
		"  returns Id",
		"  Block",
		"    Invokable x")
	if got := mustParse(t, src); got != want {
		t.Errorf("tree for %q:\n%swant:\n%s", src, got, want)
	}
}

func TestItemErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"function needs a name", "fun () Int { 1 }", "expected name"},
		{"class name must be uppercase", "class foo()", "expected class name, got identifier `foo`"},
		{"enum name must be uppercase", "enum foo {}", "expected enum name"},
		{"class needs a field list", "class Foo", "expected `(`"},
		{"missing function body", "fun f() Int", "expected function body"},
		{"impl needs a type", "impl { }", "expected type"},
		{"use needs a path", "use", "expected name"},
		{"unparsed trailing tokens", "fun f() Int { 1 } )", "remaining tokens"},
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
