package diag

import (
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/source"
)

func TestRenderPlain(t *testing.T) {
	file := source.NewFile("main.quill", "fun f() Int { x-y }\n")
	r := NewRenderer(false)

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "missing whitespace",
		Span:     source.NewSpan(14, 17),
	}
	got := r.Render(file, d)
	// Caret sits under the span: 7 gutter bytes plus column 15.
	want := "main.quill:1:15: error: missing whitespace\n" +
		"   1 | fun f() Int { x-y }\n" +
		strings.Repeat(" ", 7+14) + "^^^\n"
	if got != want {
		t.Errorf("Render =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTip(t *testing.T) {
	file := source.NewFile("main.quill", "1 + +\n")
	r := NewRenderer(false)

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "operators are not allowed here: `+`",
		Tip:      "wrap the operator in braces, e.g. `{+}`",
		Span:     source.NewSpan(4, 5),
	}
	got := r.Render(file, d)
	if !strings.HasSuffix(got, "  tip: wrap the operator in braces, e.g. `{+}`\n") {
		t.Errorf("Render = %q, want a trailing tip line", got)
	}
}

func TestRenderSpanlessDiagnostic(t *testing.T) {
	file := source.NewFile("main.quill", "")
	r := NewRenderer(false)

	got := r.Render(file, Diagnostic{Severity: SeverityError, Message: "check failed"})
	if got != "error: check failed\n" {
		t.Errorf("Render = %q, want a bare message line", got)
	}
}

func TestCaretClampsToLine(t *testing.T) {
	// A span reaching past the end of its line must not overrun it.
	file := source.NewFile("main.quill", "ab\ncd\n")
	r := NewRenderer(false)

	d := Diagnostic{Severity: SeverityError, Message: "m", Span: source.NewSpan(1, 5)}
	got := r.Render(file, d)
	if strings.Contains(got, "^^^") {
		t.Errorf("caret run overruns the line: %q", got)
	}
}

func TestFromLex(t *testing.T) {
	prog := lexer.Lex("x-y $")
	diags := FromLex(prog.Errors())
	if len(diags) != 2 {
		t.Fatalf("diags = %d, want 2", len(diags))
	}
	if diags[0].Message != "missing whitespace" {
		t.Errorf("first message = %q", diags[0].Message)
	}
	if diags[1].Message != "unexpected token" {
		t.Errorf("second message = %q", diags[1].Message)
	}
}

func TestFromParse(t *testing.T) {
	prog := lexer.Lex("1 + +")
	_, err := parser.ParseExpr(prog)
	if err == nil {
		t.Fatal("parse unexpectedly succeeded")
	}
	d := FromParse(err)
	if d.Message != "operators are not allowed here: `+`" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Tip == "" {
		t.Error("tip was dropped in conversion")
	}
	if d.Span.Len() == 0 {
		t.Error("span was dropped in conversion")
	}
}
