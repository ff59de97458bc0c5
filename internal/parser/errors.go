package parser

import (
	"fmt"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// Error is the single error type surfaced by Parse. Validation failures
// use it too, so callers have one span-carrying shape to render.
type Error struct {
	Msg  string
	Tip  string
	Span source.Span
}

func (e *Error) Error() string {
	if e.Tip != "" {
		return e.Msg + "\n  tip: " + e.Tip
	}
	return e.Msg
}

func errExpected(what string, span source.Span) *Error {
	return &Error{Msg: "expected " + what, Span: span}
}

func errExpectedGot(what string, got token.Token, in *intern.Interner) *Error {
	return &Error{
		Msg:  fmt.Sprintf("expected %s, got %s", what, got.Describe(in)),
		Span: got.Span,
	}
}

func errExpectedToken(want, got token.Token, in *intern.Interner) *Error {
	return &Error{
		Msg:  fmt.Sprintf("expected %s, got %s", want.Describe(in), got.Describe(in)),
		Span: got.Span,
	}
}

func errExpectedGotExpr(what string, got ast.Expr) *Error {
	return &Error{
		Msg:  fmt.Sprintf("expected %s, got %s", what, got.Kind()),
		Span: got.Span(),
	}
}

func errOperatorInsteadOfOperand(op intern.Symbol, span source.Span, in *intern.Interner) *Error {
	return &Error{
		Msg:  fmt.Sprintf("operators are not allowed here: `%s`", in.Resolve(op)),
		Tip:  "wrap the operator in braces, e.g. `{+}`",
		Span: span,
	}
}

func errRemainingTokens(rest []token.Token, in *intern.Interner) *Error {
	descs := make([]string, 0, len(rest))
	span := source.Span{}
	for i, t := range rest {
		if t.Kind == token.EOF {
			break
		}
		if i == 0 {
			span = t.Span
		} else {
			span = span.Merge(t.Span)
		}
		descs = append(descs, t.Describe(in))
	}
	return &Error{
		Msg:  "there are remaining tokens that could not be parsed: " + strings.Join(descs, ", "),
		Span: span,
	}
}
