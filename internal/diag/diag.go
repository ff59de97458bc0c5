// Package diag renders lex and parse errors as human-readable
// diagnostics with source context.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/source"
)

// Severity of a diagnostic. The front end only produces errors today;
// the other levels exist for tooling that annotates without failing.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}
	return "unknown"
}

// Diagnostic is one renderable finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	Tip      string
	Span     source.Span
}

// FromLex converts the lex errors of a token stream.
func FromLex(errs []lexer.SpannedErr) []Diagnostic {
	diags := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Message:  e.Err.Message(),
			Span:     e.Span,
		})
	}
	return diags
}

// FromParse converts a parse or validation error. Unknown error types
// become a spanless diagnostic.
func FromParse(err error) Diagnostic {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return Diagnostic{
			Severity: SeverityError,
			Message:  perr.Msg,
			Tip:      perr.Tip,
			Span:     perr.Span,
		}
	}
	return Diagnostic{Severity: SeverityError, Message: err.Error()}
}

// Renderer formats diagnostics, optionally with color.
type Renderer struct {
	label   lipgloss.Style
	loc     lipgloss.Style
	caret   lipgloss.Style
	tip     lipgloss.Style
	gutter  lipgloss.Style
	enabled bool
}

// NewRenderer returns a renderer. With color disabled all styles
// degrade to plain text.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{enabled: color}
	if !color {
		return r
	}
	r.label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	r.loc = lipgloss.NewStyle().Bold(true)
	r.caret = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	r.tip = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	r.gutter = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	return r
}

// Render formats one diagnostic against its file: a location header,
// the offending source line, and a caret run under the span.
func (r *Renderer) Render(file *source.File, d Diagnostic) string {
	var b strings.Builder

	if d.Span.Len() > 0 || d.Span.Start > 0 {
		line, col := file.Position(d.Span.Start)
		b.WriteString(r.loc.Render(fmt.Sprintf("%s:%d:%d: ", file.Name, line, col)))
		b.WriteString(r.label.Render(d.Severity.String() + ": "))
		b.WriteString(d.Message)
		b.WriteByte('\n')

		text := file.Line(line)
		gutter := fmt.Sprintf("%4d | ", line)
		b.WriteString(r.gutter.Render(gutter))
		b.WriteString(text)
		b.WriteByte('\n')

		width := d.Span.Len()
		if width == 0 {
			width = 1
		}
		if rest := len(text) - (col - 1); width > rest && rest > 0 {
			width = rest
		}
		b.WriteString(strings.Repeat(" ", len(gutter)+col-1))
		b.WriteString(r.caret.Render(strings.Repeat("^", width)))
		b.WriteByte('\n')
	} else {
		b.WriteString(r.label.Render(d.Severity.String() + ": "))
		b.WriteString(d.Message)
		b.WriteByte('\n')
	}

	if d.Tip != "" {
		b.WriteString(r.tip.Render("  tip: " + d.Tip))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderAll formats a batch in order.
func (r *Renderer) RenderAll(file *source.File, diags []Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(r.Render(file, d))
	}
	return b.String()
}
