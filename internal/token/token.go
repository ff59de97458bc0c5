// Package token defines the lexical tokens of the Quill language.
//
// Tokens are immutable values created once by the tokenizer. Text-bearing
// tokens carry an interned symbol; punctuation, keywords and lex errors
// carry small enums; number literals carry a tagged 64-bit payload.
package token

import (
	"fmt"

	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/source"
)

// Kind discriminates the token union.
type Kind int

const (
	Punctuation Kind = iota
	StringLit
	NumberLit
	Ident
	UpperIdent
	Operator
	Keyword
	LexError
	EOF
)

var kindNames = map[Kind]string{
	Punctuation: "punctuation",
	StringLit:   "string literal",
	NumberLit:   "number literal",
	Ident:       "identifier",
	UpperIdent:  "type name",
	Operator:    "operator",
	Keyword:     "keyword",
	LexError:    "lex error",
	EOF:         "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one spanned lexical token.
type Token struct {
	Kind Kind

	// Payloads; only the field selected by Kind is meaningful.
	Punct   Punct
	Keyword Keyw
	Err     Err
	Number  NumberLiteral
	Sym     intern.Symbol // Ident, UpperIdent, Operator, StringLit

	Span source.Span
}

// IsWordClass reports whether the token participates in the
// missing-whitespace adjacency rule.
func (t Token) IsWordClass() bool {
	switch t.Kind {
	case NumberLit, Ident, UpperIdent, Operator, Keyword:
		return true
	}
	return false
}

// LexErr returns the lex error carried by the token, if any.
func (t Token) LexErr() (Err, bool) {
	if t.Kind == LexError {
		return t.Err, true
	}
	return Err{}, false
}

// Is reports whether the token matches another token's kind and payload,
// ignoring spans. Used by the cursor's eat/expect.
func (t Token) Is(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Punctuation:
		return t.Punct == other.Punct
	case Keyword:
		return t.Keyword == other.Keyword
	default:
		return true
	}
}

// Describe renders the token for diagnostics, resolving interned text.
func (t Token) Describe(in *intern.Interner) string {
	switch t.Kind {
	case Punctuation:
		return fmt.Sprintf("`%s`", t.Punct)
	case StringLit:
		return fmt.Sprintf("string %s", in.Resolve(t.Sym))
	case NumberLit:
		return t.Number.String()
	case Ident:
		return fmt.Sprintf("identifier `%s`", in.Resolve(t.Sym))
	case UpperIdent:
		return fmt.Sprintf("type name `%s`", in.Resolve(t.Sym))
	case Operator:
		return fmt.Sprintf("operator `%s`", in.Resolve(t.Sym))
	case Keyword:
		return fmt.Sprintf("keyword `%s`", t.Keyword)
	case LexError:
		return t.Err.String()
	case EOF:
		return "EOF"
	}
	return t.Kind.String()
}

// Render reproduces the debug form of the token from its source slice:
// a kind sigil plus the backtick-quoted text, e.g. i`foo`, I`Bool`, o`+`,
// k`fun`, with literal and error forms carrying their payload up front.
func (t Token) Render(src string) string {
	text := t.Span.Text(src)
	switch t.Kind {
	case Punctuation:
		return fmt.Sprintf("`%s`", text)
	case StringLit:
		return fmt.Sprintf("s`%s`", text)
	case NumberLit:
		return fmt.Sprintf("%s`%s`", t.Number, text)
	case Ident:
		return fmt.Sprintf("i`%s`", text)
	case UpperIdent:
		return fmt.Sprintf("I`%s`", text)
	case Operator:
		return fmt.Sprintf("o`%s`", text)
	case Keyword:
		return fmt.Sprintf("k`%s`", text)
	case LexError:
		return fmt.Sprintf("%s`%s`", t.Err, text)
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("?`%s`", text)
}
