package ast

import "github.com/quill-lang/quill/internal/source"

// WildcardPat is the `_` pattern.
type WildcardPat struct {
	Sp source.Span
}

func (p *WildcardPat) Span() source.Span { return p.Sp }
func (p *WildcardPat) Kind() PatternKind { return KindWildcardPat }
func (p *WildcardPat) patternNode()      {}

// BindingPat binds the matched value to a name.
type BindingPat struct {
	Name Ident
	Sp   source.Span
}

func (p *BindingPat) Span() source.Span { return p.Sp }
func (p *BindingPat) Kind() PatternKind { return KindBindingPat }
func (p *BindingPat) patternNode()      {}

// LiteralPat matches a number or string literal exactly.
type LiteralPat struct {
	Lit Literal
	Sp  source.Span
}

func (p *LiteralPat) Span() source.Span { return p.Sp }
func (p *LiteralPat) Kind() PatternKind { return KindLiteralPat }
func (p *LiteralPat) patternNode()      {}

// RangePat matches `from .. to` (exclusive) or `from ..= to` (inclusive).
type RangePat struct {
	From      Pattern
	To        Pattern
	Inclusive bool
	Sp        source.Span
}

func (p *RangePat) Span() source.Span { return p.Sp }
func (p *RangePat) Kind() PatternKind {
	if p.Inclusive {
		return KindRangePat
	}
	return KindRangeExclusivePat
}
func (p *RangePat) patternNode() {}

// ClassPat destructures a class: `point(x, y)`.
type ClassPat struct {
	Name   Ident
	Fields []Pattern
	Sp     source.Span
}

func (p *ClassPat) Span() source.Span { return p.Sp }
func (p *ClassPat) Kind() PatternKind { return KindClassPat }
func (p *ClassPat) patternNode()      {}

// EnumPat matches an enum variant: `.some(x)` or `.none`.
type EnumPat struct {
	Name    Ident
	Payload Pattern // nil for payload-less variants
	Sp      source.Span
}

func (p *EnumPat) Span() source.Span { return p.Sp }
func (p *EnumPat) Kind() PatternKind { return KindEnumPat }
func (p *EnumPat) patternNode()      {}

// AscriptionPat is the postfix type annotation on a pattern.
type AscriptionPat struct {
	Pat Pattern
	Ty  NamedType
	Sp  source.Span
}

func (p *AscriptionPat) Span() source.Span { return p.Sp }
func (p *AscriptionPat) Kind() PatternKind { return KindAscriptionPat }
func (p *AscriptionPat) patternNode()      {}

// OrPat matches if any `|`-separated alternative matches.
type OrPat struct {
	Alts []Pattern
	Sp   source.Span
}

func (p *OrPat) Span() source.Span { return p.Sp }
func (p *OrPat) Kind() PatternKind { return KindOrPat }
func (p *OrPat) patternNode()      {}

// GuardPat attaches a boolean guard: `pattern for guard`.
type GuardPat struct {
	Pat   Pattern
	Guard Expr
	Sp    source.Span
}

func (p *GuardPat) Span() source.Span { return p.Sp }
func (p *GuardPat) Kind() PatternKind { return KindGuardPat }
func (p *GuardPat) patternNode()      {}
