package ast

import "github.com/quill-lang/quill/internal/source"

// GenericParam is one `[T]` parameter of an item.
type GenericParam struct {
	Name TypeName
	Sp   source.Span
}

// FunParam is one function parameter with optional type and default value.
type FunParam struct {
	Name    Ident
	Ty      *NamedType
	Default Expr
	Sp      source.Span
}

// Function is a `fun` item. A nil body together with the trailing
// semicolon form declares a signature only; validation decides whether a
// signature is allowed in the given position.
type Function struct {
	Name       Name
	Generics   []GenericParam
	Params     []FunParam
	ParamsSpan source.Span
	ReturnType *NamedType
	Body       *Block
	Sp         source.Span
}

func (i *Function) Span() source.Span { return i.Sp }
func (i *Function) Kind() ItemKind    { return KindFunction }
func (i *Function) itemNode()         {}

// ClassField is one field of a class or enum-variant payload.
type ClassField struct {
	Name    Ident
	Ty      *NamedType
	Default Expr
	Sp      source.Span
}

// Class is a `class` item: `class Name[T](fields);`.
type Class struct {
	Name     TypeName
	Generics []GenericParam
	Fields   []ClassField
	Sp       source.Span
}

func (i *Class) Span() source.Span { return i.Sp }
func (i *Class) Kind() ItemKind    { return KindClass }
func (i *Class) itemNode()         {}

// EnumVariant is one variant, optionally with a parenthesized payload.
type EnumVariant struct {
	Name      Ident
	Fields    []ClassField
	HasFields bool
	Sp        source.Span
}

// Enum is an `enum` item: `enum Name[T] { variants }`.
type Enum struct {
	Name     TypeName
	Generics []GenericParam
	Variants []EnumVariant
	Sp       source.Span
}

func (i *Enum) Span() source.Span { return i.Sp }
func (i *Enum) Kind() ItemKind    { return KindEnum }
func (i *Enum) itemNode()         {}

// Impl is `impl[T] Target { … }` or `impl[T] Trait for Target { … }`.
// Validation restricts its items to functions.
type Impl struct {
	Generics []GenericParam
	Trait    *NamedType
	Target   NamedType
	Items    []Item
	Sp       source.Span
}

func (i *Impl) Span() source.Span { return i.Sp }
func (i *Impl) Kind() ItemKind    { return KindImpl }
func (i *Impl) itemNode()         {}

// Use is `use a.b.C;`; a trailing `._` segment imports the whole path.
type Use struct {
	Path     []Name
	Wildcard bool
	Sp       source.Span
}

func (i *Use) Span() source.Span { return i.Sp }
func (i *Use) Kind() ItemKind    { return KindUse }
func (i *Use) itemNode()         {}
