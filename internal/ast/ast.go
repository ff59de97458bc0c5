// Package ast defines the Quill abstract syntax tree.
//
// Expr, Item and Pattern are closed tagged unions modelled as sealed
// interfaces with marker methods; every node owns its children by value or
// through a single parent-owned reference, and carries exactly one span
// covering its source text. Nodes are created by the parser and never
// mutated afterwards.
package ast

import (
	"fmt"

	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/source"
)

// Node is the base interface of all AST nodes.
type Node interface {
	// Span returns the source span covering the node.
	Span() source.Span
}

// ExprKind discriminates the expression union.
type ExprKind int

const (
	KindInvokable ExprKind = iota
	KindLiteral
	KindParenCall
	KindMemberCall
	KindOperation
	KindShortCircuitOp
	KindAssignment
	KindTypeAscription
	KindStatement
	KindLambda
	KindBlock
	KindTuple
	KindEmpty
	KindDeclaration
	KindMatch
)

var exprKindNames = map[ExprKind]string{
	KindInvokable:      "Invokable",
	KindLiteral:        "Literal",
	KindParenCall:      "ParenCall",
	KindMemberCall:     "MemberCall",
	KindOperation:      "Operation",
	KindShortCircuitOp: "ShortCircuitOp",
	KindAssignment:     "Assignment",
	KindTypeAscription: "TypeAscription",
	KindStatement:      "Statement",
	KindLambda:         "Lambda",
	KindBlock:          "Block",
	KindTuple:          "Tuple",
	KindEmpty:          "Empty",
	KindDeclaration:    "Declaration",
	KindMatch:          "Match",
}

func (k ExprKind) String() string {
	if name, ok := exprKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ExprKind(%d)", int(k))
}

// Expr is the expression union; see the Kind constants for its variants.
type Expr interface {
	Node
	Kind() ExprKind
	exprNode()
}

// ItemKind discriminates the item union.
type ItemKind int

const (
	KindFunction ItemKind = iota
	KindClass
	KindEnum
	KindImpl
	KindUse
)

var itemKindNames = map[ItemKind]string{
	KindFunction: "Function",
	KindClass:    "Class",
	KindEnum:     "Enum",
	KindImpl:     "Impl",
	KindUse:      "Use",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Item is the top-level item union.
type Item interface {
	Node
	Kind() ItemKind
	itemNode()
}

// PatternKind discriminates the pattern union.
type PatternKind int

const (
	KindWildcardPat PatternKind = iota
	KindBindingPat
	KindLiteralPat
	KindRangePat
	KindRangeExclusivePat
	KindClassPat
	KindEnumPat
	KindAscriptionPat
	KindOrPat
	KindGuardPat
)

var patternKindNames = map[PatternKind]string{
	KindWildcardPat:       "Wildcard",
	KindBindingPat:        "Binding",
	KindLiteralPat:        "Literal",
	KindRangePat:          "Range",
	KindRangeExclusivePat: "RangeExclusive",
	KindClassPat:          "ClassPattern",
	KindEnumPat:           "EnumPattern",
	KindAscriptionPat:     "TypeAscription",
	KindOrPat:             "Or",
	KindGuardPat:          "Guard",
}

func (k PatternKind) String() string {
	if name, ok := patternKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

// Pattern is the match-pattern union.
type Pattern interface {
	Node
	Kind() PatternKind
	patternNode()
}

// Ident is a spanned lowercase identifier.
type Ident struct {
	Sym  intern.Symbol
	Span source.Span
}

// TypeName is a spanned uppercase type name.
type TypeName struct {
	Sym  intern.Symbol
	Span source.Span
}

// NameKind discriminates the three lexical identifier classes a name
// position can hold.
type NameKind int

const (
	NameIdent NameKind = iota
	NameType
	NameOperator
)

func (k NameKind) String() string {
	switch k {
	case NameIdent:
		return "identifier"
	case NameType:
		return "type"
	case NameOperator:
		return "operator"
	}
	return fmt.Sprintf("NameKind(%d)", int(k))
}

// Name is an invokable name: an identifier, a type name or an operator
// symbol. Which variant it holds determines its parsing role.
type Name struct {
	Kind NameKind
	Sym  intern.Symbol
	Span source.Span
}

// Resolve returns the name's source text.
func (n Name) Resolve(in *intern.Interner) string { return in.Resolve(n.Sym) }
