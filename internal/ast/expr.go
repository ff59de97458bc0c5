package ast

import (
	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// TypeArgs is a bracketed type-argument list with the span of the brackets.
// An absent list has a zero span and no arguments.
type TypeArgs struct {
	Args []TypeArgument
	Span source.Span
}

// TypeArgument is either a named type or the `_` wildcard.
type TypeArgument struct {
	Type     *NamedType // nil for the wildcard
	ArgSpan  source.Span
	Wildcard bool
}

// NamedType is an uppercase type name with optional type arguments.
type NamedType struct {
	Name TypeName
	Args TypeArgs
	Sp   source.Span
}

func (t *NamedType) Span() source.Span { return t.Sp }

// Invokable pairs a name with optional generic arguments; it is the shared
// representation for calls, operators and plain value references.
type Invokable struct {
	Name     Name
	Generics TypeArgs
	Sp       source.Span
}

func (e *Invokable) Span() source.Span { return e.Sp }
func (e *Invokable) Kind() ExprKind    { return KindInvokable }
func (e *Invokable) exprNode()         {}

// Operator returns the operator symbol if the invokable names one.
func (e *Invokable) Operator() (intern.Symbol, bool) {
	if e.Name.Kind == NameOperator {
		return e.Name.Sym, true
	}
	return 0, false
}

// Literal is a number or string literal.
type Literal struct {
	Number   token.NumberLiteral
	Str      intern.Symbol
	IsString bool
	Sp       source.Span
}

func (e *Literal) Span() source.Span { return e.Sp }
func (e *Literal) Kind() ExprKind    { return KindLiteral }
func (e *Literal) exprNode()         {}

// FunCallArgument is one call argument, optionally named.
type FunCallArgument struct {
	Name  *Ident // nil for positional arguments
	Value Expr
	Sp    source.Span
}

func (a *FunCallArgument) Span() source.Span { return a.Sp }

// ParenCall is a call-with-parentheses applied to a receiver expression.
type ParenCall struct {
	Receiver Expr
	Args     []FunCallArgument
	Sp       source.Span
}

func (e *ParenCall) Span() source.Span { return e.Sp }
func (e *ParenCall) Kind() ExprKind    { return KindParenCall }
func (e *ParenCall) exprNode()         {}

// MemberCall is `receiver.member`.
type MemberCall struct {
	Receiver Expr
	Member   Invokable
	Sp       source.Span
}

func (e *MemberCall) Span() source.Span { return e.Sp }
func (e *MemberCall) Kind() ExprKind    { return KindMemberCall }
func (e *MemberCall) exprNode()         {}

// Operation applies a user-defined operator to two operands. Operators are
// ordinary symbols with no relative precedence; mixing distinct operators
// without a block is rejected by validation.
type Operation struct {
	OpSym  intern.Symbol
	OpSpan source.Span
	Lhs    Expr
	Rhs    Expr
	Sp     source.Span
}

func (e *Operation) Span() source.Span { return e.Sp }
func (e *Operation) Kind() ExprKind    { return KindOperation }
func (e *Operation) exprNode()         {}

// ScOperator is the short-circuiting operator: `and` or `or`.
type ScOperator int

const (
	ScAnd ScOperator = iota
	ScOr
)

func (o ScOperator) String() string {
	if o == ScAnd {
		return "and"
	}
	return "or"
}

// ShortCircuitOp is a short-circuiting `and`/`or` operation.
type ShortCircuitOp struct {
	Op  ScOperator
	Lhs Expr
	Rhs Expr
	Sp  source.Span
}

func (e *ShortCircuitOp) Span() source.Span { return e.Sp }
func (e *ShortCircuitOp) Kind() ExprKind    { return KindShortCircuitOp }
func (e *ShortCircuitOp) exprNode()         {}

// Assignment is `lhs = rhs`; the lhs must be a place expression.
type Assignment struct {
	Lhs Expr
	Rhs Expr
	Sp  source.Span
}

func (e *Assignment) Span() source.Span { return e.Sp }
func (e *Assignment) Kind() ExprKind    { return KindAssignment }
func (e *Assignment) exprNode()         {}

// TypeAscription is the postfix type annotation `expr Type`.
type TypeAscription struct {
	Expr Expr
	Ty   NamedType
	Sp   source.Span
}

func (e *TypeAscription) Span() source.Span { return e.Sp }
func (e *TypeAscription) Kind() ExprKind    { return KindTypeAscription }
func (e *TypeAscription) exprNode()         {}

// Statement wraps an expression whose value is discarded. The parser never
// produces it; it exists for later lowering stages.
type Statement struct {
	Inner Expr
	Sp    source.Span
}

func (e *Statement) Span() source.Span { return e.Sp }
func (e *Statement) Kind() ExprKind    { return KindStatement }
func (e *Statement) exprNode()         {}

// LambdaArgument is one `|…|` parameter with an optional type.
type LambdaArgument struct {
	Name Ident
	Ty   *NamedType
	Sp   source.Span
}

// Lambda is `|args| body`.
type Lambda struct {
	Args     []LambdaArgument
	ArgsSpan source.Span
	Body     Expr
	Sp       source.Span
}

func (e *Lambda) Span() source.Span { return e.Sp }
func (e *Lambda) Kind() ExprKind    { return KindLambda }
func (e *Lambda) exprNode()         {}

// Block is `{ e1; e2; … }` with a flag recording a trailing semicolon.
type Block struct {
	Exprs             []Expr
	EndsWithSemicolon bool
	Sp                source.Span
}

func (e *Block) Span() source.Span { return e.Sp }
func (e *Block) Kind() ExprKind    { return KindBlock }
func (e *Block) exprNode()         {}

// Parens is a parenthesized tuple of call-style arguments.
type Parens struct {
	Exprs []FunCallArgument
	Sp    source.Span
}

func (e *Parens) Span() source.Span { return e.Sp }
func (e *Parens) Kind() ExprKind    { return KindTuple }
func (e *Parens) exprNode()         {}

// Empty is the expression between a trailing semicolon and a closing brace.
type Empty struct {
	Sp source.Span
}

func (e *Empty) Span() source.Span { return e.Sp }
func (e *Empty) Kind() ExprKind    { return KindEmpty }
func (e *Empty) exprNode()         {}

// DeclKind distinguishes `let` from `var`.
type DeclKind int

const (
	DeclLet DeclKind = iota
	DeclVar
)

func (k DeclKind) String() string {
	if k == DeclLet {
		return "let"
	}
	return "var"
}

// Declaration is `let name = value` or `var name = value`.
type Declaration struct {
	DeclKind DeclKind
	Name     Ident
	Value    Expr
	Sp       source.Span
}

func (e *Declaration) Span() source.Span { return e.Sp }
func (e *Declaration) Kind() ExprKind    { return KindDeclaration }
func (e *Declaration) exprNode()         {}

// MatchArm is one `pattern: expr` arm.
type MatchArm struct {
	Pattern Pattern
	Expr    Expr
	Sp      source.Span
}

// Match is `match scrutinee { arms }`.
type Match struct {
	Scrutinee Expr
	Arms      []MatchArm
	Sp        source.Span
}

func (e *Match) Span() source.Span { return e.Sp }
func (e *Match) Kind() ExprKind    { return KindMatch }
func (e *Match) exprNode()         {}

// ExprOperator returns the operator symbol when the expression is a bare
// operator-named invokable.
func ExprOperator(e Expr) (intern.Symbol, bool) {
	if inv, ok := e.(*Invokable); ok {
		return inv.Operator()
	}
	return 0, false
}
