package parser

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// Expression parsing happens in two stages. Stage one greedily chops the
// token stream into a flat list of parts (operands and bare connective
// tokens) with no precedence applied. Stage two runs precedence
// climbing over that list; see
// https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html

type partKind int

const (
	partLiteral partKind = iota
	partInvokable
	partLambda
	partBlock
	partParens
	partAnd
	partOr
	partDot
	partEquals
)

// exprPart is one stage-one fragment. Operand kinds carry the parsed
// expression; connective kinds carry only their span.
type exprPart struct {
	kind partKind
	expr ast.Expr
	span source.Span
}

func (pt *exprPart) isConnective() bool {
	switch pt.kind {
	case partAnd, partOr, partDot, partEquals:
		return true
	}
	return false
}

func (pt *exprPart) connectiveName() string {
	switch pt.kind {
	case partAnd:
		return "and"
	case partOr:
		return "or"
	case partDot:
		return "."
	case partEquals:
		return "="
	}
	return "?"
}

// isTypeName reports whether the part is a type-name invokable, which
// acts as the postfix ascription operator.
func (pt *exprPart) isTypeName() bool {
	if pt.kind != partInvokable {
		return false
	}
	return pt.expr.(*ast.Invokable).Name.Kind == ast.NameType
}

func (pt *exprPart) isOperatorSym() bool {
	if pt.kind != partInvokable {
		return false
	}
	_, ok := pt.expr.(*ast.Invokable).Operator()
	return ok
}

// parseExpr parses one expression, or reports no-match when the current
// position cannot start one.
func (p *parser) parseExpr() (ast.Expr, error) {
	decl, err := p.parseDeclaration()
	if decl != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return decl, nil
	}
	m, err := p.parseMatch()
	if m != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return p.parsePrattExpr(false)
}

// parsePrattExpr runs both stages. With stopAtBrace set, fragmentation
// halts before an opening brace so that `match scrutinee { ... }` does
// not swallow the arm list as a block operand.
func (p *parser) parsePrattExpr(stopAtBrace bool) (ast.Expr, error) {
	saved := p.cur
	var parts []exprPart
	remaining := p.cur.remaining()
	for {
		if stopAtBrace {
			if t := p.cur.peek(); t.Kind == token.Punctuation && t.Punct == token.OpenBrace {
				break
			}
		}
		part, err := p.parseExprPart()
		if err != nil {
			return nil, err
		}
		if part == nil {
			break
		}
		if p.cur.remaining() == remaining {
			return nil, errExpectedGot("expression", p.cur.peek(), p.in)
		}
		remaining = p.cur.remaining()
		parts = append(parts, *part)
	}

	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		if parts[0].isConnective() {
			p.cur = saved
			return nil, nil
		}
		return parts[0].expr, nil
	}
	it := partIter{parts: parts}
	return p.climbParts(&it, 0)
}

// parseExprPart parses one stage-one fragment.
func (p *parser) parseExprPart() (*exprPart, error) {
	t := p.cur.peek()
	switch t.Kind {
	case token.NumberLit:
		p.cur.next()
		lit := &ast.Literal{Number: t.Number, Sp: t.Span}
		return &exprPart{kind: partLiteral, expr: lit, span: t.Span}, nil

	case token.StringLit:
		p.cur.next()
		lit := &ast.Literal{Str: t.Sym, IsString: true, Sp: t.Span}
		return &exprPart{kind: partLiteral, expr: lit, span: t.Span}, nil

	case token.Ident, token.UpperIdent, token.Operator:
		inv, err := p.parseInvokable()
		if err != nil {
			return nil, err
		}
		return &exprPart{kind: partInvokable, expr: inv, span: inv.Sp}, nil

	case token.Keyword:
		switch t.Keyword {
		case token.KwAnd:
			p.cur.next()
			return &exprPart{kind: partAnd, span: t.Span}, nil
		case token.KwOr:
			p.cur.next()
			return &exprPart{kind: partOr, span: t.Span}, nil
		}
		return nil, nil

	case token.Punctuation:
		switch t.Punct {
		case token.Dot:
			p.cur.next()
			return &exprPart{kind: partDot, span: t.Span}, nil
		case token.Equals:
			p.cur.next()
			return &exprPart{kind: partEquals, span: t.Span}, nil
		case token.Pipe:
			lam, err := p.parseLambda()
			if lam == nil || err != nil {
				return nil, err
			}
			return &exprPart{kind: partLambda, expr: lam, span: lam.Sp}, nil
		case token.OpenBrace:
			block, err := p.parseBlock()
			if block == nil || err != nil {
				return nil, err
			}
			return &exprPart{kind: partBlock, expr: block, span: block.Sp}, nil
		case token.OpenParen:
			parens, err := p.parseParens()
			if parens == nil || err != nil {
				return nil, err
			}
			return &exprPart{kind: partParens, expr: parens, span: parens.Sp}, nil
		}
		return nil, nil
	}
	return nil, nil
}

// parseInvokable parses a name with optional generic arguments.
func (p *parser) parseInvokable() (*ast.Invokable, error) {
	name := p.parseName()
	if name == nil {
		return nil, nil
	}
	args, err := p.parseTypeArguments()
	if err != nil {
		return nil, err
	}
	inv := &ast.Invokable{Name: *name, Sp: name.Span}
	if args != nil {
		inv.Generics = *args
		inv.Sp = name.Span.Merge(args.Span)
	}
	return inv, nil
}

// parseLambda parses `|args| body`. The body is any expression, so a
// block body needs no special case.
func (p *parser) parseLambda() (*ast.Lambda, error) {
	args, argsSpan, ok, err := encloseMultiple(
		p, token.Pipe, token.Comma, token.Pipe, parseLambdaArgument,
	)
	if err != nil || !ok {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errExpectedGot("lambda body", p.cur.peek(), p.in)
	}
	return &ast.Lambda{
		Args:     args,
		ArgsSpan: argsSpan,
		Body:     body,
		Sp:       argsSpan.Merge(body.Span()),
	}, nil
}

func parseLambdaArgument(p *parser) (*ast.LambdaArgument, error) {
	name, ok := p.eatIdent()
	if !ok {
		return nil, nil
	}
	ty, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	span := name.Span
	if ty != nil {
		span = span.Merge(ty.Sp)
	}
	return &ast.LambdaArgument{Name: *name, Ty: ty, Sp: span}, nil
}

// parseBlock parses `{ expr; expr; ... }`. A trailing semicolon makes
// the block evaluate to the unit value, recorded both as a final Empty
// expression and in the EndsWithSemicolon flag.
func (p *parser) parseBlock() (*ast.Block, error) {
	span1, ok := p.eatPunct(token.OpenBrace)
	if !ok {
		return nil, nil
	}

	var (
		exprs    []ast.Expr
		endsSemi bool
		lastSemi source.Span
	)
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if e == nil {
			break
		}
		exprs = append(exprs, e)
		endsSemi = false
		semi, ok := p.eatPunct(token.Semicolon)
		if !ok {
			break
		}
		endsSemi = true
		lastSemi = semi
	}
	if endsSemi {
		exprs = append(exprs, &ast.Empty{Sp: lastSemi})
	}

	span2, err := p.expectPunct(token.CloseBrace)
	if err != nil {
		return nil, err
	}
	return &ast.Block{
		Exprs:             exprs,
		EndsWithSemicolon: endsSemi,
		Sp:                span1.Merge(span2),
	}, nil
}

// parseParens parses `( ... )`: a tuple literal as a stand-alone part,
// or an argument list when folded onto a receiver.
func (p *parser) parseParens() (*ast.Parens, error) {
	span1, ok := p.eatPunct(token.OpenParen)
	if !ok {
		return nil, nil
	}
	args, err := vecSeparated(p, token.Comma, parseFunCallArgument)
	if err != nil {
		return nil, err
	}
	span2, err := p.expectPunct(token.CloseParen)
	if err != nil {
		return nil, err
	}
	return &ast.Parens{Exprs: args, Sp: span1.Merge(span2)}, nil
}

// parseFunCallArgument tries `name: expr` first on a copied cursor,
// falling back to a plain positional expression.
func parseFunCallArgument(p *parser) (*ast.FunCallArgument, error) {
	saved := p.cur
	if name, ok := p.eatIdent(); ok {
		if _, ok := p.eatPunct(token.Colon); ok {
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if expr == nil {
				return nil, errExpectedGot("expression", p.cur.peek(), p.in)
			}
			return &ast.FunCallArgument{
				Name:  name,
				Value: expr,
				Sp:    name.Span.Merge(expr.Span()),
			}, nil
		}
		p.cur = saved
	}

	expr, err := p.parseExpr()
	if err != nil || expr == nil {
		return nil, err
	}
	return &ast.FunCallArgument{Value: expr, Sp: expr.Span()}, nil
}

// parseDeclaration parses `let name = expr` or `var name = expr`.
func (p *parser) parseDeclaration() (*ast.Declaration, error) {
	t := p.cur.peek()
	if t.Kind != token.Keyword {
		return nil, nil
	}
	var kind ast.DeclKind
	switch t.Keyword {
	case token.KwLet:
		kind = ast.DeclLet
	case token.KwVar:
		kind = ast.DeclVar
	default:
		return nil, nil
	}
	kwSpan := p.cur.next().Span

	name, err := p.expectIdent("variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.Equals); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errExpectedGot("expression", p.cur.peek(), p.in)
	}
	return &ast.Declaration{
		DeclKind: kind,
		Name:     name,
		Value:    value,
		Sp:       kwSpan.Merge(value.Span()),
	}, nil
}

// parseMatch parses `match scrutinee { pattern: expr, ... }`.
func (p *parser) parseMatch() (*ast.Match, error) {
	kwSpan, ok := p.eatKeyword(token.KwMatch)
	if !ok {
		return nil, nil
	}
	scrutinee, err := p.parsePrattExpr(true)
	if err != nil {
		return nil, err
	}
	if scrutinee == nil {
		return nil, errExpectedGot("expression", p.cur.peek(), p.in)
	}
	if _, err := p.expectPunct(token.OpenBrace); err != nil {
		return nil, err
	}
	arms, err := vecSeparated(p, token.Comma, parseMatchArm)
	if err != nil {
		return nil, err
	}
	span2, err := p.expectPunct(token.CloseBrace)
	if err != nil {
		return nil, err
	}
	return &ast.Match{
		Scrutinee: scrutinee,
		Arms:      arms,
		Sp:        kwSpan.Merge(span2),
	}, nil
}

func parseMatchArm(p *parser) (*ast.MatchArm, error) {
	pat, err := p.parsePattern()
	if err != nil || pat == nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.Colon); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, errExpectedGot("expression", p.cur.peek(), p.in)
	}
	return &ast.MatchArm{
		Pattern: pat,
		Expr:    expr,
		Sp:      pat.Span().Merge(expr.Span()),
	}, nil
}

type partIter struct {
	parts []exprPart
	pos   int
}

func (it *partIter) peek() *exprPart {
	if it.pos >= len(it.parts) {
		return nil
	}
	return &it.parts[it.pos]
}

func (it *partIter) next() (exprPart, bool) {
	if it.pos >= len(it.parts) {
		return exprPart{}, false
	}
	pt := it.parts[it.pos]
	it.pos++
	return pt, true
}

// Postfix operators only have a left binding power.
func postfixBindingPower(pt *exprPart) (int, bool) {
	switch {
	case pt.isTypeName():
		return 11, true
	case pt.kind == partParens:
		return 9, true
	}
	return 0, false
}

// Infix pairs with left > right are right-associative.
func infixBindingPower(pt *exprPart) (left, right int, ok bool) {
	switch {
	case pt.kind == partDot:
		return 13, 14, true
	case pt.isOperatorSym():
		return 7, 8, true
	case pt.kind == partAnd:
		return 5, 6, true
	case pt.kind == partOr:
		return 3, 4, true
	case pt.kind == partEquals:
		return 2, 1, true
	}
	return 0, 0, false
}

// climbParts is the precedence-climbing loop over the part list.
func (p *parser) climbParts(it *partIter, minBP int) (ast.Expr, error) {
	first, ok := it.next()
	if !ok {
		return nil, errExpected("expression", source.Span{})
	}
	lhs, err := p.intoOperand(first)
	if err != nil {
		return nil, err
	}

	for {
		op := it.peek()
		if op == nil {
			break
		}
		if err := p.assertIsOperator(op, lhs); err != nil {
			return nil, err
		}

		if lbp, ok := postfixBindingPower(op); ok {
			if lbp < minBP {
				break
			}
			opPart, _ := it.next()
			lhs, err = p.foldPostfix(opPart, lhs)
			if err != nil {
				return nil, err
			}
			continue
		}

		if lbp, rbp, ok := infixBindingPower(op); ok {
			if lbp < minBP {
				break
			}
			opPart, _ := it.next()
			rhs, err := p.climbParts(it, rbp)
			if err != nil {
				return nil, err
			}
			lhs, err = p.intoOperation(opPart, lhs, rhs)
			if err != nil {
				return nil, err
			}
			continue
		}

		break
	}
	return lhs, nil
}

func (p *parser) intoOperand(pt exprPart) (ast.Expr, error) {
	if pt.isConnective() {
		return nil, &Error{
			Msg:  fmt.Sprintf("expected expression, got `%s`", pt.connectiveName()),
			Span: pt.span,
		}
	}
	return pt.expr, nil
}

// checkOperand rejects a bare operator-symbol invokable used as a
// value.
func (p *parser) checkOperand(e ast.Expr) error {
	if sym, ok := ast.ExprOperator(e); ok {
		return errOperatorInsteadOfOperand(sym, e.Span(), p.in)
	}
	return nil
}

// assertIsOperator checks that a part peeked at operator position is
// legal there, given the operand to its left.
func (p *parser) assertIsOperator(op *exprPart, lhs ast.Expr) error {
	switch op.kind {
	case partParens, partDot, partEquals:
		return nil
	case partAnd, partOr:
		return p.checkOperand(lhs)
	case partInvokable:
		inv := op.expr.(*ast.Invokable)
		switch inv.Name.Kind {
		case ast.NameOperator, ast.NameType:
			return p.checkOperand(lhs)
		}
		return errExpectedGotExpr("operator", op.expr)
	default:
		return errExpectedGotExpr("operator", op.expr)
	}
}

func (p *parser) foldPostfix(op exprPart, lhs ast.Expr) (ast.Expr, error) {
	span := lhs.Span().Merge(op.span)
	switch op.kind {
	case partParens:
		parens := op.expr.(*ast.Parens)
		return &ast.ParenCall{Receiver: lhs, Args: parens.Exprs, Sp: span}, nil
	case partInvokable:
		inv := op.expr.(*ast.Invokable)
		ty := ast.NamedType{
			Name: ast.TypeName{Sym: inv.Name.Sym, Span: inv.Name.Span},
			Args: inv.Generics,
			Sp:   op.span,
		}
		return &ast.TypeAscription{Expr: lhs, Ty: ty, Sp: span}, nil
	}
	return nil, errExpectedGotExpr("operator", op.expr)
}

func (p *parser) intoOperation(op exprPart, lhs, rhs ast.Expr) (ast.Expr, error) {
	span := lhs.Span().Merge(rhs.Span())
	switch op.kind {
	case partInvokable:
		inv := op.expr.(*ast.Invokable)
		sym, ok := inv.Operator()
		if !ok {
			return nil, errExpectedGotExpr("operator", op.expr)
		}
		if err := p.checkOperand(lhs); err != nil {
			return nil, err
		}
		if err := p.checkOperand(rhs); err != nil {
			return nil, err
		}
		return &ast.Operation{OpSym: sym, OpSpan: op.span, Lhs: lhs, Rhs: rhs, Sp: span}, nil

	case partAnd, partOr:
		if err := p.checkOperand(lhs); err != nil {
			return nil, err
		}
		if err := p.checkOperand(rhs); err != nil {
			return nil, err
		}
		o := ast.ScAnd
		if op.kind == partOr {
			o = ast.ScOr
		}
		return &ast.ShortCircuitOp{Op: o, Lhs: lhs, Rhs: rhs, Sp: span}, nil

	case partDot:
		member, ok := rhs.(*ast.Invokable)
		if !ok {
			return nil, errExpectedGotExpr("member name", rhs)
		}
		return &ast.MemberCall{Receiver: lhs, Member: *member, Sp: span}, nil

	case partEquals:
		if err := p.checkOperand(lhs); err != nil {
			return nil, err
		}
		return &ast.Assignment{Lhs: lhs, Rhs: rhs, Sp: span}, nil
	}
	return nil, errExpectedGotExpr("operator", op.expr)
}
