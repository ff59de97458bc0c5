// Package parser turns a lexed token stream into validated items.
//
// Every parse function follows the same convention: it returns a nil
// result with a nil error when the construct does not start at the
// current position (the cursor is left untouched), and a non-nil error
// for a hard failure that aborts the whole parse. Optional constructs
// are probed by trying alternatives in order on a copied cursor.
package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// Parse consumes the whole token stream and returns the validated item
// list. The stream must be free of lex errors; callers check
// Program.Errors first.
func Parse(prog *lexer.Program) ([]ast.Item, error) {
	p := newParser(prog)
	var items []ast.Item
	for {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if item == nil {
			break
		}
		items = append(items, item)
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// ParseExpr consumes the whole token stream as a single expression.
// Used by the REPL, where free-standing expressions are legal input.
func ParseExpr(prog *lexer.Program) (ast.Expr, error) {
	p := newParser(prog)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, errExpectedGot("expression", p.cur.peek(), p.in)
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	if err := validateExpr(expr, placeOther); err != nil {
		return nil, err
	}
	return expr, nil
}

type parser struct {
	cur cursor
	in  *intern.Interner
}

func newParser(prog *lexer.Program) *parser {
	return &parser{cur: newCursor(prog.Tokens()), in: prog.Interner()}
}

// finish verifies that only the EOF sentinel remains.
func (p *parser) finish() error {
	if p.cur.peek().Kind == token.EOF {
		return nil
	}
	return errRemainingTokens(p.cur.tokens[p.cur.pos:], p.in)
}

func (p *parser) eatPunct(pt token.Punct) (source.Span, bool) {
	return p.cur.eat(token.Token{Kind: token.Punctuation, Punct: pt})
}

func (p *parser) eatKeyword(kw token.Keyw) (source.Span, bool) {
	return p.cur.eat(token.Token{Kind: token.Keyword, Keyword: kw})
}

func (p *parser) expectPunct(pt token.Punct) (source.Span, error) {
	want := token.Token{Kind: token.Punctuation, Punct: pt}
	if span, ok := p.cur.eat(want); ok {
		return span, nil
	}
	return source.Span{}, errExpectedToken(want, p.cur.peek(), p.in)
}

// eatIdent consumes an identifier token, if present.
func (p *parser) eatIdent() (*ast.Ident, bool) {
	if t := p.cur.peek(); t.Kind == token.Ident {
		p.cur.next()
		return &ast.Ident{Sym: t.Sym, Span: t.Span}, true
	}
	return nil, false
}

func (p *parser) expectIdent(what string) (ast.Ident, error) {
	if id, ok := p.eatIdent(); ok {
		return *id, nil
	}
	return ast.Ident{}, errExpectedGot(what, p.cur.peek(), p.in)
}

// eatTypeName consumes an upper-case identifier token, if present.
func (p *parser) eatTypeName() (*ast.TypeName, bool) {
	if t := p.cur.peek(); t.Kind == token.UpperIdent {
		p.cur.next()
		return &ast.TypeName{Sym: t.Sym, Span: t.Span}, true
	}
	return nil, false
}

func (p *parser) expectTypeName(what string) (ast.TypeName, error) {
	if tn, ok := p.eatTypeName(); ok {
		return *tn, nil
	}
	return ast.TypeName{}, errExpectedGot(what, p.cur.peek(), p.in)
}

// parseName accepts an identifier, type name or operator token. These
// are the three legal shapes for function names.
func (p *parser) parseName() *ast.Name {
	t := p.cur.peek()
	var kind ast.NameKind
	switch t.Kind {
	case token.Ident:
		kind = ast.NameIdent
	case token.UpperIdent:
		kind = ast.NameType
	case token.Operator:
		kind = ast.NameOperator
	default:
		return nil
	}
	p.cur.next()
	return &ast.Name{Kind: kind, Sym: t.Sym, Span: t.Span}
}
