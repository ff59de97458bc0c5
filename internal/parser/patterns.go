package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// Pattern grammar, loosest binding first:
//
//	pattern    = orPattern ["for" guardExpr]
//	orPattern  = ascribed ("|" ascribed)*
//	ascribed   = rangePat [NamedType]
//	rangePat   = primary [".." primary | "..=" primary]
//	primary    = "_" | literal | ident ["(" pattern, ... ")"]
//	           | "." ident ["(" pattern ")"] | "(" pattern ")"
//
// The guard keyword `for` and the arm-body colon cannot start a
// pattern, so arms never need lookahead past one token.
func (p *parser) parsePattern() (ast.Pattern, error) {
	pat, err := p.parseOrPattern()
	if err != nil || pat == nil {
		return nil, err
	}

	if _, ok := p.eatKeyword(token.KwFor); ok {
		guard, err := p.parsePrattExpr(false)
		if err != nil {
			return nil, err
		}
		if guard == nil {
			return nil, errExpectedGot("guard expression", p.cur.peek(), p.in)
		}
		return &ast.GuardPat{
			Pat:   pat,
			Guard: guard,
			Sp:    pat.Span().Merge(guard.Span()),
		}, nil
	}
	return pat, nil
}

func (p *parser) parseOrPattern() (ast.Pattern, error) {
	first, err := p.parseAscribedPattern()
	if err != nil || first == nil {
		return nil, err
	}

	alts := []ast.Pattern{first}
	for {
		if _, ok := p.eatPunct(token.Pipe); !ok {
			break
		}
		next, err := p.parseAscribedPattern()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, errExpectedGot("pattern", p.cur.peek(), p.in)
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return first, nil
	}
	return &ast.OrPat{
		Alts: alts,
		Sp:   alts[0].Span().Merge(alts[len(alts)-1].Span()),
	}, nil
}

func (p *parser) parseAscribedPattern() (ast.Pattern, error) {
	pat, err := p.parseRangePattern()
	if err != nil || pat == nil {
		return nil, err
	}
	ty, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	if ty == nil {
		return pat, nil
	}
	return &ast.AscriptionPat{
		Pat: pat,
		Ty:  *ty,
		Sp:  pat.Span().Merge(ty.Sp),
	}, nil
}

func (p *parser) parseRangePattern() (ast.Pattern, error) {
	from, err := p.parsePrimaryPattern()
	if err != nil || from == nil {
		return nil, err
	}

	// `..` is two adjacent dot tokens; a single dot cannot follow a
	// primary pattern, so two saved-cursor probes suffice.
	saved := p.cur
	if _, ok := p.eatPunct(token.Dot); !ok {
		return from, nil
	}
	if _, ok := p.eatPunct(token.Dot); !ok {
		p.cur = saved
		return from, nil
	}
	_, inclusive := p.eatPunct(token.Equals)

	to, err := p.parsePrimaryPattern()
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, errExpectedGot("pattern", p.cur.peek(), p.in)
	}
	return &ast.RangePat{
		From:      from,
		To:        to,
		Inclusive: inclusive,
		Sp:        from.Span().Merge(to.Span()),
	}, nil
}

func (p *parser) parsePrimaryPattern() (ast.Pattern, error) {
	t := p.cur.peek()
	switch t.Kind {
	case token.NumberLit:
		p.cur.next()
		lit := ast.Literal{Number: t.Number, Sp: t.Span}
		return &ast.LiteralPat{Lit: lit, Sp: t.Span}, nil

	case token.StringLit:
		p.cur.next()
		lit := ast.Literal{Str: t.Sym, IsString: true, Sp: t.Span}
		return &ast.LiteralPat{Lit: lit, Sp: t.Span}, nil

	case token.Ident:
		name, _ := p.eatIdent()
		fields, fieldsSpan, ok, err := encloseMultiple(
			p, token.OpenParen, token.Comma, token.CloseParen, parseFieldPattern,
		)
		if err != nil {
			return nil, err
		}
		if ok {
			return &ast.ClassPat{
				Name:   *name,
				Fields: fields,
				Sp:     name.Span.Merge(fieldsSpan),
			}, nil
		}
		return &ast.BindingPat{Name: *name, Sp: name.Span}, nil

	case token.Punctuation:
		switch t.Punct {
		case token.Underscore:
			p.cur.next()
			return &ast.WildcardPat{Sp: t.Span}, nil

		case token.Dot:
			return p.parseEnumPattern()

		case token.OpenParen:
			p.cur.next()
			inner, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			if inner == nil {
				return nil, errExpectedGot("pattern", p.cur.peek(), p.in)
			}
			if _, err := p.expectPunct(token.CloseParen); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, nil
}

// parseEnumPattern parses `.variant` with an optional payload pattern.
func (p *parser) parseEnumPattern() (ast.Pattern, error) {
	dot, ok := p.eatPunct(token.Dot)
	if !ok {
		return nil, nil
	}
	name, err := p.expectIdent("variant name")
	if err != nil {
		return nil, err
	}
	pat := &ast.EnumPat{Name: name, Sp: dot.Merge(name.Span)}

	if _, ok := p.eatPunct(token.OpenParen); ok {
		payload, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if payload == nil {
			return nil, errExpectedGot("pattern", p.cur.peek(), p.in)
		}
		span2, err := p.expectPunct(token.CloseParen)
		if err != nil {
			return nil, err
		}
		pat.Payload = payload
		pat.Sp = pat.Sp.Merge(span2)
	}
	return pat, nil
}

func parseFieldPattern(p *parser) (*ast.Pattern, error) {
	pat, err := p.parsePattern()
	if err != nil || pat == nil {
		return nil, err
	}
	return &pat, nil
}
