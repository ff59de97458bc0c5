package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// parseItem probes each item form in order. All item parsers are
// keyword-gated, so a failed probe never consumes tokens.
func (p *parser) parseItem() (ast.Item, error) {
	fun, err := p.parseFunction()
	if fun != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return fun, nil
	}
	class, err := p.parseClass()
	if class != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return class, nil
	}
	enum, err := p.parseEnum()
	if enum != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return enum, nil
	}
	impl, err := p.parseImpl()
	if impl != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return impl, nil
	}
	use, err := p.parseUse()
	if use != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return use, nil
	}
	return nil, nil
}

// parseFunction parses
//
//	fun name[T](arg Ty, arg Ty = default) ReturnTy { body }
//
// A semicolon instead of a body declares a bodiless signature, which
// only impl-free contexts accept after validation.
func (p *parser) parseFunction() (*ast.Function, error) {
	span, ok := p.eatKeyword(token.KwFun)
	if !ok {
		return nil, nil
	}

	name := p.parseName()
	if name == nil {
		return nil, errExpectedGot("name", p.cur.peek(), p.in)
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	params, paramsSpan, err := encloseMultipleExpect(
		p, token.OpenParen, token.Comma, token.CloseParen, parseFunParam,
	)
	if err != nil {
		return nil, err
	}
	span = span.Merge(paramsSpan)

	returnType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	if returnType != nil {
		span = span.Merge(returnType.Sp)
	}

	var body *ast.Block
	if semi, ok := p.eatPunct(token.Semicolon); ok {
		span = span.Merge(semi)
	} else {
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, errExpectedGot("function body", p.cur.peek(), p.in)
		}
		span = span.Merge(body.Sp)
	}

	return &ast.Function{
		Name:       *name,
		Generics:   generics,
		Params:     params,
		ParamsSpan: paramsSpan,
		ReturnType: returnType,
		Body:       body,
		Sp:         span,
	}, nil
}

func parseFunParam(p *parser) (*ast.FunParam, error) {
	name, ok := p.eatIdent()
	if !ok {
		return nil, nil
	}
	span := name.Span

	ty, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	if ty != nil {
		span = span.Merge(ty.Sp)
	}

	var deflt ast.Expr
	if _, ok := p.eatPunct(token.Equals); ok {
		deflt, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if deflt == nil {
			return nil, errExpectedGot("default expression", p.cur.peek(), p.in)
		}
		span = span.Merge(deflt.Span())
	}

	return &ast.FunParam{Name: *name, Ty: ty, Default: deflt, Sp: span}, nil
}

// parseClass parses `class Name[T](field Ty, field Ty = default)`.
func (p *parser) parseClass() (*ast.Class, error) {
	span, ok := p.eatKeyword(token.KwClass)
	if !ok {
		return nil, nil
	}

	name, err := p.expectTypeName("class name")
	if err != nil {
		return nil, err
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	fields, fieldsSpan, err := encloseMultipleExpect(
		p, token.OpenParen, token.Comma, token.CloseParen, parseClassField,
	)
	if err != nil {
		return nil, err
	}

	return &ast.Class{
		Name:     name,
		Generics: generics,
		Fields:   fields,
		Sp:       span.Merge(fieldsSpan),
	}, nil
}

func parseClassField(p *parser) (*ast.ClassField, error) {
	name, ok := p.eatIdent()
	if !ok {
		return nil, nil
	}
	span := name.Span

	ty, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	if ty != nil {
		span = span.Merge(ty.Sp)
	}

	var deflt ast.Expr
	if _, ok := p.eatPunct(token.Equals); ok {
		deflt, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if deflt == nil {
			return nil, errExpectedGot("default expression", p.cur.peek(), p.in)
		}
		span = span.Merge(deflt.Span())
	}

	return &ast.ClassField{Name: *name, Ty: ty, Default: deflt, Sp: span}, nil
}

// parseEnum parses `enum Name[T] { Variant, Variant(field Ty) }`.
func (p *parser) parseEnum() (*ast.Enum, error) {
	span, ok := p.eatKeyword(token.KwEnum)
	if !ok {
		return nil, nil
	}

	name, err := p.expectTypeName("enum name")
	if err != nil {
		return nil, err
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	variants, variantsSpan, err := encloseMultipleExpect(
		p, token.OpenBrace, token.Comma, token.CloseBrace, parseEnumVariant,
	)
	if err != nil {
		return nil, err
	}

	return &ast.Enum{
		Name:     name,
		Generics: generics,
		Variants: variants,
		Sp:       span.Merge(variantsSpan),
	}, nil
}

func parseEnumVariant(p *parser) (*ast.EnumVariant, error) {
	name, ok := p.eatIdent()
	if !ok {
		return nil, nil
	}
	variant := &ast.EnumVariant{Name: *name, Sp: name.Span}

	fields, fieldsSpan, ok, err := encloseMultiple(
		p, token.OpenParen, token.Comma, token.CloseParen, parseClassField,
	)
	if err != nil {
		return nil, err
	}
	if ok {
		variant.Fields = fields
		variant.HasFields = true
		variant.Sp = variant.Sp.Merge(fieldsSpan)
	}
	return variant, nil
}

// parseImpl parses `impl[T] Target { ... }` and
// `impl[T] Trait for Target { ... }`.
func (p *parser) parseImpl() (*ast.Impl, error) {
	span, ok := p.eatKeyword(token.KwImpl)
	if !ok {
		return nil, nil
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	first, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, errExpectedGot("type", p.cur.peek(), p.in)
	}

	impl := &ast.Impl{Generics: generics, Target: *first}
	if _, ok := p.eatKeyword(token.KwFor); ok {
		target, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errExpectedGot("type", p.cur.peek(), p.in)
		}
		impl.Trait = first
		impl.Target = *target
	}

	if _, err := p.expectPunct(token.OpenBrace); err != nil {
		return nil, err
	}
	for {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if item == nil {
			break
		}
		impl.Items = append(impl.Items, item)
	}
	span2, err := p.expectPunct(token.CloseBrace)
	if err != nil {
		return nil, err
	}
	impl.Sp = span.Merge(span2)
	return impl, nil
}

// parseUse parses `use path.to.item` and the glob form `use path._`.
func (p *parser) parseUse() (*ast.Use, error) {
	span, ok := p.eatKeyword(token.KwUse)
	if !ok {
		return nil, nil
	}

	first := p.parseName()
	if first == nil {
		return nil, errExpectedGot("name", p.cur.peek(), p.in)
	}
	use := &ast.Use{Path: []ast.Name{*first}}
	span = span.Merge(first.Span)

	for {
		if _, ok := p.eatPunct(token.Dot); !ok {
			break
		}
		if wild, ok := p.eatPunct(token.Underscore); ok {
			use.Wildcard = true
			span = span.Merge(wild)
			break
		}
		seg := p.parseName()
		if seg == nil {
			return nil, errExpectedGot("name", p.cur.peek(), p.in)
		}
		use.Path = append(use.Path, *seg)
		span = span.Merge(seg.Span)
	}

	use.Sp = span
	return use, nil
}
