package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// parseNamedType parses `TypeName` with optional bracketed type
// arguments, e.g. `List[Int]` or `Map[String, _]`.
func (p *parser) parseNamedType() (*ast.NamedType, error) {
	name, ok := p.eatTypeName()
	if !ok {
		return nil, nil
	}
	args, err := p.parseTypeArguments()
	if err != nil {
		return nil, err
	}
	span := name.Span
	if args != nil {
		span = span.Merge(args.Span)
	}
	ty := &ast.NamedType{Name: *name, Sp: span}
	if args != nil {
		ty.Args = *args
	}
	return ty, nil
}

// parseTypeArguments parses `[arg, arg, ...]`, returning nil when the
// opening bracket is absent.
func (p *parser) parseTypeArguments() (*ast.TypeArgs, error) {
	args, span, ok, err := encloseMultiple(
		p, token.OpenBracket, token.Comma, token.CloseBracket, parseTypeArgument,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &ast.TypeArgs{Args: args, Span: span}, nil
}

// parseTypeArgument parses a named type or the `_` wildcard.
func parseTypeArgument(p *parser) (*ast.TypeArgument, error) {
	if ty, err := p.parseNamedType(); ty != nil || err != nil {
		if err != nil {
			return nil, err
		}
		return &ast.TypeArgument{Type: ty, ArgSpan: ty.Sp}, nil
	}
	if span, ok := p.eatPunct(token.Underscore); ok {
		return &ast.TypeArgument{Wildcard: true, ArgSpan: span}, nil
	}
	return nil, nil
}

// parseGenericParams parses a declaration-site generic list like
// `[T, U]`, returning nil when absent.
func (p *parser) parseGenericParams() ([]ast.GenericParam, error) {
	params, _, _, err := encloseMultiple(
		p, token.OpenBracket, token.Comma, token.CloseBracket, parseGenericParam,
	)
	return params, err
}

func parseGenericParam(p *parser) (*ast.GenericParam, error) {
	name, ok := p.eatTypeName()
	if !ok {
		return nil, nil
	}
	return &ast.GenericParam{Name: *name, Sp: name.Span}, nil
}
