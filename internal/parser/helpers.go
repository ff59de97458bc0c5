package parser

import (
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// parseFn is the common shape of a probing parse function: nil result
// with nil error means the construct does not start here.
type parseFn[T any] func(*parser) (*T, error)

// vecSeparated parses `elem (sep elem)*`. A separator with no element
// after it is consumed and tolerated, which permits trailing
// separators. Returns nil (without touching the cursor) when not even
// the first element matches.
func vecSeparated[T any](p *parser, sep token.Punct, f parseFn[T]) ([]T, error) {
	saved := p.cur
	first, err := f(p)
	if err != nil {
		return nil, err
	}
	if first == nil {
		p.cur = saved
		return nil, nil
	}
	results := []T{*first}
	for {
		if _, ok := p.eatPunct(sep); !ok {
			break
		}
		next, err := f(p)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		results = append(results, *next)
	}
	return results, nil
}

// encloseMultiple parses `open [elem (sep elem)* [sep]] close`. The
// returned span covers the delimiters. Not finding open is a no-match;
// anything after open is committed, so a missing close is a hard error.
func encloseMultiple[T any](p *parser, open, sep, close token.Punct, f parseFn[T]) ([]T, source.Span, bool, error) {
	span1, ok := p.eatPunct(open)
	if !ok {
		return nil, source.Span{}, false, nil
	}
	elems, err := vecSeparated(p, sep, f)
	if err != nil {
		return nil, source.Span{}, false, err
	}
	span2, err := p.expectPunct(close)
	if err != nil {
		return nil, source.Span{}, false, err
	}
	return elems, span1.Merge(span2), true, nil
}

// encloseMultipleExpect is encloseMultiple with a mandatory open
// delimiter.
func encloseMultipleExpect[T any](p *parser, open, sep, close token.Punct, f parseFn[T]) ([]T, source.Span, error) {
	elems, span, ok, err := encloseMultiple(p, open, sep, close, f)
	if err != nil {
		return nil, source.Span{}, err
	}
	if !ok {
		want := token.Token{Kind: token.Punctuation, Punct: open}
		return nil, source.Span{}, errExpectedToken(want, p.cur.peek(), p.in)
	}
	return elems, span, nil
}
