package parser

import (
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// cursor is a read position over an immutable token slice. It is a value
// type: speculative parses copy it, and roll back by assigning the copy
// back. The final EOF token is a permanent sentinel that next never
// advances past, so peek is always safe.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) cursor {
	return cursor{tokens: tokens}
}

func (c *cursor) peek() token.Token {
	return c.tokens[c.pos]
}

func (c *cursor) next() token.Token {
	t := c.tokens[c.pos]
	if t.Kind != token.EOF {
		c.pos++
	}
	return t
}

// remaining is used by the expression parser's progress check.
func (c *cursor) remaining() int {
	return len(c.tokens) - c.pos
}

// eat consumes the next token iff it matches, returning its span.
func (c *cursor) eat(want token.Token) (source.Span, bool) {
	if c.peek().Is(want) {
		return c.next().Span, true
	}
	return source.Span{}, false
}
