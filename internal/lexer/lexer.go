// Package lexer implements the Quill tokenizer.
//
// The scanner is a maximal-munch byte scanner over a shared alphabet:
// identifiers, type names, operator symbols and malformed numbers all come
// out of one "word" class, so two word-class tokens may never touch without
// whitespace between them. Lex errors are carried in the token stream as
// ordinary tokens; the stream is always terminated by exactly one EOF.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/quill-lang/quill/internal/intern"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/token"
)

// Program is the result of tokenizing one source text.
type Program struct {
	src      string
	tokens   []token.Token
	interner *intern.Interner
}

// SpannedErr is a lex error together with the span it covers.
type SpannedErr struct {
	Err  token.Err
	Span source.Span
}

// Lex tokenizes the entire source text. It never fails; errors are embedded
// in the token stream.
func Lex(src string) *Program {
	l := &scanner{src: src, interner: intern.New()}
	l.run()
	return &Program{src: src, tokens: l.tokens, interner: l.interner}
}

// Tokens returns the token stream, terminated by EOF.
func (p *Program) Tokens() []token.Token { return p.tokens }

// Source returns the text the tokens were produced from.
func (p *Program) Source() string { return p.src }

// Interner returns the interner owning all symbols in the stream.
func (p *Program) Interner() *intern.Interner { return p.interner }

// Errors collects every lex-error token in the stream. A stream with any
// errors must not be handed to the parser.
func (p *Program) Errors() []SpannedErr {
	var errs []SpannedErr
	for _, t := range p.tokens {
		if e, ok := t.LexErr(); ok {
			errs = append(errs, SpannedErr{Err: e, Span: t.Span})
		}
	}
	return errs
}

// Dump renders the token stream on one line, reproducible from the tokens
// and source text alone.
func (p *Program) Dump() string {
	var b strings.Builder
	b.WriteString("[")
	for i, t := range p.tokens {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.Render(p.src))
	}
	b.WriteString("]")
	return b.String()
}

// DumpLines renders the token stream one token per line.
func (p *Program) DumpLines() string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, t := range p.tokens {
		b.WriteString("    ")
		b.WriteString(t.Render(p.src))
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

type scanner struct {
	src      string
	pos      int
	tokens   []token.Token
	interner *intern.Interner
	wasWord  bool
}

func (l *scanner) run() {
	for l.pos < len(l.src) {
		if l.skipSpaceAndComments() {
			l.wasWord = false
			continue
		}
		l.scanToken()
	}
	end := uint32(len(l.src))
	l.tokens = append(l.tokens, token.Token{Kind: token.EOF, Span: source.At(end)})
}

// skipSpaceAndComments consumes a run of whitespace and `#` line comments.
func (l *scanner) skipSpaceAndComments() bool {
	start := l.pos
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\f':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return l.pos > start
		}
	}
	return l.pos > start
}

func (l *scanner) scanToken() {
	start := l.pos

	if l.src[start] == '"' {
		if n := l.stringLen(start); n > 0 {
			l.pos = start + n
			l.emitText(token.StringLit, start)
			return
		}
		// Unterminated string: the quote itself is unexpected.
		l.pos = start + 1
		l.emitErr(token.Err{Code: token.Unexpected}, start)
		return
	}

	nl := numberLen(l.src, start)
	wl := wordLen(l.src, start)
	p, isPunct := token.PunctFromByte(l.src[start])

	switch {
	case nl == 0 && wl == 0:
		if isPunct {
			l.pos = start + 1
			l.emit(token.Token{Kind: token.Punctuation, Punct: p}, start)
			return
		}
		_, size := utf8.DecodeRuneInString(l.src[start:])
		l.pos = start + size
		l.emitErr(token.Err{Code: token.Unexpected}, start)
	case nl <= 1 && wl <= 1 && isPunct:
		// Punctuation wins length-1 ties (`=`, `_`, `?`).
		l.pos = start + 1
		l.emit(token.Token{Kind: token.Punctuation, Punct: p}, start)
	case nl >= wl:
		// Numeric patterns take priority over words at equal length.
		l.pos = start + nl
		l.emitNumber(start)
	default:
		l.pos = start + wl
		l.emitWord(start)
	}
}

// stringLen measures a double-quoted literal with backslash escapes,
// including both quotes. Returns 0 if the literal is unterminated.
func (l *scanner) stringLen(start int) int {
	i := start + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1 - start
		default:
			i++
		}
	}
	return 0
}

// emitWord classifies a word run by its first character.
func (l *scanner) emitWord(start int) {
	text := l.src[start:l.pos]
	first := text[0]
	switch {
	case first >= 'a' && first <= 'z':
		if kw, ok := token.LookupKeyword(text); ok {
			l.emit(token.Token{Kind: token.Keyword, Keyword: kw}, start)
		} else {
			l.emitText(token.Ident, start)
		}
	case first >= 'A' && first <= 'Z':
		l.emitText(token.UpperIdent, start)
	case strings.ContainsFunc(text, func(r rune) bool { return r >= '0' && r <= '9' }):
		l.emitErr(token.Err{Code: token.InvalidNum}, start)
	default:
		l.emitText(token.Operator, start)
	}
}

func (l *scanner) emitNumber(start int) {
	lit, lexErr := parseNumber(l.src[start:l.pos])
	if lexErr != nil {
		l.emitErr(*lexErr, start)
		return
	}
	l.emit(token.Token{Kind: token.NumberLit, Number: lit}, start)
}

func (l *scanner) emitText(kind token.Kind, start int) {
	sym := l.interner.Intern(l.src[start:l.pos])
	l.emit(token.Token{Kind: kind, Sym: sym}, start)
}

func (l *scanner) emitErr(e token.Err, start int) {
	l.emit(token.Token{Kind: token.LexError, Err: e}, start)
}

// emit appends the token, merging adjacent word-class tokens into a single
// NoWs error so the `x-y` ambiguity becomes a hard, localized error.
func (l *scanner) emit(t token.Token, start int) {
	t.Span = source.NewSpan(uint32(start), uint32(l.pos))
	if l.wasWord && t.IsWordClass() {
		prev := l.tokens[len(l.tokens)-1]
		l.tokens[len(l.tokens)-1] = token.Token{
			Kind: token.LexError,
			Err:  token.Err{Code: token.NoWs},
			Span: prev.Span.ExtendUntil(t.Span.End),
		}
		return
	}
	l.wasWord = t.IsWordClass()
	l.tokens = append(l.tokens, t)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordStart(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	}
	return strings.IndexByte("+-*/%~<>=!?", b) >= 0
}

func isWordCont(b byte) bool { return isWordStart(b) || isDigit(b) }

// wordLen measures a maximal word run at start, or 0.
func wordLen(src string, start int) int {
	if !isWordStart(src[start]) {
		return 0
	}
	i := start + 1
	for i < len(src) && isWordCont(src[i]) {
		i++
	}
	return i - start
}

// numCont1 is the continuation alphabet of the integer part; unlike the word
// alphabet it excludes `?`. The fraction part allows it again.
func numCont1(b byte) bool {
	return isDigit(b) || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		strings.IndexByte("+-*/%~<>=!", b) >= 0
}

func numCont2(b byte) bool { return numCont1(b) || b == '?' }

// numberLen measures a maximal number-shaped run at start, or 0. The run
// deliberately swallows trailing junk (`0xF_G` is one invalid token).
func numberLen(src string, start int) int {
	i := start
	if src[i] == '.' {
		if i+1 >= len(src) || !isDigit(src[i+1]) {
			return 0
		}
		i += 2
		for i < len(src) && numCont2(src[i]) {
			i++
		}
		return i - start
	}
	if src[i] == '+' || src[i] == '-' {
		i++
	}
	if i >= len(src) || !isDigit(src[i]) {
		return 0
	}
	i++
	for i < len(src) && numCont1(src[i]) {
		i++
	}
	if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
		i += 2
		for i < len(src) && numCont2(src[i]) {
			i++
		}
	}
	return i - start
}
