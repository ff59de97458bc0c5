package token

// Punct enumerates the single-character punctuation tokens.
type Punct int

const (
	Dot Punct = iota
	Comma
	Colon
	Semicolon
	Equals
	Ampersand
	Pipe
	QuestionMark
	Backslash
	At
	Underscore
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
)

var punctChars = map[Punct]byte{
	Dot:          '.',
	Comma:        ',',
	Colon:        ':',
	Semicolon:    ';',
	Equals:       '=',
	Ampersand:    '&',
	Pipe:         '|',
	QuestionMark: '?',
	Backslash:    '\\',
	At:           '@',
	Underscore:   '_',
	OpenParen:    '(',
	CloseParen:   ')',
	OpenBracket:  '[',
	CloseBracket: ']',
	OpenBrace:    '{',
	CloseBrace:   '}',
}

func (p Punct) String() string { return string(punctChars[p]) }

// PunctFromByte returns the punctuation for a byte, if it is one.
func PunctFromByte(b byte) (Punct, bool) {
	switch b {
	case '.':
		return Dot, true
	case ',':
		return Comma, true
	case ':':
		return Colon, true
	case ';':
		return Semicolon, true
	case '=':
		return Equals, true
	case '&':
		return Ampersand, true
	case '|':
		return Pipe, true
	case '?':
		return QuestionMark, true
	case '\\':
		return Backslash, true
	case '@':
		return At, true
	case '_':
		return Underscore, true
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	case '[':
		return OpenBracket, true
	case ']':
		return CloseBracket, true
	case '{':
		return OpenBrace, true
	case '}':
		return CloseBrace, true
	}
	return 0, false
}
