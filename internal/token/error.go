package token

import "fmt"

// ErrCode classifies lexical errors. They are carried in the token stream
// as ordinary tokens so one pass can report every error.
type ErrCode int

const (
	// Unexpected marks a character no token class accepts.
	Unexpected ErrCode = iota
	// NoWs marks two adjacent word-class tokens with no whitespace between
	// them, merged into a single error token.
	NoWs
	// Ws marks a stray whitespace run; never emitted into the stream, but
	// part of the error taxonomy for tooling.
	Ws
	// InvalidNum marks a number-shaped run that is not a valid literal.
	InvalidNum
	// NumberOverflow marks a literal that does not fit its 64-bit payload.
	NumberOverflow
	// InvalidCharInNum marks an out-of-radix digit inside a literal.
	InvalidCharInNum
)

// Err is the payload of a lex-error token.
type Err struct {
	Code ErrCode
	Ch   rune // only for InvalidCharInNum
}

// String returns the compact debug form used in token dumps.
func (e Err) String() string {
	switch e.Code {
	case Unexpected:
		return "Unexpected"
	case NoWs:
		return "NoWs"
	case Ws:
		return "Ws"
	case InvalidNum:
		return "InvalidNum"
	case NumberOverflow:
		return "NumberOverflow"
	case InvalidCharInNum:
		return fmt.Sprintf("InvalidCharInNum(%q)", e.Ch)
	}
	return fmt.Sprintf("Err(%d)", int(e.Code))
}

// Message returns the human-readable diagnostic text.
func (e Err) Message() string {
	switch e.Code {
	case Unexpected:
		return "unexpected token"
	case NoWs:
		return "missing whitespace"
	case Ws:
		return "unexpected whitespace"
	case InvalidNum:
		return "invalid number token"
	case NumberOverflow:
		return "number too large"
	case InvalidCharInNum:
		return fmt.Sprintf("invalid char %q in number literal", e.Ch)
	}
	return "lex error"
}
