package lexer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/quill-lang/quill/internal/token"
)

// parseNumber parses a number-shaped run into a literal, dispatching on the
// radix prefix of the unsigned body. Sign semantics: no sign or `-` yields a
// signed Int, `+` forces an unsigned UInt.
func parseNumber(input string) (token.NumberLiteral, *token.Err) {
	if strings.HasPrefix(input, ".") {
		return leadingDot(input)
	}
	body := strings.TrimPrefix(strings.TrimPrefix(input, "+"), "-")
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			return intWithRadix(input, 2, 16)
		case 'b', 'B':
			return intWithRadix(input, 2, 2)
		case 'o', 'O':
			return intWithRadix(input, 2, 8)
		}
	}
	if strings.ContainsAny(body, ".eE") {
		return floatLit(input)
	}
	return intWithRadix(input, 0, 10)
}

func errOf(code token.ErrCode) *token.Err { return &token.Err{Code: code} }

// digitVal converts a digit character within the radix.
func digitVal(r rune, radix int64) (int64, bool) {
	var d int64
	switch {
	case r >= '0' && r <= '9':
		d = int64(r - '0')
	case r >= 'a' && r <= 'z':
		d = int64(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		d = int64(r-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

// parseIntDigits runs the checked 64-bit accumulator over the digits,
// skipping underscores. Negative accumulation subtracts so that i64 min is
// representable. Overflow is a hard error, never a wraparound.
func parseIntDigits(negative bool, text string, radix int64) (int64, *token.Err) {
	var num int64
	for _, r := range text {
		if r == '_' {
			continue
		}
		d, ok := digitVal(r, radix)
		if !ok {
			return 0, &token.Err{Code: token.InvalidCharInNum, Ch: r}
		}
		prod := num * radix
		if num != 0 && prod/num != radix {
			return 0, errOf(token.NumberOverflow)
		}
		if negative {
			next := prod - d
			if next > prod {
				return 0, errOf(token.NumberOverflow)
			}
			num = next
		} else {
			next := prod + d
			if next < prod {
				return 0, errOf(token.NumberOverflow)
			}
			num = next
		}
	}
	return num, nil
}

// parseUintDigits is the unsigned accumulator used for `+`-signed literals.
func parseUintDigits(text string, radix int64) (uint64, *token.Err) {
	var num uint64
	ur := uint64(radix)
	for _, r := range text {
		if r == '_' {
			continue
		}
		d, ok := digitVal(r, radix)
		if !ok {
			return 0, &token.Err{Code: token.InvalidCharInNum, Ch: r}
		}
		prod := num * ur
		if num != 0 && prod/num != ur {
			return 0, errOf(token.NumberOverflow)
		}
		next := prod + uint64(d)
		if next < prod {
			return 0, errOf(token.NumberOverflow)
		}
		num = next
	}
	return num, nil
}

// intWithRadix parses a (possibly signed) integer whose digits start after
// the sign plus radixWidth prefix bytes. Leading underscores after the
// prefix are stripped; an empty digit body is invalid.
func intWithRadix(input string, radixWidth int, radix int64) (token.NumberLiteral, *token.Err) {
	switch {
	case strings.HasPrefix(input, "-"):
		text := strings.TrimLeft(input[radixWidth+1:], "_")
		if text == "" {
			return token.NumberLiteral{}, errOf(token.InvalidNum)
		}
		n, err := parseIntDigits(true, text, radix)
		if err != nil {
			return token.NumberLiteral{}, err
		}
		return token.IntLit(n), nil
	case strings.HasPrefix(input, "+"):
		text := strings.TrimLeft(input[radixWidth+1:], "_")
		if text == "" {
			return token.NumberLiteral{}, errOf(token.InvalidNum)
		}
		n, err := parseUintDigits(text, radix)
		if err != nil {
			return token.NumberLiteral{}, err
		}
		return token.UIntLit(n), nil
	default:
		text := strings.TrimLeft(input[radixWidth:], "_")
		if text == "" {
			return token.NumberLiteral{}, errOf(token.InvalidNum)
		}
		n, err := parseIntDigits(false, text, radix)
		if err != nil {
			return token.NumberLiteral{}, err
		}
		return token.IntLit(n), nil
	}
}

// parseExp parses a decimal exponent with checked 32-bit bounds.
func parseExp(text string) (int, *token.Err) {
	negative := false
	switch {
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	}
	n, err := parseIntDigits(negative, text, 10)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errOf(token.NumberOverflow)
	}
	return int(n), nil
}

func stripUnderscores(text string) string {
	if !strings.Contains(text, "_") {
		return text
	}
	return strings.ReplaceAll(text, "_", "")
}

// hostParseFloat parses with the host float parser; an out-of-range result
// is overflow, any other failure an invalid literal.
func hostParseFloat(text string) (float64, *token.Err) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errOf(token.InvalidNum)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errOf(token.NumberOverflow)
	}
	return v, nil
}

// floatLit parses a float with an optional exponent split.
func floatLit(input string) (token.NumberLiteral, *token.Err) {
	input = strings.TrimRight(input, "_")
	if strings.HasSuffix(input, "e") || strings.HasSuffix(input, "E") ||
		strings.HasSuffix(input, ".") {
		return token.NumberLiteral{}, errOf(token.InvalidNum)
	}
	var v float64
	if i := strings.IndexAny(input, "eE"); i >= 0 {
		exp, err := parseExp(input[i+1:])
		if err != nil {
			return token.NumberLiteral{}, err
		}
		mantissa := stripUnderscores(input[:i])
		v, err = hostParseFloat(mantissa + "e" + strconv.Itoa(exp))
		if err != nil {
			return token.NumberLiteral{}, err
		}
	} else {
		var err *token.Err
		v, err = hostParseFloat(stripUnderscores(input))
		if err != nil {
			return token.NumberLiteral{}, err
		}
	}
	return token.FloatLit(v), nil
}

// leadingDot parses the `.5`-shaped literals, which cannot carry a radix
// prefix or a sign.
func leadingDot(input string) (token.NumberLiteral, *token.Err) {
	var v float64
	if i := strings.IndexAny(input, "eE"); i >= 0 {
		exp, err := parseExp(input[i+1:])
		if err != nil {
			return token.NumberLiteral{}, err
		}
		v, err = hostParseFloat(stripUnderscores(input[:i]))
		if err != nil {
			return token.NumberLiteral{}, err
		}
		v *= math.Pow(10, float64(exp))
	} else {
		var err *token.Err
		v, err = hostParseFloat(stripUnderscores(input))
		if err != nil {
			return token.NumberLiteral{}, err
		}
	}
	// The exponent multiply can produce NaN (`0 * +Inf`), not just Inf.
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return token.NumberLiteral{}, errOf(token.NumberOverflow)
	}
	return token.FloatLit(v), nil
}
