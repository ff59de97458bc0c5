package token

import (
	"fmt"
	"strconv"
)

// NumberClass discriminates the number-literal payload.
type NumberClass int

const (
	// Int is a signed integer literal (no sign or a leading `-`).
	Int NumberClass = iota
	// UInt is an unsigned integer literal (a leading `+` forces this; the
	// sign is evidence about intended signedness, not numeric sign).
	UInt
	// Float is a floating-point literal.
	Float
)

// NumberLiteral is the tagged 64-bit payload of a number token.
type NumberLiteral struct {
	Class NumberClass
	I     int64
	U     uint64
	F     float64
}

// IntLit makes a signed integer literal.
func IntLit(v int64) NumberLiteral { return NumberLiteral{Class: Int, I: v} }

// UIntLit makes an unsigned integer literal.
func UIntLit(v uint64) NumberLiteral { return NumberLiteral{Class: UInt, U: v} }

// FloatLit makes a floating-point literal.
func FloatLit(v float64) NumberLiteral { return NumberLiteral{Class: Float, F: v} }

func (n NumberLiteral) String() string {
	switch n.Class {
	case Int:
		return fmt.Sprintf("Int(%d)", n.I)
	case UInt:
		return fmt.Sprintf("UInt(%d)", n.U)
	case Float:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(n.F, 'g', -1, 64))
	}
	return "Number(?)"
}
