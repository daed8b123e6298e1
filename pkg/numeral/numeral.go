// Package numeral converts between machine integers and their tape representation.
//
// A non-negative integer is written least-significant bit first as a run of
// Zero/One symbols; 0 is a single Zero. Numerals on a tape are separated by Blank.
package numeral

import (
	"fmt"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/tape"
)

// MaxDigits is the number of low-order digits kept by Decode.
const MaxDigits = 32

// Encode returns the reversed binary digits of n.
func Encode(n uint32) []tape.Symbol {
	if n == 0 {
		return []tape.Symbol{tape.Zero}
	}
	var digits []tape.Symbol
	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			digits = append(digits, tape.One)
		} else {
			digits = append(digits, tape.Zero)
		}
	}
	return digits
}

// Decode interprets a reversed binary digit run. Runs longer than MaxDigits are
// truncated to their low-order MaxDigits digits before decoding.
func Decode(digits []tape.Symbol) uint32 {
	if len(digits) > MaxDigits {
		digits = digits[:MaxDigits]
	}
	var n uint32
	for i, d := range digits {
		if d == tape.One {
			n |= 1 << uint(i)
		}
	}
	return n
}

// Digits returns the numeral that starts right after the Blank at boundary.
func Digits(t *tape.Tape, boundary int) []tape.Symbol {
	var digits []tape.Symbol
	for i := boundary + 1; i < t.Len(); i++ {
		sym := t.Read(i)
		if sym == tape.Blank {
			break
		}
		digits = append(digits, sym)
	}
	return digits
}

// Read decodes the numeral that starts right after the Blank at boundary.
func Read(t *tape.Tape, boundary int) uint32 {
	return Decode(Digits(t, boundary))
}

// OperandTape builds the two field layout: B a B b B.
func OperandTape(a, b uint32) *tape.Tape {
	t := tape.New(tape.Blank)
	t.Append(Encode(a)...)
	t.Append(tape.Blank)
	t.Append(Encode(b)...)
	t.Append(tape.Blank)
	return t
}

// WorkTape builds the multiplication layout: B a B b B 0 B.
// The trailing numeral accumulates the product.
func WorkTape(a, b uint32) *tape.Tape {
	t := OperandTape(a, b)
	t.Append(tape.Zero, tape.Blank)
	return t
}

// ExponentTape builds the exponentiation layout: B a B b B 1 B.
// The trailing numeral holds the running power, starting at a^0.
func ExponentTape(a, b uint32) *tape.Tape {
	t := OperandTape(a, b)
	t.Append(tape.One, tape.Blank)
	return t
}

// LayoutFor returns the initial tape of op.
func LayoutFor(op domain.Operation, a, b uint32) (*tape.Tape, error) {
	switch op {
	case domain.OpAdd:
		return OperandTape(a, b), nil
	case domain.OpMultiply:
		return WorkTape(a, b), nil
	case domain.OpExponent:
		return ExponentTape(a, b), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
}

// CheckLayout verifies that t is a leading Blank followed by exactly fields
// non-empty numerals, each terminated by a Blank. Trailing Blanks are allowed.
func CheckLayout(t *tape.Tape, fields int) error {
	if t.Len() == 0 || t.Read(0) != tape.Blank {
		return fmt.Errorf("%w: tape must start with a blank", domain.ErrMalformedTape)
	}
	seen, run := 0, 0
	for i := 1; i < t.Len(); i++ {
		switch sym := t.Read(i); sym {
		case tape.Zero, tape.One:
			if seen == fields {
				return fmt.Errorf("%w: unexpected digit at %d after %d fields", domain.ErrMalformedTape, i, fields)
			}
			run++
		case tape.Blank:
			if run > 0 {
				seen++
				run = 0
			} else if seen < fields {
				return fmt.Errorf("%w: empty field at %d", domain.ErrMalformedTape, i)
			}
		default:
			return fmt.Errorf("%w: symbol %q at %d", domain.ErrMalformedTape, sym, i)
		}
	}
	if run > 0 {
		return fmt.Errorf("%w: field %d is not blank-terminated", domain.ErrMalformedTape, seen+1)
	}
	if seen != fields {
		return fmt.Errorf("%w: want %d fields, got %d", domain.ErrMalformedTape, fields, seen)
	}
	return nil
}

// Fields splits a well formed tape into its numerals.
func Fields(t *tape.Tape) [][]tape.Symbol {
	var out [][]tape.Symbol
	for i := 0; i < t.Len(); i++ {
		if t.Read(i) != tape.Blank {
			continue
		}
		if d := Digits(t, i); len(d) > 0 {
			out = append(out, d)
			i += len(d)
		}
	}
	return out
}
