package domain

import (
	"fmt"
	"strings"
)

// Operation names one of the arithmetic machines.
type Operation string

const (
	OpAdd      Operation = "add"
	OpMultiply Operation = "mult"
	OpExponent Operation = "exp"
)

// Operations lists every supported operation in composition order.
var Operations = []Operation{OpAdd, OpMultiply, OpExponent}

// ParseOperation accepts the canonical names plus the legacy "-add" style flags.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimLeft(strings.TrimSpace(s), "-")) {
	case "add", "+":
		return OpAdd, nil
	case "mult", "mul", "multiply", "x", "*":
		return OpMultiply, nil
	case "exp", "pow", "exponent", "^":
		return OpExponent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Symbol is the infix operator used in trace titles.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMultiply:
		return "x"
	case OpExponent:
		return "^"
	}
	return "?"
}

// Fields is the number of Blank-delimited numerals on the operation's main tape.
func (o Operation) Fields() int {
	if o == OpAdd {
		return 2
	}
	return 3
}

// Apply computes the reference value with uint32 wrap-around,
// which matches the 32 digit truncation of the numeral codec.
func (o Operation) Apply(x, y uint32) uint32 {
	switch o {
	case OpAdd:
		return x + y
	case OpMultiply:
		return x * y
	case OpExponent:
		r := uint32(1)
		for ; y > 0; y >>= 1 {
			if y&1 == 1 {
				r *= x
			}
			x *= x
		}
		return r
	}
	return 0
}
