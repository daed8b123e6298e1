package domain

import (
	"fmt"
	"math"
	"math/bits"
)

// Limit bounds the simulations an engine accepts. The machines count in
// unit steps, so their running time grows with the operands and the result.
// Zero fields are unbounded.
type Limit struct {
	// MaxValue bounds every input numeral and the exact, unwrapped result.
	MaxValue uint64 `json:"max_value"`

	// MaxCells bounds the length of a caller supplied tape.
	MaxCells int `json:"max_cells"`
}

// Check verifies a run of op on x and y starting from accumulator acc
// (ignored by add; 0 for a fresh mult tape, 1 for a fresh exp tape).
func (l Limit) Check(op Operation, acc, x, y uint32) error {
	if l.MaxValue == 0 {
		return nil
	}
	exact := op.Exact(uint64(acc), uint64(x), uint64(y))
	for _, v := range []uint64{uint64(acc), uint64(x), uint64(y), exact} {
		if v > l.MaxValue {
			return fmt.Errorf("%w: %s on %d and %d reaches %d, above %d",
				ErrLimitExceeded, op, x, y, exact, l.MaxValue)
		}
	}
	return nil
}

// CheckCells verifies the length of a caller supplied tape.
func (l Limit) CheckCells(n int) error {
	if l.MaxCells > 0 && n > l.MaxCells {
		return fmt.Errorf("%w: tape of %d cells, above %d", ErrLimitExceeded, n, l.MaxCells)
	}
	return nil
}

// Exact computes the value a tape computes without wrap-around, saturating at
// math.MaxUint64: x+y for add, acc+x*y for mult, acc*x^y for exp.
func (o Operation) Exact(acc, x, y uint64) uint64 {
	switch o {
	case OpAdd:
		return addSat(x, y)
	case OpMultiply:
		return addSat(acc, mulSat(x, y))
	case OpExponent:
		r := uint64(1)
		for ; y > 0 && r != 0 && r != math.MaxUint64; y-- {
			r = mulSat(r, x)
			if x == 1 {
				break
			}
		}
		return mulSat(acc, r)
	}
	return 0
}

func addSat(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}

func mulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
