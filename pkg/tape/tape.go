package tape

import (
	"errors"
	"fmt"
)

// Symbol is a single tape cell value.
type Symbol byte

const (
	Zero  Symbol = '0'
	One   Symbol = '1'
	Blank Symbol = 'B'
)

// ErrUnwrittenCell is the panic value raised when a machine reads past the end of a tape.
var ErrUnwrittenCell = errors.New("read of unwritten tape cell")

// ErrInvalidSymbol is returned by Parse for runes outside the alphabet.
var ErrInvalidSymbol = errors.New("invalid tape symbol")

// Valid reports whether s belongs to the tape alphabet.
func (s Symbol) Valid() bool {
	return s == Zero || s == One || s == Blank
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Tape is a growable symbol buffer. The zero value is an empty tape.
type Tape struct {
	cells []Symbol
}

// New creates a tape holding the given cells.
func New(cells ...Symbol) *Tape {
	t := &Tape{cells: make([]Symbol, len(cells))}
	copy(t.cells, cells)
	return t
}

// Parse builds a tape from its textual form, e.g. "B11B0B".
func Parse(s string) (*Tape, error) {
	t := &Tape{cells: make([]Symbol, 0, len(s))}
	for i, r := range s {
		sym := Symbol(r)
		if r > 0x7f || !sym.Valid() {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, r, i)
		}
		t.cells = append(t.cells, sym)
	}
	return t, nil
}

// Len returns the number of cells written so far.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Read returns the symbol at idx. It panics if idx was never written.
func (t *Tape) Read(idx int) Symbol {
	if idx < 0 || idx >= len(t.cells) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrUnwrittenCell, idx, len(t.cells)))
	}
	return t.cells[idx]
}

// Write stores sym at idx, extending the tape with Blank cells when idx is past the end.
func (t *Tape) Write(idx int, sym Symbol) {
	if idx < 0 {
		panic(fmt.Sprintf("tape: negative write index %d", idx))
	}
	for len(t.cells) <= idx {
		t.cells = append(t.cells, Blank)
	}
	t.cells[idx] = sym
}

// Append writes the given symbols after the last cell.
func (t *Tape) Append(syms ...Symbol) {
	t.cells = append(t.cells, syms...)
}

// TrimPrefix drops the first n cells, shifting the rest left.
func (t *Tape) TrimPrefix(n int) {
	if n <= 0 {
		return
	}
	if n > len(t.cells) {
		n = len(t.cells)
	}
	t.cells = append(t.cells[:0], t.cells[n:]...)
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() *Tape {
	return New(t.cells...)
}

func (t *Tape) String() string {
	b := make([]byte, len(t.cells))
	for i, c := range t.cells {
		b[i] = byte(c)
	}
	return string(b)
}
