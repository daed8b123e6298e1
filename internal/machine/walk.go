package machine

import "github.com/aretw0/tmsim/pkg/tape"

// Signal tells the driving loop what to do after a local state step.
type Signal uint8

const (
	// Continue keeps the current local state active at the new cursor.
	Continue Signal = iota
	// Advance finishes the local state; the next state resumes at the cursor.
	Advance
)

// Move is the outcome of one local state step.
type Move struct {
	Cursor int
	Signal Signal
}

func stay(at int) Move    { return Move{Cursor: at, Signal: Continue} }
func advance(at int) Move { return Move{Cursor: at, Signal: Advance} }

// State is a local machine state.
type State func(t *tape.Tape, at int) Move

// Walk runs s from at until it signals Advance and returns the signalled cursor.
// visit, when non-nil, is called with the cursor before every step.
func Walk(t *tape.Tape, at int, s State, visit func(at int)) int {
	for {
		if visit != nil {
			visit(at)
		}
		m := s(t, at)
		if m.Signal == Advance {
			return m.Cursor
		}
		at = m.Cursor
	}
}

// TakeOne decrements the numeral starting at the cursor by one.
// Zeros become ones while moving right; the first One becomes Zero and the state
// advances on that cell. Reaching a Blank advances on the Blank, which means the
// numeral was already zero (and is now all ones).
func TakeOne(t *tape.Tape, at int) Move {
	switch t.Read(at) {
	case tape.Zero:
		t.Write(at, tape.One)
		return stay(at + 1)
	case tape.One:
		t.Write(at, tape.Zero)
	}
	return advance(at)
}

// SkipField moves right to the end of the current field and advances on the
// first cell of the next one.
func SkipField(t *tape.Tape, at int) Move {
	if t.Read(at) == tape.Blank {
		return advance(at + 1)
	}
	return stay(at + 1)
}

// AddOne increments the numeral starting at the cursor. On completion it
// advances one cell left of the last cell it rewrote. A carry out of the top
// digit extends the numeral and writes a fresh terminating Blank.
func AddOne(t *tape.Tape, at int) Move {
	switch t.Read(at) {
	case tape.One:
		t.Write(at, tape.Zero)
		return stay(at + 1)
	case tape.Zero:
		t.Write(at, tape.One)
		return advance(at - 1)
	}
	t.Write(at, tape.One)
	t.Write(at+1, tape.Blank)
	return advance(at - 1)
}

// PrevField moves left to the Blank opening the current field and advances on
// the last digit of the previous field.
func PrevField(t *tape.Tape, at int) Move {
	if t.Read(at) == tape.Blank {
		return advance(at - 1)
	}
	return stay(at - 1)
}

// FieldStart moves left to the Blank opening the current field and advances on
// its first digit.
func FieldStart(t *tape.Tape, at int) Move {
	if t.Read(at) == tape.Blank {
		return advance(at + 1)
	}
	return stay(at - 1)
}

// CopyField copies the numeral at src[rs:] to dst[ws:], stopping at the first
// Blank of src and writing a terminating Blank to dst. Both returned cursors
// sit one cell left of where the scan stopped, i.e. on the last digit of each copy.
func CopyField(src, dst *tape.Tape, rs, ws int) (int, int) {
	for src.Read(rs) != tape.Blank {
		dst.Write(ws, src.Read(rs))
		rs++
		ws++
	}
	dst.Write(ws, tape.Blank)
	return rs - 1, ws - 1
}

// Rewind moves from a digit of field n back to the first digit of field 1.
func Rewind(t *tape.Tape, at, n int) int {
	for i := 1; i < n; i++ {
		at = Walk(t, at, PrevField, nil)
	}
	return Walk(t, at, FieldStart, nil)
}
