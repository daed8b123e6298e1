package machine_test

import (
	"testing"

	"github.com/aretw0/tmsim/internal/machine"
	"github.com/aretw0/tmsim/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *tape.Tape {
	t.Helper()
	tp, err := tape.Parse(s)
	require.NoError(t, err)
	return tp
}

func TestTakeOne(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantStop int
	}{
		{"low one", "B11B", "B01B", 1},
		{"borrow", "B001B", "B110B", 3},
		{"zero underflows", "B0B", "B1B", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := mustParse(t, tt.in)
			stop := machine.Walk(tp, 1, machine.TakeOne, nil)
			assert.Equal(t, tt.wantStop, stop)
			assert.Equal(t, tt.want, tp.String())
		})
	}
}

func TestAddOne(t *testing.T) {
	tp := mustParse(t, "B0B")
	assert.Equal(t, 0, machine.Walk(tp, 1, machine.AddOne, nil))
	assert.Equal(t, "B1B", tp.String())

	tp = mustParse(t, "B11B")
	// Carry out of the top digit extends the numeral and its terminating Blank.
	assert.Equal(t, 2, machine.Walk(tp, 1, machine.AddOne, nil))
	assert.Equal(t, "B001B", tp.String())
}

func TestFieldMoves(t *testing.T) {
	tp := mustParse(t, "B10B011B0B")

	assert.Equal(t, 4, machine.Walk(tp, 1, machine.SkipField, nil))
	assert.Equal(t, 2, machine.Walk(tp, 6, machine.PrevField, nil))
	assert.Equal(t, 4, machine.Walk(tp, 6, machine.FieldStart, nil))
	assert.Equal(t, 1, machine.Rewind(tp, 8, 3))
	assert.Equal(t, 1, machine.Rewind(tp, 5, 2))
}

func TestWalk_Visits(t *testing.T) {
	tp := mustParse(t, "B101B")
	var seen []int
	machine.Walk(tp, 1, machine.SkipField, func(at int) { seen = append(seen, at) })
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
}

func TestCopyField(t *testing.T) {
	src := mustParse(t, "B011B1B")
	dst := mustParse(t, "B1111111")

	rs, ws := machine.CopyField(src, dst, 1, 2)
	assert.Equal(t, 3, rs, "source cursor on the last copied digit")
	assert.Equal(t, 4, ws, "destination cursor on the last written digit")
	assert.Equal(t, "B1011B11", dst.String())

	// Copying past the end of the destination grows it.
	small := tape.New(tape.Blank)
	_, ws = machine.CopyField(src, small, 5, 1)
	assert.Equal(t, 1, ws)
	assert.Equal(t, "B1B", small.String())
}
