package numeral_test

import (
	"math"
	"testing"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/numeral"
	"github.com/aretw0/tmsim/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		n    uint32
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "01"},
		{6, "011"},
		{8, "0001"},
	}
	for _, tt := range tests {
		got := tape.New(numeral.Encode(tt.n)...).String()
		assert.Equal(t, tt.want, got, "Encode(%d)", tt.n)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 2, 3, 7, 8, 255, 1 << 20, math.MaxUint32 - 1, math.MaxUint32} {
		assert.Equal(t, n, numeral.Decode(numeral.Encode(n)), "round trip of %d", n)
	}
	for n := uint32(0); n < 1024; n++ {
		require.Equal(t, n, numeral.Decode(numeral.Encode(n)))
	}
}

func TestDecode_TruncatesToLowOrderDigits(t *testing.T) {
	// 2^32 + 5 written with 33 digits decodes to 5.
	digits := numeral.Encode(5)
	for len(digits) < 32 {
		digits = append(digits, tape.Zero)
	}
	digits = append(digits, tape.One)
	assert.Equal(t, uint32(5), numeral.Decode(digits))
	assert.Equal(t, uint32(0), numeral.Decode(nil))
}

func TestLayouts(t *testing.T) {
	assert.Equal(t, "B11B101B", numeral.OperandTape(3, 5).String())
	assert.Equal(t, "B001B011B0B", numeral.WorkTape(4, 6).String())
	assert.Equal(t, "B01B101B1B", numeral.ExponentTape(2, 5).String())
	assert.Equal(t, "B0B0B", numeral.OperandTape(0, 0).String())
}

func TestRead(t *testing.T) {
	tp := numeral.WorkTape(4, 6)
	assert.Equal(t, uint32(4), numeral.Read(tp, 0))
	assert.Equal(t, uint32(6), numeral.Read(tp, 4))
	assert.Equal(t, uint32(0), numeral.Read(tp, 8))
}

func TestCheckLayout(t *testing.T) {
	valid := map[string]int{
		"B11B101B":    2,
		"B0B0B":       2,
		"B001B011B0B": 3,
		"B1B1B1BBB":   3,
	}
	for s, fields := range valid {
		tp, err := tape.Parse(s)
		require.NoError(t, err)
		assert.NoError(t, numeral.CheckLayout(tp, fields), s)
	}

	invalid := map[string]int{
		"":          2,
		"11B1B":     2,
		"BB1B":      2,
		"B1B1":      2,
		"B1B1B1B":   2,
		"B1B":       2,
		"B1B1BB1B":  2,
		"B01B10BB0B": 3,
	}
	for s, fields := range invalid {
		tp, err := tape.Parse(s)
		require.NoError(t, err)
		assert.ErrorIs(t, numeral.CheckLayout(tp, fields), domain.ErrMalformedTape, s)
	}
}

func TestFields(t *testing.T) {
	fields := numeral.Fields(numeral.ExponentTape(2, 5))
	require.Len(t, fields, 3)
	assert.Equal(t, uint32(2), numeral.Decode(fields[0]))
	assert.Equal(t, uint32(5), numeral.Decode(fields[1]))
	assert.Equal(t, uint32(1), numeral.Decode(fields[2]))
}
