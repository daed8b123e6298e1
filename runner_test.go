package tmsim_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Batch(t *testing.T) {
	in := strings.NewReader("# warm up\nadd 3 5\n\nmult 4 6\n-exp 2 5\n")
	var out bytes.Buffer

	err := tmsim.NewRunner(in, &out).Run(context.Background(), tmsim.New())
	require.NoError(t, err)
	assert.Equal(t, "3 + 5 = 8\n4 x 6 = 24\n2 ^ 5 = 32\n", out.String())
}

func TestRunner_ReportsBadLines(t *testing.T) {
	in := strings.NewReader("add 1 1\ndiv 4 2\nmult 2\nadd -1 3\n")
	var out bytes.Buffer

	err := tmsim.NewRunner(in, &out).Run(context.Background(), tmsim.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "line 4")

	assert.True(t, strings.HasPrefix(out.String(), "1 + 1 = 2\n"))
	assert.Equal(t, 3, strings.Count(out.String(), "error: "))
}

func TestRunner_Trace(t *testing.T) {
	var out bytes.Buffer
	r := tmsim.NewRunner(strings.NewReader("add 1 0\n"), &out)
	r.Trace = true

	require.NoError(t, r.Run(context.Background(), tmsim.New()))
	assert.True(t, strings.HasPrefix(out.String(), "Trace for 1 + 0"))
	assert.True(t, strings.HasSuffix(out.String(), "Interpreted result of this computation: 1\n1 + 0 = 1\n"))
}

func TestRunner_RequiresIO(t *testing.T) {
	assert.Error(t, (&tmsim.Runner{}).Run(context.Background(), tmsim.New()))
}

func TestParseCommand(t *testing.T) {
	op, x, y, err := tmsim.ParseCommand([]string{"-mult", "4", "6"})
	require.NoError(t, err)
	assert.Equal(t, domain.OpMultiply, op)
	assert.Equal(t, uint32(4), x)
	assert.Equal(t, uint32(6), y)

	_, _, _, err = tmsim.ParseCommand([]string{"add", "4294967296", "1"})
	assert.Error(t, err)
}
