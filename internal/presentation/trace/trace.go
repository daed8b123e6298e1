// Package trace renders simulation results as human readable step traces.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tmsim/pkg/domain"
)

// Title returns the heading line of a trace. Composed machines hide the steps
// of their subroutine, so their traces are marked as abbreviated.
func Title(op domain.Operation, x, y uint32) string {
	switch op {
	case domain.OpAdd:
		return fmt.Sprintf("Trace for %d + %d", x, y)
	case domain.OpMultiply:
		return fmt.Sprintf("Abbreviated Trace for %d x %d", x, y)
	case domain.OpExponent:
		return fmt.Sprintf("Abbreviated Trace for %d ^ %d (x to the yth power)", x, y)
	}
	return fmt.Sprintf("Trace for %d %s %d", x, op, y)
}

// TapeTitle returns the heading line of a trace that started from a caller
// supplied tape.
func TapeTitle(op domain.Operation, input string) string {
	if op == domain.OpAdd {
		return fmt.Sprintf("Trace for %s on tape %s", op, input)
	}
	return fmt.Sprintf("Abbreviated Trace for %s on tape %s", op, input)
}

// Footer returns the closing line carrying the decoded value.
func Footer(value uint32) string {
	return fmt.Sprintf("\n\nInterpreted result of this computation: %d", value)
}

// Render writes the full trace of res to w.
// res.Steps must have been collected (see runtime.WithTrace); without steps
// only the title and footer are written.
func Render(w io.Writer, res *domain.Result) error {
	_, err := io.WriteString(w, String(res))
	return err
}

// String returns the full trace of res.
func String(res *domain.Result) string {
	var b strings.Builder
	if res.Input != "" {
		b.WriteString(TapeTitle(res.Operation, res.Input))
	} else {
		b.WriteString(Title(res.Operation, res.X, res.Y))
	}
	b.WriteString("\n\n")
	for i, s := range res.Steps {
		writeStep(&b, s, i == 0)
	}
	b.WriteString(Footer(res.Value))
	return b.String()
}

func writeStep(b *strings.Builder, s domain.Step, first bool) {
	if len(s.Heads) == 1 {
		writeSingle(b, s, first)
		return
	}

	fmt.Fprintf(b, "State: %s\n", s.State)
	for _, h := range s.Heads {
		fmt.Fprintf(b, "Current %s Index: %d\n", label(h.Tape), h.Cursor)
	}
	prefix := "Current"
	if first && s.State == "Start" {
		prefix = "Initial"
	}
	for _, h := range s.Heads {
		fmt.Fprintf(b, "%s %s Tape: %s\n", prefix, label(h.Tape), h.Cells)
	}
	b.WriteString("\n")
}

// writeSingle prints the tape ahead of the state it is about to be read by.
func writeSingle(b *strings.Builder, s domain.Step, first bool) {
	h := s.Heads[0]
	if first && s.State == "Start" {
		fmt.Fprintf(b, "State: Start\nCurrent index: %d\n", h.Cursor)
		return
	}
	fmt.Fprintf(b, "%s\n\nState: %s\nCurrent index: %d\n", h.Cells, s.State, h.Cursor)
	if s.State == "Halt" {
		b.WriteString(h.Cells)
	}
}

func label(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// FileName returns the conventional trace file name, e.g. "mult_4_6".
func FileName(res *domain.Result) string {
	return res.ID()
}
