package domain

import "fmt"

// RecordID names the record of a simulation, e.g. "add_3_5".
func RecordID(op Operation, x, y uint32) string {
	return fmt.Sprintf("%s_%d_%d", op, x, y)
}

// TapeRecordID names the record of a run on a caller supplied tape, e.g.
// "run_mult_B1B1B1B". Such tapes may carry any accumulator, so they never
// share an ID with an operand run.
func TapeRecordID(op Operation, input string) string {
	return fmt.Sprintf("run_%s_%s", op, input)
}

// ID returns the record ID of r.
func (r *Result) ID() string {
	if r.Input != "" {
		return TapeRecordID(r.Operation, r.Input)
	}
	return RecordID(r.Operation, r.X, r.Y)
}
