package machine

import (
	"fmt"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Observer receives the step records of a running machine.
type Observer func(domain.Step)

// Mode selects how a machine finishes.
type Mode uint8

const (
	// ModeHalt trims the tape so the result boundary Blank lands at index 0.
	ModeHalt Mode = iota
	// ModeSubroutine leaves the tape untouched; callers use the returned boundary.
	ModeSubroutine
)

// Machine is implemented by the Adder, Multiplier and Exponentiator.
type Machine interface {
	// Run computes on t and returns the index of the Blank preceding the result numeral.
	Run(t *tape.Tape, mode Mode) int
	// Steps reports how many steps the last Run emitted.
	Steps() int
}

// New returns the machine for op with obs attached.
func New(op domain.Operation, obs Observer) (Machine, error) {
	switch op {
	case domain.OpAdd:
		return &Adder{Observer: obs}, nil
	case domain.OpMultiply:
		return NewMultiplier(obs), nil
	case domain.OpExponent:
		return NewExponentiator(obs), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
}

type head struct {
	name string
	t    *tape.Tape
	at   *int
}

// recorder counts steps and, when an observer is attached, snapshots heads.
type recorder struct {
	machine domain.Machine
	obs     Observer
	steps   int
}

func (r *recorder) emit(state string, heads ...head) {
	r.steps++
	if r.obs == nil {
		return
	}
	step := domain.Step{Machine: r.machine, State: state, Heads: make([]domain.Head, len(heads))}
	for i, h := range heads {
		step.Heads[i] = domain.Head{Tape: h.name, Cursor: *h.at, Cells: h.t.String()}
	}
	r.obs(step)
}
