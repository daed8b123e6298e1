package machine

import (
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Adder states.
const (
	StateStart    = "Start"
	StateHalt     = "Halt"
	StateTakeOneX = "TakeOneX"
	StateAddOneX  = "AddOneX"
	StateAddOneY  = "AddOneY"
	StateGetNextY = "GetNextY"
	StateGetNextX = "GetNextX"
)

// Adder adds the two numerals of a B x B y B tape by moving one unit at a time
// from x into y. Every local state step is observed.
type Adder struct {
	Observer Observer
	rec      recorder
}

// Steps reports how many steps the last Run emitted.
func (a *Adder) Steps() int {
	return a.rec.steps
}

// Run adds in place and returns the index of the Blank preceding the sum.
// In ModeHalt that Blank is moved to index 0 by trimming the tape.
func (a *Adder) Run(t *tape.Tape, mode Mode) int {
	a.rec = recorder{machine: domain.MachineAdd, obs: a.Observer}
	at := 0
	a.rec.emit(StateStart, head{name: "add", t: t, at: &at})

	at = 1
	for {
		at = a.walk(t, at, StateTakeOneX, TakeOne)
		if t.Read(at) == tape.Blank {
			// x is exhausted; the sum starts right after this Blank.
			a.rec.emit(StateHalt, head{name: "add", t: t, at: &at})
			if mode == ModeHalt {
				t.TrimPrefix(at)
				return 0
			}
			return at
		}
		at = a.walk(t, at, StateAddOneX, SkipField)
		at = a.walk(t, at, StateAddOneY, AddOne)
		at = a.walk(t, at, StateGetNextY, PrevField)
		at = a.walk(t, at, StateGetNextX, FieldStart)
	}
}

func (a *Adder) walk(t *tape.Tape, at int, name string, s State) int {
	return Walk(t, at, s, func(cur int) {
		a.rec.emit(name, head{name: "add", t: t, at: &cur})
	})
}
