package machine

import (
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Multiplier states. The starred states are composite: Add* runs the Adder and
// the FirstCellFromEnd* states rewind across several fields at once.
const (
	StateTakeOneInX               = "TakeOneInX"
	StateMoveToOutputFromY        = "MoveToOutputFromY"
	StateMoveToYFromX             = "MoveToYFromX"
	StateWriteFirstAddArg         = "WriteFirstAddArg"
	StateWriteSecondAddArg        = "WriteSecondAddArg"
	StateMoveToBeginAdd           = "MoveToBeginAdd"
	StateAddSubroutine            = "Add*"
	StateMoveToOutputStartFromEnd = "MoveToOutputStartFromEnd"
	StateWriteSumBack             = "WriteSumBack"
	StateRewindAddTape            = "FirstCellFromEndAddTape*"
	StateRewindMultTape           = "FirstCellFromEndMultTape*"
)

// Multiplier multiplies the first two numerals of a B x B y B 0 B work tape by
// adding y into the trailing accumulator once per unit of x. It owns a scratch
// addition tape that is reused, and fully overwritten, on every iteration.
type Multiplier struct {
	Observer Observer

	adder   Adder
	scratch *tape.Tape
	rec     recorder
}

// NewMultiplier creates a multiplier with a single Blank addition tape.
func NewMultiplier(obs Observer) *Multiplier {
	return &Multiplier{
		Observer: obs,
		scratch:  tape.New(tape.Blank),
	}
}

// Steps reports how many steps the last Run emitted.
func (m *Multiplier) Steps() int {
	return m.rec.steps
}

// Run multiplies in place and returns the index of the Blank preceding the product.
func (m *Multiplier) Run(w *tape.Tape, mode Mode) int {
	if m.scratch == nil {
		m.scratch = tape.New(tape.Blank)
	}
	m.rec = recorder{machine: domain.MachineMultiply, obs: m.Observer}
	s := m.scratch

	wi, si := 0, 0
	emit := func(state string) {
		m.rec.emit(state, head{name: "add", t: s, at: &si}, head{name: "mult", t: w, at: &wi})
	}
	emit(StateStart)

	wi, si = 1, 1
	for {
		emit(StateTakeOneInX)
		wi = Walk(w, wi, TakeOne, nil)
		if w.Read(wi) == tape.Blank {
			// x is exhausted: the accumulator already holds x*y.
			wi++
			emit(StateMoveToOutputFromY)
			wi = Walk(w, wi, SkipField, nil) - 1
			emit(StateHalt)
			if mode == ModeHalt {
				w.TrimPrefix(wi)
				return 0
			}
			return wi
		}

		emit(StateMoveToYFromX)
		wi = Walk(w, wi, SkipField, nil)

		emit(StateWriteFirstAddArg)
		wi, si = CopyField(w, s, wi, si)
		// Step over the terminating Blanks onto the next field of each tape.
		wi += 2
		si += 2

		emit(StateWriteSecondAddArg)
		wi, si = CopyField(w, s, wi, si)

		emit(StateMoveToBeginAdd)
		si = Rewind(s, si, 2)

		emit(StateAddSubroutine)
		si = m.adder.Run(s, ModeSubroutine) + 1

		emit(StateMoveToOutputStartFromEnd)
		wi = Walk(w, wi, FieldStart, nil)

		emit(StateWriteSumBack)
		si, wi = CopyField(s, w, si, wi)

		emit(StateRewindAddTape)
		si = Rewind(s, si, 2)
		emit(StateRewindMultTape)
		wi = Rewind(w, wi, 3)
	}
}
