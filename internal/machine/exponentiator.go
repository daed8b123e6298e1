package machine

import (
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Exponentiator states.
const (
	StateMoveToYFromXForDecrement              = "MoveToYFromXForDecrement"
	StateDecrementY                            = "DecrementY"
	StateMoveToResFromY                        = "MoveToResFromY"
	StateWriteResAsMultArg                     = "WriteResAsMultArg"
	StateMoveToYForXWrite                      = "MoveToYForXWrite"
	StateMoveToXForXWrite                      = "MoveToXForXWrite"
	StateMoveToXBeginFromXEndForXWrite         = "MoveToXBeginFromXEndForXWrite"
	StateWriteXAsMultArg                       = "WriteXAsMultArg"
	StateInitMultRes                           = "InitMultRes"
	StateMakeLastBlankInMult                   = "MakeLastBlankInMult"
	StateMultMoveToYAfterInitResWrite          = "MultMoveToYAfterInitResWrite"
	StateToFirstInputEndInMultAfterXWrite      = "ToFirstInputEndInMultAfterXWrite"
	StateToFirstInputBeginInMultAfterArgWrites = "ToFirstInputBeginInMultAfterArgWrites"
	StateMultSubroutine                        = "Mult*"
	StateToExpResultForUpdate                  = "ToExpResultForUpdate"
	StateWriteProduct                          = "WriteProduct"
	StateRewindExpTape                         = "FirstCellFromEndExpTape*"
)

// Exponentiator raises the first numeral of a B x B y B 1 B exponent tape to
// the power of the second by multiplying the trailing running power by x once
// per unit of y. The running power starts at 1, so x^0 = 1 for every x.
type Exponentiator struct {
	Observer Observer

	mult    *Multiplier
	scratch *tape.Tape
	rec     recorder
}

// NewExponentiator creates an exponentiator with a single Blank multiplication tape.
func NewExponentiator(obs Observer) *Exponentiator {
	return &Exponentiator{
		Observer: obs,
		mult:     NewMultiplier(nil),
		scratch:  tape.New(tape.Blank),
	}
}

// Steps reports how many steps the last Run emitted.
func (x *Exponentiator) Steps() int {
	return x.rec.steps
}

// Run exponentiates in place and returns the index of the Blank preceding the power.
func (x *Exponentiator) Run(e *tape.Tape, mode Mode) int {
	if x.mult == nil {
		x.mult = NewMultiplier(nil)
	}
	if x.scratch == nil {
		x.scratch = tape.New(tape.Blank)
	}
	x.rec = recorder{machine: domain.MachineExponent, obs: x.Observer}
	m := x.scratch

	mi, ei := 0, 0
	emit := func(state string) {
		x.rec.emit(state, head{name: "mult", t: m, at: &mi}, head{name: "exp", t: e, at: &ei})
	}
	emit(StateStart)

	mi, ei = 1, 1
	for {
		emit(StateMoveToYFromXForDecrement)
		ei = Walk(e, ei, SkipField, nil)

		emit(StateDecrementY)
		ei = Walk(e, ei, TakeOne, nil)
		if e.Read(ei) == tape.Blank {
			// y is exhausted: the running power is the result.
			ei++
			emit(StateHalt)
			boundary := ei - 1
			if mode == ModeHalt {
				e.TrimPrefix(boundary)
				return 0
			}
			return boundary
		}

		emit(StateMoveToResFromY)
		ei = Walk(e, ei, SkipField, nil)

		emit(StateWriteResAsMultArg)
		ei, mi = CopyField(e, m, ei, mi)
		mi += 2

		emit(StateMoveToYForXWrite)
		ei = Walk(e, ei, PrevField, nil)
		emit(StateMoveToXForXWrite)
		ei = Walk(e, ei, PrevField, nil)
		emit(StateMoveToXBeginFromXEndForXWrite)
		ei = Walk(e, ei, FieldStart, nil)

		emit(StateWriteXAsMultArg)
		ei, mi = CopyField(e, m, ei, mi)
		ei += 2
		mi += 2

		// The scratch tape may hold stale cells from the previous product.
		emit(StateInitMultRes)
		m.Write(mi, tape.Zero)
		mi++
		emit(StateMakeLastBlankInMult)
		m.Write(mi, tape.Blank)
		mi--

		emit(StateMultMoveToYAfterInitResWrite)
		mi = Walk(m, mi, PrevField, nil)
		emit(StateToFirstInputEndInMultAfterXWrite)
		mi = Walk(m, mi, PrevField, nil)
		emit(StateToFirstInputBeginInMultAfterArgWrites)
		mi = Walk(m, mi, FieldStart, nil)

		emit(StateMultSubroutine)
		mi = x.mult.Run(m, ModeSubroutine) + 1

		emit(StateToExpResultForUpdate)
		ei = Walk(e, ei, SkipField, nil)

		emit(StateWriteProduct)
		mi, ei = CopyField(m, e, mi, ei)

		emit(StateRewindExpTape)
		ei = Rewind(e, ei, 3)
		emit(StateRewindMultTape)
		mi = Rewind(m, mi, 3)
	}
}
