package machine

import (
	"fmt"

	"github.com/aretw0/tmsim/pkg/domain"
)

func walk(name string, loop string, next ...domain.Transition) domain.StateSpec {
	ts := []domain.Transition{{To: name, Condition: loop}}
	return domain.StateSpec{Name: name, Kind: domain.StateWalk, Transitions: append(ts, next...)}
}

func to(state string, cond string) domain.Transition {
	return domain.Transition{To: state, Condition: cond}
}

func chain(kind domain.StateKind, names ...string) []domain.StateSpec {
	specs := make([]domain.StateSpec, len(names))
	for i, n := range names {
		specs[i] = domain.StateSpec{Name: n, Kind: kind}
		if i+1 < len(names) {
			specs[i].Transitions = []domain.Transition{to(names[i+1], "")}
		}
	}
	return specs
}

// AdderStates is the state table of the Adder.
func AdderStates() []domain.StateSpec {
	return []domain.StateSpec{
		{Name: StateStart, Kind: domain.StateStart, Transitions: []domain.Transition{to(StateTakeOneX, "")}},
		walk(StateTakeOneX, "0/1 R", to(StateAddOneX, "1/0"), to(StateHalt, "B")),
		walk(StateAddOneX, "digit R", to(StateAddOneY, "B R")),
		walk(StateAddOneY, "1/0 R", to(StateGetNextY, "0/1 L"), to(StateGetNextY, "B/1 L")),
		walk(StateGetNextY, "digit L", to(StateGetNextX, "B L")),
		walk(StateGetNextX, "digit L", to(StateTakeOneX, "B R")),
		{Name: StateHalt, Kind: domain.StateHalt},
	}
}

// MultiplierStates is the state table of the Multiplier.
func MultiplierStates() []domain.StateSpec {
	body := chain(domain.StateWalk,
		StateMoveToYFromX,
		StateWriteFirstAddArg,
		StateWriteSecondAddArg,
		StateMoveToBeginAdd,
		StateAddSubroutine,
		StateMoveToOutputStartFromEnd,
		StateWriteSumBack,
		StateRewindAddTape,
		StateRewindMultTape,
	)
	body[4].Kind = domain.StateSubroutine
	body[len(body)-1].Transitions = []domain.Transition{to(StateTakeOneInX, "")}

	specs := []domain.StateSpec{
		{Name: StateStart, Kind: domain.StateStart, Transitions: []domain.Transition{to(StateTakeOneInX, "")}},
		walk(StateTakeOneInX, "0/1 R", to(StateMoveToYFromX, "1/0"), to(StateMoveToOutputFromY, "B R")),
		walk(StateMoveToOutputFromY, "digit R", to(StateHalt, "B")),
	}
	specs = append(specs, body...)
	return append(specs, domain.StateSpec{Name: StateHalt, Kind: domain.StateHalt})
}

// ExponentiatorStates is the state table of the Exponentiator.
func ExponentiatorStates() []domain.StateSpec {
	body := chain(domain.StateWalk,
		StateMoveToResFromY,
		StateWriteResAsMultArg,
		StateMoveToYForXWrite,
		StateMoveToXForXWrite,
		StateMoveToXBeginFromXEndForXWrite,
		StateWriteXAsMultArg,
		StateInitMultRes,
		StateMakeLastBlankInMult,
		StateMultMoveToYAfterInitResWrite,
		StateToFirstInputEndInMultAfterXWrite,
		StateToFirstInputBeginInMultAfterArgWrites,
		StateMultSubroutine,
		StateToExpResultForUpdate,
		StateWriteProduct,
		StateRewindExpTape,
		StateRewindMultTape,
	)
	body[11].Kind = domain.StateSubroutine
	body[len(body)-1].Transitions = []domain.Transition{to(StateMoveToYFromXForDecrement, "")}

	specs := []domain.StateSpec{
		{Name: StateStart, Kind: domain.StateStart, Transitions: []domain.Transition{to(StateMoveToYFromXForDecrement, "")}},
		walk(StateMoveToYFromXForDecrement, "digit R", to(StateDecrementY, "B R")),
		walk(StateDecrementY, "0/1 R", to(StateMoveToResFromY, "1/0"), to(StateHalt, "B R")),
	}
	specs = append(specs, body...)
	return append(specs, domain.StateSpec{Name: StateHalt, Kind: domain.StateHalt})
}

// StatesFor returns the state table of op.
func StatesFor(op domain.Operation) ([]domain.StateSpec, error) {
	switch op {
	case domain.OpAdd:
		return AdderStates(), nil
	case domain.OpMultiply:
		return MultiplierStates(), nil
	case domain.OpExponent:
		return ExponentiatorStates(), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
}
