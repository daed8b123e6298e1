package domain

// StateKind classifies a machine state for diagrams.
type StateKind string

const (
	StateStart      StateKind = "start"
	StateWalk       StateKind = "walk"
	StateSubroutine StateKind = "subroutine"
	StateHalt       StateKind = "halt"
)

// Transition defines a rule to move from one state to another.
type Transition struct {
	To string `json:"to" yaml:"to"`

	// Condition describes the symbol read that triggers the transition.
	// If empty, the transition is unconditional.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// StateSpec describes one state of a machine's static state table.
type StateSpec struct {
	Name        string       `json:"name" yaml:"name"`
	Kind        StateKind    `json:"kind" yaml:"kind"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}
