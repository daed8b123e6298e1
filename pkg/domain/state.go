package domain

// Machine identifies which machine produced a step.
type Machine string

const (
	MachineAdd      Machine = "add"
	MachineMultiply Machine = "mult"
	MachineExponent Machine = "exp"
)

// Head is the position of one machine head together with a snapshot of its tape.
type Head struct {
	Tape   string `json:"tape"`
	Cursor int    `json:"cursor"`
	Cells  string `json:"cells"`
}

// Step is a single state record emitted by a running machine.
type Step struct {
	Machine Machine `json:"machine"`
	State   string  `json:"state"`
	Heads   []Head  `json:"heads"`
}

// Result is the outcome of one simulation.
type Result struct {
	Operation Operation `json:"operation"`
	X         uint32    `json:"x"`
	Y         uint32    `json:"y"`
	Value     uint32    `json:"value"`

	// Input is the caller supplied starting tape, empty when the tape was laid
	// out from X and Y.
	Input string `json:"input,omitempty"`

	// Tape is the final, prefix-trimmed main tape.
	Tape string `json:"tape"`

	// Boundary is the index of the Blank immediately preceding the result numeral on Tape.
	Boundary int `json:"boundary"`

	// StepCount is the number of steps emitted by the top-level machine.
	StepCount int `json:"step_count"`

	// Steps holds the trace when tracing is enabled.
	Steps []Step `json:"steps,omitempty"`
}

// Record is a persisted result along with its human readable trace.
type Record struct {
	ID     string `json:"id"`
	Result Result `json:"result"`
	Trace  string `json:"trace,omitempty"`
}
