package harness

import "github.com/roach88/enigma/internal/ir"

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if the expected output, positions and all assertions match.
	Pass bool `json:"pass"`

	// Output is the text the machine produced.
	Output string `json:"output"`

	// Positions is the rotor window after the last key press.
	Positions string `json:"positions"`

	// Trace contains one step per key press, in order.
	Trace []ir.TraceStep `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []ir.TraceStep{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddStep appends one key press to the trace.
func (r *Result) AddStep(seq int64, in, out rune, positions string) {
	r.Trace = append(r.Trace, ir.TraceStep{
		Seq:       seq,
		In:        string(in),
		Out:       string(out),
		Positions: positions,
	})
}
