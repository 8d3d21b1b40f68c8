package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/machine"
)

// traceContext is how many trailing steps AssertionError prints.
const traceContext = 8

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string         // Assertion type for categorization
	Expected string         // Human-readable expected outcome
	Actual   string         // Human-readable actual outcome
	Trace    []ir.TraceStep // Steps leading up to the failure
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nTrace:\n")
		start := 0
		if len(e.Trace) > traceContext {
			start = len(e.Trace) - traceContext
		}
		for _, step := range e.Trace[start:] {
			fmt.Fprintf(&buf, "  [%d] %s -> %s  %s\n", step.Seq, step.In, step.Out, step.Positions)
		}
	}

	return buf.String()
}

// assertNoFixedPoint checks that no key press lit its own lamp.
func assertNoFixedPoint(trace []ir.TraceStep) error {
	for i, step := range trace {
		if step.In == step.Out {
			return &AssertionError{
				Type:     AssertNoFixedPoint,
				Expected: "no letter enciphers to itself",
				Actual:   fmt.Sprintf("%s -> %s at step %d", step.In, step.Out, step.Seq),
				Trace:    trace[:i+1],
			}
		}
	}
	return nil
}

// assertInvolution enciphers the output on a fresh machine with the same
// key and checks that the input comes back.
func assertInvolution(ks *keysheet.KeySheet, input string, result *Result) error {
	m, err := machine.New(ks)
	if err != nil {
		return fmt.Errorf("%s: %w", AssertInvolution, err)
	}
	back, err := m.Encipher(result.Output)
	if err != nil {
		return fmt.Errorf("%s: %w", AssertInvolution, err)
	}
	if back != input {
		return &AssertionError{
			Type:     AssertInvolution,
			Expected: input,
			Actual:   back,
		}
	}
	return nil
}

// assertPositionsAt checks the rotor window after one key press.
func assertPositionsAt(trace []ir.TraceStep, assertion Assertion) error {
	if assertion.Step < 1 || assertion.Step > len(trace) {
		return fmt.Errorf("%s: step %d outside trace of %d steps", AssertPositionsAt, assertion.Step, len(trace))
	}
	step := trace[assertion.Step-1]
	if step.Positions != assertion.Positions {
		return &AssertionError{
			Type:     AssertPositionsAt,
			Expected: fmt.Sprintf("window %s after step %d", assertion.Positions, assertion.Step),
			Actual:   fmt.Sprintf("window %s", step.Positions),
			Trace:    trace[:assertion.Step],
		}
	}
	return nil
}

// assertOutputContains checks that a fragment appears in the output.
func assertOutputContains(output string, assertion Assertion) error {
	if !strings.Contains(output, assertion.Text) {
		return &AssertionError{
			Type:     AssertOutputContains,
			Expected: fmt.Sprintf("output containing %q", assertion.Text),
			Actual:   output,
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(scenario *Scenario, ks *keysheet.KeySheet, result *Result) []string {
	var errors []string

	for i, assertion := range scenario.Assertions {
		var err error

		switch assertion.Type {
		case AssertNoFixedPoint:
			err = assertNoFixedPoint(result.Trace)
		case AssertInvolution:
			err = assertInvolution(ks, scenario.Input, result)
		case AssertPositionsAt:
			err = assertPositionsAt(result.Trace, assertion)
		case AssertOutputContains:
			err = assertOutputContains(result.Output, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
