package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/machine"
	"github.com/roach88/enigma/internal/testutil"
)

// Harness is the test execution engine for one scenario run.
type Harness struct {
	machine *machine.Machine
	clock   *testutil.DeterministicClock
	logger  *slog.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger sends the machine's key press logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs on a fresh machine built from its key, so results do
// not depend on what ran before. An invalid key or input is an error; a
// machine that produces the wrong text is a failed Result.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		clock:  testutil.NewDeterministicClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(h)
	}

	ks, err := keysheet.Parse(scenario.Key)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	h.machine, err = machine.New(ks, machine.WithLogger(h.logger))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	if err := h.execute(scenario.Input, result); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	if result.Output != scenario.Expect.Output {
		result.AddError(fmt.Sprintf("output: expected %s, got %s", scenario.Expect.Output, result.Output))
	}
	if scenario.Expect.Positions != "" && result.Positions != scenario.Expect.Positions {
		result.AddError(fmt.Sprintf("positions: expected %s, got %s", scenario.Expect.Positions, result.Positions))
	}

	for _, errMsg := range EvaluateAssertions(scenario, ks, result) {
		result.AddError(errMsg)
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"steps", len(result.Trace),
		"pass", result.Pass,
	)

	return result, nil
}

// execute presses each input letter and records the trace.
func (h *Harness) execute(input string, result *Result) error {
	var out strings.Builder
	out.Grow(len(input))

	for _, letter := range input {
		lamp, err := h.machine.KeyPress(letter)
		if err != nil {
			return err
		}
		result.AddStep(h.clock.Next(), letter, lamp, h.machine.Positions())
		out.WriteRune(lamp)
	}

	result.Output = out.String()
	result.Positions = h.machine.Positions()
	return nil
}
