package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/keysheet"
)

// TraceSnapshot captures the complete trace for a scenario execution.
// All fields use canonical JSON serialization for deterministic comparison.
type TraceSnapshot struct {
	ScenarioName string
	Key          ir.KeySheetRecord
	Output       string
	Positions    string
	Trace        []ir.TraceStep
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for canonical
// JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	trace := make([]any, len(s.Trace))
	for i, step := range s.Trace {
		trace[i] = step.Object()
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"key":           s.Key.Object(),
		"output":        s.Output,
		"positions":     s.Positions,
		"trace":         trace,
	}
}

// Marshal returns the canonical JSON bytes of the snapshot.
func (s *TraceSnapshot) Marshal() ([]byte, error) {
	return ir.MarshalCanonical(s.toCanonicalMap())
}

// NewSnapshot builds the snapshot of a finished run. The key is recorded in
// normalized form so that spacing or case in the scenario file does not
// change the golden output.
func NewSnapshot(scenario *Scenario, result *Result) (*TraceSnapshot, error) {
	ks, err := keysheet.Parse(scenario.Key)
	if err != nil {
		return nil, err
	}
	return &TraceSnapshot{
		ScenarioName: scenario.Name,
		Key:          ks.Record(),
		Output:       result.Output,
		Positions:    result.Positions,
		Trace:        result.Trace,
	}, nil
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against the scenario's golden
// file without re-running it.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot, err := NewSnapshot(scenario, result)
	if err != nil {
		return err
	}
	traceJSON, err := snapshot.Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}
