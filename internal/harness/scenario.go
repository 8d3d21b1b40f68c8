package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/wiring"
)

// Scenario defines a test vector.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Key is the machine setting, in key sheet input form.
	Key keysheet.Raw `yaml:"key"`

	// Input is the text typed on the keyboard. Letters A-Z only.
	Input string `yaml:"input"`

	// Expect specifies the expected machine output.
	Expect ExpectClause `yaml:"expect"`

	// Assertions validate the keystroke trace.
	// Supported types: no_fixed_point, involution, positions_at, output_contains
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// ExpectClause specifies expected machine behavior.
type ExpectClause struct {
	// Output is the expected text. Required.
	Output string `yaml:"output"`

	// Positions is the expected rotor window after the last key press.
	// If empty, the final window is not checked.
	Positions string `yaml:"positions,omitempty"`
}

// Assertion validates the trace.
type Assertion struct {
	// Type specifies the assertion type:
	// - "no_fixed_point": no step outputs the letter that was pressed
	// - "involution": enciphering the output from the same key yields the input
	// - "positions_at": the window after a given step matches
	// - "output_contains": the output contains a fragment of text
	Type string `yaml:"type"`

	// Step is the 1-based key press (used by positions_at).
	Step int `yaml:"step,omitempty"`

	// Positions is the expected rotor window (used by positions_at).
	Positions string `yaml:"positions,omitempty"`

	// Text is the expected fragment (used by output_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertNoFixedPoint   = "no_fixed_point"
	AssertInvolution     = "involution"
	AssertPositionsAt    = "positions_at"
	AssertOutputContains = "output_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios loads every .yaml and .yml scenario in dir, sorted by file
// name. A non-empty filter is a filepath.Match pattern applied to scenario
// names.
func LoadScenarios(dir, filter string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scan scenarios: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	scenarios := []*Scenario{}
	seen := make(map[string]string)
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", s.Name, prev, path)
		}
		seen[s.Name] = path

		if filter != "" {
			ok, err := filepath.Match(filter, s.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
			}
			if !ok {
				continue
			}
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
// The key itself is validated when the scenario runs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Input == "" {
		return fmt.Errorf("input is required")
	}
	if err := checkLetters("input", s.Input); err != nil {
		return err
	}

	if s.Expect.Output == "" {
		return fmt.Errorf("expect.output is required")
	}
	if len(s.Expect.Output) != len(s.Input) {
		return fmt.Errorf("expect.output has %d letters, input has %d", len(s.Expect.Output), len(s.Input))
	}
	if err := checkLetters("expect.output", s.Expect.Output); err != nil {
		return err
	}
	if s.Expect.Positions != "" {
		if err := checkWindow("expect.positions", s.Expect.Positions); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, len(s.Input)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, inputLen int) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertNoFixedPoint, AssertInvolution:
		return nil
	case AssertPositionsAt:
		if a.Step < 1 || a.Step > inputLen {
			return fmt.Errorf("assertions[%d]: step must be between 1 and %d", index, inputLen)
		}
		return checkWindow(fmt.Sprintf("assertions[%d].positions", index), a.Positions)
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
		return nil
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
}

func checkLetters(field, text string) error {
	for i, r := range text {
		if !wiring.IsLetter(r) {
			return fmt.Errorf("%s: character %q at offset %d is not A-Z", field, r, i)
		}
	}
	return nil
}

func checkWindow(field, window string) error {
	if len(window) != keysheet.NumSlots {
		return fmt.Errorf("%s: want %d letters, got %q", field, keysheet.NumSlots, window)
	}
	return checkLetters(field, window)
}
