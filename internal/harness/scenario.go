package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/regrid/internal/clue"
)

// Scenario is one declarative solver test case.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name for solved scenarios.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Across []clue.Entry `yaml:"across,omitempty"`
	Down   []clue.Entry `yaml:"down,omitempty"`

	// Templates are fallback grids in the text wire format, available
	// to the solver when the search fails.
	Templates []string `yaml:"templates,omitempty"`

	// MaxStates and MaxMillis override the solver's default budgets
	// when positive.
	MaxStates int `yaml:"max_states,omitempty"`
	MaxMillis int `yaml:"max_millis,omitempty"`

	// Expect describes the required outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation is the required outcome of running a scenario.
type Expectation struct {
	// Outcome is one of "solved", "exhausted", or "budget".
	Outcome string `yaml:"outcome"`

	// Grid, when set, is the exact grid a solved scenario must produce,
	// in the text wire format.
	Grid string `yaml:"grid,omitempty"`

	// MessageContains, when set, must appear in the result message.
	MessageContains string `yaml:"message_contains,omitempty"`
}

// Expectation outcome constants.
const (
	OutcomeSolved    = "solved"
	OutcomeExhausted = "exhausted"
	OutcomeBudget    = "budget"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently relaxing the
// expectation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if len(s.Across) == 0 && len(s.Down) == 0 {
		return fmt.Errorf("at least one clue is required")
	}

	switch s.Expect.Outcome {
	case OutcomeSolved:
	case OutcomeExhausted, OutcomeBudget:
		if s.Expect.Grid != "" {
			return fmt.Errorf("expect.grid only applies to outcome %q", OutcomeSolved)
		}
	case "":
		return fmt.Errorf("expect.outcome is required")
	default:
		return fmt.Errorf("unknown expect.outcome %q", s.Expect.Outcome)
	}

	return nil
}
