package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: a list of oracle queries with
// expected outcomes, all evaluated at one lane shape.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file
	// basename.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Lane selects the shape, "f32x4" or "f64x2".
	Lane string `yaml:"lane"`

	// Cases are the queries to run, in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single oracle query. One argument invokes a unary operation,
// two arguments a binary one.
type Case struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a case. Kind defaults to
// "value" when a value is given.
type Expect struct {
	// Kind is "value", "canonical-nan", or "arithmetic-nan".
	Kind string `yaml:"kind,omitempty"`

	// Value is the expected result literal. Required when Kind is
	// "value", forbidden otherwise.
	Value string `yaml:"value,omitempty"`
}

// Outcome kind constants.
const (
	ExpectValue         = "value"
	ExpectCanonicalNaN  = "canonical-nan"
	ExpectArithmeticNaN = "arithmetic-nan"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly instead of silently skipping checks.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
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
	if s.Lane != "f32x4" && s.Lane != "f64x2" {
		return fmt.Errorf("lane must be f32x4 or f64x2, got %q", s.Lane)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Op == "" {
			return fmt.Errorf("cases[%d]: op is required", i)
		}
		if len(c.Args) < 1 || len(c.Args) > 2 {
			return fmt.Errorf("cases[%d]: args must hold one or two operands, got %d", i, len(c.Args))
		}
		if c.Expect != nil {
			if err := validateExpect(c.Expect); err != nil {
				return fmt.Errorf("cases[%d].expect: %w", i, err)
			}
		}
	}
	return nil
}

func validateExpect(e *Expect) error {
	kind := e.Kind
	if kind == "" {
		if e.Value == "" {
			return fmt.Errorf("kind or value is required")
		}
		kind = ExpectValue
	}

	switch kind {
	case ExpectValue:
		if e.Value == "" {
			return fmt.Errorf("value is required for kind %q", ExpectValue)
		}
	case ExpectCanonicalNaN, ExpectArithmeticNaN:
		if e.Value != "" {
			return fmt.Errorf("value is not allowed for kind %q", kind)
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	return nil
}

// kind returns the effective outcome kind, resolving the default.
func (e *Expect) kind() string {
	if e.Kind == "" {
		return ExpectValue
	}
	return e.Kind
}
