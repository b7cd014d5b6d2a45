package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a recipe run and what it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Recipe is the path of the recipe file to compile and send.
	// LoadScenario resolves it relative to the scenario file.
	Recipe string `yaml:"recipe"`

	// Reject lists substrings; the fake sway fails every command
	// containing one of them.
	Reject []string `yaml:"reject,omitempty"`

	// Assertions validate the sent commands and the recorded history.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the trace or the history store.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Command is the expected command text (sent_contains, command_failed).
	Command string `yaml:"command,omitempty"`

	// Commands is the expected command order (sent_order).
	Commands []string `yaml:"commands,omitempty"`

	// Count is the expected number of commands (sent_count) or recorded
	// replies (history).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertSentContains  = "sent_contains"
	AssertSentOrder     = "sent_order"
	AssertSentCount     = "sent_count"
	AssertCommandFailed = "command_failed"
	AssertHistory       = "history"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data, filepath.Dir(path))
}

// ParseScenario parses scenario YAML, resolving a relative recipe path
// against baseDir.
func ParseScenario(data []byte, baseDir string) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Recipe != "" && !filepath.IsAbs(scenario.Recipe) && baseDir != "" {
		scenario.Recipe = filepath.Join(baseDir, scenario.Recipe)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Recipe == "" {
		return fmt.Errorf("recipe is required")
	}

	if _, err := os.Stat(s.Recipe); os.IsNotExist(err) {
		return fmt.Errorf("recipe file not found: %s", s.Recipe)
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSentContains, AssertCommandFailed:
		if a.Command == "" {
			return fmt.Errorf("assertions[%d]: command is required for %s", index, a.Type)
		}
	case AssertSentOrder:
		if len(a.Commands) == 0 {
			return fmt.Errorf("assertions[%d]: commands list is required for sent_order", index)
		}
	case AssertSentCount, AssertHistory:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
