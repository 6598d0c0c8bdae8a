package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a regression scenario: a list of lookups with expected
// outcomes, and assertions over the resulting resolution trace.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is an optional CUE catalog path replacing the bundled one.
	Catalog string `yaml:"catalog,omitempty"`

	// Datasets maps dataset keys to files that replace the bundled data.
	// The format follows the file extension.
	Datasets map[string]string `yaml:"datasets,omitempty"`

	// Steps are the lookups to run, in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final trace and loaded tables.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one property lookup.
type Step struct {
	Property string         `yaml:"property"`
	ID       string         `yaml:"id"`
	Method   string         `yaml:"method,omitempty"`
	Inputs   map[string]any `yaml:"inputs,omitempty"`

	// Expect specifies the expected outcome. If nil, only the trace and
	// golden report record the step.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step. Only the fields that are
// set are checked.
type Expect struct {
	Found *bool `yaml:"found,omitempty"`

	// Value is compared exactly unless Tolerance is set.
	Value     any     `yaml:"value,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty"`

	Source string `yaml:"source,omitempty"`
	Unit   string `yaml:"unit,omitempty"`

	// Error is the expected error kind; see ErrorInvalidMethod.
	Error string `yaml:"error,omitempty"`
}

// Expected error kinds.
const (
	ErrorInvalidMethod = "invalid_method"
)

// Assertion validates the trace or a loaded table.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Property, ID, Outcome and Source filter trace events
	// (trace_contains, trace_count). Property and ID also select the
	// lookup for methods.
	Property string `yaml:"property,omitempty"`
	ID       string `yaml:"id,omitempty"`
	Outcome  string `yaml:"outcome,omitempty"`
	Source   string `yaml:"source,omitempty"`

	// Count is the expected number of matching events (trace_count).
	Count int `yaml:"count,omitempty"`

	// Inputs and Methods are the estimator inputs and the expected method
	// list (methods).
	Inputs  map[string]any `yaml:"inputs,omitempty"`
	Methods []string       `yaml:"methods,omitempty"`

	// Dataset, ID and Expect select a row and its expected cells
	// (table_row).
	Dataset string         `yaml:"dataset,omitempty"`
	Expect  map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceCount    = "trace_count"
	AssertMethods       = "methods"
	AssertTableRow      = "table_row"
)

// LoadScenario reads and parses a scenario YAML file. Catalog and dataset
// paths are resolved relative to the file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving catalog and dataset paths relative to basePath.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict decoding catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" {
		scenario.Catalog = resolvePath(basePath, scenario.Catalog)
	}
	for key, file := range scenario.Datasets {
		scenario.Datasets[key] = resolvePath(basePath, file)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if s.Catalog != "" {
		if _, err := os.Stat(s.Catalog); err != nil {
			return fmt.Errorf("catalog file not found: %s", s.Catalog)
		}
	}
	for key, file := range s.Datasets {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("datasets[%s]: file not found: %s", key, file)
		}
	}

	for i, step := range s.Steps {
		if step.Property == "" {
			return fmt.Errorf("steps[%d]: property is required", i)
		}
		if step.ID == "" {
			return fmt.Errorf("steps[%d]: id is required", i)
		}
		if step.Expect != nil && step.Expect.Error != "" && step.Expect.Error != ErrorInvalidMethod {
			return fmt.Errorf("steps[%d].expect: unknown error kind %q", i, step.Expect.Error)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
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
	case AssertTraceContains:
		if a.Property == "" {
			return fmt.Errorf("assertions[%d]: property is required for trace_contains", index)
		}
	case AssertTraceCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertMethods:
		if a.Property == "" || a.ID == "" {
			return fmt.Errorf("assertions[%d]: property and id are required for methods", index)
		}
	case AssertTableRow:
		if a.Dataset == "" || a.ID == "" {
			return fmt.Errorf("assertions[%d]: dataset and id are required for table_row", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for table_row", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
