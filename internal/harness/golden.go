package harness

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Report is the golden snapshot of a scenario run.
type Report struct {
	Scenario string       `json:"scenario"`
	Steps    []StepResult `json:"steps"`
	Trace    []TraceEvent `json:"trace"`
}

// MarshalReport renders a result as indented JSON with a trailing newline.
// Field order is fixed by the struct definitions, so output is stable.
func MarshalReport(name string, result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(Report{
		Scenario: name,
		Steps:    result.Steps,
		Trace:    result.Trace,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can check Pass and Errors. Returns an error
// if the scenario could not run; a report mismatch fails t via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(context.Background(), scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's report against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	report, err := MarshalReport(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, report)

	return nil
}
