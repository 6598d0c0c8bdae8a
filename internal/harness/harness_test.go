package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chemref/internal/table"
	"github.com/roach88/chemref/internal/testutil"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return s
}

func TestRun_Golden(t *testing.T) {
	for _, name := range []string{"ethanol_lookups", "dataset_override"} {
		t.Run(name, func(t *testing.T) {
			result, err := RunWithGolden(t, loadTestScenario(t, name))
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_Estimators(t *testing.T) {
	result, err := Run(context.Background(), loadTestScenario(t, "estimators"))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, "Suzuki (1994)", result.Steps[0].Source)
	assert.Equal(t, "mole fraction", result.Steps[0].Unit)
	assert.False(t, result.Steps[3].Found)
	assert.Nil(t, result.Steps[3].Value)
}

func TestRun_FailedExpectations(t *testing.T) {
	found := true
	scenario := &Scenario{
		Name:        "failing",
		Description: "Expectations that do not hold",
		Steps: []Step{
			{Property: "dipole", ID: "64-17-5", Expect: &Expect{Value: 2.0, Source: "MULLER", Unit: "D"}},
			{Property: "dipole", ID: "0-00-0", Expect: &Expect{Found: &found}},
			{Property: "dipole", ID: "64-17-5", Expect: &Expect{Error: ErrorInvalidMethod}},
			{Property: "dipole", ID: "64-17-5", Method: "BADMETHOD", Expect: &Expect{Found: &found}},
			{Property: "density", ID: "64-17-5"},
		},
		Assertions: []Assertion{
			{Type: AssertTraceCount, Property: "dipole", Count: 99},
			{Type: AssertTraceContains, Property: "dipole", Source: "POLING"},
			{Type: AssertMethods, Property: "dipole", ID: "64-17-5", Methods: []string{"POLING"}},
			{Type: AssertTableRow, Dataset: "dipole/cccbdb", ID: "64-17-5", Expect: map[string]any{"Dipole": 1.0}},
			{Type: AssertTableRow, Dataset: "dipole/cccbdb", ID: "0-00-0", Expect: map[string]any{"Dipole": 1.0}},
		},
	}

	result, err := Run(context.Background(), scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)

	require.Len(t, result.Errors, 12)
	assert.Contains(t, result.Errors[0], "expected value 2, got 1.44")
	assert.Contains(t, result.Errors[1], `expected source "MULLER", got "CCCBDB"`)
	assert.Contains(t, result.Errors[2], `expected unit "D", got "debye"`)
	assert.Contains(t, result.Errors[3], "expected found=true, got found=false")
	assert.Contains(t, result.Errors[4], "expected error invalid_method, got <nil>")
	assert.Contains(t, result.Errors[5], "unexpected error: invalid method")
	assert.Contains(t, result.Errors[6], "steps[4]: unknown property")
	assert.Contains(t, result.Errors[7], "Assertion failed: trace_count")
	assert.Contains(t, result.Errors[8], "Assertion failed: trace_contains")
	assert.Contains(t, result.Errors[9], "Assertion failed: methods")
	assert.Contains(t, result.Errors[10], "Assertion failed: table_row")
	assert.Contains(t, result.Errors[11], "row not found")

	assert.Len(t, result.Steps, 5)
	assert.Equal(t, "unknown property \"density\"", result.Steps[4].Error)
}

func TestRun_LoadFailure(t *testing.T) {
	bad := testutil.WriteFile(t, t.TempDir(), "cccbdb.tsv", "CAS\tName\tDipole\n\tEthanol\t1.44\n")

	_, err := Run(context.Background(), &Scenario{
		Name:        "bad_override",
		Description: "Override with an empty identifier",
		Datasets:    map[string]string{"dipole/cccbdb": bad},
		Steps:       []Step{{Property: "dipole", ID: "64-17-5"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load databank")
	assert.Contains(t, err.Error(), "empty identifier")
}

func TestConvertInputs(t *testing.T) {
	in, err := convertInputs(map[string]any{
		"Hc":    -890590,
		"T":     298.15,
		"atoms": map[string]any{"C": 1, "H": 4},
		"name":  "methane",
	})
	require.NoError(t, err)
	assert.Equal(t, -890590.0, in["Hc"])
	assert.Equal(t, 298.15, in["T"])
	assert.Equal(t, map[string]int{"C": 1, "H": 4}, in["atoms"])
	assert.Equal(t, "methane", in["name"])

	_, err = convertInputs(map[string]any{"atoms": map[string]any{"C": 1.5}})
	assert.Error(t, err)

	in, err = convertInputs(nil)
	require.NoError(t, err)
	assert.Nil(t, in)
}

func TestCompareValue(t *testing.T) {
	assert.Empty(t, compareValue(1.44, table.Number(1.44), 0))
	assert.Empty(t, compareValue(1, table.Number(1), 0))
	assert.Empty(t, compareValue(false, table.Bool(false), 0))
	assert.Empty(t, compareValue("Argon", table.Text("Argon"), 0))
	assert.Empty(t, compareValue(1.0, table.Number(1.0000001), 1e-6))
	assert.NotEmpty(t, compareValue(1.0, table.Number(1.1), 1e-6))
	assert.NotEmpty(t, compareValue(true, table.Bool(false), 0))
	assert.NotEmpty(t, compareValue("1", table.Number(1), 0))
}
