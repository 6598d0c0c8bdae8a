package harness

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/dataset"
	"github.com/roach88/chemref/internal/resolve"
	"github.com/roach88/chemref/internal/table"
)

// Harness runs the steps of one scenario against a private databank.
type Harness struct {
	databank *databank.Databank
	logger   *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario gets a fresh databank, so runs are isolated from each other
// and from the process-wide instance. Resolution order is fixed by the
// steps, which keeps the trace reproducible for golden comparison.
//
// Execution flow:
// 1. Load the catalog and datasets, applying overrides
// 2. Execute steps, checking expect clauses
// 3. Evaluate assertions
//
// A returned error means the scenario could not run; failed expectations
// are reported in the result.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	result := NewResult()

	opts := []databank.Option{
		databank.WithLogger(logger),
		databank.WithObserver(result),
		databank.WithSource(databank.Chain{overrides(scenario.Datasets), dataset.NewLoader(logger)}),
	}
	if scenario.Catalog != "" {
		c, err := catalog.LoadFile(scenario.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		opts = append(opts, databank.WithCatalog(c))
	}

	h := &Harness{
		databank: databank.New(opts...),
		logger:   logger,
	}
	if err := h.databank.EnsureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("failed to load databank: %w", err)
	}

	h.executeSteps(scenario.Steps, result)

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, h.databank) {
		result.AddError(errMsg)
	}

	return result, nil
}

// overrides serves datasets from files named in a scenario, reporting every
// other dataset as missing so the bundled data is used.
func overrides(files map[string]string) databank.TableSource {
	return databank.TableSourceFunc(func(ctx context.Context, ds catalog.Dataset) (*table.Table, error) {
		path, ok := files[ds.Key]
		if !ok {
			return nil, fmt.Errorf("dataset %s: %w", ds.Key, fs.ErrNotExist)
		}
		format, err := dataset.FormatFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", ds.Key, err)
		}
		f, err := os.Open(path)
		if err != nil {
			// An override that vanished after validation is an error, not
			// a reason to fall back.
			return nil, fmt.Errorf("open override for %s: %v", ds.Key, err)
		}
		defer f.Close()
		return dataset.Decode(ds.Key, format, f)
	})
}

func (h *Harness) executeSteps(steps []Step, result *Result) {
	for i, step := range steps {
		sr, res, err := h.executeStep(step)
		result.Steps = append(result.Steps, sr)
		if step.Expect == nil {
			if err != nil && !resolve.IsInvalidMethod(err) {
				result.AddError(fmt.Sprintf("steps[%d]: %v", i, err))
			}
			continue
		}
		for _, msg := range checkExpect(step.Expect, sr, res, err) {
			result.AddError(fmt.Sprintf("steps[%d] %s(%s): %s", i, step.Property, step.ID, msg))
		}
	}
}

func (h *Harness) executeStep(step Step) (StepResult, resolve.Resolution, error) {
	sr := StepResult{Property: step.Property, ID: step.ID, Method: step.Method}

	p, err := h.databank.Property(step.Property)
	if err != nil {
		sr.Error = err.Error()
		return sr, resolve.Resolution{}, err
	}
	in, err := convertInputs(step.Inputs)
	if err != nil {
		sr.Error = err.Error()
		return sr, resolve.Resolution{}, err
	}

	res, err := p.Value(step.ID, in, step.Method)
	if err != nil {
		sr.Error = err.Error()
		return sr, res, err
	}
	h.logger.Debug("step resolved",
		"property", step.Property,
		"id", step.ID,
		"source", res.Source)

	if res.Found() {
		sr.Found = true
		sr.Value = res.Value
		sr.Source = res.Source
		sr.Unit = res.Unit
	}
	return sr, res, nil
}

// convertInputs turns YAML-decoded estimator inputs into the types the
// estimators expect: numbers become float64 and maps of integers become
// map[string]int.
func convertInputs(raw map[string]any) (resolve.Inputs, error) {
	if raw == nil {
		return nil, nil
	}
	in := make(resolve.Inputs, len(raw))
	for key, v := range raw {
		switch val := v.(type) {
		case int:
			in[key] = float64(val)
		case float64:
			in[key] = val
		case map[string]any:
			counts := make(map[string]int, len(val))
			for k, n := range val {
				c, ok := n.(int)
				if !ok {
					return nil, fmt.Errorf("input %s.%s: expected an integer, got %T", key, k, n)
				}
				counts[k] = c
			}
			in[key] = counts
		default:
			in[key] = v
		}
	}
	return in, nil
}

// checkExpect returns a message for each expectation that does not hold.
func checkExpect(want *Expect, got StepResult, res resolve.Resolution, err error) []string {
	var msgs []string

	if want.Error != "" {
		if !resolve.IsInvalidMethod(err) {
			msgs = append(msgs, fmt.Sprintf("expected error %s, got %v", want.Error, err))
		}
		return msgs
	}
	if err != nil {
		return append(msgs, fmt.Sprintf("unexpected error: %v", err))
	}

	if want.Found != nil && *want.Found != got.Found {
		msgs = append(msgs, fmt.Sprintf("expected found=%t, got found=%t", *want.Found, got.Found))
	}
	if want.Value != nil {
		if msg := compareValue(want.Value, res.Value, want.Tolerance); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	if want.Source != "" && want.Source != got.Source {
		msgs = append(msgs, fmt.Sprintf("expected source %q, got %q", want.Source, got.Source))
	}
	if want.Unit != "" && want.Unit != got.Unit {
		msgs = append(msgs, fmt.Sprintf("expected unit %q, got %q", want.Unit, got.Unit))
	}
	return msgs
}

// compareValue compares an expected YAML scalar with a resolved value and
// returns a message when they differ.
func compareValue(want any, got table.Value, tolerance float64) string {
	expected, err := table.FromAny(want)
	if err != nil {
		return fmt.Sprintf("bad expected value: %v", err)
	}
	if tolerance > 0 {
		w, wok := table.AsFloat(expected)
		g, gok := table.AsFloat(got)
		if wok && gok && w-g <= tolerance && g-w <= tolerance {
			return ""
		}
	} else if expected == got {
		return ""
	}
	return fmt.Sprintf("expected value %s, got %s", table.Format(expected), table.Format(got))
}
