package resolve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chemref/internal/table"
)

func lflRegistry(t *testing.T) *Registry {
	t.Helper()
	iec := mustTable(t, "iec", []string{"LFL"}, map[string][]table.Value{
		"74-82-8": {table.Number(0.044)},
		"67-56-1": {table.Number(0.06)},
	})
	nfpa := mustTable(t, "nfpa", []string{"LFL"}, map[string][]table.Value{
		"74-82-8":  {table.Number(0.05)},
		"100-41-4": {table.Number(0.008)},
	})
	return MustRegistry(Source{Name: "IEC", Table: iec}, Source{Name: "NFPA", Table: nfpa})
}

// Stand-in estimators with distinct, easily checked outputs.
var (
	heatEstimator = Estimator{
		Name:     "HEAT",
		Requires: []string{"Hc"},
		Estimate: func(in Inputs) (float64, bool) {
			hc, ok := in["Hc"].(float64)
			return -hc / 1e8, ok
		},
	}
	atomEstimator = Estimator{
		Name:     "ATOMS",
		Requires: []string{"atoms"},
		Estimate: func(in Inputs) (float64, bool) {
			atoms, _ := in["atoms"].(map[string]int)
			c, ok := atoms["C"]
			if !ok {
				return 0, false
			}
			return float64(c) / 100, true
		},
	}
)

func lflProperty(t *testing.T, opts ...PropertyOption) *Property {
	t.Helper()
	opts = append([]PropertyOption{WithEstimators(heatEstimator, atomEstimator)}, opts...)
	p, err := NewProperty("LFL", lflRegistry(t), []Field{{Column: "LFL", Unit: "mole fraction"}}, opts...)
	require.NoError(t, err)
	return p
}

func methaneInputs() Inputs {
	return Inputs{"Hc": -890590.0, "atoms": map[string]int{"C": 1, "H": 4}}
}

func TestNewProperty_Validation(t *testing.T) {
	reg := lflRegistry(t)

	_, err := NewProperty("LFL", nil, []Field{{Column: "LFL"}})
	assert.ErrorContains(t, err, "registry is nil")

	_, err = NewProperty("LFL", reg, nil)
	assert.ErrorContains(t, err, "at least one field")

	_, err = NewProperty("LFL", reg, []Field{{Column: "UFL"}})
	assert.True(t, table.IsSchemaError(err))

	_, err = NewProperty("LFL", reg, []Field{{Column: "LFL"}}, WithEstimators(Estimator{Name: "IEC", Estimate: heatEstimator.Estimate}))
	assert.ErrorContains(t, err, `duplicate method "IEC"`)

	_, err = NewProperty("LFL", reg, []Field{{Column: "LFL"}}, WithEstimators(heatEstimator, heatEstimator))
	assert.ErrorContains(t, err, `duplicate method "HEAT"`)

	_, err = NewProperty("LFL", reg, []Field{{Column: "LFL"}}, WithEstimators(Estimator{Name: "X"}))
	assert.ErrorContains(t, err, "has no function")

	_, err = NewProperty("LFL", reg, []Field{{Column: "LFL"}}, WithEstimators(Estimator{Estimate: heatEstimator.Estimate}))
	assert.ErrorContains(t, err, "empty name")
}

func TestProperty_AllMethods(t *testing.T) {
	p := lflProperty(t)
	assert.Equal(t, []string{"IEC", "NFPA", "HEAT", "ATOMS"}, p.AllMethods())
	assert.Equal(t, "LFL", p.Name())
	assert.Equal(t, []Field{{Column: "LFL", Unit: "mole fraction"}}, p.Fields())
}

func TestProperty_Methods(t *testing.T) {
	p := lflProperty(t)

	assert.Equal(t, []string{"IEC", "NFPA", "HEAT", "ATOMS"}, p.Methods("74-82-8", methaneInputs()))
	assert.Equal(t, []string{"IEC", "NFPA"}, p.Methods("74-82-8", nil))
	assert.Equal(t, []string{"NFPA", "HEAT"}, p.Methods("100-41-4", Inputs{"Hc": -4.0e6}))
	assert.Equal(t, []string{"ATOMS"}, p.Methods("0-00-0", Inputs{"atoms": map[string]int{"H": 2}}),
		"estimators are listed whenever their inputs are supplied")

	got := p.Methods("0-00-0", nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, []string{"IEC", "NFPA"}, p.Methods("74-82-8", Inputs{"Hc": nil}), "nil input is not supplied")
}

func TestProperty_Value_Auto(t *testing.T) {
	p := lflProperty(t)

	res, err := p.Value("74-82-8", methaneInputs(), "")
	require.NoError(t, err)
	assert.Equal(t, "IEC", res.Source)
	assert.Equal(t, table.Number(0.044), res.Value)
	assert.Equal(t, "mole fraction", res.Unit)

	res, err = p.Value("100-41-4", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "NFPA", res.Source)

	// No tabulated data: first estimator whose inputs are present.
	res, err = p.Value("0-00-0", Inputs{"Hc": -3e6, "atoms": map[string]int{"C": 6}}, "")
	require.NoError(t, err)
	assert.Equal(t, "HEAT", res.Source)
	assert.InDelta(t, 0.03, mustFloat(t, res), 1e-12)
	assert.Equal(t, "mole fraction", res.Unit)

	res, err = p.Value("0-00-0", Inputs{"atoms": map[string]int{"C": 6}}, "")
	require.NoError(t, err)
	assert.Equal(t, "ATOMS", res.Source)

	// An estimator that declines passes to the next one.
	res, err = p.Value("0-00-0", Inputs{"atoms": map[string]int{"H": 2}}, "")
	require.NoError(t, err)
	assert.False(t, res.Found())

	res, err = p.Value("0-00-0", nil, "")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestProperty_Value_NamedMethod(t *testing.T) {
	p := lflProperty(t)

	res, err := p.Value("74-82-8", methaneInputs(), "NFPA")
	require.NoError(t, err)
	assert.Equal(t, table.Number(0.05), res.Value)

	res, err = p.Value("67-56-1", methaneInputs(), "NFPA")
	require.NoError(t, err)
	assert.False(t, res.Found(), "estimators never substitute for a named source")

	res, err = p.Value("74-82-8", methaneInputs(), "ATOMS")
	require.NoError(t, err)
	assert.Equal(t, "ATOMS", res.Source)
	assert.InDelta(t, 0.01, mustFloat(t, res), 1e-12)

	res, err = p.Value("74-82-8", nil, "HEAT")
	require.NoError(t, err)
	assert.False(t, res.Found(), "missing estimator input is absent, not an error")
}

func TestProperty_Value_InvalidMethod(t *testing.T) {
	p := lflProperty(t)

	_, err := p.Value("74-82-8", methaneInputs(), "BADMETHOD")
	require.Error(t, err)

	var ime *InvalidMethodError
	require.ErrorAs(t, err, &ime)
	assert.Equal(t, "LFL", ime.Property)
	assert.Equal(t, []string{"IEC", "NFPA", "HEAT", "ATOMS"}, ime.Valid)
	assert.Equal(t,
		`invalid method "BADMETHOD" for LFL: allowed methods are 'IEC', 'NFPA', 'HEAT', 'ATOMS'`,
		err.Error())

	_, err = p.Value("0-00-0", nil, "iec")
	assert.True(t, IsInvalidMethod(err), "method names are case-sensitive")
}

func TestProperty_Value_Idempotent(t *testing.T) {
	p := lflProperty(t)
	in := methaneInputs()

	first, err := p.Value("74-82-8", in, "")
	require.NoError(t, err)
	for range 5 {
		again, err := p.Value("74-82-8", in, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProperty_FieldAlternatives(t *testing.T) {
	ontario := mustTable(t, "ontario", []string{"TWA (ppm)", "TWA (mg/m^3)"}, map[string][]table.Value{
		"71-43-2":    {table.Number(0.5), table.Null{}},
		"55720-99-5": {table.Null{}, table.Number(0.5)},
		"98-00-0":    {table.Number(10), table.Number(40.25)},
	})
	reg := MustRegistry(Source{Name: "Ontario Limits", Table: ontario})
	p, err := NewProperty("TWA", reg, []Field{
		{Column: "TWA (ppm)", Unit: "ppm"},
		{Column: "TWA (mg/m^3)", Unit: "mg/m^3"},
	})
	require.NoError(t, err)

	res, err := p.Value("98-00-0", nil, "")
	require.NoError(t, err)
	assert.Equal(t, table.Number(10), res.Value)
	assert.Equal(t, "ppm", res.Unit)

	res, err = p.Value("55720-99-5", nil, "Ontario Limits")
	require.NoError(t, err)
	assert.Equal(t, table.Number(0.5), res.Value)
	assert.Equal(t, "mg/m^3", res.Unit)
	assert.Equal(t, "TWA (mg/m^3)", res.Field)

	assert.Equal(t, []string{"Ontario Limits"}, p.Methods("55720-99-5", nil))
}

func TestProperty_Observer(t *testing.T) {
	var (
		mu     sync.Mutex
		events []Event
	)
	obs := ObserverFunc(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})
	p := lflProperty(t, WithObserver(obs))

	_, _ = p.Value("74-82-8", nil, "")
	_, _ = p.Value("0-00-0", Inputs{"Hc": -3e6}, "")
	_, _ = p.Value("0-00-0", nil, "")
	_, _ = p.Value("74-82-8", nil, "BAD")

	require.Len(t, events, 4)
	assert.Equal(t, Event{Property: "LFL", ID: "74-82-8", Source: "IEC", Outcome: OutcomeHit}, events[0])
	assert.Equal(t, Event{Property: "LFL", ID: "0-00-0", Source: "HEAT", Outcome: OutcomeEstimated}, events[1])
	assert.Equal(t, Event{Property: "LFL", ID: "0-00-0", Outcome: OutcomeAbsent}, events[2])
	assert.Equal(t, Event{Property: "LFL", ID: "74-82-8", Method: "BAD", Outcome: OutcomeInvalidMethod}, events[3])
}

func TestProperty_ConcurrentValue(t *testing.T) {
	p := lflProperty(t)
	in := methaneInputs()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := p.Value("74-82-8", in, "")
			assert.NoError(t, err)
			assert.Equal(t, "IEC", res.Source)
		}()
	}
	wg.Wait()
}

func mustFloat(t *testing.T, res Resolution) float64 {
	t.Helper()
	v, ok := res.Float()
	require.True(t, ok, "expected a numeric value, got %#v", res.Value)
	return v
}
