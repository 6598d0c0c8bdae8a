package resolve

import (
	"fmt"
	"slices"

	"github.com/roach88/chemref/internal/table"
)

// Inputs carries auxiliary caller-supplied values consumed by estimators,
// keyed by input name (for example "Hc" or "atoms").
type Inputs map[string]any

// Has reports whether key was supplied with a non-nil value.
func (in Inputs) Has(key string) bool {
	v, ok := in[key]
	return ok && v != nil
}

// EstimateFunc computes a property value from auxiliary inputs.
// It returns false when the inputs do not admit an estimate.
type EstimateFunc func(in Inputs) (float64, bool)

// Estimator is a named fallback formula.
type Estimator struct {
	// Name is the method name reported by Methods and accepted by Value.
	Name string

	// Requires lists the Inputs keys that must be supplied.
	Requires []string

	// Unit of the estimated value. Defaults to the property's first field unit.
	Unit string

	// Estimate computes the value.
	Estimate EstimateFunc
}

// applicable reports whether every required input is supplied.
func (e Estimator) applicable(in Inputs) bool {
	for _, key := range e.Requires {
		if !in.Has(key) {
			return false
		}
	}
	return true
}

// run evaluates the estimator, returning an absent resolution when its
// inputs are missing or it declines to estimate.
func (e Estimator) run(in Inputs) Resolution {
	if !e.applicable(in) || e.Estimate == nil {
		return absent()
	}
	v, ok := e.Estimate(in)
	if !ok {
		return absent()
	}
	return Resolution{Value: table.Number(v), Source: e.Name, Unit: e.Unit}
}

// Field names a column read by a property and the unit of its values.
type Field struct {
	Column string
	Unit   string
}

// Property is one property family: a registry, the field(s) read from each
// source row, and optional estimators used once the sources are exhausted.
// A Property is immutable and safe for concurrent use.
type Property struct {
	name       string
	registry   *Registry
	fields     []Field
	columns    []string
	units      map[string]string
	estimators []Estimator
	observer   Observer
}

// PropertyOption configures a Property.
type PropertyOption func(*Property)

// WithEstimators appends fallback estimators in priority order.
func WithEstimators(estimators ...Estimator) PropertyOption {
	return func(p *Property) {
		p.estimators = append(p.estimators, estimators...)
	}
}

// WithObserver attaches an observer notified on every Value call.
func WithObserver(o Observer) PropertyOption {
	return func(p *Property) {
		if o == nil {
			p.observer = noopObserver{}
			return
		}
		p.observer = o
	}
}

// NewProperty builds a property family over reg.
//
// fields are tried in order within each source row; most properties read a
// single column. Every registered table must define every field column, and
// estimator names must be unique and distinct from source names. Checking
// here means resolution-time calls cannot hit a schema error.
func NewProperty(name string, reg *Registry, fields []Field, opts ...PropertyOption) (*Property, error) {
	if reg == nil {
		return nil, fmt.Errorf("property %s: registry is nil", name)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("property %s: at least one field is required", name)
	}

	p := &Property{
		name:     name,
		registry: reg,
		fields:   slices.Clone(fields),
		units:    make(map[string]string, len(fields)),
		observer: noopObserver{},
	}
	for _, f := range fields {
		p.columns = append(p.columns, f.Column)
		p.units[f.Column] = f.Unit
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if err := reg.CheckFields(p.columns...); err != nil {
		return nil, fmt.Errorf("property %s: %w", name, err)
	}

	seen := make(map[string]bool)
	for i, e := range p.estimators {
		if e.Name == "" {
			return nil, fmt.Errorf("property %s: estimator %d has an empty name", name, i)
		}
		if e.Estimate == nil {
			return nil, fmt.Errorf("property %s: estimator %q has no function", name, e.Name)
		}
		if reg.Has(e.Name) || seen[e.Name] {
			return nil, fmt.Errorf("property %s: duplicate method %q", name, e.Name)
		}
		seen[e.Name] = true
		if e.Unit == "" {
			p.estimators[i].Unit = fields[0].Unit
		}
	}

	return p, nil
}

// Name returns the property name.
func (p *Property) Name() string {
	return p.name
}

// Registry returns the property's source registry.
func (p *Property) Registry() *Registry {
	return p.registry
}

// Fields returns the fields read from each source row, in order.
func (p *Property) Fields() []Field {
	return slices.Clone(p.fields)
}

// AllMethods returns every source and estimator name this property can ever
// report, sources first, in priority order. It does not depend on any
// identifier and is suitable for validating a method argument up front.
func (p *Property) AllMethods() []string {
	out := p.registry.Names()
	for _, e := range p.estimators {
		out = append(out, e.Name)
	}
	return out
}

// Methods returns the methods that can produce a value for id with inputs in:
// tabulated sources with data, in priority order, followed by every estimator
// whose required inputs are supplied. Estimators are listed whenever their
// inputs are present, independent of the tabulated data.
func (p *Property) Methods(id string, in Inputs) []string {
	out := methods(p.registry, id, p.columns)
	for _, e := range p.estimators {
		if e.applicable(in) {
			out = append(out, e.Name)
		}
	}
	return out
}

// Value resolves the property for id.
//
// With an empty method, sources are tried in priority order; if none has
// data, the first applicable estimator that yields a value is used. With a
// source name, only that source is consulted and estimators are never
// substituted. With an estimator name, only that estimator runs. Any other
// method returns *InvalidMethodError.
func (p *Property) Value(id string, in Inputs, method string) (Resolution, error) {
	res, err := p.resolve(id, in, method)
	p.observe(id, method, res, err)
	return res, err
}

func (p *Property) resolve(id string, in Inputs, method string) (Resolution, error) {
	if method == "" {
		if res := first(p.registry, id, p.columns); res.Found() {
			return p.withUnit(res), nil
		}
		for _, e := range p.estimators {
			if res := e.run(in); res.Found() {
				return res, nil
			}
		}
		return absent(), nil
	}

	if t, ok := p.registry.Lookup(method); ok {
		return p.withUnit(fromTable(t, method, id, p.columns)), nil
	}
	for _, e := range p.estimators {
		if e.Name == method {
			return e.run(in), nil
		}
	}
	return Resolution{}, &InvalidMethodError{Property: p.name, Method: method, Valid: p.AllMethods()}
}

func (p *Property) withUnit(res Resolution) Resolution {
	if res.Found() {
		res.Unit = p.units[res.Field]
	}
	return res
}

func (p *Property) observe(id, method string, res Resolution, err error) {
	e := Event{Property: p.name, ID: id, Method: method}
	switch {
	case err != nil:
		e.Outcome = OutcomeInvalidMethod
	case !res.Found():
		e.Outcome = OutcomeAbsent
	case p.registry.Has(res.Source):
		e.Outcome = OutcomeHit
		e.Source = res.Source
	default:
		e.Outcome = OutcomeEstimated
		e.Source = res.Source
	}
	p.observer.ObserveResolution(e)
}
