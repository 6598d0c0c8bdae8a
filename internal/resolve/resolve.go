package resolve

import (
	"github.com/roach88/chemref/internal/table"
)

// Resolution is the outcome of one lookup.
//
// Absent data is represented by a Null Value with an empty Source, never by
// an error. Use Found to tell the two apart.
type Resolution struct {
	// Value is the resolved cell, or table.Null{} when no data exists.
	Value table.Value

	// Source names the registry source or estimator that produced Value.
	Source string

	// Field is the column that supplied Value (empty for estimators).
	Field string

	// Unit is the unit of Value as declared by the property, if any.
	Unit string
}

// Found reports whether the resolution carries data.
func (r Resolution) Found() bool {
	return !table.IsNull(r.Value)
}

// Float returns Value as a float64 when it is numeric.
func (r Resolution) Float() (float64, bool) {
	return table.AsFloat(r.Value)
}

// Bool returns Value as a bool when it is boolean.
func (r Resolution) Bool() (bool, bool) {
	return table.AsBool(r.Value)
}

// Text returns Value as a string when it is text.
func (r Resolution) Text() (string, bool) {
	return table.AsString(r.Value)
}

// absent is the canonical "no data" resolution.
func absent() Resolution {
	return Resolution{Value: table.Null{}}
}

// Methods returns, in priority order, every source whose table holds a
// non-null value of field for id. Sources are not deduplicated.
//
// Returns an empty (non-nil) slice when nothing has data, including for
// unknown identifiers. Returns a *table.SchemaError if a registered table
// does not define field.
func Methods(r *Registry, id, field string) ([]string, error) {
	if err := r.CheckFields(field); err != nil {
		return nil, err
	}
	return methods(r, id, []string{field}), nil
}

// Any returns the value of field for id from the first source, in priority
// order, that has non-null data. Later sources are not consulted once a hit
// is found.
//
// Returns an absent Resolution when no source has data.
func Any(r *Registry, id, field string) (Resolution, error) {
	if err := r.CheckFields(field); err != nil {
		return Resolution{}, err
	}
	return first(r, id, []string{field}), nil
}

// From returns the value of field for id from the named source only.
//
// Returns *InvalidMethodError when source is not registered, and an absent
// Resolution (no error) when the source exists but has no data for id.
func From(r *Registry, id, field, source string) (Resolution, error) {
	if err := r.CheckFields(field); err != nil {
		return Resolution{}, err
	}
	t, ok := r.Lookup(source)
	if !ok {
		return Resolution{}, &InvalidMethodError{Method: source, Valid: r.Names()}
	}
	return fromTable(t, source, id, []string{field}), nil
}

// methods lists sources with data for any of fields.
// Fields must already be validated against the registry.
func methods(r *Registry, id string, fields []string) []string {
	out := []string{}
	for name, t := range r.All() {
		row, ok := t.Row(id)
		if !ok {
			continue
		}
		for _, f := range fields {
			if row.Has(f) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// first walks sources in priority order and stops at the first hit.
func first(r *Registry, id string, fields []string) Resolution {
	for name, t := range r.All() {
		if res := fromTable(t, name, id, fields); res.Found() {
			return res
		}
	}
	return absent()
}

// fromTable reads the first non-null of fields from one table.
func fromTable(t *table.Table, source, id string, fields []string) Resolution {
	v, field, err := t.FirstField(id, fields...)
	if err != nil || table.IsNull(v) {
		return absent()
	}
	return Resolution{Value: v, Source: source, Field: field}
}
