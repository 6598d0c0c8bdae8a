package table

import "slices"

// schema is the column layout shared by a table and its rows.
type schema struct {
	columns []string
	index   map[string]int
}

// Table maps chemical identifiers to rows of named cells.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	name   string
	schema *schema
	ids    []string
	rows   map[string][]Value
}

// Row is a read-only view of one table row.
// The zero Row has no cells; every field reads as Null.
type Row struct {
	id     string
	schema *schema
	values []Value
}

// Name returns the table name (typically the dataset key).
func (t *Table) Name() string {
	return t.name
}

// Columns returns the schema columns in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.schema.columns)
}

// HasColumn reports whether field is part of the schema.
func (t *Table) HasColumn(field string) bool {
	_, ok := t.schema.index[field]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.ids)
}

// IDs returns all identifiers in insertion order.
func (t *Table) IDs() []string {
	return slices.Clone(t.ids)
}

// Row returns the row stored under id.
// Exact-key lookup only; returns false when the identifier is unknown.
func (t *Table) Row(id string) (Row, bool) {
	values, ok := t.rows[id]
	if !ok {
		return Row{}, false
	}
	return Row{id: id, schema: t.schema, values: values}, true
}

// HasField reports whether the row for id exists and field holds a non-null value.
// Unknown fields report false; use Field to distinguish schema errors.
func (t *Table) HasField(id, field string) bool {
	row, ok := t.Row(id)
	return ok && row.Has(field)
}

// Field returns the value of field for id.
//
// Returns Null (and no error) when the identifier is unknown or the cell is
// empty. Returns a *SchemaError when field is not part of the schema.
func (t *Table) Field(id, field string) (Value, error) {
	if !t.HasColumn(field) {
		return nil, &SchemaError{Table: t.name, Field: field}
	}
	row, ok := t.Row(id)
	if !ok {
		return Null{}, nil
	}
	v, _ := row.Get(field)
	return v, nil
}

// FirstField returns the first non-null value among fields for id, together
// with the field that supplied it. Fields are tried in the given order.
//
// Returns Null and an empty field name when none has data.
// Returns a *SchemaError if any of fields is not part of the schema.
func (t *Table) FirstField(id string, fields ...string) (Value, string, error) {
	for _, f := range fields {
		if !t.HasColumn(f) {
			return nil, "", &SchemaError{Table: t.name, Field: f}
		}
	}
	row, ok := t.Row(id)
	if !ok {
		return Null{}, "", nil
	}
	for _, f := range fields {
		if v, _ := row.Get(f); !IsNull(v) {
			return v, f, nil
		}
	}
	return Null{}, "", nil
}

// ID returns the row identifier.
func (r Row) ID() string {
	return r.id
}

// Get returns the cell for field. The bool is false only when field is not
// part of the schema; an empty cell returns (Null{}, true).
func (r Row) Get(field string) (Value, bool) {
	if r.schema == nil {
		return Null{}, false
	}
	i, ok := r.schema.index[field]
	if !ok {
		return Null{}, false
	}
	v := r.values[i]
	if v == nil {
		return Null{}, true
	}
	return v, true
}

// Has reports whether field is present and non-null in this row.
func (r Row) Has(field string) bool {
	v, ok := r.Get(field)
	return ok && !IsNull(v)
}

// Values returns the cells in schema order.
func (r Row) Values() []Value {
	return slices.Clone(r.values)
}
