package table

import (
	"fmt"
	"strings"
)

// Builder accumulates rows for a new Table.
// A Builder is single-use: after Build, further calls return ErrSealed.
type Builder struct {
	table  *Table
	sealed bool
}

// NewBuilder creates a builder for a table with the given ordered columns.
// Column names must be non-empty and unique.
func NewBuilder(name string, columns ...string) (*Builder, error) {
	s := &schema{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("table %q: column name must not be empty", name)
		}
		if _, dup := s.index[c]; dup {
			return nil, fmt.Errorf("table %q: %w: %q", name, ErrDuplicateColumn, c)
		}
		s.index[c] = len(s.columns)
		s.columns = append(s.columns, c)
	}

	return &Builder{
		table: &Table{
			name:   name,
			schema: s,
			rows:   make(map[string][]Value),
		},
	}, nil
}

// Add appends a row with one value per column, in schema order.
// A nil value is stored as Null.
func (b *Builder) Add(id string, values ...Value) error {
	if b.sealed {
		return ErrSealed
	}
	t := b.table
	if len(values) != len(t.schema.columns) {
		return fmt.Errorf("table %q row %q: %w (got %d, want %d)",
			t.name, id, ErrRowWidth, len(values), len(t.schema.columns))
	}
	if _, dup := t.rows[id]; dup {
		return fmt.Errorf("table %q: %w: %q", t.name, ErrDuplicateID, id)
	}

	row := make([]Value, len(values))
	for i, v := range values {
		if v == nil {
			v = Null{}
		}
		row[i] = v
	}
	t.rows[id] = row
	t.ids = append(t.ids, id)
	return nil
}

// AddRecord appends a row from a field map. Missing columns are Null;
// fields outside the schema are a *SchemaError.
func (b *Builder) AddRecord(id string, record map[string]Value) error {
	if b.sealed {
		return ErrSealed
	}
	t := b.table
	values := make([]Value, len(t.schema.columns))
	for field, v := range record {
		i, ok := t.schema.index[field]
		if !ok {
			return &SchemaError{Table: t.name, Field: field}
		}
		values[i] = v
	}
	return b.Add(id, values...)
}

// Len returns the number of rows added so far.
func (b *Builder) Len() int {
	return len(b.table.ids)
}

// Build seals the builder and returns the immutable table.
func (b *Builder) Build() *Table {
	b.sealed = true
	return b.table
}
