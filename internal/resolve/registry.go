package resolve

import (
	"fmt"
	"iter"
	"slices"

	"github.com/roach88/chemref/internal/table"
)

// Source is one named, priority-ordered dataset backing a property.
type Source struct {
	Name  string
	Table *table.Table
}

// Registry is an insertion-ordered mapping of source name to table.
// Iteration order is the fallback priority order and never changes after
// construction.
type Registry struct {
	names  []string
	tables map[string]*table.Table
}

// NewRegistry builds a registry from sources in priority order.
// Source names must be non-empty and unique, and every table non-nil.
func NewRegistry(sources ...Source) (*Registry, error) {
	r := &Registry{
		names:  make([]string, 0, len(sources)),
		tables: make(map[string]*table.Table, len(sources)),
	}
	for i, s := range sources {
		if s.Name == "" {
			return nil, fmt.Errorf("registry: source %d has an empty name", i)
		}
		if s.Table == nil {
			return nil, fmt.Errorf("registry: source %q has no table", s.Name)
		}
		if _, dup := r.tables[s.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate source %q", s.Name)
		}
		r.names = append(r.names, s.Name)
		r.tables[s.Name] = s.Table
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// Intended for tests and static wiring.
func MustRegistry(sources ...Source) *Registry {
	r, err := NewRegistry(sources...)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the source names in priority order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.names)
}

// Has reports whether name is a registered source.
func (r *Registry) Has(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// Lookup returns the table registered under name.
func (r *Registry) Lookup(name string) (*table.Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// All iterates sources in priority order.
func (r *Registry) All() iter.Seq2[string, *table.Table] {
	return func(yield func(string, *table.Table) bool) {
		for _, name := range r.names {
			if !yield(name, r.tables[name]) {
				return
			}
		}
	}
}

// CheckFields returns a *table.SchemaError if any registered table lacks one
// of fields.
func (r *Registry) CheckFields(fields ...string) error {
	for _, name := range r.names {
		t := r.tables[name]
		for _, f := range fields {
			if !t.HasColumn(f) {
				return &table.SchemaError{Table: t.Name(), Field: f}
			}
		}
	}
	return nil
}
