package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/chemref/internal/table"
)

// Row is one fixture row. Values are converted with table.FromAny, so nil is
// Null and Go numbers, strings and bools map to their Value variants.
type Row struct {
	ID     string
	Values []any
}

// R builds a Row.
func R(id string, values ...any) Row {
	return Row{ID: id, Values: values}
}

// Table builds an immutable table, failing the test on any error.
func Table(tb testing.TB, name string, columns []string, rows ...Row) *table.Table {
	tb.Helper()
	b, err := table.NewBuilder(name, columns...)
	if err != nil {
		tb.Fatalf("testutil.Table(%q): %v", name, err)
	}
	for _, r := range rows {
		values := make([]table.Value, len(r.Values))
		for i, raw := range r.Values {
			v, err := table.FromAny(raw)
			if err != nil {
				tb.Fatalf("testutil.Table(%q) row %q: %v", name, r.ID, err)
			}
			values[i] = v
		}
		if err := b.Add(r.ID, values...); err != nil {
			tb.Fatalf("testutil.Table(%q): %v", name, err)
		}
	}
	return b.Build()
}

// FlammabilityTable is a small IEC-style table with a null flash point,
// a zero, and a name column.
func FlammabilityTable(tb testing.TB) *table.Table {
	tb.Helper()
	return Table(tb, "safety/iec", []string{"Name", "T_flash", "T_autoignition", "LFL", "UFL"},
		R("74-82-8", "Methane", nil, 873.15, 0.044, 0.17),
		R("64-17-5", "Ethanol", 285.15, 636.15, 0.031, 0.19),
		R("7440-37-1", "Argon", 0.0, nil, nil, nil),
	)
}

// WriteFile writes content to name under dir and returns the full path.
func WriteFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("testutil.WriteFile: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("testutil.WriteFile: %v", err)
	}
	return path
}
