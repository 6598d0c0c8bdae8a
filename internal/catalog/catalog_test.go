package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"dipole", "TWA", "STEL", "Ceiling", "Skin", "Carcinogen",
		"T_flash", "T_autoignition", "LFL", "UFL",
	}, c.PropertyNames())
	assert.Len(t, c.DatasetKeys(), 9)

	dipole, ok := c.Property("dipole")
	require.True(t, ok)
	assert.Equal(t, []string{"CCCBDB", "MULLER", "POLING"}, dipole.Methods())
	assert.Equal(t, []Field{{Column: "Dipole", Unit: "debye"}}, dipole.Fields)
	assert.Empty(t, dipole.Estimators)

	lfl, ok := c.Property("LFL")
	require.True(t, ok)
	assert.Equal(t, []string{
		"IEC 60079-20-1 (2010)", "NFPA 497 (2008)", "Suzuki (1994)", "Crowl and Louvar (2001)",
	}, lfl.Methods())
	assert.Equal(t, "suzuki_lfl", lfl.Estimators[0].ID)

	tflash, ok := c.Property("T_flash")
	require.True(t, ok)
	assert.Equal(t, []string{"IEC 60079-20-1 (2010)", "NFPA 497 (2008)", "Serat DIPPR (2017)"}, tflash.Methods())

	twa, ok := c.Property("TWA")
	require.True(t, ok)
	assert.Equal(t, []string{"TWA (ppm)", "TWA (mg/m^3)"}, twa.Columns())

	ds, ok := c.Dataset("safety/ontario")
	require.True(t, ok)
	assert.Equal(t, "json", ds.Format)

	_, ok = c.Property("nope")
	assert.False(t, ok)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, again, "bundled catalog is compiled once")
}

const validCatalog = `
catalog: {
	datasets: [
		{key: "a", file: "a.tsv", format: "tsv"},
		{key: "b", file: "b.csv", format: "csv"},
	]
	properties: [{
		name: "dipole"
		fields: [{column: "Dipole", unit: "debye"}]
		sources: [
			{method: "A", dataset: "a"},
			{method: "B", dataset: "b"},
		]
	}]
}
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse("valid.cue", []byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, c.Properties, 1)
	assert.Equal(t, []string{"A", "B"}, c.Properties[0].Methods())
	assert.Equal(t, []string{"a", "b"}, c.DatasetKeys())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		field   string
		message string
	}{
		{
			name:    "missing catalog",
			src:     `other: 1`,
			field:   "catalog",
			message: "catalog is required",
		},
		{
			name: "dangling dataset",
			src: `
catalog: {
	datasets: [{key: "a", file: "a.tsv", format: "tsv"}]
	properties: [{
		name: "dipole"
		fields: [{column: "Dipole"}]
		sources: [{method: "A", dataset: "missing"}]
	}]
}`,
			field:   "properties[0].sources[0].dataset",
			message: `property dipole: unknown dataset "missing"`,
		},
		{
			name: "duplicate dataset",
			src: `
catalog: {
	datasets: [
		{key: "a", file: "a.tsv", format: "tsv"},
		{key: "a", file: "b.tsv", format: "tsv"},
	]
	properties: []
}`,
			field:   "datasets[1].key",
			message: `duplicate dataset key "a"`,
		},
		{
			name: "duplicate property",
			src: `
catalog: {
	datasets: [{key: "a", file: "a.tsv", format: "tsv"}]
	properties: [
		{name: "p", fields: [{column: "X"}], sources: [{method: "A", dataset: "a"}]},
		{name: "p", fields: [{column: "Y"}], sources: [{method: "A", dataset: "a"}]},
	]
}`,
			field:   "properties[1].name",
			message: `duplicate property "p"`,
		},
		{
			name: "estimator shadows source",
			src: `
catalog: {
	datasets: [{key: "a", file: "a.tsv", format: "tsv"}]
	properties: [{
		name: "LFL"
		fields: [{column: "LFL"}]
		sources: [{method: "A", dataset: "a"}]
		estimators: [{method: "A", id: "suzuki_lfl"}]
	}]
}`,
			field:   "properties[0]",
			message: `property LFL: duplicate method "A"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.cue", []byte(tt.src))
			require.Error(t, err)

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
			assert.Equal(t, tt.message, ce.Message)
			if ce.Pos.IsValid() {
				assert.Equal(t, "bad.cue", ce.Pos.Filename())
			}
		})
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad format", `catalog: {datasets: [{key: "a", file: "a.xml", format: "xml"}], properties: []}`},
		{"unknown field", `catalog: {datasets: [], properties: [], extra: true}`},
		{"no fields", `catalog: {datasets: [], properties: [{name: "p", fields: [], sources: []}]}`},
		{"not concrete", `catalog: {datasets: [{key: "a", file: string, format: "tsv"}], properties: []}`},
		{"bad key", `catalog: {datasets: [{key: "A B", file: "a.tsv", format: "tsv"}], properties: []}`},
		{"syntax", `catalog: {`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.cue", []byte(tt.src))
			require.Error(t, err)

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.NotEmpty(t, ce.Message)
			assert.NotEmpty(t, ce.Error())
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.cue")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dipole"}, c.PropertyNames())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.cue"))
	assert.ErrorContains(t, err, "read catalog")
}

func TestError_Format(t *testing.T) {
	err := &Error{Field: "catalog", Message: "catalog is required"}
	assert.Equal(t, "catalog: catalog is required", err.Error())
}
