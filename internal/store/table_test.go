package store

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/table"
	"github.com/roach88/chemref/internal/testutil"
)

func TestWriteReadTable_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := testutil.Table(t, "safety/ontario", []string{"Name", "TWA (ppm)", "Skin", "Note"},
		testutil.R("98-00-0", "Furfuryl alcohol", 10.0, true, nil),
		testutil.R("67-64-1", "Acetone", 500.0, false, "1.5"),
		testutil.R("1395-21-7", "Subtilisins", nil, nil, nil),
		testutil.R("7664-38-2", "Phosphoric acid", 0.2496591659433746, false, ""),
	)

	imp, err := s.WriteTable(ctx, "safety/ontario", "limits.json", in)
	require.NoError(t, err)
	assert.Equal(t, Import{
		ID: "imp-1", Seq: 1, Dataset: "safety/ontario", Source: "limits.json", Rows: 4, Columns: 4,
	}, imp)

	out, err := s.ReadTable(ctx, "safety/ontario")
	require.NoError(t, err)

	assert.Equal(t, in.Name(), out.Name())
	assert.Equal(t, in.Columns(), out.Columns())
	assert.Equal(t, in.IDs(), out.IDs(), "row order survives")
	for _, id := range in.IDs() {
		want, _ := in.Row(id)
		got, ok := out.Row(id)
		require.True(t, ok, id)
		assert.Equal(t, want.Values(), got.Values(), id)
	}

	v, err := out.Field("67-64-1", "Note")
	require.NoError(t, err)
	assert.Equal(t, table.Text("1.5"), v, "numeric-looking text stays text")

	v, err = out.Field("67-64-1", "Skin")
	require.NoError(t, err)
	assert.Equal(t, table.Bool(false), v)
}

func TestWriteTable_Replaces(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := testutil.Table(t, "dipole/cccbdb", []string{"Dipole"},
		testutil.R("64-17-5", 1.44),
		testutil.R("7732-18-5", 1.85),
	)
	second := testutil.Table(t, "dipole/cccbdb", []string{"Dipole", "Name"},
		testutil.R("74-82-8", 0.0, "Methane"),
	)

	_, err := s.WriteTable(ctx, "dipole/cccbdb", "a.tsv", first)
	require.NoError(t, err)
	imp, err := s.WriteTable(ctx, "dipole/cccbdb", "b.tsv", second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), imp.Seq)

	out, err := s.ReadTable(ctx, "dipole/cccbdb")
	require.NoError(t, err)
	assert.Equal(t, []string{"74-82-8"}, out.IDs())
	assert.Equal(t, []string{"Dipole", "Name"}, out.Columns())

	var cells int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM dataset_cells`).Scan(&cells))
	assert.Equal(t, 2, cells, "old cells are removed by cascade")

	log, err := s.Imports(ctx, "dipole/cccbdb")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "a.tsv", log[0].Source)
	assert.Equal(t, "b.tsv", log[1].Source)
}

func TestWriteTable_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.WriteTable(ctx, "", "x", testutil.FlammabilityTable(t))
	assert.ErrorContains(t, err, "empty dataset key")

	_, err = s.WriteTable(ctx, "k", "x", nil)
	assert.ErrorContains(t, err, "nil table")
}

func TestReadTable_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadTable(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadTable_EmptyTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.WriteTable(ctx, "empty", "", testutil.Table(t, "empty", []string{"X"}))
	require.NoError(t, err)

	out, err := s.ReadTable(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, []string{"X"}, out.Columns())
}

func TestListDatasets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.ListDatasets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = s.WriteTable(ctx, "safety/iec", "iec.tsv", testutil.FlammabilityTable(t))
	require.NoError(t, err)
	_, err = s.WriteTable(ctx, "dipole/cccbdb", "c.tsv", testutil.Table(t, "dipole/cccbdb", []string{"Dipole"}, testutil.R("64-17-5", 1.44)))
	require.NoError(t, err)

	got, err = s.ListDatasets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DatasetInfo{
		{Key: "dipole/cccbdb", Name: "dipole/cccbdb", ImportID: "imp-2", Rows: 1},
		{Key: "safety/iec", Name: "safety/iec", ImportID: "imp-1", Rows: 3},
	}, got)

	all, err := s.Imports(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteDataset(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.WriteTable(ctx, "safety/iec", "iec.tsv", testutil.FlammabilityTable(t))
	require.NoError(t, err)

	require.NoError(t, s.DeleteDataset(ctx, "safety/iec"))
	_, err = s.ReadTable(ctx, "safety/iec")
	assert.True(t, IsNotFound(err))

	log, err := s.Imports(ctx, "safety/iec")
	require.NoError(t, err)
	assert.Len(t, log, 1, "import log is kept")

	assert.True(t, IsNotFound(s.DeleteDataset(ctx, "safety/iec")))
}

func TestLoadTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.WriteTable(ctx, "safety/iec", "iec.tsv", testutil.FlammabilityTable(t))
	require.NoError(t, err)

	tbl, err := s.LoadTable(ctx, catalog.Dataset{Key: "safety/iec", File: "ignored.tsv", Format: "tsv"})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = s.LoadTable(ctx, catalog.Dataset{Key: "safety/nfpa"})
	assert.True(t, IsNotFound(err))
}

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}
	a, b := g.Generate(), g.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestFixedGenerator_Exhausted(t *testing.T) {
	g := NewFixedGenerator("only")
	assert.Equal(t, "only", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}
