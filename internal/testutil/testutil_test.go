package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chemref/internal/table"
)

func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs("")
	assert.Equal(t, "import-0001", g.Generate())
	assert.Equal(t, "import-0002", g.Generate())

	g.Reset()
	assert.Equal(t, "import-0001", g.Generate())

	assert.Equal(t, "x-0001", NewSequentialIDs("x").Generate())
}

func TestSequentialIDs_Concurrent(t *testing.T) {
	g := NewSequentialIDs("c")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50, "ids are unique")
}

func TestTable(t *testing.T) {
	tbl := FlammabilityTable(t)

	assert.Equal(t, "safety/iec", tbl.Name())
	assert.Equal(t, 3, tbl.Len())

	v, err := tbl.Field("64-17-5", "T_flash")
	require.NoError(t, err)
	assert.Equal(t, table.Number(285.15), v)

	assert.True(t, tbl.HasField("7440-37-1", "T_flash"))
	assert.False(t, tbl.HasField("74-82-8", "T_flash"))
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "nested/a.tsv", "CAS\tX\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CAS\tX\n", string(data))
}
