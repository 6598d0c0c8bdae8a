package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh store with fixed import ids.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chemref.db"),
		WithIDGenerator(NewFixedGenerator("imp-1", "imp-2", "imp-3", "imp-4")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func pragma(t *testing.T, s *Store, name string) string {
	t.Helper()
	var value string
	require.NoError(t, s.db.QueryRow("PRAGMA "+name).Scan(&value))
	return value
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chemref.db")

	for range 3 {
		s, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
	_, err := os.Stat(path)
	require.NoError(t, err)

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, name := range []string{"datasets", "dataset_columns", "dataset_rows", "dataset_cells", "imports"} {
		var got string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&got)
		assert.NoError(t, err, "table %s", name)
	}

	version, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("/nonexistent/dir/chemref.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store /nonexistent/dir/chemref.db")

	assert.NoError(t, (&Store{}).Close())
}

func TestPragmas(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "wal", pragma(t, s, "journal_mode"))
	assert.Equal(t, "1", pragma(t, s, "synchronous"))
	assert.Equal(t, "5000", pragma(t, s, "busy_timeout"))
	assert.Equal(t, "1", pragma(t, s, "foreign_keys"))
}

func TestMigrations(t *testing.T) {
	s := newTestStore(t)

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_imports_dataset'").Scan(&name)
	require.NoError(t, err)

	// A store left at an older version catches up on the next open.
	_, err = s.db.Exec("DROP INDEX idx_imports_dataset")
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 0")
	require.NoError(t, err)
	require.NoError(t, migrate(s.db))

	err = s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_imports_dataset'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "1", pragma(t, s, "user_version"))
}
