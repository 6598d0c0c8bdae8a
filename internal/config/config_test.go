package config

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chemref/internal/testutil"
)

func quietLoader(home, cwd string) *Loader {
	return &Loader{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		home:   home,
		cwd:    cwd,
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, FormatText, c.Format)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := &Config{Format: "yaml"}
	assert.ErrorContains(t, c.Validate(), `invalid format "yaml"`)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "chemref.yaml", `
database: chem.db
format: json
verbose: true
metrics_file: out.prom
`)

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Database: "chem.db", Format: "json", Verbose: true, MetricsFile: "out.prom"}, c)
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "chemref.yaml", "databse: typo.db\n")

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "databse")
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "chemref.yaml", "")

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)
}

func TestMerge(t *testing.T) {
	c := DefaultConfig()
	c.Merge(&Config{Database: "a.db"})
	c.Merge(&Config{Format: "json", Catalog: "c.cue"})
	c.Merge(nil)
	c.Merge(&Config{})

	assert.Equal(t, &Config{Database: "a.db", Format: "json", Catalog: "c.cue"}, c)
}

func TestLoader_Layers(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")

	testutil.WriteFile(t, home, filepath.Join(UserConfigDir, UserConfigFile), "database: user.db\nverbose: true\n")
	testutil.WriteFile(t, project, ProjectConfigFile, "database: project.db\nformat: json\n")
	testutil.WriteFile(t, nested, ".keep", "")

	c, err := quietLoader(home, nested).Load("")
	require.NoError(t, err)
	assert.Equal(t, "project.db", c.Database, "project overrides user")
	assert.Equal(t, "json", c.Format)
	assert.True(t, c.Verbose, "user settings survive")
}

func TestLoader_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "custom.yaml", "metrics_file: m.prom\n")

	c, err := quietLoader("", "").Load(path)
	require.NoError(t, err)
	assert.Equal(t, "m.prom", c.MetricsFile)
	assert.Equal(t, FormatText, c.Format)

	_, err = quietLoader("", "").Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoader_InvalidFormat(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.yaml", "format: xml\n")

	_, err := quietLoader("", "").Load(path)
	assert.ErrorContains(t, err, "invalid format")
}

func TestLoader_NothingFound(t *testing.T) {
	c, err := quietLoader(t.TempDir(), t.TempDir()).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}
