package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/chemref/internal/dataset"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	InputFormat string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <dataset> <file>",
		Short: "Import a data file into the store",
		Long: `Import a TSV, CSV or JSON data file into the SQLite store, replacing
the stored copy of the catalog dataset. Later lookups with the same --db
read the imported data in place of the bundled file.

The file's first column (or JSON object key) is the CAS number; the
remaining columns must include every column the catalog reads from it.

Examples:
  chemref import dipole/cccbdb ./cccbdb.tsv --db ./chemref.db
  chemref import safety/ontario ./limits.json --db ./chemref.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "", "file format (tsv|csv|json, default: from extension)")

	return cmd
}

func runImport(opts *ImportOptions, key, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	defer opts.Close()

	c, err := opts.loadCatalog()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, fmt.Sprintf("failed to load catalog: %v", err), nil)
	}
	if _, ok := c.Dataset(key); !ok {
		return formatter.Fail(ExitCommandError, ErrCodeUnknownDataset,
			fmt.Sprintf("unknown dataset %q", key), map[string]any{"datasets": c.DatasetKeys()})
	}

	format := opts.InputFormat
	if format == "" {
		if format, err = dataset.FormatFromPath(path); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("failed to open %s: %v", path, err), nil)
	}
	defer f.Close()

	t, err := dataset.Decode(key, format, f)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, fmt.Sprintf("failed to read %s: %v", path, err), nil)
	}
	for _, p := range c.Properties {
		for _, s := range p.Sources {
			if s.Dataset != key {
				continue
			}
			for _, column := range p.Columns() {
				if !t.HasColumn(column) {
					return formatter.Fail(ExitCommandError, ErrCodeLoadFailed,
						fmt.Sprintf("%s lacks column %q read by property %s", path, column, p.Name), nil)
				}
			}
		}
	}

	st, err := opts.openStore()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
	}
	imp, err := st.WriteTable(cmd.Context(), key, path, t)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
	}
	opts.Logger().Debug("dataset imported", "dataset", key, "rows", imp.Rows, "import", imp.ID)

	return formatter.Success(imp, func(w io.Writer) {
		fmt.Fprintf(w, "Imported %d rows, %d columns into %s (import %s)\n", imp.Rows, imp.Columns, imp.Dataset, imp.ID)
	})
}
