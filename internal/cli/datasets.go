package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// DatasetStatus describes a catalog dataset and its stored copy, if any.
type DatasetStatus struct {
	Key      string `json:"key"`
	File     string `json:"file"`
	Format   string `json:"format"`
	Imported bool   `json:"imported"`
	ImportID string `json:"import_id,omitempty"`
	Rows     int    `json:"rows,omitempty"`
}

// NewDatasetsCommand creates the datasets command.
func NewDatasetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List catalog datasets and their imported copies",
		Long: `List the datasets in the catalog. With --db, also show which of them
have been imported into the store and will be read from it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets(rootOpts, cmd)
		},
	}
}

func runDatasets(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	defer opts.Close()

	c, err := opts.loadCatalog()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, fmt.Sprintf("failed to load catalog: %v", err), nil)
	}

	statuses := make([]DatasetStatus, 0, len(c.Datasets))
	index := make(map[string]int, len(c.Datasets))
	for _, d := range c.Datasets {
		index[d.Key] = len(statuses)
		statuses = append(statuses, DatasetStatus{Key: d.Key, File: d.File, Format: d.Format})
	}

	if opts.Database != "" {
		st, err := opts.openStore()
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		stored, err := st.ListDatasets(cmd.Context())
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, err.Error(), nil)
		}
		for _, info := range stored {
			i, ok := index[info.Key]
			if !ok {
				formatter.VerboseLog("stored dataset %s is not in the catalog", info.Key)
				continue
			}
			statuses[i].Imported = true
			statuses[i].ImportID = info.ImportID
			statuses[i].Rows = info.Rows
		}
	}

	return formatter.Success(statuses, func(w io.Writer) {
		for _, s := range statuses {
			fmt.Fprintf(w, "%s\t%s (%s)", s.Key, s.File, s.Format)
			if s.Imported {
				fmt.Fprintf(w, "\timported: %d rows, import %s", s.Rows, s.ImportID)
			}
			fmt.Fprintln(w)
		}
	})
}
