package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chemref/internal/catalog"
)

// CatalogError is one validation failure with its source position.
type CatalogError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// CatalogSummary is the payload of a successful catalog validate.
type CatalogSummary struct {
	Valid      bool `json:"valid"`
	Datasets   int  `json:"datasets"`
	Properties int  `json:"properties"`
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the property catalog",
	}
	cmd.AddCommand(newCatalogValidateCommand(rootOpts))
	return cmd
}

func newCatalogValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a CUE catalog",
		Long: `Validate a CUE catalog against the catalog schema and check its cross
references: dataset keys, property names and method names must be unique,
and every source must name a declared dataset.

Without a file, the configured catalog (or the bundled one) is checked.

Exit codes:
  0 - Catalog is valid
  1 - Catalog is invalid
  2 - Command error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rootOpts.Catalog = args[0]
			}
			return runCatalogValidate(rootOpts, cmd)
		},
	}
}

func runCatalogValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.loadCatalog()
	if err != nil {
		var ce *catalog.Error
		if !errors.As(err, &ce) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		detail := CatalogError{Field: ce.Field, Message: ce.Message}
		if ce.Pos.IsValid() {
			detail.File = ce.Pos.Filename()
			detail.Line = ce.Pos.Line()
			detail.Column = ce.Pos.Column()
		}
		if err := formatter.Error(ErrCodeCatalogInvalid, ce.Error(), []CatalogError{detail}); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, "catalog is invalid", err)
	}

	summary := CatalogSummary{Valid: true, Datasets: len(c.Datasets), Properties: len(c.Properties)}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "✓ catalog is valid: %d datasets, %d properties\n", summary.Datasets, summary.Properties)
	})
}
