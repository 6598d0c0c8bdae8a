package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// MethodsResult is the payload of the methods command.
type MethodsResult struct {
	Property string   `json:"property"`
	ID       string   `json:"id,omitempty"`
	Methods  []string `json:"methods"`
}

// NewMethodsCommand creates the methods command.
func NewMethodsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "methods <property> [casrn]",
		Short: "List the methods of a property",
		Long: `List the methods of a property in priority order.

With a CAS number, only sources with data for it are listed, followed by
the estimators whose inputs were given. Without one, every method is listed.

Examples:
  chemref methods dipole
  chemref methods LFL 74-82-8 --hc -890590 --atoms C=1,H=4`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 2 {
				id = args[1]
			}
			return runMethods(opts, args[0], id, cmd)
		},
	}

	addLookupFlags(cmd, opts)

	return cmd
}

func runMethods(opts *LookupOptions, name, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	db, err := opts.openDatabank(cmd.Context())
	defer opts.Close()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, fmt.Sprintf("failed to load data: %v", err), nil)
	}

	p, err := db.Property(name)
	if err != nil {
		return unknownProperty(formatter, db, err)
	}

	result := MethodsResult{Property: name, ID: id}
	switch {
	case id == "", name == carcinogenProperty:
		result.Methods = p.AllMethods()
	default:
		result.Methods = p.Methods(id, opts.inputs(cmd))
	}
	if result.Methods == nil {
		result.Methods = []string{}
	}

	return formatter.Success(result, func(w io.Writer) {
		if len(result.Methods) == 0 {
			fmt.Fprintln(w, "(none)")
			return
		}
		for _, m := range result.Methods {
			fmt.Fprintln(w, m)
		}
	})
}
