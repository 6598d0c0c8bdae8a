package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// PropertyInfo describes one catalog property.
type PropertyInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Units       []string `json:"units,omitempty"`
	Methods     []string `json:"methods"`
}

// NewPropertiesCommand creates the properties command.
func NewPropertiesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the properties in the catalog",
		Long: `List every property in the catalog with its units and methods in
priority order. Reads only the catalog; no data is loaded.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProperties(rootOpts, cmd)
		},
	}
}

func runProperties(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.loadCatalog()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, fmt.Sprintf("failed to load catalog: %v", err), nil)
	}

	infos := make([]PropertyInfo, 0, len(c.Properties))
	for _, p := range c.Properties {
		info := PropertyInfo{
			Name:        p.Name,
			Description: p.Description,
			Methods:     p.Methods(),
		}
		for _, f := range p.Fields {
			if f.Unit != "" {
				info.Units = append(info.Units, f.Unit)
			}
		}
		infos = append(infos, info)
	}

	return formatter.Success(infos, func(w io.Writer) {
		for _, info := range infos {
			fmt.Fprintf(w, "%s", info.Name)
			if len(info.Units) > 0 {
				fmt.Fprintf(w, " (%s)", strings.Join(info.Units, ", "))
			}
			if info.Description != "" {
				fmt.Fprintf(w, ": %s", info.Description)
			}
			fmt.Fprintln(w)
			for _, m := range info.Methods {
				fmt.Fprintf(w, "  %s\n", m)
			}
		}
	})
}
