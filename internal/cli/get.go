package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/resolve"
	"github.com/roach88/chemref/internal/table"
	"github.com/roach88/chemref/pkg/chemicals"
)

// carcinogenProperty reports a status per listing instead of one value.
const carcinogenProperty = "Carcinogen"

// LookupOptions holds the flags shared by get and methods.
type LookupOptions struct {
	*RootOptions
	Method string
	Hc     float64
	Atoms  map[string]int
}

// GetResult is the payload of the get command.
type GetResult struct {
	Property string            `json:"property"`
	ID       string            `json:"id"`
	Found    bool              `json:"found"`
	Value    table.Value       `json:"value,omitempty"`
	Unit     string            `json:"unit,omitempty"`
	Method   string            `json:"method,omitempty"`
	Statuses map[string]string `json:"statuses,omitempty"`
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <property> <casrn>",
		Short: "Look up a property of a chemical",
		Long: `Look up a property of a chemical by CAS registry number.

Without --method, sources are tried in priority order and estimators are
used only when no source has data. A chemical without data is not an error.

Examples:
  chemref get dipole 64-17-5
  chemref get dipole 64-17-5 --method POLING
  chemref get LFL 74-82-8 --hc -890590 --atoms C=1,H=4 --method "Suzuki (1994)"
  chemref get Carcinogen 71-43-2 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], args[1], cmd)
		},
	}

	addLookupFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.Method, "method", "m", "", "source or estimator to use (default: by priority)")

	return cmd
}

func addLookupFlags(cmd *cobra.Command, opts *LookupOptions) {
	cmd.Flags().Float64Var(&opts.Hc, "hc", 0, "heat of combustion in J/mol, for estimators")
	cmd.Flags().StringToIntVar(&opts.Atoms, "atoms", nil, "molecular formula for estimators, e.g. C=1,H=4")
}

// inputs returns the estimator inputs given on the command line.
func (o *LookupOptions) inputs(cmd *cobra.Command) resolve.Inputs {
	in := resolve.Inputs{}
	if cmd.Flags().Changed("hc") {
		in[databank.InputHc] = o.Hc
	}
	if len(o.Atoms) > 0 {
		in[databank.InputAtoms] = o.Atoms
	}
	return in
}

func runGet(opts *LookupOptions, name, id string, cmd *cobra.Command) error {
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

	result := GetResult{Property: name, ID: id}
	if name == carcinogenProperty {
		err = resolveStatuses(p, id, opts.Method, &result)
	} else {
		err = resolveValue(p, id, opts.inputs(cmd), opts.Method, &result)
	}
	if err != nil {
		return invalidMethod(formatter, err)
	}

	formatter.VerboseLog("resolved %s(%s): found=%t method=%q", name, id, result.Found, result.Method)
	return formatter.Success(result, func(w io.Writer) { writeGetText(w, p, result) })
}

func resolveValue(p *resolve.Property, id string, in resolve.Inputs, method string, out *GetResult) error {
	res, err := p.Value(id, in, method)
	if err != nil {
		return err
	}
	if res.Found() {
		out.Found = true
		out.Value = res.Value
		out.Unit = res.Unit
		out.Method = res.Source
	}
	return nil
}

// resolveStatuses fills one carcinogen status per listing. Every listing
// answers, with Unlisted when it does not mention id.
func resolveStatuses(p *resolve.Property, id, method string, out *GetResult) error {
	listings := p.Registry().Names()
	if method != "" {
		listings = []string{method}
	}

	out.Statuses = make(map[string]string, len(listings))
	for _, listing := range listings {
		res, err := p.Value(id, nil, listing)
		if err != nil {
			return err
		}
		status := chemicals.Unlisted
		if code, ok := res.Float(); ok && res.Found() {
			status = chemicals.CarcinogenStatus(listing, code)
		} else if text, ok := res.Text(); ok {
			status = text
		}
		out.Statuses[listing] = status
	}
	out.Found = true
	return nil
}

func writeGetText(w io.Writer, p *resolve.Property, r GetResult) {
	if r.Statuses != nil {
		for _, listing := range p.Registry().Names() {
			if status, ok := r.Statuses[listing]; ok {
				fmt.Fprintf(w, "%s: %s\n", listing, status)
			}
		}
		return
	}
	if !r.Found {
		fmt.Fprintf(w, "%s(%s): no data\n", r.Property, r.ID)
		return
	}
	value := table.Format(r.Value)
	if r.Unit != "" {
		value += " " + r.Unit
	}
	fmt.Fprintf(w, "%s(%s) = %s [%s]\n", r.Property, r.ID, value, r.Method)
}

// unknownProperty reports a property name missing from the catalog,
// listing the known ones.
func unknownProperty(f *OutputFormatter, db *databank.Databank, err error) error {
	if !errors.Is(err, databank.ErrUnknownProperty) {
		return f.Fail(ExitCommandError, ErrCodeLoadFailed, err.Error(), nil)
	}
	names, _ := db.Properties()
	return f.Fail(ExitCommandError, ErrCodeUnknownProperty, err.Error(), map[string]any{"properties": names})
}

// invalidMethod reports a method rejected by a property.
func invalidMethod(f *OutputFormatter, err error) error {
	var ime *resolve.InvalidMethodError
	if errors.As(err, &ime) {
		return f.Fail(ExitCommandError, ErrCodeInvalidMethod, ime.Error(), map[string]any{"valid": ime.Valid})
	}
	return f.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}
