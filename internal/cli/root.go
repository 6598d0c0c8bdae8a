// Package cli implements the chemref command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/config"
	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/dataset"
	"github.com/roach88/chemref/internal/metrics"
	"github.com/roach88/chemref/internal/store"
)

// RootOptions holds global flags for all commands. After the root
// command's pre-run hook they hold the merged configuration.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	ConfigPath  string
	Database    string
	Catalog     string
	MetricsFile string

	logger    *slog.Logger
	recorder  *metrics.Recorder
	store     *store.Store
	storeOpts []store.Option // overridden by tests for deterministic import ids
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command for the chemref CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chemref",
		Short: "chemref - chemical property reference",
		Long: `Look up physical and safety properties of chemicals by CAS number.

Each property draws on several data sources in a fixed priority order,
with estimation methods as a fallback where they exist.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: chemref.yaml in the current or a parent directory)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "SQLite store with imported datasets")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "CUE catalog replacing the bundled one")
	cmd.PersistentFlags().StringVar(&opts.MetricsFile, "metrics-file", "", "write resolution metrics to this file")

	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewMethodsCommand(opts))
	cmd.AddCommand(NewPropertiesCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewDatasetsCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// setup merges the config file layers with the flags set on the command
// line and configures logging.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)

	cfg, err := config.NewLoader(o.logger).Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("db") {
		cfg.Database = o.Database
	}
	if flags.Changed("catalog") {
		cfg.Catalog = o.Catalog
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.MetricsFile
	}
	if o.Verbose {
		cfg.Verbose = true
	}

	if !isValidFormat(cfg.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
	}

	o.Format = cfg.Format
	o.Database = cfg.Database
	o.Catalog = cfg.Catalog
	o.MetricsFile = cfg.MetricsFile
	if cfg.Verbose && !o.Verbose {
		o.Verbose = true
		o.logger = newLogger(cmd.ErrOrStderr(), true)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatter returns an OutputFormatter writing to the command's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// Logger returns the command logger, or a discarding one before setup.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

// loadCatalog returns the configured catalog, or the bundled one.
func (o *RootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.Catalog == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(o.Catalog)
}

// openStore opens the configured store once per command.
func (o *RootOptions) openStore() (*store.Store, error) {
	if o.store != nil {
		return o.store, nil
	}
	if o.Database == "" {
		return nil, errors.New("no database configured: use --db or set database in chemref.yaml")
	}
	st, err := store.Open(o.Database, o.storeOpts...)
	if err != nil {
		return nil, err
	}
	o.store = st
	return st, nil
}

// openDatabank builds and loads a databank over the configured catalog.
// Datasets imported into the store take precedence over the bundled data.
func (o *RootOptions) openDatabank(ctx context.Context) (*databank.Databank, error) {
	c, err := o.loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	o.recorder = metrics.New()
	logger := o.Logger()

	var source databank.Chain
	if o.Database != "" {
		st, err := o.openStore()
		if err != nil {
			return nil, err
		}
		source = append(source, st)
	}
	source = append(source, dataset.NewLoader(logger))

	db := databank.New(
		databank.WithCatalog(c),
		databank.WithSource(source),
		databank.WithLogger(logger),
		databank.WithObserver(o.recorder),
	)
	if err := db.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Close writes metrics when a metrics file is configured and closes the
// store. Commands defer it after opening a databank or store.
func (o *RootOptions) Close() error {
	var errs []error
	if o.recorder != nil && o.MetricsFile != "" {
		errs = append(errs, o.recorder.WriteTextfile(o.MetricsFile))
		o.Logger().Debug("metrics written", "path", o.MetricsFile)
	}
	if o.store != nil {
		errs = append(errs, o.store.Close())
		o.store = nil
	}
	return errors.Join(errs...)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
