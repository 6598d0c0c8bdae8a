package databank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/dataset"
	"github.com/roach88/chemref/internal/resolve"
	"github.com/roach88/chemref/internal/table"
)

// Lookup errors.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrUnknownDataset  = errors.New("unknown dataset")
)

// Databank holds the loaded tables and property families.
type Databank struct {
	catalog    *catalog.Catalog
	source     TableSource
	logger     *slog.Logger
	observer   resolve.Observer
	estimators map[string]resolve.Estimator

	once       sync.Once
	err        error
	tables     map[string]*table.Table
	properties map[string]*resolve.Property
}

// Option configures a Databank.
type Option func(*Databank)

// WithCatalog replaces the bundled catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(d *Databank) {
		d.catalog = c
	}
}

// WithSource replaces the bundled data files as the table source.
func WithSource(s TableSource) Option {
	return func(d *Databank) {
		d.source = s
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Databank) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithObserver attaches o to every property. If o also implements
// LoadObserver it receives dataset load events.
func WithObserver(o resolve.Observer) Option {
	return func(d *Databank) {
		d.observer = o
	}
}

// WithEstimator registers an estimator under a catalog id, replacing any
// builtin with the same id.
func WithEstimator(id string, e resolve.Estimator) Option {
	return func(d *Databank) {
		d.estimators[id] = e
	}
}

// New creates an unloaded Databank. Nothing is read until first use.
func New(opts ...Option) *Databank {
	d := &Databank{
		logger:     slog.Default(),
		estimators: BuiltinEstimators(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.source == nil {
		d.source = dataset.NewLoader(d.logger)
	}
	return d
}

// EnsureLoaded loads every dataset and builds every property, once.
// Later calls return the result of the first, including its error.
func (d *Databank) EnsureLoaded(ctx context.Context) error {
	d.once.Do(func() {
		d.err = d.load(ctx)
		if d.err != nil {
			d.logger.Debug("databank load failed", "error", d.err)
		}
	})
	return d.err
}

func (d *Databank) load(ctx context.Context) error {
	if d.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		d.catalog = c
	}

	loads, _ := d.observer.(LoadObserver)

	tables := make(map[string]*table.Table)
	for _, key := range d.catalog.DatasetKeys() {
		ds, _ := d.catalog.Dataset(key)
		t, err := d.source.LoadTable(ctx, ds)
		if loads != nil {
			rows := 0
			if t != nil {
				rows = t.Len()
			}
			loads.ObserveLoad(key, rows, err)
		}
		if err != nil {
			return fmt.Errorf("load dataset %s: %w", key, err)
		}
		tables[key] = t
	}

	properties := make(map[string]*resolve.Property, len(d.catalog.Properties))
	for _, decl := range d.catalog.Properties {
		p, err := d.buildProperty(decl, tables)
		if err != nil {
			return err
		}
		properties[decl.Name] = p
	}

	d.tables = tables
	d.properties = properties
	d.logger.Debug("databank loaded",
		"datasets", len(tables),
		"properties", len(properties))
	return nil
}

func (d *Databank) buildProperty(decl catalog.Property, tables map[string]*table.Table) (*resolve.Property, error) {
	sources := make([]resolve.Source, 0, len(decl.Sources))
	for _, s := range decl.Sources {
		sources = append(sources, resolve.Source{Name: s.Method, Table: tables[s.Dataset]})
	}
	reg, err := resolve.NewRegistry(sources...)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", decl.Name, err)
	}

	fields := make([]resolve.Field, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		fields = append(fields, resolve.Field{Column: f.Column, Unit: f.Unit})
	}

	estimators := make([]resolve.Estimator, 0, len(decl.Estimators))
	for _, e := range decl.Estimators {
		impl, ok := d.estimators[e.ID]
		if !ok {
			return nil, fmt.Errorf("property %s: unknown estimator id %q", decl.Name, e.ID)
		}
		impl.Name = e.Method
		estimators = append(estimators, impl)
	}

	opts := []resolve.PropertyOption{resolve.WithEstimators(estimators...)}
	if d.observer != nil {
		opts = append(opts, resolve.WithObserver(d.observer))
	}
	return resolve.NewProperty(decl.Name, reg, fields, opts...)
}

// Property returns the named property family, loading on first use.
func (d *Databank) Property(name string) (*resolve.Property, error) {
	if err := d.EnsureLoaded(context.Background()); err != nil {
		return nil, err
	}
	p, ok := d.properties[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProperty, name)
	}
	return p, nil
}

// Table returns the table loaded for a dataset key, loading on first use.
func (d *Databank) Table(key string) (*table.Table, error) {
	if err := d.EnsureLoaded(context.Background()); err != nil {
		return nil, err
	}
	t, ok := d.tables[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDataset, key)
	}
	return t, nil
}

// Properties returns property names in catalog order, loading on first use.
func (d *Databank) Properties() ([]string, error) {
	if err := d.EnsureLoaded(context.Background()); err != nil {
		return nil, err
	}
	return d.catalog.PropertyNames(), nil
}

// Catalog returns the catalog in use, loading on first use.
func (d *Databank) Catalog() (*catalog.Catalog, error) {
	if err := d.EnsureLoaded(context.Background()); err != nil {
		return nil, err
	}
	return d.catalog, nil
}

// Tables returns the loaded tables keyed by dataset, loading on first use.
func (d *Databank) Tables() (map[string]*table.Table, error) {
	if err := d.EnsureLoaded(context.Background()); err != nil {
		return nil, err
	}
	return maps.Clone(d.tables), nil
}
