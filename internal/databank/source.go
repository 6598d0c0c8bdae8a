package databank

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/table"
)

// TableSource supplies the table for a catalog dataset.
// Implementations report a missing dataset with an error matching
// fs.ErrNotExist.
type TableSource interface {
	LoadTable(ctx context.Context, ds catalog.Dataset) (*table.Table, error)
}

// TableSourceFunc adapts a function to TableSource.
type TableSourceFunc func(ctx context.Context, ds catalog.Dataset) (*table.Table, error)

// LoadTable implements TableSource.
func (f TableSourceFunc) LoadTable(ctx context.Context, ds catalog.Dataset) (*table.Table, error) {
	return f(ctx, ds)
}

// Chain tries each source in order, moving on only when a source does not
// have the dataset. Any other error stops the chain.
type Chain []TableSource

// LoadTable implements TableSource.
func (c Chain) LoadTable(ctx context.Context, ds catalog.Dataset) (*table.Table, error) {
	for _, src := range c {
		t, err := src.LoadTable(ctx, ds)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("dataset %s: %w", ds.Key, fs.ErrNotExist)
}

// LoadObserver is implemented by observers that also want dataset load
// events. Observers passed to WithObserver are checked for it.
type LoadObserver interface {
	ObserveLoad(dataset string, rows int, err error)
}
