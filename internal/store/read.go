package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/table"
)

// DatasetInfo summarises one stored dataset.
type DatasetInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ImportID string `json:"import_id"`
	Rows     int    `json:"rows"`
}

// ReadTable rebuilds the table stored under key with its original column and
// row order. Returns ErrDatasetNotFound if nothing is stored under key.
func (s *Store) ReadTable(ctx context.Context, key string) (*table.Table, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM datasets WHERE key = ?`, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read table %s: %w", key, ErrDatasetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", key, err)
	}

	columns, err := s.readColumns(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", key, err)
	}
	ids, err := s.readRowIDs(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", key, err)
	}

	values := make([][]table.Value, len(ids))
	for i := range values {
		values[i] = make([]table.Value, len(columns))
	}
	if err := s.readCells(ctx, key, values); err != nil {
		return nil, fmt.Errorf("read table %s: %w", key, err)
	}

	b, err := table.NewBuilder(name, columns...)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", key, err)
	}
	for i, id := range ids {
		if err := b.Add(id, values[i]...); err != nil {
			return nil, fmt.Errorf("read table %s: %w", key, err)
		}
	}
	return b.Build(), nil
}

func (s *Store) readColumns(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM dataset_columns
		WHERE dataset_key = ?
		ORDER BY ordinal ASC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	columns := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	return columns, nil
}

func (s *Store) readRowIDs(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM dataset_rows
		WHERE dataset_key = ?
		ORDER BY ordinal ASC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return ids, nil
}

// readCells fills values[row][column] from the stored non-null cells.
func (s *Store) readCells(ctx context.Context, key string, values [][]table.Value) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_ordinal, column_ordinal, value FROM dataset_cells
		WHERE dataset_key = ?
		ORDER BY row_ordinal ASC, column_ordinal ASC
	`, key)
	if err != nil {
		return fmt.Errorf("query cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r, c int
			data string
		)
		if err := rows.Scan(&r, &c, &data); err != nil {
			return fmt.Errorf("scan cell: %w", err)
		}
		if r < 0 || r >= len(values) || c < 0 || c >= len(values[r]) {
			return fmt.Errorf("cell (%d, %d) out of range", r, c)
		}
		v, err := unmarshalCell(data)
		if err != nil {
			return err
		}
		values[r][c] = v
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cells: %w", err)
	}
	return nil
}

// ListDatasets returns every stored dataset ordered by key.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) ListDatasets(ctx context.Context) ([]DatasetInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, name, import_id, row_count FROM datasets
		ORDER BY key COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	out := []DatasetInfo{}
	for rows.Next() {
		var d DatasetInfo
		if err := rows.Scan(&d.Key, &d.Name, &d.ImportID, &d.Rows); err != nil {
			return nil, fmt.Errorf("list datasets: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return out, nil
}

// Imports returns the import log for key in sequence order, including
// imports whose data has since been replaced. An empty key returns the
// whole log.
func (s *Store) Imports(ctx context.Context, key string) ([]Import, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, dataset_key, source, row_count, column_count FROM imports
		WHERE ? = '' OR dataset_key = ?
		ORDER BY seq ASC
	`, key, key)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	defer rows.Close()

	out := []Import{}
	for rows.Next() {
		var imp Import
		if err := rows.Scan(&imp.ID, &imp.Seq, &imp.Dataset, &imp.Source, &imp.Rows, &imp.Columns); err != nil {
			return nil, fmt.Errorf("list imports: scan: %w", err)
		}
		out = append(out, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	return out, nil
}

// LoadTable reads the catalog dataset ds from the store, so a Store can back
// a databank in place of the bundled files.
func (s *Store) LoadTable(ctx context.Context, ds catalog.Dataset) (*table.Table, error) {
	return s.ReadTable(ctx, ds.Key)
}
