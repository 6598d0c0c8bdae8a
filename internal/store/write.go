package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/chemref/internal/table"
)

// Import describes one WriteTable call.
type Import struct {
	ID      string `json:"id"`
	Seq     int64  `json:"seq"`
	Dataset string `json:"dataset"`
	Source  string `json:"source"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// WriteTable stores t under key, replacing any previous dataset with that
// key, and appends an entry to the import log. source describes where the
// data came from (typically a file path) and is recorded verbatim.
//
// Null cells are not stored. The write is a single transaction: readers see
// either the old dataset or the new one.
func (s *Store) WriteTable(ctx context.Context, key, source string, t *table.Table) (Import, error) {
	if key == "" {
		return Import{}, errors.New("write table: empty dataset key")
	}
	if t == nil {
		return Import{}, errors.New("write table: nil table")
	}

	imp := Import{
		ID:      s.ids.Generate(),
		Dataset: key,
		Source:  source,
		Rows:    t.Len(),
		Columns: len(t.Columns()),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Import{}, fmt.Errorf("write table %s: begin: %w", key, err)
	}
	defer tx.Rollback()

	if err := replaceDataset(ctx, tx, key, imp.ID, t); err != nil {
		return Import{}, fmt.Errorf("write table %s: %w", key, err)
	}

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM imports`,
	).Scan(&imp.Seq); err != nil {
		return Import{}, fmt.Errorf("write table %s: next seq: %w", key, err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, seq, dataset_key, source, row_count, column_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, imp.ID, imp.Seq, imp.Dataset, imp.Source, imp.Rows, imp.Columns); err != nil {
		return Import{}, fmt.Errorf("write table %s: record import: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return Import{}, fmt.Errorf("write table %s: commit: %w", key, err)
	}
	return imp, nil
}

func replaceDataset(ctx context.Context, tx *sql.Tx, key, importID string, t *table.Table) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete previous: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (key, name, import_id, row_count)
		VALUES (?, ?, ?, ?)
	`, key, t.Name(), importID, t.Len()); err != nil {
		return fmt.Errorf("insert dataset: %w", err)
	}

	for i, name := range t.Columns() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dataset_columns (dataset_key, ordinal, name)
			VALUES (?, ?, ?)
		`, key, i, name); err != nil {
			return fmt.Errorf("insert column %q: %w", name, err)
		}
	}

	rowStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dataset_rows (dataset_key, ordinal, id)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare rows: %w", err)
	}
	defer rowStmt.Close()

	cellStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dataset_cells (dataset_key, row_ordinal, column_ordinal, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare cells: %w", err)
	}
	defer cellStmt.Close()

	for i, id := range t.IDs() {
		if _, err := rowStmt.ExecContext(ctx, key, i, id); err != nil {
			return fmt.Errorf("insert row %q: %w", id, err)
		}
		row, _ := t.Row(id)
		for j, v := range row.Values() {
			if table.IsNull(v) {
				continue
			}
			data, err := marshalCell(v)
			if err != nil {
				return fmt.Errorf("row %q: %w", id, err)
			}
			if _, err := cellStmt.ExecContext(ctx, key, i, j, data); err != nil {
				return fmt.Errorf("insert cell %q/%d: %w", id, j, err)
			}
		}
	}
	return nil
}

// DeleteDataset removes the dataset stored under key. The import log is kept.
// Returns ErrDatasetNotFound if nothing is stored under key.
func (s *Store) DeleteDataset(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete dataset %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete dataset %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("delete dataset %s: %w", key, ErrDatasetNotFound)
	}
	return nil
}
