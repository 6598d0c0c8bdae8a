package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/chemref/internal/table"
)

func decodeDelimited(name string, comma rune, r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header needs an identifier column and at least one property column")
	}

	columns := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		columns = append(columns, normalizeKey(h))
	}
	b, err := table.NewBuilder(name, columns...)
	if err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		id := normalizeKey(record[0])
		if id == "" {
			return nil, fmt.Errorf("line %d: empty identifier", line)
		}

		values := make([]table.Value, len(columns))
		for i, cell := range record[1:] {
			values[i] = table.ParseCell(cell)
		}
		if err := b.Add(id, values...); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return b.Build(), nil
}
