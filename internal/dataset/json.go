package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/chemref/internal/table"
)

// decodeJSON reads an object of objects token by token so that identifier
// and column order follow the file.
func decodeJSON(name string, r io.Reader) (*table.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var (
		ids     []string
		records []map[string]table.Value
		columns []string
		seen    = make(map[string]bool)
	)
	for dec.More() {
		id, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, fmt.Errorf("row %d: empty identifier", len(ids)+1)
		}

		record, keys, err := readRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", id, err)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
		ids = append(ids, id)
		records = append(records, record)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}

	b, err := table.NewBuilder(name, columns...)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if err := b.AddRecord(id, records[i]); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// readRecord reads one flat object of scalars, returning keys in file order.
func readRecord(dec *json.Decoder) (map[string]table.Value, []string, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	record := make(map[string]table.Value)
	var keys []string
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %w", key, err)
		}
		if _, nested := tok.(json.Delim); nested {
			return nil, nil, fmt.Errorf("field %q: nested values are not supported", key)
		}
		v, err := table.FromAny(tok)
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %w", key, err)
		}
		if _, dup := record[key]; dup {
			return nil, nil, fmt.Errorf("duplicate field %q", key)
		}
		record[key] = v
		keys = append(keys, key)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	return record, keys, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return normalizeKey(key), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("expected %q: %w", want, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
