package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/chemref/internal/table"
)

// marshalCell converts a cell to JSON TEXT for storage.
func marshalCell(v table.Value) (string, error) {
	data, err := table.MarshalValue(v)
	if err != nil {
		return "", fmt.Errorf("marshal cell: %w", err)
	}
	return string(data), nil
}

// unmarshalCell parses JSON TEXT back into a cell.
// Numbers are decoded via json.Number so stored text round-trips exactly.
func unmarshalCell(data string) (table.Value, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal cell %q: %w", data, err)
	}
	v, err := table.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal cell %q: %w", data, err)
	}
	return v, nil
}
