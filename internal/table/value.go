package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a sealed interface representing a single table cell.
// Only Null, Number, Text and Bool implement this.
type Value interface {
	tableValue() // Sealed - only these types implement it
}

// Null represents an empty cell.
type Null struct{}

func (Null) tableValue() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Number represents a numeric cell. All tabulated measurements are float64.
type Number float64

func (Number) tableValue() {}

// Text represents a string cell.
type Text string

func (Text) tableValue() {}

// Bool represents a boolean cell.
type Bool bool

func (Bool) tableValue() {}

// IsNull reports whether v carries no data.
// A nil interface is treated the same as Null.
func IsNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	default:
		return false
	}
}

// AsFloat returns the numeric content of v.
func AsFloat(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsString returns the text content of v.
func AsString(v Value) (string, bool) {
	s, ok := v.(Text)
	return string(s), ok
}

// AsBool returns the boolean content of v.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// Format renders v for human-readable output. Null renders as the empty string.
func Format(v Value) string {
	switch val := v.(type) {
	case nil, Null:
		return ""
	case Number:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Text:
		return string(val)
	case Bool:
		return strconv.FormatBool(bool(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MarshalValue marshals a Value to JSON bytes.
func MarshalValue(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil, Null:
		return []byte("null"), nil
	case Number:
		return json.Marshal(float64(val))
	case Text:
		return json.Marshal(string(val))
	case Bool:
		return json.Marshal(bool(val))
	default:
		return nil, fmt.Errorf("unknown Value type: %T", v)
	}
}

// FromAny converts a decoded JSON or YAML scalar into a Value.
// Integers are widened to Number; nested structures are rejected.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case float64:
		return numberOrNull(val), nil
	case float32:
		return numberOrNull(float64(val)), nil
	case int:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", val, err)
		}
		return numberOrNull(f), nil
	case string:
		return Text(val), nil
	case bool:
		return Bool(val), nil
	default:
		return nil, fmt.Errorf("unsupported cell type: %T", v)
	}
}

// nullMarkers are the spellings bundled datasets use for an empty cell.
var nullMarkers = map[string]bool{
	"":     true,
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"none": true,
	"null": true,
}

// ParseCell converts a raw delimited-file cell into a typed Value.
func ParseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	if nullMarkers[lower] {
		return Null{}
	}
	switch lower {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return numberOrNull(f)
	}
	return Text(s)
}

// numberOrNull maps NaN to Null so that a NaN never reads as data.
func numberOrNull(f float64) Value {
	if math.IsNaN(f) {
		return Null{}
	}
	return Number(f)
}
