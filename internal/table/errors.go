package table

import (
	"errors"
	"fmt"
)

// Common errors returned by the table package.
var (
	// ErrUnknownField is returned when a field is not part of a table's schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateID is returned when a builder receives the same identifier twice.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrDuplicateColumn is returned when a schema names a column twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrRowWidth is returned when a row does not match the schema width.
	ErrRowWidth = errors.New("row width does not match schema")

	// ErrSealed is returned when a builder is used after Build.
	ErrSealed = errors.New("builder already built")
)

// SchemaError reports a request for a field the table schema never defines.
// This is a caller programming error, distinct from missing data.
type SchemaError struct {
	Table string
	Field string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q: %v %q", e.Table, ErrUnknownField, e.Field)
}

// Unwrap allows errors.Is(err, ErrUnknownField).
func (e *SchemaError) Unwrap() error {
	return ErrUnknownField
}

// IsSchemaError returns true if err is or wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
