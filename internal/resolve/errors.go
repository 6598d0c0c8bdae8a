package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMethod is matched by every *InvalidMethodError.
var ErrInvalidMethod = errors.New("invalid method")

// InvalidMethodError reports a method or source name that is not registered
// for a property. It indicates a programming or configuration mistake, so it
// is returned immediately and never recovered internally.
type InvalidMethodError struct {
	// Property names the property family, if known.
	Property string

	// Method is the rejected name.
	Method string

	// Valid lists the accepted names in priority order.
	Valid []string
}

// Error implements the error interface.
func (e *InvalidMethodError) Error() string {
	valid := "'" + strings.Join(e.Valid, "', '") + "'"
	if len(e.Valid) == 0 {
		valid = "none"
	}
	if e.Property != "" {
		return fmt.Sprintf("%v %q for %s: allowed methods are %s", ErrInvalidMethod, e.Method, e.Property, valid)
	}
	return fmt.Sprintf("%v %q: allowed methods are %s", ErrInvalidMethod, e.Method, valid)
}

// Is allows errors.Is(err, ErrInvalidMethod).
func (e *InvalidMethodError) Is(target error) bool {
	return target == ErrInvalidMethod
}

// IsInvalidMethod returns true if err is or wraps an InvalidMethodError.
func IsInvalidMethod(err error) bool {
	return errors.Is(err, ErrInvalidMethod)
}
