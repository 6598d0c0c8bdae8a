package chemicals

import (
	"fmt"

	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/resolve"
)

// ErrInvalidMethod matches errors for methods a property does not support.
var ErrInvalidMethod = resolve.ErrInvalidMethod

// IsInvalidMethod reports whether err is or wraps an invalid method error.
func IsInvalidMethod(err error) bool {
	return resolve.IsInvalidMethod(err)
}

// Result is one resolved value.
type Result[T any] struct {
	// Value is the zero value of T unless Found.
	Value T
	// Unit of Value, empty for dimensionless or non-numeric values.
	Unit string
	// Method that produced Value.
	Method string
	// Found is false when no method had data.
	Found bool
}

func property(name string) (*resolve.Property, error) {
	return databank.Global().Property(name)
}

func methods(name, casrn string, in resolve.Inputs) ([]string, error) {
	p, err := property(name)
	if err != nil {
		return nil, err
	}
	return p.Methods(casrn, in), nil
}

func number(name, casrn string, in resolve.Inputs, method string) (Result[float64], error) {
	p, err := property(name)
	if err != nil {
		return Result[float64]{}, err
	}
	res, err := p.Value(casrn, in, method)
	if err != nil || !res.Found() {
		return Result[float64]{}, err
	}
	v, ok := res.Float()
	if !ok {
		return Result[float64]{}, fmt.Errorf("%s of %s from %s: not a number: %v", name, casrn, res.Source, res.Value)
	}
	return Result[float64]{Value: v, Unit: res.Unit, Method: res.Source, Found: true}, nil
}

func boolean(name, casrn, method string) (Result[bool], error) {
	p, err := property(name)
	if err != nil {
		return Result[bool]{}, err
	}
	res, err := p.Value(casrn, nil, method)
	if err != nil || !res.Found() {
		return Result[bool]{}, err
	}
	v, ok := res.Bool()
	if !ok {
		return Result[bool]{}, fmt.Errorf("%s of %s from %s: not a boolean: %v", name, casrn, res.Source, res.Value)
	}
	return Result[bool]{Value: v, Unit: res.Unit, Method: res.Source, Found: true}, nil
}
