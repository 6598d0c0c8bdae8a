package chemicals

import (
	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/estimate"
	"github.com/roach88/chemref/internal/resolve"
)

// FlammabilityInputs are the optional inputs of the flammability limit
// estimators.
type FlammabilityInputs struct {
	// Hc is the heat of combustion in J/mol; enables Suzuki.
	Hc *float64
	// Atoms is the molecular formula; enables Crowl and Louvar.
	Atoms map[string]int
}

func (f FlammabilityInputs) inputs() resolve.Inputs {
	in := resolve.Inputs{}
	if f.Hc != nil {
		in[databank.InputHc] = *f.Hc
	}
	if f.Atoms != nil {
		in[databank.InputAtoms] = f.Atoms
	}
	return in
}

// TFlash returns the flash point of casrn in kelvin.
func TFlash(casrn, method string) (Result[float64], error) {
	return number(propTFlash, casrn, nil, method)
}

// TFlashMethods returns the flash point methods with data for casrn.
func TFlashMethods(casrn string) ([]string, error) {
	return methods(propTFlash, casrn, nil)
}

// TAutoignition returns the autoignition temperature of casrn in kelvin.
func TAutoignition(casrn, method string) (Result[float64], error) {
	return number(propTAutoignition, casrn, nil, method)
}

// TAutoignitionMethods returns the autoignition methods with data for casrn.
func TAutoignitionMethods(casrn string) ([]string, error) {
	return methods(propTAutoignition, casrn, nil)
}

// LFL returns the lower flammability limit of casrn as a mole fraction.
// Tabulated data is preferred; the estimators in in are used only when no
// source has data, or when named by method.
func LFL(casrn string, in FlammabilityInputs, method string) (Result[float64], error) {
	return number(propLFL, casrn, in.inputs(), method)
}

// LFLMethods returns the LFL methods available for casrn and in.
func LFLMethods(casrn string, in FlammabilityInputs) ([]string, error) {
	return methods(propLFL, casrn, in.inputs())
}

// UFL returns the upper flammability limit of casrn as a mole fraction.
func UFL(casrn string, in FlammabilityInputs, method string) (Result[float64], error) {
	return number(propUFL, casrn, in.inputs(), method)
}

// UFLMethods returns the UFL methods available for casrn and in.
func UFLMethods(casrn string, in FlammabilityInputs) ([]string, error) {
	return methods(propUFL, casrn, in.inputs())
}

// FireMixing returns the flammability limit of a fuel mixture by Le
// Chatelier's rule; ys are inert-free mole fractions summing to one.
func FireMixing(ys, fls []float64) (float64, bool) {
	return estimate.FireMixing(ys, fls)
}

// Normalize scales values to sum to one.
func Normalize(values []float64) []float64 {
	return estimate.Normalize(values)
}

// NFPACombustibleClass returns the NFPA 30 liquid class from the flash point
// and, for flash points below 73 °F, the normal boiling point (both in K).
func NFPACombustibleClass(tflash float64, tb *float64) (string, error) {
	return estimate.NFPACombustibleClass(tflash, tb)
}

// IsInert reports whether casrn is a non-flammable gas.
func IsInert(casrn string) bool {
	return estimate.IsInert(casrn)
}
