package chemicals

import "github.com/roach88/chemref/internal/estimate"

// TWA returns the time-weighted average exposure limit of casrn. The limit
// is given in ppm when listed that way, otherwise in mg/m^3; see Result.Unit.
func TWA(casrn, method string) (Result[float64], error) {
	return number(propTWA, casrn, nil, method)
}

// TWAMethods returns the TWA methods with data for casrn.
func TWAMethods(casrn string) ([]string, error) {
	return methods(propTWA, casrn, nil)
}

// STEL returns the short-term exposure limit of casrn, in ppm or mg/m^3.
func STEL(casrn, method string) (Result[float64], error) {
	return number(propSTEL, casrn, nil, method)
}

// STELMethods returns the STEL methods with data for casrn.
func STELMethods(casrn string) ([]string, error) {
	return methods(propSTEL, casrn, nil)
}

// Ceiling returns the ceiling exposure limit of casrn, in ppm or mg/m^3.
func Ceiling(casrn, method string) (Result[float64], error) {
	return number(propCeiling, casrn, nil, method)
}

// CeilingMethods returns the ceiling limit methods with data for casrn.
func CeilingMethods(casrn string) ([]string, error) {
	return methods(propCeiling, casrn, nil)
}

// Skin reports whether skin absorption contributes to exposure to casrn.
func Skin(casrn, method string) (Result[bool], error) {
	return boolean(propSkin, casrn, method)
}

// SkinMethods returns the skin absorption methods with data for casrn.
func SkinMethods(casrn string) ([]string, error) {
	return methods(propSkin, casrn, nil)
}

// Reference conditions for exposure limit conversions.
const (
	STPTemperature = estimate.STPTemperature
	STPPressure    = estimate.STPPressure
)

// PPMVToMgm3 converts ppm by volume to mg/m^3 for a gas of molecular weight
// mw (g/mol) at temperature t (K) and pressure p (Pa).
func PPMVToMgm3(ppmv, mw, t, p float64) float64 {
	return estimate.PPMVToMgm3(ppmv, mw, t, p)
}

// Mgm3ToPPMV is the inverse of PPMVToMgm3.
func Mgm3ToPPMV(mgm3, mw, t, p float64) float64 {
	return estimate.Mgm3ToPPMV(mgm3, mw, t, p)
}
