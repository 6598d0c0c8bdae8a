package estimate

import (
	"errors"
	"fmt"
)

// R is the molar gas constant in J/(mol·K).
const R = 8.314462618

// Reference conditions at which occupational exposure limits are quoted.
const (
	STPTemperature = 298.15   // K
	STPPressure    = 101325.0 // Pa
)

// PPMVToMgm3 converts a gas concentration in parts per million by volume to
// mg/m^3 for a trace gas of molecular weight mw (g/mol) at temperature t (K)
// and pressure p (Pa).
func PPMVToMgm3(ppmv, mw, t, p float64) float64 {
	n := ppmv * 1e-6 * p / (R * t)
	return mw * n * 1000
}

// Mgm3ToPPMV is the inverse of PPMVToMgm3.
func Mgm3ToPPMV(mgm3, mw, t, p float64) float64 {
	n := mgm3 / mw / 1000
	return n * R * t / p / 1e-6
}

// F2K converts degrees Fahrenheit to kelvin.
func F2K(f float64) float64 {
	return (f-32)*5/9 + 273.15
}

// ErrBoilingPointRequired is returned by NFPACombustibleClass when the flash
// point alone cannot separate class 1A from 1B.
var ErrBoilingPointRequired = errors.New("boiling point required for flash points below 73 °F")

// NFPACombustibleClass returns the NFPA 30 class of a liquid ("1A", "1B",
// "1C", "2", "3A", "3B") from its flash point and normal boiling point in
// kelvin. tb may be nil unless the flash point is below 73 °F.
func NFPACombustibleClass(tflash float64, tb *float64) (string, error) {
	switch {
	case tflash < F2K(73):
		if tb == nil {
			return "", fmt.Errorf("classify flash point %g K: %w", tflash, ErrBoilingPointRequired)
		}
		if *tb < F2K(100) {
			return "1A", nil
		}
		return "1B", nil
	case tflash < F2K(100):
		return "1C", nil
	case tflash < F2K(140):
		return "2", nil
	case tflash < F2K(200):
		return "3A", nil
	default:
		return "3B", nil
	}
}

// Inerts maps CAS numbers of gases that do not burn to their names.
var Inerts = map[string]string{
	"7440-37-1":   "Argon",
	"124-38-9":    "Carbon Dioxide",
	"7440-59-7":   "Helium",
	"7440-01-9":   "Neon",
	"7727-37-9":   "Nitrogen",
	"7440-63-3":   "Xenon",
	"10102-43-9":  "Nitric Oxide",
	"10102-44-0":  "Nitrogen Dioxide",
	"7782-44-7":   "Oxygen",
	"132259-10-0": "Air",
	"7439-90-9":   "Krypton",
	"10043-92-2":  "Radon",
	"7732-18-5":   "Water",
	"7782-50-5":   "Chlorine",
	"7782-41-4":   "Fluorine",
}

// IsInert reports whether casrn is listed in Inerts.
func IsInert(casrn string) bool {
	_, ok := Inerts[casrn]
	return ok
}
