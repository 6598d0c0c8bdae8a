package estimate

// SuzukiLFL estimates the lower flammability limit, as a mole fraction, from
// the heat of combustion hc in J/mol (negative for an exothermic reaction).
//
// Suzuki, T. "Note: Empirical Relationship between Lower Flammability Limits
// and Standard Enthalpies of Combustion of Organic Compounds." Fire and
// Materials 18 (1994): 333-336.
func SuzukiLFL(hc float64) (float64, bool) {
	if hc == 0 {
		return 0, false
	}
	hc /= 1e6
	lfl := -3.42/hc + 0.569*hc + 0.0538*hc*hc + 1.80
	return lfl / 100, true
}

// SuzukiUFL estimates the upper flammability limit, as a mole fraction, from
// the heat of combustion hc in J/mol.
//
// Suzuki, T. and Koide, K. "Short Communication: Correlation between Upper
// Flammability Limits and Thermochemical Properties of Organic Compounds."
// Fire and Materials 18 (1994): 393-397.
func SuzukiUFL(hc float64) (float64, bool) {
	hc /= 1e6
	ufl := 6.3*hc + 0.567*hc*hc + 23.5
	return ufl / 100, true
}

// CrowlLouvarLFL estimates the lower flammability limit from a molecular
// formula given as element symbol to atom count. Only C, H and O are used.
// Returns false when the formula contains no carbon.
//
// Crowl, D. A. and Louvar, J. F. Chemical Process Safety: Fundamentals with
// Applications. 2E. Prentice Hall, 2001.
func CrowlLouvarLFL(atoms map[string]int) (float64, bool) {
	d, ok := crowlLouvarDenominator(atoms)
	if !ok {
		return 0, false
	}
	return 0.55 / d, true
}

// CrowlLouvarUFL is the upper-limit counterpart of CrowlLouvarLFL.
func CrowlLouvarUFL(atoms map[string]int) (float64, bool) {
	d, ok := crowlLouvarDenominator(atoms)
	if !ok {
		return 0, false
	}
	return 3.5 / d, true
}

// crowlLouvarDenominator is 4.76m + 1.19x - 2.38y + 1 for CmHxOy.
func crowlLouvarDenominator(atoms map[string]int) (float64, bool) {
	c := atoms["C"]
	if c == 0 {
		return 0, false
	}
	h, o := atoms["H"], atoms["O"]
	return 4.76*float64(c) + 1.19*float64(h) - 2.38*float64(o) + 1, true
}

// FireMixing combines per-component flammability limits fls into a mixture
// limit using Le Chatelier's rule; ys are the fuel mole fractions on an
// inert-free basis and should sum to one (see Normalize).
//
// Returns false when the slices differ in length, are empty, or any
// limit is zero.
func FireMixing(ys, fls []float64) (float64, bool) {
	if len(ys) == 0 || len(ys) != len(fls) {
		return 0, false
	}
	var sum float64
	for i, y := range ys {
		if fls[i] == 0 {
			return 0, false
		}
		sum += y / fls[i]
	}
	if sum == 0 {
		return 0, false
	}
	return 1 / sum, true
}

// Normalize scales values so they sum to one. A zero total returns a copy of
// values unchanged.
func Normalize(values []float64) []float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if total == 0 {
			out[i] = v
			continue
		}
		out[i] = v / total
	}
	return out
}
