package chemicals

// DipoleMoment returns the dipole moment of casrn in debye.
func DipoleMoment(casrn, method string) (Result[float64], error) {
	return number(propDipole, casrn, nil, method)
}

// DipoleMomentMethods returns the dipole moment methods with data for casrn.
func DipoleMomentMethods(casrn string) ([]string, error) {
	return methods(propDipole, casrn, nil)
}
