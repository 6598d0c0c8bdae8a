// Package estimate holds the closed-form correlations and unit helpers used
// alongside tabulated safety data.
//
// Every function here is pure. Correlations that cannot produce a value for
// their input report that with a false second return rather than an error,
// matching how missing tabulated data is reported by the resolver.
package estimate
