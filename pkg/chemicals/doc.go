// Package chemicals looks up physical and safety properties of chemicals by
// CAS registry number.
//
// Every property P comes as a family of three functions:
//
//	P(casrn, method)        // the value, from method or by priority
//	PMethods(casrn)         // methods with data for casrn, in priority order
//	PAllMethods()           // every method P knows, in priority order
//
// An empty method means "the first source with data, then any applicable
// estimator". A missing value is reported by Result.Found, never by an error;
// the only errors are data loading failures and methods that are not valid
// for the property (matching ErrInvalidMethod).
//
// Bundled data is loaded on first use by the process-wide databank; see
// databank.InitGlobal to substitute a different catalog or data source.
package chemicals
