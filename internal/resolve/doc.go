// Package resolve implements multi-source property resolution.
//
// A Registry is an ordered, immutable list of named sources, each backed by a
// table.Table. Registration order is fallback priority: the first source is
// preferred. Three primitives operate on a registry:
//
//   - Methods lists, in priority order, every source with data for an identifier
//   - Any returns the value from the first source with data, short-circuiting
//   - From returns the value from one named source, bypassing priority
//
// A Property binds a registry to the field(s) it reads and layers estimator
// fallback on top: estimators run only after every tabulated source has been
// exhausted, and only when no explicit method was requested.
//
// # Absence Versus Errors
//
// "No data" is never an error. An unknown identifier, a missing row and a null
// cell all produce a Resolution whose Found method reports false. Errors are
// reserved for caller mistakes:
//
//   - *InvalidMethodError: the requested method is not registered (errors.Is
//     ErrInvalidMethod); the message lists the valid names
//   - *table.SchemaError: the field is not defined by a registered table
//
// Nothing here performs I/O, retries, or caches results. Every call is a single
// pass over immutable data, so identical inputs always yield identical outputs.
package resolve
