// Package catalog declares which datasets back which properties.
//
// A catalog is written in CUE and validated against the embedded schema.cue.
// The bundled catalog (catalog.cue) is returned by Default. Order matters
// throughout: sources within a property are listed in fallback priority, and
// estimators are tried after every source, in the order given.
//
// Beyond the schema, a catalog must satisfy cross references that CUE cannot
// express on its own: dataset keys and property names are unique, every
// source names a declared dataset, and method names are unique within a
// property.
package catalog
