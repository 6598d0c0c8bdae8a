// Package databank wires the catalog, the table sources and the estimators
// into ready-to-query property families.
//
// Loading is lazy and happens once per Databank: the first call that needs
// data (EnsureLoaded, Property, Table, ...) reads every dataset the catalog
// references and builds every property. Concurrent first calls block until
// the single load completes. A failed load is sticky; build a new Databank
// to retry. After loading, a Databank is read-only and safe for concurrent
// use without locking.
//
// Global returns a process-wide Databank over the bundled catalog and data.
package databank
