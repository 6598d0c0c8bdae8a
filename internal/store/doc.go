// Package store provides SQLite-backed storage for imported property tables.
//
// A dataset is stored as its ordered columns, its ordered rows, and the
// non-null cells between them. Importing a dataset replaces any previous
// contents under the same key in a single transaction and appends a record
// to the import log.
//
// # Ordering
//
// Column and row order are part of a table's meaning, so every read uses
// ORDER BY on the stored ordinals. Listings order by key COLLATE BINARY and
// the import log by its sequence number.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Cascading deletes when a dataset is replaced
package store
