// Package table provides the immutable, identifier-keyed tables that back every
// chemical property lookup.
//
// This package contains no resolution policy. It answers one question for one
// table: what is stored in row id, column field. The resolver in
// internal/resolve composes several tables into a priority-ordered registry.
//
// Key design constraints:
//   - Value is sealed: Null, Number, Text and Bool are the only cell variants
//   - A missing row and a null cell are the same thing ("no data")
//   - Zero and false are present values, never treated as missing
//   - Tables are immutable after Builder.Build; reads need no locking
//   - Row order is insertion order and is stable across runs
//   - Asking for a column outside the schema is a SchemaError, not "no data"
package table
