// Package dataset reads property tables from delimited text and JSON files.
//
// The bundled data under data/ is embedded in the binary. Three layouts are
// understood:
//
//   - tsv and csv: a header row followed by one row per chemical; the first
//     column is the identifier and the rest are property columns.
//   - json: an object keyed by identifier whose values are flat objects of
//     column to scalar. Identifier and column order follow the file.
//
// Identifiers and column headers are trimmed and NFC-normalised, and a
// leading byte order mark is ignored. Empty cells and the usual spellings of
// missing data (NaN, N/A, none, null) are stored as table.Null.
package dataset
