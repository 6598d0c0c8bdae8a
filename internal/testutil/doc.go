// Package testutil provides fixtures shared by package tests: small property
// tables, deterministic import ids, and file helpers.
package testutil
