// Package harness runs regression scenarios against the databank.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	catalog: catalog.cue          # optional, defaults to the bundled catalog
//	datasets:                     # optional per-dataset file overrides
//	  dipole/cccbdb: fixtures/cccbdb.tsv
//	steps:
//	  - property: dipole
//	    id: 64-17-5
//	    method: CCCBDB            # optional, empty means by priority
//	    inputs: { Hc: -890590 }   # optional estimator inputs
//	    expect:
//	      found: true
//	      value: 1.44
//	      source: CCCBDB
//	      unit: debye
//	assertions:
//	  - type: trace_count
//	    property: dipole
//	    outcome: hit
//	    count: 1
//
// Paths are relative to the scenario file. Datasets without an override
// come from the bundled data.
//
// # Assertion Types
//
//   - trace_contains: a resolution with the given property, id, outcome and
//     source was recorded
//   - trace_count: exactly count resolutions match the given filters
//   - methods: the methods available for property, id and inputs
//   - table_row: a loaded dataset row holds the expected cells
//
// # Golden Reports
//
// RunWithGolden renders the step results and the resolution trace as indented
// JSON and compares them against testdata/golden/{name}.golden. Run the tests
// with -update to regenerate.
package harness
