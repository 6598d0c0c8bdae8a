package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/chemref/internal/databank"
	"github.com/roach88/chemref/internal/table"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s(%s) %s", event.Seq, event.Property, event.ID, event.Outcome)
			if event.Source != "" {
				fmt.Fprintf(&buf, " via %s", event.Source)
			}
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// EvaluateAssertions runs every assertion and returns a message per failure.
func EvaluateAssertions(result *Result, assertions []Assertion, db *databank.Databank) []string {
	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, a)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, a)
		case AssertMethods:
			err = assertMethods(db, a)
		case AssertTableRow:
			err = assertTableRow(db, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

// matches reports whether event satisfies the assertion's filters.
// Empty filters match anything.
func matches(event TraceEvent, a Assertion) bool {
	return (a.Property == "" || event.Property == a.Property) &&
		(a.ID == "" || event.ID == a.ID) &&
		(a.Outcome == "" || event.Outcome == a.Outcome) &&
		(a.Source == "" || event.Source == a.Source)
}

func describe(a Assertion) string {
	var parts []string
	for _, kv := range [][2]string{
		{"property", a.Property},
		{"id", a.ID},
		{"outcome", a.Outcome},
		{"source", a.Source},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	if len(parts) == 0 {
		return "any resolution"
	}
	return strings.Join(parts, " ")
}

// assertTraceContains checks that at least one resolution matches.
func assertTraceContains(trace []TraceEvent, a Assertion) error {
	for _, event := range trace {
		if matches(event, a) {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: describe(a),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertTraceCount checks that exactly Count resolutions match.
func assertTraceCount(trace []TraceEvent, a Assertion) error {
	count := 0
	for _, event := range trace {
		if matches(event, a) {
			count++
		}
	}
	if count != a.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", a.Count, describe(a)),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertMethods checks the methods available for a lookup, in order.
func assertMethods(db *databank.Databank, a Assertion) error {
	p, err := db.Property(a.Property)
	if err != nil {
		return err
	}
	in, err := convertInputs(a.Inputs)
	if err != nil {
		return err
	}
	got := p.Methods(a.ID, in)
	want := a.Methods
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     AssertMethods,
			Expected: fmt.Sprintf("%s(%s) methods %q", a.Property, a.ID, want),
			Actual:   fmt.Sprintf("%q", got),
		}
	}
	return nil
}

// assertTableRow checks cells of a loaded dataset row. An expected null
// matches a missing or blank cell.
func assertTableRow(db *databank.Databank, a Assertion) error {
	t, err := db.Table(a.Dataset)
	if err != nil {
		return err
	}
	row, ok := t.Row(a.ID)
	if !ok {
		return &AssertionError{
			Type:     AssertTableRow,
			Expected: fmt.Sprintf("row %s in %s", a.ID, a.Dataset),
			Actual:   "row not found",
		}
	}

	columns := make([]string, 0, len(a.Expect))
	for column := range a.Expect {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	for _, column := range columns {
		want, err := table.FromAny(a.Expect[column])
		if err != nil {
			return fmt.Errorf("column %s: %w", column, err)
		}
		got, _ := row.Get(column)
		if table.IsNull(want) && table.IsNull(got) {
			continue
		}
		if want != got {
			return &AssertionError{
				Type:     AssertTableRow,
				Expected: fmt.Sprintf("%s[%s].%s = %s", a.Dataset, a.ID, column, table.Format(want)),
				Actual:   fmt.Sprintf("%q", table.Format(got)),
			}
		}
	}
	return nil
}
