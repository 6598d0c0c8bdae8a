package harness

import (
	"github.com/roach88/chemref/internal/resolve"
	"github.com/roach88/chemref/internal/table"
)

// TraceEvent is one resolution recorded while a scenario ran.
type TraceEvent struct {
	Seq      int64  `json:"seq"`
	Property string `json:"property"`
	ID       string `json:"id"`
	Method   string `json:"method,omitempty"`
	Source   string `json:"source,omitempty"`
	Outcome  string `json:"outcome"`
}

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Property string      `json:"property"`
	ID       string      `json:"id"`
	Method   string      `json:"method,omitempty"`
	Found    bool        `json:"found"`
	Value    table.Value `json:"value,omitempty"`
	Source   string      `json:"source,omitempty"`
	Unit     string      `json:"unit,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Steps holds one entry per scenario step, in order.
	Steps []StepResult `json:"steps"`

	// Trace holds every resolution in the order it happened.
	Trace []TraceEvent `json:"trace"`

	// Errors describes each failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Steps:  []StepResult{},
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// ObserveResolution implements resolve.Observer by appending to the trace.
func (r *Result) ObserveResolution(e resolve.Event) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:      int64(len(r.Trace) + 1),
		Property: e.Property,
		ID:       e.ID,
		Method:   e.Method,
		Source:   e.Source,
		Outcome:  string(e.Outcome),
	})
}
