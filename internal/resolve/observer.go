package resolve

// Outcome classifies a single resolution for observers.
type Outcome string

// Outcome values reported in Event.Outcome.
const (
	OutcomeHit           Outcome = "hit"            // a tabulated source had data
	OutcomeEstimated     Outcome = "estimated"      // an estimator produced the value
	OutcomeAbsent        Outcome = "absent"         // no source or estimator had data
	OutcomeInvalidMethod Outcome = "invalid_method" // the requested method is not registered
)

// Event describes one Property.Value call.
type Event struct {
	Property string
	ID       string
	Method   string // requested method; empty when the caller let priority decide
	Source   string // winning source or estimator; empty unless Outcome is hit or estimated
	Outcome  Outcome
}

// Observer records resolution events.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveResolution(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// ObserveResolution implements Observer.
func (f ObserverFunc) ObserveResolution(e Event) {
	if f != nil {
		f(e)
	}
}

type noopObserver struct{}

func (noopObserver) ObserveResolution(Event) {}
