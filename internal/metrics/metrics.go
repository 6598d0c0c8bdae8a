// Package metrics counts resolutions and dataset loads with Prometheus
// collectors on a private registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/chemref/internal/resolve"
)

const namespace = "chemref"

// AutoMethod is the method label used when the caller let priority decide.
const AutoMethod = "auto"

// Recorder implements resolve.Observer and the databank load observer.
// It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	resolutions *prometheus.CounterVec // resolutions by property, method and outcome
	loads       *prometheus.CounterVec // dataset loads by dataset and outcome
	rows        *prometheus.GaugeVec   // rows in each loaded dataset
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Total property resolutions by outcome",
		}, []string{"property", "method", "outcome"}),

		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "loads_total",
			Help:      "Total dataset loads by outcome",
		}, []string{"dataset", "outcome"}),

		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows",
			Help:      "Number of rows in a loaded dataset",
		}, []string{"dataset"}),
	}
	r.registry.MustRegister(r.resolutions, r.loads, r.rows)
	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveResolution implements resolve.Observer.
func (r *Recorder) ObserveResolution(e resolve.Event) {
	method := e.Method
	if method == "" {
		method = AutoMethod
	}
	r.resolutions.WithLabelValues(e.Property, method, string(e.Outcome)).Inc()
}

// ObserveLoad records one dataset load.
func (r *Recorder) ObserveLoad(dataset string, rows int, err error) {
	if err != nil {
		r.loads.WithLabelValues(dataset, "error").Inc()
		return
	}
	r.loads.WithLabelValues(dataset, "ok").Inc()
	r.rows.WithLabelValues(dataset).Set(float64(rows))
}

// WriteTextfile writes the current values in the Prometheus text format, for
// collection by a node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
