package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "fanwait"

// Recorder implements fanout.Observer on a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	launched     prometheus.Counter
	completed    prometheus.Counter
	inFlight     prometheus.Gauge
	unitDuration prometheus.Histogram
	runElapsed   prometheus.Gauge
	runUnits     prometheus.Gauge
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered next to the fan-out metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		launched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "units_started_total",
			Help:      "Number of units that started their body.",
		}),
		completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "units_completed_total",
			Help:      "Number of units whose body returned.",
		}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "units_in_flight",
			Help:      "Units currently running.",
		}),
		unitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "unit_duration_seconds",
			Help:      "Wall-clock duration of a single unit.",
			Buckets:   []float64{.001, .01, .1, .5, 1, 2, 2.5, 5, 10},
		}),
		runElapsed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_elapsed_seconds",
			Help:      "Elapsed time of the last run, first launch to last completion.",
		}),
		runUnits: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_units",
			Help:      "Number of units launched by the last run.",
		}),
	}
}

// UnitStarted implements fanout.Observer.
func (r *Recorder) UnitStarted(int) {
	r.launched.Inc()
	r.inFlight.Inc()
}

// UnitFinished implements fanout.Observer.
func (r *Recorder) UnitFinished(_ int, d time.Duration) {
	r.completed.Inc()
	r.inFlight.Dec()
	r.unitDuration.Observe(d.Seconds())
}

// RunFinished implements fanout.Observer.
func (r *Recorder) RunFinished(units int, elapsed time.Duration) {
	r.runUnits.Set(float64(units))
	r.runElapsed.Set(elapsed.Seconds())
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
