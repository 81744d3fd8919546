// metrics.go — optional Prometheus instrumentation, grounded on
// jhkimqd-chaos-utils/pkg/monitoring's use of the Prometheus client for
// operational observability. Metrics is nil by default (WithMetrics opts
// in); every call site guards on a nil receiver so an uninstrumented Run
// pays no allocation or collection cost.
package hillclimb

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the counters and gauges a Run reports to, if attached via
// WithMetrics.
type Metrics struct {
	Steps       prometheus.Counter
	Restarts    prometheus.Counter
	Evaluations prometheus.Counter
	GlobalBestY prometheus.Gauge
}

// NewMetrics constructs a Metrics with the standard lsopt metric names and
// registers them against reg. Pass prometheus.NewRegistry() for an isolated
// registry (tests, multiple concurrent searches) or prometheus.DefaultRegisterer
// to expose them on the process-wide /metrics endpoint.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsopt_hillclimb_steps_total",
			Help: "Number of hill-climb steps executed.",
		}),
		Restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsopt_hillclimb_restarts_total",
			Help: "Number of stagnation-triggered walk restarts.",
		}),
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsopt_hillclimb_evaluations_total",
			Help: "Number of objective batch evaluations (initial + per-step neighbor batches).",
		}),
		GlobalBestY: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsopt_hillclimb_global_best_y",
			Help: "Current global-best score, in the caller's original objective orientation.",
		}),
	}
	reg.MustRegister(m.Steps, m.Restarts, m.Evaluations, m.GlobalBestY)
	return m
}

func (m *Metrics) incSteps() {
	if m != nil {
		m.Steps.Inc()
	}
}

func (m *Metrics) incRestarts() {
	if m != nil {
		m.Restarts.Inc()
	}
}

func (m *Metrics) incEvaluations() {
	if m != nil {
		m.Evaluations.Inc()
	}
}

func (m *Metrics) setGlobalBest(y float64) {
	if m != nil {
		m.GlobalBestY.Set(y)
	}
}
