package telemetry

import (
	"errors"

	"github.com/katalvlaran/eutsp/tsp"
	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeInterrupted = "interrupted"
	OutcomeInvalid     = "invalid"
)

// Collector holds all Prometheus metrics for tour solving.
type Collector struct {
	registry *prometheus.Registry

	Swaps           prometheus.Counter
	Solves          *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
	LastTourLength  prometheus.Gauge
	LastImprovement prometheus.Gauge
}

// NewCollector creates a collector whose metrics carry the given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "two_opt_swaps_total",
			Help:      "Total number of applied 2-opt swaps",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total number of solves by outcome",
		}, []string{"outcome"}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of completed or interrupted solves",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		LastTourLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_tour_length",
			Help:      "Length of the most recently produced tour",
		}),
		LastImprovement: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_two_opt_improvement",
			Help:      "Length removed by 2-opt in the most recent solve",
		}),
	}

	registry.MustRegister(
		c.Swaps,
		c.Solves,
		c.SolveDuration,
		c.LastTourLength,
		c.LastImprovement,
	)

	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// SwapHook returns a function suitable for tsp.WithSwapHook.
func (c *Collector) SwapHook() func(tsp.SwapEvent) {
	return func(tsp.SwapEvent) {
		c.Swaps.Inc()
	}
}

// ObserveResult records the outcome of tsp.Solve. Results of invalid input
// only bump the outcome counter; they carry no tour.
func (c *Collector) ObserveResult(res tsp.Result, err error) {
	switch {
	case err == nil:
		c.Solves.WithLabelValues(OutcomeOK).Inc()
	case errors.Is(err, tsp.ErrInterrupted):
		c.Solves.WithLabelValues(OutcomeInterrupted).Inc()
	default:
		c.Solves.WithLabelValues(OutcomeInvalid).Inc()
		return
	}

	c.SolveDuration.Observe(res.Elapsed.Seconds())
	c.LastTourLength.Set(float64(res.Length))
	c.LastImprovement.Set(float64(res.InitialLength - res.Length))
}
