package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulation collectors.
type Metrics struct {
	registry *prometheus.Registry

	simulations *prometheus.CounterVec
	steps       *prometheus.CounterVec
	tapeCells   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tmsim_simulations_total",
				Help: "Total number of completed simulations",
			},
			[]string{"operation"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tmsim_steps_total",
				Help: "Total number of observed machine steps",
			},
			[]string{"machine", "state"},
		),
		tapeCells: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tmsim_tape_cells",
				Help:    "Length of the final tape of a simulation",
				Buckets: prometheus.ExponentialBuckets(4, 2, 10),
			},
			[]string{"operation"},
		),
	}
	m.registry.MustRegister(m.simulations, m.steps, m.tapeCells)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks recording into m.
// OnStep is only set when withSteps is true: observing steps makes the engine
// snapshot every tape, which is expensive for large operands.
func (m *Metrics) Hooks(withSteps bool) domain.LifecycleHooks {
	hooks := domain.LifecycleHooks{
		OnHalt: func(ctx context.Context, e *domain.SimulationEvent) {
			m.simulations.WithLabelValues(string(e.Operation)).Inc()
			if e.Result != nil {
				m.tapeCells.WithLabelValues(string(e.Operation)).Observe(float64(len(e.Result.Tape)))
			}
		},
	}
	if withSteps {
		hooks.OnStep = func(ctx context.Context, s *domain.Step) {
			m.steps.WithLabelValues(string(s.Machine), s.State).Inc()
		}
	}
	return hooks
}
