// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// metrics.go — prometheus instrumentation of the solvers.
//
// A nil *Metrics is valid and records nothing, so solvers call the observe*
// helpers unconditionally.

package optimizer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solver names used as metric labels and log attributes.
const (
	solverOrientation = "orientation"
	solverScale       = "scale"
	solverPosition    = "position"
)

// Metrics groups the collectors updated by the solvers.
type Metrics struct {
	// sweeps counts completed sweeps per solver and level.
	sweeps *prometheus.CounterVec

	// updates counts vertex updates (vertices × sweeps) per solver.
	updates *prometheus.CounterVec

	// duration observes wall time of one solver call.
	duration *prometheus.HistogramVec

	// scaleRange exposes the per-axis min/max of S before normalization.
	scaleRange *prometheus.GaugeVec
}

// NewMetrics creates the solver collectors and registers them with reg.
// A nil reg creates unregistered collectors (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		sweeps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quadfield_sweeps_total",
				Help: "Completed relaxation sweeps",
			},
			[]string{"solver", "level"},
		),
		updates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quadfield_vertex_updates_total",
				Help: "Vertex updates performed by relaxation sweeps",
			},
			[]string{"solver"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quadfield_solver_duration_seconds",
				Help:    "Wall time of one solver call",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"solver"},
		),
		scaleRange: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quadfield_scale_range",
				Help: "Per-axis range of the scale field before normalization",
			},
			[]string{"axis", "bound"},
		),
	}
}

func (m *Metrics) observeSweep(solver string, level, vertices int) {
	if m == nil {
		return
	}
	m.sweeps.WithLabelValues(solver, strconv.Itoa(level)).Inc()
	m.updates.WithLabelValues(solver).Add(float64(vertices))
}

func (m *Metrics) observeDuration(solver string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(solver).Observe(d.Seconds())
}

func (m *Metrics) observeScaleRange(lo, hi [2]float64) {
	if m == nil {
		return
	}
	for k := 0; k < 2; k++ {
		axis := strconv.Itoa(k)
		m.scaleRange.WithLabelValues(axis, "min").Set(lo[k])
		m.scaleRange.WithLabelValues(axis, "max").Set(hi[k])
	}
}
