// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// options.go — functional configuration of an Optimizer.
//
// Contract:
//   • Option constructors validate and panic on meaningless values
//     (programmer error). Solvers themselves never panic on finite input.
//   • Unset options fall back to the documented defaults below.

package optimizer

import (
	"log/slog"
)

// Defaults (single source of truth).
const (
	// DefaultIterations is the number of relaxation sweeps per level.
	DefaultIterations = 6

	// DefaultWorkers keeps the index-order Gauss-Seidel schedule.
	DefaultWorkers = 1

	// DefaultValidate leaves hierarchy validation to the builder.
	DefaultValidate = false
)

const (
	panicIterationsInvalid = "optimizer: WithIterations: n must be ≥ 1"
	panicWorkersInvalid    = "optimizer: WithWorkers: n must be ≥ 1"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration of an Optimizer.
type Options struct {
	iterations int          // sweeps per level (and relaxation passes for scale)
	workers    int          // 1 ⇒ index order; >1 ⇒ multicolor parallel sweep
	logger     *slog.Logger // nil ⇒ package logger
	metrics    *Metrics     // nil ⇒ no instrumentation
	validate   bool         // Run validates the hierarchy first
}

// WithIterations sets the number of sweeps per level.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = n }
}

// WithWorkers selects the sweep schedule. 1 keeps the index-order
// Gauss-Seidel sweep; n > 1 colors each level and updates the vertices of
// one color with up to n goroutines (multicolor Gauss-Seidel).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger overrides the package logger for one Optimizer.
// nil restores the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics attaches prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithValidation makes Run call hierarchy.Validate before solving.
func WithValidation(on bool) Option {
	return func(o *Options) { o.validate = on }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		iterations: DefaultIterations,
		workers:    DefaultWorkers,
		validate:   DefaultValidate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
