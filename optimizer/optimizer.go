// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// optimizer.go — Optimizer, Run and the package-level shortcuts.

package optimizer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/quadfield/hierarchy"
)

// Optimizer runs the field solvers with one resolved configuration.
// An Optimizer holds no per-hierarchy state and may be reused; concurrent
// calls must not share a hierarchy.
type Optimizer struct {
	opts Options
}

// New returns an Optimizer configured by opts over the package defaults.
func New(opts ...Option) *Optimizer {
	return &Optimizer{opts: gatherOptions(opts...)}
}

// Iterations returns the configured sweeps per level.
func (o *Optimizer) Iterations() int { return o.opts.iterations }

// Workers returns the configured sweep parallelism.
func (o *Optimizer) Workers() int { return o.opts.workers }

// logger returns the per-optimizer logger or the package logger.
func (o *Optimizer) logger() *slog.Logger {
	if o.opts.logger != nil {
		return o.opts.logger
	}

	return Logger()
}

// Report summarizes one Run.
type Report struct {
	// Levels is the hierarchy depth.
	Levels int

	// Vertices is the vertex count per level, finest first.
	Vertices []int

	// Scale is the scale solver diagnostic.
	Scale ScaleReport

	// Elapsed is the wall time of the three solvers.
	Elapsed time.Duration
}

// Run executes the orientation, scale and position solvers on h, in that
// order, mutating Q, S and O in place.
//
// Errors:
//   - ErrNilHierarchy, ErrEmptyHierarchy: nothing was touched.
//   - with WithValidation(true), the wrapped hierarchy.Validate error;
//     nothing was touched.
func (o *Optimizer) Run(h *hierarchy.Hierarchy) (Report, error) {
	if h == nil {
		return Report{}, fmt.Errorf("Run: %w", ErrNilHierarchy)
	}
	if len(h.Levels) == 0 {
		return Report{}, fmt.Errorf("Run: %w", ErrEmptyHierarchy)
	}
	if o.opts.validate {
		if err := h.Validate(); err != nil {
			return Report{}, fmt.Errorf("Run: %w", err)
		}
	}

	start := time.Now()
	o.OptimizeOrientations(h)
	scale := o.OptimizeScale(h)
	o.OptimizePositions(h)

	rep := Report{
		Levels:   len(h.Levels),
		Vertices: make([]int, len(h.Levels)),
		Scale:    scale,
		Elapsed:  time.Since(start),
	}
	for l, lv := range h.Levels {
		rep.Vertices[l] = lv.Len()
	}
	o.logger().Info("optimization finished",
		"levels", rep.Levels, "vertices", rep.Vertices[0],
		"iterations", o.opts.iterations, "workers", o.opts.workers,
		"elapsed", rep.Elapsed)

	return rep, nil
}

// defaultOptimizer backs the package-level shortcuts.
var defaultOptimizer = New()

// OptimizeOrientations runs the orientation solver with default options.
func OptimizeOrientations(h *hierarchy.Hierarchy) {
	defaultOptimizer.OptimizeOrientations(h)
}

// OptimizeScale runs the scale solver with default options.
func OptimizeScale(h *hierarchy.Hierarchy) ScaleReport {
	return defaultOptimizer.OptimizeScale(h)
}

// OptimizePositions runs the position solver with default options.
func OptimizePositions(h *hierarchy.Hierarchy) {
	defaultOptimizer.OptimizePositions(h)
}

// Run runs all three solvers with default options.
func Run(h *hierarchy.Hierarchy) (Report, error) {
	return defaultOptimizer.Run(h)
}
