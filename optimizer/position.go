// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// position.go — multigrid smoothing of the lattice offset field.
//
// Coarsest → finest: relax each level with `iterations` sweeps, then inject
// its offsets into the next finer level (overwrite, projected onto the plane
// through the fine vertex). There is no restriction phase.

package optimizer

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
	"github.com/katalvlaran/quadfield/hierarchy"
)

// OptimizePositions smooths O on every level of h in place, using Q (read
// only) as the lattice orientation and h.Scale as the lattice spacing.
// A nil or empty hierarchy is a no-op.
// Complexity: O(iterations · Σ(n_l + E_l)).
func (o *Optimizer) OptimizePositions(h *hierarchy.Hierarchy) {
	if h == nil || len(h.Levels) == 0 {
		return
	}
	start := time.Now()
	log := o.logger()
	scale, invScale := h.Scale, h.InvScale()

	for l := len(h.Levels) - 1; l >= 0; l-- {
		lv := h.Levels[l]
		n := lv.Len()
		sw := newSweeper(lv, o.opts.workers)
		for it := 0; it < o.opts.iterations; it++ {
			sw.sweep(n, func(i int) { relaxPosition(lv, i, scale, invScale) })
			o.opts.metrics.observeSweep(solverPosition, l, n)
		}
		log.Debug("position level relaxed", "level", l, "vertices", n, "sweeps", o.opts.iterations)

		if l > 0 {
			fine, coarse, children := h.Between(l - 1)
			injectPositions(coarse, fine, children)
		}
	}

	o.opts.metrics.observeDuration(solverPosition, time.Since(start))
}

// relaxPosition replaces O[i] by the lattice point nearest V[i] of the
// running weighted average of the resolved neighbor offsets.
// Zero-weight entries are skipped; without a positive weight O[i] is kept.
func relaxPosition(lv *hierarchy.Level, i int, scale, invScale float64) {
	ni, vi := lv.N[i], lv.V[i]
	qi := field.Normalize(lv.Q[i])
	sum := lv.O[i]
	weightSum := 0.0
	for _, nb := range lv.Adj[i] {
		if nb.Weight == 0 {
			continue
		}
		j := nb.ID
		qj := field.Normalize(lv.Q[j])
		a, b := field.CompatPosition(vi, ni, qi, sum, lv.V[j], lv.N[j], qj, lv.O[j], scale, invScale)
		sum = r3.Add(r3.Scale(weightSum, a), r3.Scale(nb.Weight, b))
		weightSum += nb.Weight
		if weightSum > field.Epsilon {
			sum = r3.Scale(1/weightSum, sum)
		}
		sum = field.ProjectOntoPlane(sum, ni, vi)
	}
	if weightSum > 0 {
		lv.O[i] = field.RoundToLattice(sum, qi, ni, vi, scale, invScale)
	}
}

// injectPositions copies every coarse offset onto its fine children,
// projected onto the plane through each child's position. Overwrites fine.O.
// Complexity: O(n_coarse).
func injectPositions(coarse, fine *hierarchy.Level, children []hierarchy.Children) {
	for i, ch := range children {
		o := coarse.O[i]
		for _, c := range ch {
			if c == hierarchy.NoChild {
				continue
			}
			fine.O[c] = field.ProjectOntoPlane(o, fine.N[c], fine.V[c])
		}
	}
}
