// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// orientation.go — multigrid smoothing of the 4-RoSy orientation field.
//
// Schedule (one V-cycle):
//   Phase A, coarsest → finest: relax each level with `iterations` sweeps,
//   then inject its orientations into the next finer level (overwrite,
//   projected onto the fine tangent plane).
//   Phase B, finest → coarsest: restrict every level into the next coarser
//   one (symmetry-resolved sum of the children, projected and normalized).

package optimizer

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
	"github.com/katalvlaran/quadfield/hierarchy"
)

// OptimizeOrientations smooths Q on every level of h in place.
// A nil or empty hierarchy is a no-op.
// Complexity: O(iterations · Σ(n_l + E_l)).
func (o *Optimizer) OptimizeOrientations(h *hierarchy.Hierarchy) {
	if h == nil || len(h.Levels) == 0 {
		return
	}
	start := time.Now()
	log := o.logger()

	for l := len(h.Levels) - 1; l >= 0; l-- {
		lv := h.Levels[l]
		n := lv.Len()
		sw := newSweeper(lv, o.opts.workers)
		for it := 0; it < o.opts.iterations; it++ {
			sw.sweep(n, func(i int) { relaxOrientation(lv, i) })
			o.opts.metrics.observeSweep(solverOrientation, l, n)
		}
		log.Debug("orientation level relaxed", "level", l, "vertices", n, "sweeps", o.opts.iterations)

		if l > 0 {
			fine, coarse, children := h.Between(l - 1)
			injectOrientations(coarse, fine, children)
		}
	}

	for l := 0; l+1 < len(h.Levels); l++ {
		fine, coarse, children := h.Between(l)
		restrictOrientations(fine, coarse, children)
	}

	o.opts.metrics.observeDuration(solverOrientation, time.Since(start))
}

// relaxOrientation replaces Q[i] by the running weighted average of its
// neighbors' orientations, each resolved against the current average.
// Zero-weight entries are skipped; without a positive weight Q[i] is kept.
func relaxOrientation(lv *hierarchy.Level, i int) {
	ni := lv.N[i]
	sum := lv.Q[i]
	weightSum := 0.0
	for _, nb := range lv.Adj[i] {
		if nb.Weight == 0 {
			continue
		}
		a, b := field.CompatOrientation(sum, ni, lv.Q[nb.ID], lv.N[nb.ID])
		sum = r3.Add(r3.Scale(weightSum, a), r3.Scale(nb.Weight, b))
		sum = field.ProjectTangent(sum, ni)
		weightSum += nb.Weight
		sum = field.Normalize(sum)
	}
	if weightSum > 0 {
		lv.Q[i] = sum
	}
}

// injectOrientations copies every coarse orientation onto its fine children,
// projected onto each child's tangent plane. Overwrites fine.Q.
// Complexity: O(n_coarse).
func injectOrientations(coarse, fine *hierarchy.Level, children []hierarchy.Children) {
	for i, ch := range children {
		q := coarse.Q[i]
		for _, c := range ch {
			if c == hierarchy.NoChild {
				continue
			}
			fine.Q[c] = field.ProjectTangent(q, fine.N[c])
		}
	}
}

// restrictOrientations sets every coarse orientation to the resolved sum of
// its children, projected onto the coarse tangent plane and normalized when
// its squared norm exceeds Epsilon.
// Complexity: O(n_coarse).
func restrictOrientations(fine, coarse *hierarchy.Level, children []hierarchy.Children) {
	for i, ch := range children {
		if ch[0] == hierarchy.NoChild {
			continue
		}
		q := fine.Q[ch[0]]
		if ch[1] != hierarchy.NoChild {
			a, b := field.CompatOrientation(q, fine.N[ch[0]], fine.Q[ch[1]], fine.N[ch[1]])
			q = r3.Add(a, b)
		}
		q = field.ProjectTangent(q, coarse.N[i])
		if r3.Norm2(q) > field.Epsilon {
			q = r3.Unit(q)
		}
		coarse.Q[i] = q
	}
}
