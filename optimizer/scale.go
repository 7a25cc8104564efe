// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// scale.go — anisotropic scale field on the finest level.
//
// The solver works on level 0 only; coarse scale entries are never read or
// written. It runs:
//   1. one estimation pass: per vertex and per frame axis k, a robust
//      (confidence-trimmed) mean of how fast the neighbors' frame axis turns
//      per unit of displacement along k;
//   2. `iterations` relaxation passes: per vertex, an online weighted mean of
//      the neighbors' scale extrapolated with their derivative estimate. The
//      mean is reported in ScaleReport.Relaxed; S[i] receives the derivative
//      estimate of vertex i;
//   3. a remap of every entry to clamp((s+5)/10, 0, 1), after recording the
//      per-axis range as a diagnostic.

package optimizer

import (
	"cmp"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
	"github.com/katalvlaran/quadfield/hierarchy"
)

// trimRatio keeps the samples whose confidence reaches this fraction of the
// most confident one.
const trimRatio = 0.3

// ScaleReport carries the diagnostics of one OptimizeScale call.
type ScaleReport struct {
	// Min and Max are the per-axis range of S before the final remap.
	Min, Max [2]float64

	// Relaxed holds, per level-0 vertex, the online mean computed by the last
	// relaxation pass. It is not written to S.
	Relaxed [][2]float64
}

// ratioSample is one neighbor's contribution to a derivative estimate.
type ratioSample struct {
	confidence float64 // |displacement| along the axis
	ratio      float64 // axis change per unit of displacement
	weight     float64 // edge weight
}

// framePair holds the local frames of two adjacent vertices after the
// neighbor frame was transported into the vertex tangent plane, together
// with the axis matching between them.
type framePair struct {
	a, b  [2]r3.Vec  // (q, n×q) of the vertex and of the transported neighbor
	bestB int        // axis of b matched with a[0]
	sign  [2]float64 // ±1: orientation of the matched b axis relative to a[k]
}

// partner returns the axis of b that the relaxation pairs with axis k of a.
func (fp framePair) partner(k int) int {
	return 1 - (fp.bestB+k)%2
}

// matchFrames builds the frame pair of vertex (qi, ni) and neighbor
// (qj, nj) and matches the axes by the largest |a_l · b_k|; the first
// maximum in (l, k) order wins.
// Complexity: O(1).
func matchFrames(qi, ni, qj, nj r3.Vec) framePair {
	qj = field.RotateIntoPlane(qj, nj, ni)
	fp := framePair{
		a:    [2]r3.Vec{qi, r3.Cross(ni, qi)},
		b:    [2]r3.Vec{qj, r3.Cross(ni, qj)},
		sign: [2]float64{1, 1},
	}

	bestA, bestScore := 0, math.Inf(-1)
	for l := 0; l < 2; l++ {
		for k := 0; k < 2; k++ {
			if score := math.Abs(r3.Dot(fp.a[l], fp.b[k])); score > bestScore {
				bestA, fp.bestB, bestScore = l, k, score
			}
		}
	}
	if bestA == 1 {
		fp.bestB = 1 - fp.bestB
	}
	if r3.Dot(fp.a[0], fp.b[fp.bestB]) < 0 {
		fp.sign[0] = -1
	}
	if r3.Dot(fp.a[1], fp.b[1-fp.bestB]) < 0 {
		fp.sign[1] = -1
	}

	return fp
}

// trimmedMean sorts samples by confidence (ties by ratio, then weight, all
// descending) and returns the weighted mean ratio of the prefix whose
// confidence is at least trimRatio times the top one. An empty buffer, or a
// prefix whose weights sum to at most Epsilon, yields 0. Reorders samples.
// Complexity: O(m log m).
func trimmedMean(samples []ratioSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	slices.SortFunc(samples, func(x, y ratioSample) int {
		if c := cmp.Compare(y.confidence, x.confidence); c != 0 {
			return c
		}
		if c := cmp.Compare(y.ratio, x.ratio); c != 0 {
			return c
		}

		return cmp.Compare(y.weight, x.weight)
	})

	cutoff := samples[0].confidence * trimRatio
	var num, den float64
	for _, s := range samples {
		if s.confidence < cutoff {
			break
		}
		num += s.ratio * s.weight
		den += s.weight
	}
	if den <= field.Epsilon {
		return 0
	}

	return num / den
}

// scaleState is the scratch space of one OptimizeScale call.
type scaleState struct {
	lv      *hierarchy.Level
	deriv   [][2]float64 // per-vertex derivative estimate
	relaxed [][2]float64 // per-vertex online mean of the last relaxation pass
}

func newScaleState(lv *hierarchy.Level) *scaleState {
	n := lv.Len()

	return &scaleState{
		lv:      lv,
		deriv:   make([][2]float64, n),
		relaxed: make([][2]float64, n),
	}
}

// estimateScaleDerivatives fills deriv[i] for vertex i.
// Reads Q, N, V of i and its neighbors; writes deriv[i] only.
func (st *scaleState) estimateScaleDerivatives(i int) {
	lv := st.lv
	var buf [2][]ratioSample
	for _, nb := range lv.Adj[i] {
		if nb.Weight == 0 {
			continue
		}
		j := nb.ID
		fp := matchFrames(lv.Q[i], lv.N[i], lv.Q[j], lv.N[j])
		d := r3.Sub(lv.V[j], lv.V[i])
		for k := 0; k < 2; k++ {
			dis := r3.Dot(d, fp.a[k])
			if math.Abs(dis) <= field.Epsilon {
				continue
			}
			diff := r3.Dot(fp.b[fp.partner(k)], fp.a[k]) * fp.sign[k]
			buf[k] = append(buf[k], ratioSample{
				confidence: math.Abs(dis),
				ratio:      diff / dis,
				weight:     nb.Weight,
			})
		}
	}
	for k := 0; k < 2; k++ {
		st.deriv[i][k] = trimmedMean(buf[k])
	}
}

// relaxScale runs one relaxation step for vertex i: the online weighted mean
// of the neighbors' extrapolated scale goes to relaxed[i], the derivative
// estimate of i goes to S[i].
// Reads S and deriv of the neighbors; writes S[i] and relaxed[i] only.
func (st *scaleState) relaxScale(i int) {
	lv := st.lv
	var sum, weightSum [2]float64
	for _, nb := range lv.Adj[i] {
		if nb.Weight == 0 {
			continue
		}
		j := nb.ID
		fp := matchFrames(lv.Q[i], lv.N[i], lv.Q[j], lv.N[j])
		d := r3.Sub(lv.V[i], lv.V[j])
		for k := 0; k < 2; k++ {
			bk := fp.partner(k)
			dis := r3.Dot(d, fp.b[bk])
			if math.Abs(dis) <= field.Epsilon {
				continue
			}
			extrapolated := lv.S[j][bk] + st.deriv[j][k]*dis*fp.sign[k]
			sum[k] = extrapolated*nb.Weight + sum[k]*weightSum[k]
			weightSum[k] += nb.Weight
			if weightSum[k] > field.Epsilon {
				sum[k] /= weightSum[k]
			}
		}
	}
	st.relaxed[i] = sum
	lv.S[i] = st.deriv[i]
}

// normalizeScale records the per-axis range of S and remaps every entry to
// clamp((s+5)/10, 0, 1).
// Complexity: O(n).
func normalizeScale(lv *hierarchy.Level) (lo, hi [2]float64) {
	lo = [2]float64{math.Inf(1), math.Inf(1)}
	hi = [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, s := range lv.S {
		for k := 0; k < 2; k++ {
			lo[k] = math.Min(lo[k], s[k])
			hi[k] = math.Max(hi[k], s[k])
		}
	}
	for i := range lv.S {
		for k := 0; k < 2; k++ {
			lv.S[i][k] = math.Min(1, math.Max(0, (lv.S[i][k]+5)/10))
		}
	}

	return lo, hi
}

// OptimizeScale computes the scale field S of level 0 of h in place and
// returns the diagnostics. A nil or empty hierarchy yields a zero report.
// Complexity: O((1 + iterations) · (n_0 + E_0 log E_0)).
func (o *Optimizer) OptimizeScale(h *hierarchy.Hierarchy) ScaleReport {
	if h == nil || len(h.Levels) == 0 {
		return ScaleReport{}
	}
	start := time.Now()

	lv := h.Levels[0]
	n := lv.Len()
	st := newScaleState(lv)
	sw := newSweeper(lv, o.opts.workers)

	sw.sweep(n, st.estimateScaleDerivatives)
	o.opts.metrics.observeSweep(solverScale, 0, n)
	for it := 0; it < o.opts.iterations; it++ {
		sw.sweep(n, st.relaxScale)
		o.opts.metrics.observeSweep(solverScale, 0, n)
	}

	lo, hi := normalizeScale(lv)
	if n > 0 {
		o.logger().Info("scale range before normalization",
			"min0", lo[0], "max0", hi[0], "min1", lo[1], "max1", hi[1])
		o.opts.metrics.observeScaleRange(lo, hi)
	}
	o.opts.metrics.observeDuration(solverScale, time.Since(start))

	return ScaleReport{Min: lo, Max: hi, Relaxed: st.relaxed}
}
