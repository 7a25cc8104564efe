// SPDX-License-Identifier: MIT
// Package: quadfield/field
//
// position.go — lattice (offset) resolution under rotation × translation.
//
// Lattice model:
//   • A vertex with position p, unit normal n, unit orientation q and offset o
//     defines the square lattice o + scale·(a·q + b·t), t = n×q, a,b ∈ ℤ.
//   • The lattice point set is invariant under 90° rotations about n, so the
//     rotational part of the symmetry is absorbed by the lattice itself and
//     only the integer translation has to be resolved.

package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// middleRegularizer keeps MiddlePoint finite when n0 ≈ ±n1.
const middleRegularizer = 1e-4

// MiddlePoint returns the point x minimizing |x−p0|² + |x−p1|² subject to
// n0·x = n0·p0 and n1·x = n1·p1, i.e. the point on both tangent planes
// closest to the two vertices. A small regularizer keeps the solution finite
// for parallel normals, where it reduces to the projected midpoint.
// Complexity: O(1).
func MiddlePoint(p0, n0, p1, n1 r3.Vec) r3.Vec {
	n0p0, n0p1 := r3.Dot(n0, p0), r3.Dot(n0, p1)
	n1p0, n1p1 := r3.Dot(n1, p0), r3.Dot(n1, p1)
	n0n1 := r3.Dot(n0, n1)
	denom := 1 / (1 - n0n1*n0n1 + middleRegularizer)
	lambda0 := 2 * (n0p1 - n0p0 - n0n1*(n1p0-n1p1)) * denom
	lambda1 := 2 * (n1p0 - n1p1 - n0n1*(n0p1-n0p0)) * denom

	mid := r3.Scale(0.5, r3.Add(p0, p1))

	return r3.Sub(mid, r3.Scale(0.25, r3.Add(r3.Scale(lambda0, n0), r3.Scale(lambda1, n1))))
}

// FloorToLattice shifts o by whole lattice steps so that it becomes the
// lattice corner "below" p along q and t = n×q.
// Complexity: O(1).
func FloorToLattice(o, q, n, p r3.Vec, scale, invScale float64) r3.Vec {
	return snapToLattice(o, q, n, p, scale, invScale, math.Floor)
}

// RoundToLattice shifts o by whole lattice steps so that it becomes the
// lattice point nearest to p along q and t = n×q. When q is a unit vector
// orthogonal to n, the result r satisfies |(p−r)·q| ≤ scale/2 and
// |(p−r)·t| ≤ scale/2.
// Complexity: O(1).
func RoundToLattice(o, q, n, p r3.Vec, scale, invScale float64) r3.Vec {
	return snapToLattice(o, q, n, p, scale, invScale, math.Round)
}

// snapToLattice applies the integer rounding mode snap on both lattice axes.
func snapToLattice(o, q, n, p r3.Vec, scale, invScale float64, snap func(float64) float64) r3.Vec {
	t := r3.Cross(n, q)
	d := r3.Sub(p, o)
	out := r3.Add(o, r3.Scale(snap(r3.Dot(q, d)*invScale)*scale, q))

	return r3.Add(out, r3.Scale(snap(r3.Dot(t, d)*invScale)*scale, t))
}

// latticeCorner returns base + scale·(bit0·q + bit1·t) for corner index k ∈ [0,4).
func latticeCorner(base, q, t r3.Vec, k int, scale float64) r3.Vec {
	step := r3.Add(r3.Scale(float64(k&1), q), r3.Scale(float64((k&2)>>1), t))

	return r3.Add(base, r3.Scale(scale, step))
}

// CompatPosition resolves the rotation × translation ambiguity between the
// offsets of two neighboring vertices a and b.
//
// Algorithm:
//  1. m = MiddlePoint(pa, na, pb, nb).
//  2. Floor both lattices toward m (FloorToLattice).
//  3. Enumerate the 4 corners of each floored cell and keep the pair with the
//     smallest squared distance; the first minimum in (a-corner, b-corner)
//     order wins.
//
// The returned points lie on the lattices of a and b respectively and are the
// closest representatives near m, ready to be combined linearly.
//
// Complexity: O(1) (16 candidate pairs).
func CompatPosition(
	pa, na, qa, oa r3.Vec,
	pb, nb, qb, ob r3.Vec,
	scale, invScale float64,
) (r3.Vec, r3.Vec) {
	ta, tb := r3.Cross(na, qa), r3.Cross(nb, qb)
	middle := MiddlePoint(pa, na, pb, nb)
	baseA := FloorToLattice(oa, qa, na, middle, scale, invScale)
	baseB := FloorToLattice(ob, qb, nb, middle, scale, invScale)

	bestCost := math.Inf(1)
	bestA, bestB := 0, 0
	for i := 0; i < 4; i++ {
		ca := latticeCorner(baseA, qa, ta, i, scale)
		for j := 0; j < 4; j++ {
			cb := latticeCorner(baseB, qb, tb, j, scale)
			if cost := r3.Norm2(r3.Sub(ca, cb)); cost < bestCost {
				bestA, bestB, bestCost = i, j, cost
			}
		}
	}

	return latticeCorner(baseA, qa, ta, bestA, scale), latticeCorner(baseB, qb, tb, bestB, scale)
}
