package field_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

// TestMiddlePoint_FlatIsMidpoint checks that coplanar vertices meet halfway.
func TestMiddlePoint_FlatIsMidpoint(t *testing.T) {
	p0 := r3.Vec{X: 0, Y: 0, Z: 2}
	p1 := r3.Vec{X: 4, Y: 2, Z: 2}
	m := field.MiddlePoint(p0, up, p1, up)
	assertVecInDelta(t, r3.Vec{X: 2, Y: 1, Z: 2}, m, 1e-12, "coplanar midpoint")
}

// TestMiddlePoint_OnBothPlanes checks the constrained solution on a crease.
func TestMiddlePoint_OnBothPlanes(t *testing.T) {
	n0 := r3.Vec{Z: 1}
	n1 := r3.Vec{X: 1}
	p0 := r3.Vec{X: 0, Y: 0, Z: 1}
	p1 := r3.Vec{X: 1, Y: 0, Z: 0}
	m := field.MiddlePoint(p0, n0, p1, n1)
	// The regularizer perturbs the exact constraint slightly.
	assert.InDelta(t, r3.Dot(n0, p0), r3.Dot(n0, m), 1e-3, "on plane 0")
	assert.InDelta(t, r3.Dot(n1, p1), r3.Dot(n1, m), 1e-3, "on plane 1")
}

// TestRoundToLattice_Bound checks the rounding guarantee on random input.
func TestRoundToLattice_Bound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const scale = 0.75
	for iter := 0; iter < 200; iter++ {
		q := randomTangent(rng, up)
		tAxis := r3.Cross(up, q)
		o := r3.Vec{X: rng.NormFloat64() * 10, Y: rng.NormFloat64() * 10}
		p := r3.Vec{X: rng.NormFloat64() * 10, Y: rng.NormFloat64() * 10}

		r := field.RoundToLattice(o, q, up, p, scale, 1/scale)
		d := r3.Sub(p, r)
		assert.LessOrEqual(t, math.Abs(r3.Dot(d, q)), scale/2+1e-9, "q residual within half a step")
		assert.LessOrEqual(t, math.Abs(r3.Dot(d, tAxis)), scale/2+1e-9, "t residual within half a step")

		// r stays on the lattice anchored at o.
		shift := r3.Sub(r, o)
		a := r3.Dot(shift, q) / scale
		b := r3.Dot(shift, tAxis) / scale
		assert.InDelta(t, math.Round(a), a, 1e-6, "integer q steps")
		assert.InDelta(t, math.Round(b), b, 1e-6, "integer t steps")
	}
}

// TestFloorToLattice_Below checks that the floored corner lies below p.
func TestFloorToLattice_Below(t *testing.T) {
	q := r3.Vec{X: 1}
	o := r3.Vec{X: 0.25, Y: 0.25}
	p := r3.Vec{X: 2.9, Y: -1.1}
	r := field.FloorToLattice(o, q, up, p, 1, 1)
	assertVecInDelta(t, r3.Vec{X: 2.25, Y: -1.75}, r, 1e-12, "floored corner")
}

// TestCompatPosition_SameLattice checks that two offsets on a shared lattice
// resolve to the very same point.
func TestCompatPosition_SameLattice(t *testing.T) {
	q := r3.Vec{X: 1}
	pa, pb := r3.Vec{}, r3.Vec{X: 1}
	a, b := field.CompatPosition(pa, up, q, pa, pb, up, q, pb, 1, 1)
	assertVecInDelta(t, a, b, 1e-12, "shared lattice gives zero cost pair")
}

// TestCompatPosition_RotatedFrames checks that a 90° rotated frame on the
// same lattice still resolves to a common point.
func TestCompatPosition_RotatedFrames(t *testing.T) {
	pa, pb := r3.Vec{}, r3.Vec{Y: 1}
	a, b := field.CompatPosition(pa, up, r3.Vec{X: 1}, pa, pb, up, r3.Vec{Y: 1}, pb, 1, 1)
	assertVecInDelta(t, a, b, 1e-12, "rotation is absorbed by the lattice")
}

// TestCompatPosition_ShiftedLattice checks the best pair for lattices that
// differ by a half step: the distance can never drop below that offset.
func TestCompatPosition_ShiftedLattice(t *testing.T) {
	q := r3.Vec{X: 1}
	pa, pb := r3.Vec{}, r3.Vec{X: 1}
	ob := r3.Vec{X: 1.5}
	a, b := field.CompatPosition(pa, up, q, pa, pb, up, q, ob, 1, 1)
	assert.InDelta(t, 0.5, r3.Norm(r3.Sub(a, b)), 1e-12, "half step is the minimum distance")
	assert.InDelta(t, 0, a.Y, 1e-12)
	assert.InDelta(t, 0, b.Y, 1e-12)
}
