// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// impl_cylinder.go — implementation of Cylinder(rings, segments, radius, height).
//
// Canonical model:
//   • Open cylinder around the Z axis, outward normals.
//   • Vertex (r,s) has id r*segments+s, angle θ = 2πs/segments, position
//     (radius·cosθ, radius·sinθ, r·height/(rings-1)).
//   • Per vertex, edges Around (r,s+1 mod segments), Along (r+1,s) and
//     Diagonal (r+1,s+1 mod segments), emitted in that order.
//
// Complexity:
//   • Time: O(rings·segments) vertices + O(3·rings·segments) edges.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder returns a Constructor for a triangulated open cylinder.
// rings ≥ MinCylinderRings and segments ≥ MinCylinderSegments (else
// ErrTooFewVertices); radius and height finite and > 0 (else ErrBadSize).
func Cylinder(rings, segments int, radius, height float64) Constructor {
	return func(m *Mesh, _ builderConfig) error {
		if err := validateMin(MethodCylinder, "rings", rings, MinCylinderRings); err != nil {
			return err
		}
		if err := validateMin(MethodCylinder, "segments", segments, MinCylinderSegments); err != nil {
			return err
		}
		if err := validateLength(MethodCylinder, "radius", radius); err != nil {
			return err
		}
		if err := validateLength(MethodCylinder, "height", height); err != nil {
			return err
		}

		dz := height / float64(rings-1)
		for r := 0; r < rings; r++ {
			for s := 0; s < segments; s++ {
				sin, cos := math.Sincos(2 * math.Pi * float64(s) / float64(segments))
				n := r3.Vec{X: cos, Y: sin}
				p := r3.Vec{X: radius * cos, Y: radius * sin, Z: float64(r) * dz}
				if _, err := m.AddVertex(p, n); err != nil {
					return err
				}
			}
		}

		id := func(r, s int) int { return r*segments + s%segments }
		for r := 0; r < rings; r++ {
			for s := 0; s < segments; s++ {
				u := id(r, s)
				if err := m.AddEdge(u, id(r, s+1)); err != nil {
					return err
				}
				if r+1 < rings {
					if err := m.AddEdge(u, id(r+1, s)); err != nil {
						return err
					}
					if err := m.AddEdge(u, id(r+1, s+1)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
