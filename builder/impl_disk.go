// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// impl_disk.go — implementation of Disk(segments, radius).
//
// Canonical model:
//   • A wheel: rim cycle of `segments` vertices plus one hub, triangulated
//     as a fan in the z=0 plane, normal +Z.
//   • Rim vertex s has id s and position (radius·cosθ, radius·sinθ, 0) with
//     θ = 2πs/segments; the hub has id `segments` and sits at the origin.
//   • Rim edges (s, s+1 mod segments) are emitted first, then spokes
//     (hub, s) in rim order.
//
// Complexity:
//   • Time: O(segments) vertices + O(2·segments) edges.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Disk returns a Constructor for a triangulated fan disk.
// segments ≥ MinDiskSegments (else ErrTooFewVertices); radius finite and > 0
// (else ErrBadSize).
func Disk(segments int, radius float64) Constructor {
	return func(m *Mesh, _ builderConfig) error {
		if err := validateMin(MethodDisk, "segments", segments, MinDiskSegments); err != nil {
			return err
		}
		if err := validateLength(MethodDisk, "radius", radius); err != nil {
			return err
		}

		up := r3.Vec{Z: 1}
		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			p := r3.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
			if _, err := m.AddVertex(p, up); err != nil {
				return err
			}
		}
		hub, err := m.AddVertex(r3.Vec{}, up)
		if err != nil {
			return err
		}

		for s := 0; s < segments; s++ {
			if err = m.AddEdge(s, (s+1)%segments); err != nil {
				return err
			}
		}
		for s := 0; s < segments; s++ {
			if err = m.AddEdge(hub, s); err != nil {
				return err
			}
		}

		return nil
	}
}
