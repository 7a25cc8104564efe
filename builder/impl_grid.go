// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// impl_grid.go — implementation of Grid(rows, cols, spacing).
//
// Canonical model:
//   • Planar triangulated sheet in the z=0 plane, normal +Z.
//   • Vertex (r,c) has id r*cols+c and position (c·spacing, r·spacing, 0).
//   • Per vertex, edges to Right (r,c+1), Bottom (r+1,c) and Diagonal
//     (r+1,c+1) where they exist, emitted in that order.
//
// Complexity:
//   • Time: O(rows·cols) vertices + O(3·rows·cols) edges.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Grid returns a Constructor that builds a rows×cols triangulated sheet.
// rows, cols ≥ MinGridDim (else ErrTooFewVertices); spacing finite and > 0
// (else ErrBadSize).
func Grid(rows, cols int, spacing float64) Constructor {
	return func(m *Mesh, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := validateLength(MethodGrid, "spacing", spacing); err != nil {
			return err
		}

		up := r3.Vec{Z: 1}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := r3.Vec{X: float64(c) * spacing, Y: float64(r) * spacing}
				if _, err := m.AddVertex(p, up); err != nil {
					return err
				}
			}
		}

		id := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					if err := m.AddEdge(u, id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := m.AddEdge(u, id(r+1, c)); err != nil {
						return err
					}
				}
				if r+1 < rows && c+1 < cols {
					if err := m.AddEdge(u, id(r+1, c+1)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
