// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// impl_sphere.go — implementation of Sphere(solid, subdivisions, radius).
//
// Canonical model:
//   • Start from a triangulated Platonic solid inscribed in the unit sphere.
//   • Each subdivision splits every triangle into four through its edge
//     midpoints, pushed back onto the sphere.
//   • Vertices are scaled by radius; normals point outward.
//   • Base vertices keep their ids; midpoints are appended in face order.
//     Edges are emitted sorted by (u,v) with u < v.
//
// Complexity:
//   • Faces: F₀·4^k for k subdivisions; time and space O(F₀·4^k).

package builder

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

// Sphere returns a Constructor for a closed, subdivided Platonic sphere.
// subdivisions in [0, MaxSphereSubdivisions] (else ErrTooFewVertices or
// ErrBadSize); radius finite and > 0 (else ErrBadSize); unknown solid
// fails with ErrConstructFailed.
func Sphere(solid PlatonicName, subdivisions int, radius float64) Constructor {
	return func(m *Mesh, _ builderConfig) error {
		if err := validateMin(MethodSphere, "subdivisions", subdivisions, 0); err != nil {
			return err
		}
		if err := validateMax(MethodSphere, "subdivisions", subdivisions, MaxSphereSubdivisions); err != nil {
			return err
		}
		if err := validateLength(MethodSphere, "radius", radius); err != nil {
			return err
		}
		dirs := solidVertices(solid)
		if dirs == nil {
			return builderErrorf(MethodSphere, ErrConstructFailed, "unknown solid %v", solid)
		}

		faces := solidFaces(len(dirs), platonicEdgeSets[solid])
		for k := 0; k < subdivisions; k++ {
			dirs, faces = subdivide(dirs, faces)
		}

		for _, d := range dirs {
			if _, err := m.AddVertex(r3.Scale(radius, d), d); err != nil {
				return err
			}
		}
		for _, e := range faceEdges(faces) {
			if err := m.AddEdge(e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// subdivide splits each face into four, appending one unit midpoint per
// shared edge.
func subdivide(dirs []r3.Vec, faces [][3]int) ([]r3.Vec, [][3]int) {
	mid := make(map[[2]int]int, len(faces)*3/2)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if id, ok := mid[key]; ok {
			return id
		}
		dirs = append(dirs, field.Normalize(r3.Add(dirs[a], dirs[b])))
		mid[key] = len(dirs) - 1

		return len(dirs) - 1
	}

	out := make([][3]int, 0, 4*len(faces))
	for _, f := range faces {
		ab, bc, ca := midpoint(f[0], f[1]), midpoint(f[1], f[2]), midpoint(f[2], f[0])
		out = append(out,
			[3]int{f[0], ab, ca},
			[3]int{f[1], bc, ab},
			[3]int{f[2], ca, bc},
			[3]int{ab, bc, ca},
		)
	}

	return dirs, out
}

// faceEdges returns the distinct edges of faces sorted by (u,v), u < v.
func faceEdges(faces [][3]int) [][2]int {
	seen := make(map[[2]int]struct{}, len(faces)*3/2)
	edges := make([][2]int, 0, len(faces)*3/2)
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			e := [2]int{min(a, b), max(a, b)}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	slices.SortFunc(edges, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}

		return x[1] - y[1]
	})

	return edges
}
