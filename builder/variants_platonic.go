// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// variants_platonic.go — canonical data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for vertex directions and shell edges of the
//     three solids whose faces are triangles.
//   • Edge sets are sorted lexicographically by (u,v) with u < v.
//   • Faces are not stored: on these solids every 3-clique of the edge
//     graph is a face, so solidFaces derives them.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the triangulated Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4
	Octahedron                      // V=6,  E=12, F=8
	Icosahedron                     // V=12, E=30, F=20
)

// platonicEdgeSets maps each solid to its canonical, pre-sorted edge list.
var platonicEdgeSets = map[PlatonicName][][2]int{
	// Complete graph K4.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Poles {0,1}; equator 2,4,3,5 in angular order, so 2-3 and 4-5 are
	// the opposite (non-adjacent) pairs.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Top pole 0, top ring 1..5, bottom ring 6..10, bottom pole 11.
	// Top ring vertex 1+j touches bottom ring vertices 6+j and 6+(j+1)%5.
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// solidVertices returns the unit vertex directions of p matching the
// labeling of platonicEdgeSets, or nil for an unknown solid.
func solidVertices(p PlatonicName) []r3.Vec {
	switch p {
	case Tetrahedron:
		k := 1 / math.Sqrt(3)
		return []r3.Vec{{X: k, Y: k, Z: k}, {X: k, Y: -k, Z: -k}, {X: -k, Y: k, Z: -k}, {X: -k, Y: -k, Z: k}}
	case Octahedron:
		return []r3.Vec{{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	case Icosahedron:
		z, rho := 1/math.Sqrt(5), 2/math.Sqrt(5)
		vs := make([]r3.Vec, 0, 12)
		vs = append(vs, r3.Vec{Z: 1})
		for j := 0; j < 5; j++ {
			theta := 2 * math.Pi * float64(j) / 5
			vs = append(vs, r3.Vec{X: rho * math.Cos(theta), Y: rho * math.Sin(theta), Z: z})
		}
		for j := 0; j < 5; j++ {
			theta := 2*math.Pi*float64(j)/5 - math.Pi/5
			vs = append(vs, r3.Vec{X: rho * math.Cos(theta), Y: rho * math.Sin(theta), Z: -z})
		}

		return append(vs, r3.Vec{Z: -1})
	default:
		return nil
	}
}

// solidFaces lists the triangles {a<b<c} of an edge set in lexicographic
// order. Complexity: O(V·d²) with d the maximum degree.
func solidFaces(n int, edges [][2]int) [][3]int {
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	var faces [][3]int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !adj[a][b] {
				continue
			}
			for c := b + 1; c < n; c++ {
				if adj[a][c] && adj[b][c] {
					faces = append(faces, [3]int{a, b, c})
				}
			}
		}
	}

	return faces
}
