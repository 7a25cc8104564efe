// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// mesh.go — the vertex/edge soup constructors emit.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

// Mesh is the finest-level geometry a Constructor emits: positions, unit
// normals and undirected edges. Vertex ids are dense and follow insertion
// order.
type Mesh struct {
	V     []r3.Vec
	N     []r3.Vec
	Edges [][2]int
}

// Len returns the vertex count.
func (m *Mesh) Len() int {
	return len(m.V)
}

// AddVertex appends a vertex at p with normal n (normalized here) and
// returns its id. Fails with ErrConstructFailed when n is degenerate.
// Complexity: amortized O(1).
func (m *Mesh) AddVertex(p, n r3.Vec) (int, error) {
	if !field.IsFinite(p) || !field.IsFinite(n) || r3.Norm(n) <= field.Epsilon {
		return 0, builderErrorf(MethodMesh, ErrConstructFailed, "AddVertex: degenerate vertex p=%v n=%v", p, n)
	}
	m.V = append(m.V, p)
	m.N = append(m.N, field.Normalize(n))

	return len(m.V) - 1, nil
}

// AddEdge appends the undirected edge {u, v}. Self loops and ids outside
// [0, Len()) fail with ErrConstructFailed.
// Complexity: amortized O(1).
func (m *Mesh) AddEdge(u, v int) error {
	n := m.Len()
	if u == v || u < 0 || v < 0 || u >= n || v >= n {
		return builderErrorf(MethodMesh, ErrConstructFailed, "AddEdge(%d,%d) with %d vertices", u, v, n)
	}
	m.Edges = append(m.Edges, [2]int{u, v})

	return nil
}
