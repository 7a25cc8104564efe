// SPDX-License-Identifier: MIT
// Package: quadfield/hierarchy
//
// types.go — Neighbor, Children, Level and Hierarchy.

package hierarchy

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// NoChild marks an empty slot in a Children pair.
const NoChild = -1

// Neighbor is one weighted adjacency entry. Weight 0 means "absent edge":
// solvers skip it exactly as if the entry were not in the list.
type Neighbor struct {
	// ID is the neighbor's vertex id on the same level.
	ID int

	// Weight is the non-negative edge weight.
	Weight float64
}

// Children lists the fine vertices (level l) that collapse into one coarse
// vertex (level l+1). Slot 1 is NoChild when only one fine vertex maps up.
type Children [2]int

// Level holds the geometry and the fields of one resolution level.
// All per-vertex slices have the same length, the level's vertex count.
type Level struct {
	// Adj is the ordered adjacency of every vertex.
	Adj [][]Neighbor

	// N holds unit normals (read only for solvers).
	N []r3.Vec

	// V holds positions (read only for solvers).
	V []r3.Vec

	// Q holds orientations; after the orientation solver they are unit
	// length and tangent to N.
	Q []r3.Vec

	// S holds the two anisotropic scale values; meaningful on level 0 only.
	S [][2]float64

	// O holds lattice offsets near V.
	O []r3.Vec
}

// NewLevel allocates a level with n vertices, all fields zero.
// Complexity: O(n) time and memory.
func NewLevel(n int) *Level {
	if n < 0 {
		n = 0
	}

	return &Level{
		Adj: make([][]Neighbor, n),
		N:   make([]r3.Vec, n),
		V:   make([]r3.Vec, n),
		Q:   make([]r3.Vec, n),
		S:   make([][2]float64, n),
		O:   make([]r3.Vec, n),
	}
}

// Len returns the vertex count of the level.
func (lv *Level) Len() int {
	return len(lv.N)
}

// Clone returns a deep copy of the level; adjacency lists are copied too.
// Complexity: O(n + E).
func (lv *Level) Clone() *Level {
	out := &Level{
		Adj: make([][]Neighbor, len(lv.Adj)),
		N:   append([]r3.Vec(nil), lv.N...),
		V:   append([]r3.Vec(nil), lv.V...),
		Q:   append([]r3.Vec(nil), lv.Q...),
		S:   append([][2]float64(nil), lv.S...),
		O:   append([]r3.Vec(nil), lv.O...),
	}
	for i, adj := range lv.Adj {
		out.Adj[i] = append([]Neighbor(nil), adj...)
	}

	return out
}

// Hierarchy is the multiresolution input of the solvers.
//
// Levels[0] is the finest level. ToUpper[l] has one Children entry per
// vertex of Levels[l+1], so len(ToUpper) == len(Levels)-1.
type Hierarchy struct {
	Levels  []*Level
	ToUpper [][]Children

	// Scale is the target edge length of the quad lattice.
	Scale float64
}

// Depth returns the number of levels.
func (h *Hierarchy) Depth() int {
	return len(h.Levels)
}

// InvScale returns 1/Scale, or 0 when Scale is 0.
func (h *Hierarchy) InvScale() float64 {
	if h.Scale == 0 {
		return 0
	}

	return 1 / h.Scale
}

// Between returns the two levels joined by ToUpper[l] together with the
// mapping: fine is Levels[l], coarse is Levels[l+1]. Injection treats coarse
// as the source and fine as the destination; restriction does the opposite.
// l must be in [0, Depth()-2].
func (h *Hierarchy) Between(l int) (fine, coarse *Level, children []Children) {
	return h.Levels[l], h.Levels[l+1], h.ToUpper[l]
}

// Clone returns a deep copy of the hierarchy.
// Complexity: O(Σ(n_l + E_l)).
func (h *Hierarchy) Clone() *Hierarchy {
	out := &Hierarchy{
		Levels:  make([]*Level, len(h.Levels)),
		ToUpper: make([][]Children, len(h.ToUpper)),
		Scale:   h.Scale,
	}
	for l, lv := range h.Levels {
		if lv != nil {
			out.Levels[l] = lv.Clone()
		}
	}
	for l, up := range h.ToUpper {
		out.ToUpper[l] = append([]Children(nil), up...)
	}

	return out
}
