// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// coarsen.go — one level of pairing simplification.
//
// Algorithm (greedy heaviest-edge matching):
//   1. Collect every positive-weight edge {i<j}; sort by weight descending,
//      ties by (i, j) ascending.
//   2. Walk the list and match both endpoints when both are still free.
//   3. Walk the fine vertices in index order; the first unassigned vertex of
//      each pair (or a lone vertex) opens the next coarse vertex.
//
// Coarse fields: V = mean of the children, N = normalized mean (first
// child's normal when the mean vanishes), Q = first child's orientation
// projected and normalized, O = V, S = 0. Coarse adjacency sums the weights
// of the fine edges between two different coarse vertices, sorted by id.

package builder

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
	"github.com/katalvlaran/quadfield/hierarchy"
)

// weightedEdge is one undirected fine edge with u < v.
type weightedEdge struct {
	u, v int
	w    float64
}

// coarsen builds the next coarser level of fine and the up-mapping table.
// Complexity: O(n + E log E) time, O(n + E) memory.
func coarsen(fine *hierarchy.Level) (*hierarchy.Level, []hierarchy.Children) {
	n := fine.Len()

	var edges []weightedEdge
	for i, adj := range fine.Adj {
		for _, nb := range adj {
			if nb.ID > i && nb.Weight > 0 {
				edges = append(edges, weightedEdge{u: i, v: nb.ID, w: nb.Weight})
			}
		}
	}
	slices.SortStableFunc(edges, func(a, b weightedEdge) int {
		if c := cmp.Compare(b.w, a.w); c != 0 {
			return c
		}
		if c := cmp.Compare(a.u, b.u); c != 0 {
			return c
		}

		return cmp.Compare(a.v, b.v)
	})

	partner := make([]int, n)
	for i := range partner {
		partner[i] = hierarchy.NoChild
	}
	for _, e := range edges {
		if partner[e.u] == hierarchy.NoChild && partner[e.v] == hierarchy.NoChild {
			partner[e.u], partner[e.v] = e.v, e.u
		}
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = hierarchy.NoChild
	}
	children := make([]hierarchy.Children, 0, n)
	for i := 0; i < n; i++ {
		if parent[i] != hierarchy.NoChild {
			continue
		}
		id := len(children)
		ch := hierarchy.Children{i, hierarchy.NoChild}
		parent[i] = id
		if p := partner[i]; p != hierarchy.NoChild {
			ch[1] = p
			parent[p] = id
		}
		children = append(children, ch)
	}

	coarse := hierarchy.NewLevel(len(children))
	for id, ch := range children {
		v, nrm := fine.V[ch[0]], fine.N[ch[0]]
		if ch[1] != hierarchy.NoChild {
			v = r3.Scale(0.5, r3.Add(v, fine.V[ch[1]]))
			if mean := r3.Add(nrm, fine.N[ch[1]]); r3.Norm(mean) > field.Epsilon {
				nrm = mean
			}
		}
		nrm = field.Normalize(nrm)

		coarse.V[id] = v
		coarse.N[id] = nrm
		coarse.Q[id] = tangentFrom(fine.Q[ch[0]], nrm)
		coarse.O[id] = v
	}

	acc := make([]map[int]float64, len(children))
	for i, adj := range fine.Adj {
		pi := parent[i]
		for _, nb := range adj {
			pj := parent[nb.ID]
			if pi == pj || nb.Weight == 0 {
				continue
			}
			if acc[pi] == nil {
				acc[pi] = make(map[int]float64)
			}
			acc[pi][pj] += nb.Weight
		}
	}
	for id, sums := range acc {
		ids := make([]int, 0, len(sums))
		for j := range sums {
			ids = append(ids, j)
		}
		slices.Sort(ids)
		for _, j := range ids {
			coarse.Adj[id] = append(coarse.Adj[id], hierarchy.Neighbor{ID: j, Weight: sums[j]})
		}
	}

	return coarse, children
}
