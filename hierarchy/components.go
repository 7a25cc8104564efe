// SPDX-License-Identifier: MIT
// Package: quadfield/hierarchy
//
// components.go — connected components of a level's positive-weight graph.
//
// Each component is one independent smoothing problem: the orientation and
// position solvers never carry information across components, so a field
// on a disconnected level converges per component.

package hierarchy

import "slices"

// Components returns the connected components of lv, following entries
// with positive weight in either direction. Out-of-range ids are ignored.
// Components are ordered by their smallest vertex and each lists its
// vertices in ascending order.
// Complexity: O(n + E) time and memory.
func (lv *Level) Components() [][]int {
	n := len(lv.Adj)
	links := make([][]int, n)
	for u, nbs := range lv.Adj {
		for _, nb := range nbs {
			if nb.Weight <= 0 || nb.ID < 0 || nb.ID >= n || nb.ID == u {
				continue
			}
			links[u] = append(links[u], nb.ID)
			links[nb.ID] = append(links[nb.ID], u)
		}
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]int
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for _, v := range links[queue[head]] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		comp := slices.Clone(queue)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}
