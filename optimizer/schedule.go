// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// schedule.go — Gauss-Seidel sweep schedules.
//
// Two schedules are provided:
//   • index order (workers == 1): vertices 0..n-1 in sequence, every update
//     immediately visible to the next one.
//   • multicolor (workers > 1): a greedy coloring of the level's positive
//     weight edges partitions the vertices into independent classes. Classes
//     run in order, the vertices of one class run concurrently. Within a class
//     no vertex reads another one's field, so the result is deterministic and
//     independent of the worker count.

package optimizer

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadfield/hierarchy"
)

// minParallelClass is the class size below which a class runs inline.
const minParallelClass = 64

// sweeper runs update over every vertex of one level, once per sweep.
type sweeper struct {
	workers int
	classes [][]int // nil ⇒ index order
}

// newSweeper prepares the schedule for lv. The coloring is computed once
// per level and reused for every sweep on it.
// Complexity: O(n + E) for workers > 1, O(1) otherwise.
func newSweeper(lv *hierarchy.Level, workers int) *sweeper {
	if workers <= 1 {
		return &sweeper{workers: 1}
	}

	return &sweeper{workers: workers, classes: colorClasses(lv.Adj)}
}

// sweep visits vertices 0..n-1 according to the schedule.
func (s *sweeper) sweep(n int, update func(i int)) {
	if s.classes == nil {
		for i := 0; i < n; i++ {
			update(i)
		}

		return
	}
	for _, class := range s.classes {
		s.runClass(class, update)
	}
}

// runClass updates the independent vertices of one color class.
func (s *sweeper) runClass(class []int, update func(i int)) {
	if len(class) < minParallelClass {
		for _, i := range class {
			update(i)
		}

		return
	}

	chunk := (len(class) + s.workers - 1) / s.workers
	var g errgroup.Group
	g.SetLimit(s.workers)
	for lo := 0; lo < len(class); lo += chunk {
		part := class[lo:min(lo+chunk, len(class))]
		g.Go(func() error {
			for _, i := range part {
				update(i)
			}

			return nil
		})
	}
	_ = g.Wait() // updates never fail
}

// colorClasses greedily colors the vertices in index order so that no two
// vertices joined by a positive-weight edge (in either direction) share a
// color. Zero-weight entries and self loops impose no constraint.
// Returns the vertex ids of each color, ascending within a class.
// Complexity: O(n + E) time and memory.
func colorClasses(adj [][]hierarchy.Neighbor) [][]int {
	n := len(adj)
	conflicts := make([][]int, n)
	for i, nbs := range adj {
		for _, nb := range nbs {
			if nb.Weight <= 0 || nb.ID == i {
				continue
			}
			conflicts[i] = append(conflicts[i], nb.ID)
			conflicts[nb.ID] = append(conflicts[nb.ID], i)
		}
	}

	color := make([]int, n)
	// taken[c] == i+1 marks color c as used by a neighbor of vertex i.
	var taken []int
	var classes [][]int
	for i := 0; i < n; i++ {
		for _, j := range conflicts[i] {
			if j >= i {
				continue
			}
			c := color[j]
			for len(taken) <= c {
				taken = append(taken, 0)
			}
			taken[c] = i + 1
		}
		c := 0
		for c < len(taken) && taken[c] == i+1 {
			c++
		}
		color[i] = c
		if c == len(classes) {
			classes = append(classes, nil)
		}
		classes[c] = append(classes[c], i)
	}

	return classes
}
