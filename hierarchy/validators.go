// SPDX-License-Identifier: MIT
// Package: quadfield/hierarchy
//
// validators.go — opt-in structural checks for hierarchy builders.
//
// Purpose:
//  - One canonical place for the checks the solvers deliberately skip.
//  - Each validator returns a sentinel wrapped with its tag, so callers can
//    branch with errors.Is and still read where the violation was found.
//
// Order (first failure wins):
//  levels present → scale → per level (nil → shapes → finite vectors →
//  adjacency ids/weights) → per transfer (table size → child ids → claims).

package hierarchy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadfield/field"
)

// validatorErrorf wraps err with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks the whole hierarchy.
// Complexity: O(Σ(n_l + E_l)) time, O(max n_l) extra memory.
func (h *Hierarchy) Validate() error {
	if h == nil || len(h.Levels) == 0 {
		return validatorErrorf("Validate", ErrNoLevels)
	}
	if h.Scale <= 0 || math.IsNaN(h.Scale) || math.IsInf(h.Scale, 0) {
		return validatorErrorf("Validate", ErrBadScale)
	}
	for l, lv := range h.Levels {
		if lv == nil {
			return validatorErrorf(fmt.Sprintf("Validate: level %d", l), ErrNilLevel)
		}
		if err := lv.Validate(); err != nil {
			return fmt.Errorf("Validate: level %d: %w", l, err)
		}
	}
	if len(h.ToUpper) != len(h.Levels)-1 {
		return validatorErrorf("Validate: ToUpper", ErrDimensionMismatch)
	}
	for l := range h.ToUpper {
		fine, coarse, children := h.Between(l)
		if err := ValidateChildren(fine.Len(), coarse.Len(), children); err != nil {
			return fmt.Errorf("Validate: ToUpper[%d]: %w", l, err)
		}
	}

	return nil
}

// Validate checks one level: equal slice lengths, finite vectors, neighbor
// ids in range and finite non-negative weights.
// Complexity: O(n + E).
func (lv *Level) Validate() error {
	n := lv.Len()
	if len(lv.Adj) != n || len(lv.V) != n || len(lv.Q) != n || len(lv.S) != n || len(lv.O) != n {
		return validatorErrorf("Level.Validate: shape", ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		if !field.IsFinite(lv.N[i]) || !field.IsFinite(lv.V[i]) ||
			!field.IsFinite(lv.Q[i]) || !field.IsFinite(lv.O[i]) {
			return validatorErrorf(fmt.Sprintf("Level.Validate: vertex %d", i), ErrNaNInf)
		}
		for k := 0; k < 2; k++ {
			if math.IsNaN(lv.S[i][k]) || math.IsInf(lv.S[i][k], 0) {
				return validatorErrorf(fmt.Sprintf("Level.Validate: vertex %d scale", i), ErrNaNInf)
			}
		}
		for _, nb := range lv.Adj[i] {
			if nb.ID < 0 || nb.ID >= n {
				return validatorErrorf(fmt.Sprintf("Level.Validate: edge %d→%d", i, nb.ID), ErrVertexOutOfRange)
			}
			if nb.Weight < 0 || math.IsNaN(nb.Weight) || math.IsInf(nb.Weight, 0) {
				return validatorErrorf(fmt.Sprintf("Level.Validate: edge %d→%d", i, nb.ID), ErrBadWeight)
			}
		}
	}

	return nil
}

// ValidateChildren checks one up-mapping table between a fine level of
// fineLen vertices and a coarse level of coarseLen vertices: one entry per
// coarse vertex, child ids in range, slot 0 always set, and every fine vertex
// claimed exactly once.
// Complexity: O(fineLen + coarseLen).
func ValidateChildren(fineLen, coarseLen int, children []Children) error {
	if len(children) != coarseLen {
		return validatorErrorf("ValidateChildren: table size", ErrDimensionMismatch)
	}
	claimed := make([]bool, fineLen)
	for i, ch := range children {
		if ch[0] == NoChild {
			return validatorErrorf(fmt.Sprintf("ValidateChildren: coarse %d", i), ErrEmptyParent)
		}
		for _, c := range ch {
			if c == NoChild {
				continue
			}
			if c < 0 || c >= fineLen {
				return validatorErrorf(fmt.Sprintf("ValidateChildren: coarse %d → %d", i, c), ErrVertexOutOfRange)
			}
			if claimed[c] {
				return validatorErrorf(fmt.Sprintf("ValidateChildren: fine %d", c), ErrClaimedTwice)
			}
			claimed[c] = true
		}
	}
	for f, ok := range claimed {
		if !ok {
			return validatorErrorf(fmt.Sprintf("ValidateChildren: fine %d", f), ErrUnclaimedVertex)
		}
	}

	return nil
}
