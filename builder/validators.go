// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// validators.go — parameter checks shared by constructors.
//
// Each helper returns a sentinel wrapped by builderErrorf when its
// precondition is violated.

package builder

import "math"

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateMax ensures that got ≤ max.
// Complexity: O(1).
func validateMax(method, name string, got, max int) error {
	if got > max {
		return builderErrorf(method, ErrBadSize, "%s must be ≤ %d, got %d", name, max, got)
	}

	return nil
}

// validateLength ensures that x is finite and > 0.
// Complexity: O(1).
func validateLength(method, name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return builderErrorf(method, ErrBadSize, "%s must be finite and > 0, got %g", name, x)
	}

	return nil
}
