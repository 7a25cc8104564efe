// SPDX-License-Identifier: MIT
// Package: quadfield/hierarchy
//
// errors.go — sentinel errors for hierarchy validation and interop.
//
// Error policy:
//   • Only sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach context with fmt.Errorf("...: %w", ErrX).

package hierarchy

import "errors"

var (
	// ErrNoLevels indicates a hierarchy without any level.
	ErrNoLevels = errors.New("hierarchy: no levels")

	// ErrNilLevel indicates a nil *Level inside Levels.
	ErrNilLevel = errors.New("hierarchy: nil level")

	// ErrDimensionMismatch indicates per-vertex slices of different lengths,
	// a ToUpper table of the wrong size, or a dense matrix of the wrong shape.
	ErrDimensionMismatch = errors.New("hierarchy: dimension mismatch")

	// ErrVertexOutOfRange indicates a neighbor or child id outside its level.
	ErrVertexOutOfRange = errors.New("hierarchy: vertex id out of range")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("hierarchy: invalid edge weight")

	// ErrNaNInf indicates a NaN or infinite component in a per-vertex vector.
	ErrNaNInf = errors.New("hierarchy: NaN or Inf encountered")

	// ErrUnclaimedVertex indicates a fine vertex no coarse vertex maps to.
	ErrUnclaimedVertex = errors.New("hierarchy: fine vertex not claimed by a coarse parent")

	// ErrClaimedTwice indicates a fine vertex claimed by more than one slot.
	ErrClaimedTwice = errors.New("hierarchy: fine vertex claimed more than once")

	// ErrEmptyParent indicates a coarse vertex whose first child slot is empty.
	ErrEmptyParent = errors.New("hierarchy: coarse vertex without children")

	// ErrBadScale indicates a non-positive or non-finite target scale.
	ErrBadScale = errors.New("hierarchy: scale must be finite and > 0")

	// ErrUnknownField indicates a Field value outside the declared set.
	ErrUnknownField = errors.New("hierarchy: unknown field")
)
