// SPDX-License-Identifier: MIT
// Package: quadfield/optimizer
//
// errors.go — sentinel errors returned by Run.
//
// The solvers themselves never fail: numeric degeneracies are guarded, and
// a malformed hierarchy is the builder's responsibility. Run only rejects
// input it cannot start on.

package optimizer

import "errors"

var (
	// ErrNilHierarchy indicates Run was given a nil hierarchy.
	ErrNilHierarchy = errors.New("optimizer: hierarchy is nil")

	// ErrEmptyHierarchy indicates Run was given a hierarchy without levels.
	ErrEmptyHierarchy = errors.New("optimizer: hierarchy has no levels")
)
