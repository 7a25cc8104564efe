// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Runtime code never panics; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several checks fail:
//   ErrTooFewVertices (counts) → ErrBadSize (lengths) → ErrConstructFailed.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a count parameter (rows, cols, rings,
// segments) is smaller than the constructor minimum, or that a custom
// constructor produced too small a mesh.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a non-positive or non-finite length parameter
// (spacing, radius, height).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates that a constructor emitted an invalid element
// (self loop, out-of-range edge, degenerate normal) or that the resulting
// hierarchy did not validate.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method context, keeping err for
// errors.Is. The result reads "<Method>: <formatted message>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
