// SPDX-License-Identifier: MIT
// Package: quadfield/field
//
// vec.go — guarded vector helpers shared by the resolvers and the solvers.

package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the numeric floor used before any normalization or division.
// Norms (or squared norms, where documented) at or below Epsilon are treated
// as zero and the affected vector is left as-is.
const Epsilon = 1e-8

// Normalize returns v scaled to unit length.
// If |v| ≤ Epsilon, v is returned unchanged.
// Complexity: O(1).
func Normalize(v r3.Vec) r3.Vec {
	norm := r3.Norm(v)
	if norm <= Epsilon {
		return v
	}

	return r3.Scale(1/norm, v)
}

// ProjectTangent removes the component of v along the unit normal n.
// Complexity: O(1).
func ProjectTangent(v, n r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(r3.Dot(n, v), n))
}

// ProjectOntoPlane moves the point o along n onto the plane through p with
// unit normal n.
// Complexity: O(1).
func ProjectOntoPlane(o, n, p r3.Vec) r3.Vec {
	return r3.Sub(o, r3.Scale(r3.Dot(n, r3.Sub(o, p)), n))
}

// Rotate90 rotates the tangent vector q by 90° about the unit normal n.
// Complexity: O(1).
func Rotate90(q, n r3.Vec) r3.Vec {
	return r3.Cross(n, q)
}

// IsFinite reports whether every component of v is finite.
// Complexity: O(1).
func IsFinite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
