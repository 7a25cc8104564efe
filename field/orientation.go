// SPDX-License-Identifier: MIT
// Package: quadfield/field
//
// orientation.go — 4-RoSy orientation resolution and tangent-plane transport.

package field

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// planeAlignedCos is the cosine above which two normals are considered equal
// and transport is the identity (and below whose negation they are opposite).
const planeAlignedCos = 0.9999

// CompatOrientation resolves the 4-fold rotational ambiguity between two
// orientation vectors.
//
// Contract:
//   - The first result is qa, unchanged.
//   - The second result is the image of qb among
//     {qb, nb×qb, −qb, −nb×qb} (rotations by 0°, 90°, 180°, 270° about nb)
//     with the largest dot product with qa.
//   - Ties go to the first image in that order (strict comparison), which makes
//     the choice deterministic under floating point.
//
// na is accepted for call-site symmetry; qa is the reference and its own
// images are not enumerated.
//
// Swapping the arguments selects the same equivalence class: the returned pair
// is always the closest aligned pair of representatives, so both values can
// be combined linearly.
//
// Complexity: O(1), allocation free.
func CompatOrientation(qa, na, qb, nb r3.Vec) (r3.Vec, r3.Vec) {
	rot := Rotate90(qb, nb)
	images := [4]r3.Vec{qb, rot, r3.Scale(-1, qb), r3.Scale(-1, rot)}

	best, bestScore := 0, r3.Dot(qa, images[0])
	for k := 1; k < len(images); k++ {
		if score := r3.Dot(qa, images[k]); score > bestScore {
			best, bestScore = k, score
		}
	}

	return qa, images[best]
}

// RotateIntoPlane transports q, tangent to the plane with unit normal from,
// into the tangent plane with unit normal to, using the minimal rotation that
// maps from onto to (Rodrigues' formula about from×to).
//
// Edge cases:
//   - from·to ≥ 0.9999: the planes are treated as equal and q is returned as-is.
//   - from·to < −0.9999: the planes are opposite and −q is returned.
//
// Complexity: O(1).
func RotateIntoPlane(q, from, to r3.Vec) r3.Vec {
	cosTheta := r3.Dot(from, to)
	if cosTheta >= planeAlignedCos {
		return q
	}
	if cosTheta < -planeAlignedCos {
		return r3.Scale(-1, q)
	}

	axis := r3.Cross(from, to)
	axisNorm2 := r3.Dot(axis, axis)
	// q·cosθ + axis×q + axis·(axis·q)(1−cosθ)/|axis|²
	out := r3.Add(r3.Scale(cosTheta, q), r3.Cross(axis, q))

	return r3.Add(out, r3.Scale(r3.Dot(axis, q)*(1-cosTheta)/axisNorm2, axis))
}
