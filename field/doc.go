// Package field resolves the discrete symmetries of the fields used to
// guide quadrilateral remeshing.
//
// What & Why:
//
//	An orientation (cross) field stores one tangent vector per vertex, but the
//	vector only matters up to a rotation by a multiple of 90° about the local
//	normal. An offset field stores one lattice point per vertex, which only
//	matters up to those rotations combined with integer lattice translations.
//	Before two neighboring values can be averaged they must be brought into the
//	same representative of their equivalence class. This package provides the
//	pure functions that do that:
//
//	  • CompatOrientation: pick the 90° image of q_b closest to q_a.
//	  • RotateIntoPlane  : transport a tangent vector between tangent planes.
//	  • CompatPosition   : pick the closest pair of lattice points around the
//	                        shared middle point of two vertices.
//	  • RoundToLattice   : snap a lattice to the point nearest a vertex.
//
// Numeric policy:
//
//	Every normalization and division is guarded by Epsilon. A vector whose norm
//	is at or below Epsilon is returned unchanged instead of producing NaN/Inf.
//
// Complexity:
//
//	All functions are O(1), allocation free and safe for concurrent use.
package field
