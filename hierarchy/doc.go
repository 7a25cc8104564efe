// Package hierarchy defines the multiresolution data model shared by the
// field solvers.
//
// The Hierarchy H = (L_0 … L_{k-1}, ToUpper, Scale) is an ordered list of
// levels, finest first:
//
//   - Level l owns a dense vertex id space 0..n_l-1 and, per vertex, its
//     adjacency ([]Neighbor, weight 0 ≡ absent edge), normal N, position V,
//     orientation Q, scale S and offset O.
//   - ToUpper[l][i] lists the ≤2 fine vertices of level l that collapse into
//     coarse vertex i of level l+1 (NoChild marks an empty slot).
//   - Scale is the target edge length used by the position solver.
//
// Ownership:
//
//	Every slice is allocated once (NewLevel) and sized for the lifetime of the
//	optimization. Solvers mutate Q, S and O in place; Adj, N and V are read only.
//	Between(l) hands out the fine and coarse level of one transfer explicitly,
//	so a phase always names its source and destination.
//
// Validation:
//
//	The solvers never validate. Validate is offered to hierarchy builders that
//	want to fail fast on malformed input (dimension mismatches, bad ids,
//	negative or non-finite weights, unclaimed fine vertices, …).
//
// Interop:
//
//	Dense/SetDense export and import a field as a column-indexed gonum
//	*mat.Dense (3×n for vectors, 2×n for scale).
package hierarchy
