// Package optimizer smooths the orientation, scale and offset fields of a
// multiresolution hierarchy in place.
//
// What & Why:
//
//	Quad remeshing first needs a smooth 4-RoSy cross field (Q), then a
//	lattice offset field (O) aligned with it. Both are found by iterative
//	Gauss-Seidel relaxation: each vertex is replaced by a weighted average of
//	its neighbors, after each neighbor has been brought into the vertex's
//	symmetry class (see package field). Running the relaxation coarse to fine
//	over a hierarchy propagates information across the mesh in few sweeps.
//
// Solvers:
//
//	OptimizeOrientations: V-cycle: relax + inject down, restrict up.
//	OptimizeScale       : level 0 only: derivative estimation, relaxation,
//	                       remap to [0,1]. Returns a ScaleReport.
//	OptimizePositions   : relax + inject down, no restriction.
//	Run                 : orientation → scale → position, with optional
//	                       validation; returns a Report.
//
// Configuration:
//
//	New(WithIterations(n), WithWorkers(w), WithLogger(l), WithMetrics(m),
//	    WithValidation(true)). Defaults: 6 iterations, 1 worker.
//
// Concurrency:
//
//	With one worker vertices are swept in index order. With more, each level
//	is greedily colored so that no positive-weight edge joins two vertices of
//	one color; colors are swept in order and the vertices of one color are
//	updated concurrently. The result does not depend on the worker count but
//	differs from the index-order sweep.
//
// Numeric policy:
//
//	Guarded by field.Epsilon everywhere; finite input never yields NaN/Inf.
//	Zero-weight adjacency entries behave exactly as absent ones.
//
// Observability:
//
//	Silent by default. SetLogger / WithLogger attach a *slog.Logger;
//	NewMetrics registers prometheus collectors.
package optimizer
