// Package builder generates deterministic, well-formed multiresolution
// hierarchies for tests, examples and the command line tool.
//
// The field solvers consume a hierarchy but never build one. This package
// stands in for an external hierarchy builder: a Constructor emits a fine
// triangle mesh, and BuildHierarchy turns it into level 0 plus coarser
// levels obtained by greedy heaviest-edge matching.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildHierarchy(mesh, opts...) → *hierarchy.Hierarchy, validated.
//   - Mesh constructors (Constructor implementations):
//     – Grid(rows, cols, spacing):              flat triangulated sheet.
//     – Cylinder(rings, segments, radius, h):   curved, closed around Z.
//     – Disk(segments, radius):                 flat fan around a hub.
//     – Sphere(solid, subdivisions, radius):    closed, subdivided Platonic solid.
//     Custom constructors fill a *Mesh through AddVertex/AddEdge.
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:     reproducible randomness.
//     – WithLevels / WithScale:  depth cap and lattice edge length.
//     – WithOrientation:         uniform orientation seed.
//     – WithWeightFn and the WithConstant/Uniform/ExponentialWeight shortcuts.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical hierarchy.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels (ErrTooFewVertices, ErrBadSize,
//     ErrConstructFailed) wrapped with the method context.
//   - Every returned hierarchy passes hierarchy.Validate.
package builder
