// Package quadfield computes the guiding fields of field-aligned quad
// remeshing over a pre-built multiresolution hierarchy of a triangle mesh:
//
//   - a 4-RoSy orientation (cross) field, one tangent representative per vertex;
//   - an anisotropic scale field derived from how the cross field bends;
//   - a lattice position field snapped to a square grid of edge length Scale.
//
// All three solvers relax a level with Gauss-Seidel sweeps, resolving the
// rotational (and, for positions, translational) ambiguity of every
// neighbor before averaging.
//
// Under the hood, everything is organized under these subpackages:
//
//	field          symmetry primitives: compatible orientations, lattice
//	               middle point, floor/round to lattice, compatible positions
//	hierarchy      Level / Hierarchy data model, up-mapping, validation,
//	               gonum mat export
//	optimizer      orientation, scale and position solvers, sweep schedules,
//	               slog logging and prometheus metrics
//	builder        deterministic fixture meshes (grid, cylinder, disk,
//	               sphere) and a pairing coarsener producing a Hierarchy
//	config         YAML configuration of the command
//	cmd/quadfield  build a fixture, run the solvers, log a summary
//
// Quick start:
//
//	h, err := builder.BuildHierarchy(builder.Sphere(builder.Icosahedron, 3, 1),
//		builder.WithSeed(1), builder.WithLevels(4), builder.WithScale(0.1))
//	if err != nil {
//		return err
//	}
//	rep, err := optimizer.New(optimizer.WithWorkers(4)).Run(h)
//
// Building the hierarchy from real meshes, mesh I/O, welding and quad
// extraction are outside this module.
package quadfield
