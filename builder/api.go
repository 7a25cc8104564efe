// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   • One orchestrator: BuildHierarchy(mesh, opts...). Resolves cfg, runs the
//     mesh constructor, builds level 0, coarsens, validates.
//   • Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   • Determinism: same constructor, options and seed ⇒ identical hierarchies.
//   • Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
	"github.com/katalvlaran/quadfield/hierarchy"
)

// Config is the resolved builder configuration handed to constructors.
// Its fields are private; constructors only pass it along.
type Config = builderConfig

// Constructor emits a finest-level mesh using the resolved Config.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and edges in a stable, documented order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(m *Mesh, cfg Config) error

// BuildHierarchy runs mesh and turns the result into a well-formed
// hierarchy:
//
//  1. Level 0 takes the mesh positions and normals; every undirected edge
//     gets one weight from the configured WeightFn, listed on both
//     endpoints, adjacency sorted by neighbor id.
//  2. Orientations are seeded as unit tangents (WithOrientation, else a
//     random direction when an RNG is set, else +X), offsets start at the
//     positions, scale at 0.
//  3. Levels are coarsened by heaviest-edge matching until the configured
//     depth is reached or a level no longer shrinks.
//  4. The result is checked with hierarchy.Validate.
//
// Errors:
//   - nil mesh or invalid output: ErrConstructFailed (joined with the
//     hierarchy sentinel when validation fails).
//   - constructor errors are returned wrapped with "BuildHierarchy: %w".
//   - fewer than MinMeshVertices vertices: ErrTooFewVertices.
//
// Complexity: O(levels · (n + E log E)) time, O(n + E) memory.
func BuildHierarchy(mesh Constructor, opts ...BuilderOption) (*hierarchy.Hierarchy, error) {
	if mesh == nil {
		return nil, builderErrorf(MethodBuildHierarchy, ErrConstructFailed, "nil constructor")
	}
	cfg := newBuilderConfig(opts...)

	m := &Mesh{}
	if err := mesh(m, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildHierarchy, err)
	}
	if m.Len() < MinMeshVertices {
		return nil, builderErrorf(MethodBuildHierarchy, ErrTooFewVertices, "mesh has %d vertices", m.Len())
	}

	fine, err := baseLevel(m, cfg)
	if err != nil {
		return nil, err
	}

	h := &hierarchy.Hierarchy{Levels: []*hierarchy.Level{fine}, Scale: cfg.scale}
	for len(h.Levels) < cfg.levels {
		top := h.Levels[len(h.Levels)-1]
		coarse, children := coarsen(top)
		if coarse.Len() == top.Len() {
			break
		}
		h.Levels = append(h.Levels, coarse)
		h.ToUpper = append(h.ToUpper, children)
	}

	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildHierarchy, ErrConstructFailed, err)
	}

	return h, nil
}

// baseLevel converts the mesh into level 0.
// Complexity: O(n + E log E).
func baseLevel(m *Mesh, cfg builderConfig) (*hierarchy.Level, error) {
	lv := hierarchy.NewLevel(m.Len())
	copy(lv.V, m.V)
	copy(lv.N, m.N)
	copy(lv.O, m.V)

	for _, e := range m.Edges {
		w := cfg.weightFn(cfg.rng)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, builderErrorf(MethodBuildHierarchy, ErrConstructFailed, "edge %d-%d weight %g", e[0], e[1], w)
		}
		lv.Adj[e[0]] = append(lv.Adj[e[0]], hierarchy.Neighbor{ID: e[1], Weight: w})
		lv.Adj[e[1]] = append(lv.Adj[e[1]], hierarchy.Neighbor{ID: e[0], Weight: w})
	}
	for _, adj := range lv.Adj {
		slices.SortStableFunc(adj, func(a, b hierarchy.Neighbor) int { return cmp.Compare(a.ID, b.ID) })
	}

	for i := range lv.Q {
		lv.Q[i] = tangentFrom(seedDirection(cfg), lv.N[i])
	}

	return lv, nil
}

// seedDirection returns the direction used to seed one orientation.
func seedDirection(cfg builderConfig) r3.Vec {
	switch {
	case cfg.hasOrientation:
		return cfg.orientation
	case cfg.rng != nil:
		return r3.Vec{X: cfg.rng.NormFloat64(), Y: cfg.rng.NormFloat64(), Z: cfg.rng.NormFloat64()}
	default:
		return r3.Vec{X: 1}
	}
}

// tangentFrom projects dir onto the plane of the unit normal n and
// normalizes it. When dir is (nearly) parallel to n, a tangent built from
// the coordinate axis least aligned with n is used instead.
// Complexity: O(1).
func tangentFrom(dir, n r3.Vec) r3.Vec {
	t := field.ProjectTangent(dir, n)
	if r3.Norm(t) <= field.Epsilon*math.Max(1, r3.Norm(dir)) {
		axis := r3.Vec{X: 1}
		if math.Abs(n.X) > 0.9 {
			axis = r3.Vec{Y: 1}
		}
		t = r3.Cross(n, axis)
	}

	return field.Normalize(t)
}
