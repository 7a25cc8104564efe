// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildHierarchy themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

// BuilderOption customizes BuildHierarchy by mutating a builderConfig
// before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic choices (orientation
// seeding, random weight functions). Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLevels caps the hierarchy depth. The coarsener stops earlier when a
// level no longer shrinks. Panics if n < 1.
// Complexity: O(1).
func WithLevels(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithLevels(n<1)")
	}

	return func(c *builderConfig) { c.levels = n }
}

// WithScale sets the target lattice edge length stored in the hierarchy.
// Panics unless s is finite and > 0.
// Complexity: O(1).
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) { c.scale = s }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithOrientation seeds every orientation with dir projected onto the
// vertex tangent plane, instead of a random tangent. Panics when dir is
// not finite or too short to define a direction.
// Complexity: O(1).
func WithOrientation(dir r3.Vec) BuilderOption {
	if !field.IsFinite(dir) || r3.Norm(dir) <= field.Epsilon {
		panic("builder: WithOrientation(degenerate dir)")
	}

	return func(c *builderConfig) {
		c.orientation, c.hasOrientation = dir, true
	}
}
