// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (every edge weighs 1)
//   • levels      = DefaultLevels
//   • scale       = DefaultScale
//   • orientation = unset               (random with an rng, +X otherwise)

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors and by
// BuildHierarchy. It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn

	// Maximum hierarchy depth (≥ 1).
	levels int
	// Target lattice edge length (> 0).
	scale float64

	// Uniform orientation seed; used only when hasOrientation is set.
	orientation    r3.Vec
	hasOrientation bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		levels:   DefaultLevels,
		scale:    DefaultScale,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
