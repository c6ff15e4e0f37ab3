// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = rand.New(rand.NewSource(DefaultSeed)), fresh per resolution
//   • exactEdges = false (clamp m to n(n-1)/2)

package builder

import "math/rand"

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
// Two unseeded RandomGraph calls therefore return identical graphs.
const DefaultSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; never nil after resolution.
	rng *rand.Rand

	// exactEdges turns silent clamping of m into ErrInvalidArgument.
	exactEdges bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
