// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// config.go - resolved builder configuration.
//
// builderConfig is immutable after newBuilderConfig returns; constructors
// read it through the Sink.

package builder

import "math/rand"

// builderConfig holds the knobs shared by constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults. nil options are skipped.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng: nil, // no RNG unless explicitly set
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
