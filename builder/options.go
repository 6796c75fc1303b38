// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// options.go - functional options for Build.
//
// Option constructors panic on invalid arguments (programmer error at the
// call site); constructors themselves never panic.

package builder

import "math/rand"

// Option mutates builderConfig before constructors run.
type Option func(*builderConfig)

// WithRand uses r for stochastic constructors. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a private RNG so stochastic constructors are reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
