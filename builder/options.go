// SPDX-License-Identifier: MIT
// Package: wordgrid/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/wordgrid/gridgraph"
)

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for random grids.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCharset sets the letters RandomGrid draws from. Repeating a letter
// raises its probability. Panics on an empty charset.
func WithCharset(charset string) BuilderOption {
	if charset == "" {
		panic("builder: WithCharset(\"\")")
	}
	return func(c *builderConfig) {
		c.charset = []rune(charset)
	}
}

// WithConnectivity selects Conn8 or Conn4 adjacency for the produced grid.
func WithConnectivity(conn gridgraph.Connectivity) BuilderOption {
	return func(c *builderConfig) {
		c.conn = conn
	}
}
