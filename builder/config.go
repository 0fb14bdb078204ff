// SPDX-License-Identifier: MIT
// Package: wordgrid/builder
//
// config.go: internal configuration and defaults.
//
// Defaults:
//   • rng      = nil             (resolved to a time-seeded source by RandomGrid)
//   • charset  = DefaultCharset
//   • conn     = gridgraph.Conn8

package builder

import (
	"math/rand"

	"github.com/katalvlaran/wordgrid/gridgraph"
)

// DefaultCharset is the alphabet drawn from by RandomGrid: the Latin letters
// followed by the Swedish extended letters.
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÅ"

// MinGridDim is the smallest row or column count accepted by constructors.
const MinGridDim = 1

// Method tags for error context.
const (
	methodRandomGrid = "RandomGrid"
	methodLiteral    = "Literal"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for random grids; nil means "seed from the clock".
	rng *rand.Rand
	// Letters available to RandomGrid, as runes.
	charset []rune
	// Neighbor connectivity of the produced grid.
	conn gridgraph.Connectivity
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order; later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		charset: []rune(DefaultCharset),
		conn:    gridgraph.Conn8,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
