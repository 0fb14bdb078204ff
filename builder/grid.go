// SPDX-License-Identifier: MIT
// Package: wordgrid/builder
//
// grid.go: RandomGrid and Literal constructors.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • Cells are filled in row-major order; each draw is one rng.Intn call,
//     so a fixed seed reproduces the grid exactly.
//
// Complexity:
//   • Time:  O(rows*cols).
//   • Space: O(rows*cols).

package builder

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/wordgrid/gridgraph"
)

// RandomGrid returns a rows×cols grid whose letters are drawn uniformly from
// the configured charset.
func RandomGrid(rows, cols int, opts ...BuilderOption) (*gridgraph.LetterGrid, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early.
	if rows < MinGridDim || cols < MinGridDim {
		return nil, builderErrorf(methodRandomGrid, ErrTooSmall,
			"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
	}
	if len(cfg.charset) == 0 {
		return nil, builderErrorf(methodRandomGrid, ErrEmptyCharset, "no letters to draw")
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2) Draw row-major.
	cells := make([][]rune, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]rune, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = cfg.charset[rng.Intn(len(cfg.charset))]
		}
	}

	return gridgraph.NewLetterGrid(cells, gridgraph.GridOptions{Conn: cfg.conn})
}

// Literal returns a grid built from rows, one rune per cell. Only the
// connectivity option is consulted.
func Literal(rows []string, opts ...BuilderOption) (*gridgraph.LetterGrid, error) {
	cfg := newBuilderConfig(opts...)
	g, err := gridgraph.FromStrings(rows, cfg.conn)
	if err != nil {
		return nil, builderErrorf(methodLiteral, err, "%d rows", len(rows))
	}

	return g, nil
}
