// Package gridgraph provides a letter grid addressed by (row, col), 0-based,
// with precomputed neighbor offsets for Conn8 or Conn4 adjacency.
package gridgraph

import (
	"strings"
)

// NewLetterGrid constructs a LetterGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewLetterGrid(cells [][]rune, opts GridOptions) (*LetterGrid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]rune, rows)
	for r := 0; r < rows; r++ {
		cp[r] = make([]rune, cols)
		copy(cp[r], cells[r])
	}
	offsets := offsets8
	if opts.Conn == Conn4 {
		offsets = offsets4
	}

	return &LetterGrid{
		Rows:            rows,
		Cols:            cols,
		Conn:            opts.Conn,
		cells:           cp,
		neighborOffsets: offsets,
	}, nil
}

// FromStrings builds a LetterGrid where each string is one row and each rune
// one cell. Leading and trailing spaces of a row are ignored.
func FromStrings(rows []string, conn Connectivity) (*LetterGrid, error) {
	cells := make([][]rune, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []rune(strings.TrimSpace(row)))
	}

	return NewLetterGrid(cells, GridOptions{Conn: conn})
}

// Validate reports whether g is usable by a traversal. A grid built with
// NewLetterGrid always is; a zero-value or hand-assembled LetterGrid may not be.
// Returns ErrEmptyGrid if Rows or Cols is below 1, ErrNonRectangular if the
// cells do not form exactly Rows rows of Cols letters.
func (g *LetterGrid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return ErrEmptyGrid
	}
	if len(g.cells) != g.Rows {
		return ErrNonRectangular
	}
	for _, row := range g.cells {
		if len(row) != g.Cols {
			return ErrNonRectangular
		}
	}

	return nil
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *LetterGrid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// At returns the letter at (r,c). The caller must check InBounds first.
func (g *LetterGrid) At(r, c int) rune {
	return g.cells[r][c]
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
// Should be used in all adjacency traversals to avoid branching.
// The returned slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *LetterGrid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Size returns Rows×Cols.
func (g *LetterGrid) Size() int {
	return g.Rows * g.Cols
}

// Index maps (r,c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (g *LetterGrid) Index(r, c int) int {
	return r*g.Cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *LetterGrid) Coordinate(idx int) (r, c int) {
	return idx / g.Cols, idx % g.Cols
}

// Row returns row r as a string.
func (g *LetterGrid) Row(r int) string {
	return string(g.cells[r])
}

// Letters returns a deep copy of the cells.
func (g *LetterGrid) Letters() [][]rune {
	out := make([][]rune, g.Rows)
	for r := range g.cells {
		out[r] = append([]rune(nil), g.cells[r]...)
	}
	return out
}

// String renders the grid one row per line with letters separated by a space.
func (g *LetterGrid) String() string {
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.cells[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
