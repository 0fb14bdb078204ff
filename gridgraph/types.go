// Package gridgraph defines core types and options for the letter grid.
package gridgraph

// Connectivity selects neighbor connectivity: including diagonals (Conn8) or orthogonal only (Conn4).
type Connectivity int

const (
	// Conn8 uses king-move connectivity: all 8 surrounding cells.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// offsets8 lists (dRow, dCol) pairs for Conn8 in the canonical scan order:
// the row above left to right, the left and right cells, then the row below.
var offsets8 = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// offsets4 is offsets8 restricted to orthogonal moves, same relative order.
var offsets4 = [][2]int{
	{-1, 0},
	{0, -1}, {0, 1},
	{1, 0},
}

// GridOptions contains tunable parameters for a letter grid.
type GridOptions struct {
	// Conn chooses 8- or 4-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// LetterGrid treats a 2D rune grid as a graph. It is immutable once built.
// Rows and Cols define dimensions; cells[r][c] holds the letter at (r, c).
// neighborOffsets is precomputed from Conn for adjacency lookups.
type LetterGrid struct {
	Rows, Cols      int
	Conn            Connectivity
	cells           [][]rune
	neighborOffsets [][2]int
}
