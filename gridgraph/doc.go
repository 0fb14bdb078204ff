// Package gridgraph treats a 2D grid of letters as an implicit graph whose
// vertices are cells and whose edges join neighboring cells.
//
// What:
//
//   - LetterGrid wraps a rectangular [][]rune grid; it is immutable once built.
//   - Neighbors follow king-move adjacency (Conn8) by default, or orthogonal
//     adjacency (Conn4) when requested.
//   - Offsets are precomputed in a fixed order so every traversal over the
//     same grid visits neighbors identically.
//
// Why:
//
//   - Word-search puzzles: letters joined by contiguous paths.
//   - Boggle-style boards, including extended alphabets (Å, Ä, Ö).
//
// Complexity:
//
//   - NewLetterGrid: O(R×C) time and memory (deep copy).
//   - InBounds, At, Index, Coordinate: O(1).
//
// Options:
//
//   - GridOptions.Conn: Conn8 (default, 8 neighbors) or Conn4 (4 neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
