// Package builder produces letter grids for the path enumerator, either drawn
// at random from a character set or taken verbatim from literal rows.
//
// The package offers the following key components:
//
//   - Constructors:
//     – RandomGrid(rows, cols, opts...): uniform draw per cell from the charset.
//     – Literal(rows, opts...):          one string per row, one rune per cell.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, charset and connectivity.
//   - Shared constants:
//     – DefaultCharset: A–Z followed by Ä, Ö, Å.
//     – MinGridDim:     smallest accepted row/column count.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors wrapped with method context (errors.Is friendly).
//   - Determinism: the same seed and charset give the same grid.
package builder
