// Package dfs enumerates simple paths on a gridgraph.LetterGrid by depth-first
// search with backtracking, producing the letters spelled along each path.
//
// What:
//
//   - Enumerate: starting from every cell in row-major order, explores every
//     simple path (no cell repeated) that follows the grid's adjacency, and
//     records each path's letters once the path reaches a minimum length.
//   - CountPaths: same traversal, counting instead of building strings.
//   - Paths shorter than the minimum are still walked so longer paths can be
//     reached through them; they are just not recorded.
//
// Why:
//   - Word-search boards: every candidate word a player could trace.
//   - Exhaustive path statistics for small grids.
//
// Key Types & Constants:
//
//   - DefaultMinLength: 3, the shortest recorded path.
//   - Option / EnumOptions: functional options for the traversal.
//   - visitedSet: per-traversal mark table with strict stack discipline.
//
// Complexity:
//
//   - Time:   proportional to the number of simple paths, which grows
//     combinatorially with grid area (no pruning besides the simple-path rule).
//   - Memory: O(R×C) for the visited table and the rune buffer, plus the output.
//     Recursion depth never exceeds R×C.
//
// Errors:
//
//   - ErrGridNil       grid pointer is nil
//   - hook errors      propagated from OnVisit, OnExit or OnEmit
//
// Concurrency:
//
//   - Each call owns its own visited table and buffer; concurrent calls on the
//     same immutable grid are safe. A single call is sequential.
package dfs
