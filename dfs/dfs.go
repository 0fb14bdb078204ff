// Package dfs implements exhaustive simple-path enumeration on a letter grid.
//
// Key features:
//   - Enumerate(g, opts...): every simple path from every cell, pre-order
//   - CountPaths(g, opts...): the same traversal without building strings
//   - Hooks: OnVisit (pre-order), OnExit (post-order), OnEmit (per candidate)
//   - Limits: MinLength (recording threshold), MaxLength (depth limit)
//
// Traversal order:
//
//   - Roots in row-major order.
//   - Neighbors in g.NeighborOffsets() order, skipping out-of-bounds cells and
//     cells already on the current path.
//   - A path is recorded when it is extended, before going deeper.
//
// Errors:
//
//   - ErrGridNil    if g is nil.
//   - gridgraph.ErrEmptyGrid / ErrNonRectangular (wrapped) if g was not built
//     by gridgraph and has no cells or the wrong shape.
//   - any error returned by OnVisit, OnExit or OnEmit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordgrid/gridgraph"
)

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	grid    *gridgraph.LetterGrid // underlying grid
	opts    EnumOptions           // traversal options
	visited *visitedSet           // cells on the active path
	buf     []rune                // letters of the active path
	collect bool                  // build candidate strings
	out     []string              // recorded candidates
	count   int                   // number of recorded paths
}

// Enumerate returns the letters of every simple path spanning at least
// MinLength cells, in root row-major order and depth-first pre-order.
// Different paths spelling the same letters each contribute one entry.
func Enumerate(g *gridgraph.LetterGrid, opts ...Option) ([]string, error) {
	w, err := newPathWalker(g, true, opts)
	if err != nil {
		return nil, err
	}
	if err = w.run(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// CountPaths returns how many paths Enumerate would record for the same
// grid and options, without allocating candidate strings.
func CountPaths(g *gridgraph.LetterGrid, opts ...Option) (int, error) {
	w, err := newPathWalker(g, false, opts)
	if err != nil {
		return 0, err
	}
	if err = w.run(); err != nil {
		return 0, err
	}

	return w.count, nil
}

func newPathWalker(g *gridgraph.LetterGrid, collect bool, opts []Option) (*pathWalker, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dfs: malformed grid %dx%d: %w", g.Rows, g.Cols, err)
	}

	// 2. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	return &pathWalker{
		grid:    g,
		opts:    eopts,
		visited: newVisitedSet(g.Size()),
		buf:     make([]rune, 0, g.Size()),
		collect: collect,
	}, nil
}

// run starts a fresh traversal from every cell in row-major order.
func (w *pathWalker) run() error {
	for r := 0; r < w.grid.Rows; r++ {
		for c := 0; c < w.grid.Cols; c++ {
			w.visited.reset()
			w.buf = w.buf[:0]
			if err := w.walk(r, c); err != nil {
				return err
			}
		}
	}

	return nil
}

// walk appends (r,c) to the active path, records it if long enough, and
// recurses into every free neighbor. The cell is released on every return.
func (w *pathWalker) walk(r, c int) (err error) {
	idx := w.grid.Index(r, c)

	// 1. Acquire: mark and push
	w.visited.mark(idx)
	w.buf = append(w.buf, w.grid.At(r, c))

	// 2. Release on exit: pop and unmark, then post-order hook
	defer func() {
		w.buf = w.buf[:len(w.buf)-1]
		w.visited.unmark(idx)
		if err == nil && w.opts.OnExit != nil {
			if hookErr := w.opts.OnExit(r, c, w.visited.isMarked(idx)); hookErr != nil {
				err = fmt.Errorf("dfs: OnExit hook at (%d,%d): %w", r, c, hookErr)
			}
		}
	}()

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if hookErr := w.opts.OnVisit(r, c, string(w.buf)); hookErr != nil {
			return fmt.Errorf("dfs: OnVisit hook at (%d,%d): %w", r, c, hookErr)
		}
	}

	// 4. Record the path once it is long enough
	length := len(w.buf)
	if length >= w.opts.MinLength {
		if err = w.emit(); err != nil {
			return err
		}
	}

	// 5. Depth limit
	if w.opts.MaxLength > 0 && length >= w.opts.MaxLength {
		return nil
	}

	// 6. Extend into each free neighbor
	var nr, nc int
	for _, d := range w.grid.NeighborOffsets() {
		nr, nc = r+d[0], c+d[1]
		if !w.grid.InBounds(nr, nc) || w.visited.isMarked(w.grid.Index(nr, nc)) {
			continue
		}
		if err = w.walk(nr, nc); err != nil {
			return err
		}
	}

	return nil
}

// emit captures the buffer as an immutable string; the buffer keeps changing
// after this call.
func (w *pathWalker) emit() error {
	w.count++
	if !w.collect && w.opts.OnEmit == nil {
		return nil
	}
	candidate := string(w.buf)
	if w.opts.OnEmit != nil {
		if err := w.opts.OnEmit(candidate); err != nil {
			return fmt.Errorf("dfs: OnEmit hook for %q: %w", candidate, err)
		}
	}
	if w.collect {
		w.out = append(w.out, candidate)
	}

	return nil
}
