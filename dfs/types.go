// Package dfs defines types and options for path enumeration: minimum and
// maximum recorded length and pre-/post-order and emission hooks.
package dfs

import (
	"errors"
)

// DefaultMinLength is the shortest path, in cells, whose letters are recorded.
const DefaultMinLength = 3

var (
	// ErrGridNil is returned when a nil *gridgraph.LetterGrid is passed to
	// Enumerate or CountPaths.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of path enumeration.
// Use with Enumerate(g, opts...).
type Option func(*EnumOptions)

// EnumOptions holds configurable parameters for path enumeration.
type EnumOptions struct {
	// MinLength is the minimum number of cells a path must span before its
	// letters are recorded. Shorter paths are still traversed. Default 3.
	MinLength int

	// MaxLength, if positive, stops extending paths once they span MaxLength
	// cells. Default is -1 (no limit).
	MaxLength int

	// OnVisit, if non-nil, is invoked each time a cell is appended to the
	// current path (pre-order), with the letters of the path so far.
	// Returning an error aborts traversal with that error.
	OnVisit func(row, col int, path string) error

	// OnExit, if non-nil, is invoked when the traversal leaves a cell, after the
	// cell has been released. marked reports the cell's visited flag at that
	// moment and is always false for a correct traversal.
	// Returning an error aborts traversal with that error.
	OnExit func(row, col int, marked bool) error

	// OnEmit, if non-nil, receives every recorded candidate in emission order.
	// Returning an error aborts traversal with that error.
	OnEmit func(candidate string) error
}

// DefaultOptions returns an EnumOptions struct with:
//   - MinLength = DefaultMinLength
//   - No depth limit (MaxLength = -1)
//   - No hooks
func DefaultOptions() EnumOptions {
	return EnumOptions{
		MinLength: DefaultMinLength,
		MaxLength: -1,
		OnVisit:   nil,
		OnExit:    nil,
		OnEmit:    nil,
	}
}

// WithMinLength returns an Option that sets the minimum recorded path length.
// Panics if n < 1.
func WithMinLength(n int) Option {
	if n < 1 {
		panic("dfs: WithMinLength(n<1)")
	}
	return func(o *EnumOptions) {
		o.MinLength = n
	}
}

// WithMaxLength returns an Option that limits path length to n cells.
// -1 removes the limit. Panics on 0 or values below -1.
func WithMaxLength(n int) Option {
	if n == 0 || n < -1 {
		panic("dfs: WithMaxLength(n==0 || n<-1)")
	}
	return func(o *EnumOptions) {
		o.MaxLength = n
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(row, col int, path string) error) Option {
	return func(o *EnumOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(row, col int, marked bool) error) Option {
	return func(o *EnumOptions) {
		o.OnExit = fn
	}
}

// WithOnEmit returns an Option that installs fn as an emission hook.
func WithOnEmit(fn func(candidate string) error) Option {
	return func(o *EnumOptions) {
		o.OnEmit = fn
	}
}
