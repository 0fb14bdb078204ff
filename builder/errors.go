// SPDX-License-Identifier: MIT
// Package: wordgrid/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that rows or cols is smaller than MinGridDim.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: grid dimension too small")

// ErrEmptyCharset indicates that a random grid was requested with no letters
// to draw from.
var ErrEmptyCharset = errors.New("builder: charset is empty")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
