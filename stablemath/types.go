// Package stablemath defines sentinel errors for the stablemath subpackage
// of github.com/numgrid/numgrid.
package stablemath

import "errors"

// Sentinel errors for stable square-root evaluation.
var (
	// ErrNegativeRadicand indicates the expression under the square root is
	// negative, which has no value in the real domain.
	ErrNegativeRadicand = errors.New("stablemath: square root of a negative value")
)
