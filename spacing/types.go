// Package spacing defines sentinel errors for the spacing subpackage of
// github.com/numgrid/numgrid.
package spacing

import "errors"

// Sentinel errors for grid generation.
var (
	// ErrBadNum indicates a requested sample count of one or fewer.
	ErrBadNum = errors.New("spacing: num must be greater than 1")
)
