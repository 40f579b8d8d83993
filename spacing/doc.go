// Package spacing generates evenly spaced sample grids on linear and
// geometric (logarithmic) scales.
//
// 🚀 What is spacing?
//
//	Two tiny generators that scientific code reaches for constantly:
//	  • Linspace(start, stop, num, endpoint) — arithmetic progression
//	  • Geomspace(start, stop, num, endpoint) — geometric progression
//
//	Both return exactly num samples. The first sample is the requested
//	start value bit-for-bit; the last sample equals stop (up to rounding
//	of the computed step) when endpoint is true, and stops one step short
//	of it when endpoint is false.
//
// ✨ Key properties:
//   - Iterative recurrence — each step is one addition (Linspace) or one
//     multiplication (Geomspace); the first element is never rounded
//   - Generic — works on float32 and float64 via constraints.Float
//   - Deterministic and allocation-fresh — a new slice on every call
//
// ⚙️ Usage:
//
//	import "github.com/numgrid/numgrid/spacing"
//
//	grid, err := spacing.Geomspace(1e-3, 1e3, 50, true)
//	if err != nil {
//	  // handle ErrBadNum (num must exceed 1)
//	}
//
// Geomspace requires start and stop to be nonzero and of the same sign;
// zero or mixed-sign inputs are not validated and follow real
// exponentiation semantics (the ratio may come out NaN).
//
// Complexity: O(num) time, O(num) memory.
package spacing
