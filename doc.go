// Package numgrid is a small toolbox of numerically careful primitives for
// scientific code — sample-grid generation, cancellation-free square roots,
// and log-space piecewise-linear interpolation.
//
// 🚀 What is numgrid?
//
//	A compact, dependency-light library that brings together:
//		• spacing/    — evenly spaced grids on linear (Linspace) and
//		  geometric (Geomspace) scales
//		• stablemath/ — sqrt(1+x)-1 and sqrt(a²+x)-a without catastrophic
//		  cancellation (Sqrt1pm1, SqrtShift)
//		• loginterp/  — piecewise-linear interpolants in log-log, log-x or
//		  log-y coordinates, with explicit extrapolation policy
//
// ✨ Why choose numgrid?
//
//   - Predictable edge cases — every boundary behavior is documented and
//     tested, from Geomspace's exact first element to loginterp's handling
//     of zero-valued samples
//   - Explicit errors — sentinel errors, no panics on bad input
//   - Pure values — every function is deterministic and side-effect free;
//     interpolants are immutable and safe for concurrent use
//   - Generic where it helps — grid and sqrt helpers work on float32 and
//     float64 alike
//
// Quick sketch:
//
//	xs, _ := spacing.Geomspace(1e-3, 1e3, 50, true)   // log-spaced grid
//	ip, _ := loginterp.New(xs, ys, nil)               // log-log interpolant
//	v, _  := ip.Eval(2.5)
//
// Dive into each package's doc.go for the full walkthrough.
//
//	go get github.com/numgrid/numgrid
package numgrid
