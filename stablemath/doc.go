// Package stablemath evaluates square-root expressions that are prone to
// catastrophic cancellation when written naively.
//
// 🚀 What is stablemath?
//
//	Two primitives for the classic "subtract a dominant term from a square
//	root" pattern:
//	  • Sqrt1pm1(x)    — sqrt(1+x) - 1
//	  • SqrtShift(x,a) — sqrt(a²+x) - a
//
//	Evaluating sqrt(1+x)-1 directly for tiny |x| cancels every significant
//	digit: sqrt(1+1e-20) rounds to exactly 1, and the subtraction leaves
//	nothing but noise. Sqrt1pm1 switches to the first-order Taylor value
//	x/2 whenever |x| drops below twice the machine epsilon of the operand
//	type, which is exact to working precision in that regime.
//
//	SqrtShift generalizes to an arbitrary shift a. For a > 0 it rescales
//	into Sqrt1pm1 (a·Sqrt1pm1(x/a²)), reusing the cancellation guard; for
//	a <= 0 the subtraction cannot cancel, so the direct form is used.
//
// ⚙️ Usage:
//
//	import "github.com/numgrid/numgrid/stablemath"
//
//	dv, err := stablemath.Sqrt1pm1(2*beta + beta*beta) // relativistic Δγ
//	if err != nil {
//	  // handle ErrNegativeRadicand (argument below -1)
//	}
//
// Both functions are generic over float32 and float64; the small-|x|
// threshold follows the machine epsilon of the instantiated type.
//
// Complexity: O(1) time, no allocation.
package stablemath
