package stablemath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Machine epsilons of the supported float types (2^-23 and 2^-52).
const (
	eps32 = 0x1p-23
	eps64 = 0x1p-52
)

// epsilon returns the machine epsilon of T.
func epsilon[T constraints.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(eps32)
	default:
		return T(eps64)
	}
}

// abs returns the absolute value of a float.
func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt1pm1 — sqrt(1+x) - 1 without catastrophic cancellation.
//
// Description:
//
//	For |x| below twice the machine epsilon of T, sqrt(1+x) rounds to
//	exactly 1 and the naive subtraction returns pure noise; in that regime
//	the first-order Taylor value x/2 is returned instead, which is exact
//	to working precision. Everywhere else the direct form applies.
//
// Boundary values:
//
//	Sqrt1pm1(0)  == 0
//	Sqrt1pm1(-1) == -1 (the direct branch: sqrt(0) - 1)
//
// Errors:
//   - ErrNegativeRadicand — if x < -1.
func Sqrt1pm1[T constraints.Float](x T) (T, error) {
	if x < -1 {
		return 0, ErrNegativeRadicand
	}
	if abs(x) < 2*epsilon[T]() {
		return x / 2, nil
	}
	return T(math.Sqrt(float64(1+x))) - 1, nil
}

// SqrtShift — sqrt(a²+x) - a without catastrophic cancellation.
//
// Description:
//
//	Useful when a² and x are commensurate but x is tiny relative to a².
//	For a > 0 the expression rescales to a·Sqrt1pm1(x/a²), which both
//	reuses the cancellation guard and restores the scale of a. For a <= 0
//	the subtraction adds rather than cancels (-a >= 0), so the direct
//	form is safe.
//
// SqrtShift(x, 0) reduces to sqrt(x) for x >= 0.
//
// Errors:
//   - ErrNegativeRadicand — if a²+x < 0.
func SqrtShift[T constraints.Float](x, a T) (T, error) {
	if a > 0 {
		v, err := Sqrt1pm1(x / (a * a))
		if err != nil {
			return 0, err
		}
		return a * v, nil
	}
	r := a*a + x
	if r < 0 {
		return 0, ErrNegativeRadicand
	}
	return T(math.Sqrt(float64(r))) - a, nil
}
