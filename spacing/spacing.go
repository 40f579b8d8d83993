package spacing

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Linspace — evenly spaced samples on a linear scale.
//
// Description:
//
//	Returns num samples from start towards stop in arithmetic
//	progression. With endpoint=true the step is (stop-start)/(num-1) and
//	the final sample lands on stop (up to rounding of the step); with
//	endpoint=false the step is (stop-start)/num and stop is excluded.
//
// Algorithm:
//  1. d = (stop-start)/n, n = num-1 (endpoint) or num (open).
//  2. out[0] = start, unmodified.
//  3. out[i] = out[i-1] + d for i = 1..num-1.
//
// Errors:
//   - ErrBadNum — if num <= 1.
func Linspace[T constraints.Float](start, stop T, num int, endpoint bool) ([]T, error) {
	if num <= 1 {
		return nil, ErrBadNum
	}
	n := num
	if endpoint {
		n = num - 1
	}
	d := (stop - start) / T(n)

	out := make([]T, num)
	out[0] = start
	for i := 1; i < num; i++ {
		out[i] = out[i-1] + d
	}

	return out, nil
}

// Geomspace — evenly spaced samples on a logarithmic scale.
//
// Description:
//
//	Returns num samples from start towards stop in geometric
//	progression. start and stop must be nonzero and share a sign so that
//	the ratio stop/start is positive; this is not validated (see the
//	package documentation).
//
// Algorithm:
//  1. q = (stop/start)^(1/n), n = num-1 (endpoint) or num (open).
//  2. out[0] = start, unmodified.
//  3. out[i] = out[i-1] * q for i = 1..num-1.
//
// The recurrence keeps every step a single multiplication. Do not replace
// it with direct power evaluation start*q^(i-1); downstream consumers
// depend on the recurrence's rounding behavior.
//
// Errors:
//   - ErrBadNum — if num <= 1.
func Geomspace[T constraints.Float](start, stop T, num int, endpoint bool) ([]T, error) {
	if num <= 1 {
		return nil, ErrBadNum
	}
	n := num
	if endpoint {
		n = num - 1
	}
	q := T(math.Pow(float64(stop/start), 1/float64(n)))

	out := make([]T, num)
	out[0] = start
	for i := 1; i < num; i++ {
		out[i] = out[i-1] * q
	}

	return out, nil
}
