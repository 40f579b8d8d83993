package loginterp

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Interpolant is a piecewise-linear interpolant in the coordinate space
// chosen at construction. It is immutable and safe for concurrent use.
type Interpolant struct {
	method Method
	pl     interp.PiecewiseLinear

	lo, hi     float64 // fitted domain, transformed and unit-normalized
	xmin, xmax float64 // original sample domain, caller units

	strict bool
	level  float64 // backend-side constant when not strict

	xScale, yScale float64
	warnf          func(format string, args ...any)
}

// New builds an Interpolant over equal-length sample slices xs (strictly
// increasing) and ys. A nil opts means DefaultOptions.
//
// In the log-y methods (loglog, ylog) negative ys samples are clamped to 0
// rather than rejected; log(0) = -Inf is passed to the backend as a valid,
// if extreme, sample value.
//
// Errors:
//   - ErrUnknownMethod   — method outside loglog/xlog/ylog.
//   - ErrLengthMismatch  — len(xs) != len(ys).
//   - ErrTooFewSamples   — fewer than two samples.
//   - ErrUnsortedSamples — xs not strictly increasing (after the transform;
//     a NaN produced by log of a negative x sample also lands here).
func New(xs, ys []float64, opts *Options) (*Interpolant, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Method == "" {
		o.Method = MethodLogLog
	}
	switch o.Method {
	case MethodLogLog, MethodXLog, MethodYLog:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(o.Method))
	}
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return nil, ErrTooFewSamples
	}

	xScale, yScale := o.XScale, o.YScale
	if xScale == 0 {
		xScale = 1
	}
	if yScale == 0 {
		yScale = 1
	}

	tx := make([]float64, len(xs))
	ty := make([]float64, len(ys))
	for i := range xs {
		x := xs[i] / xScale
		y := ys[i] / yScale
		if o.Method != MethodXLog && y < 0 {
			y = 0 // tolerated, not rejected
		}
		switch o.Method {
		case MethodLogLog:
			tx[i], ty[i] = math.Log(x), math.Log(y)
		case MethodXLog:
			tx[i], ty[i] = math.Log(x), y
		case MethodYLog:
			tx[i], ty[i] = x, math.Log(y)
		}
	}
	for i := 1; i < len(tx); i++ {
		if !(tx[i] > tx[i-1]) {
			return nil, ErrUnsortedSamples
		}
	}

	ip := &Interpolant{
		method: o.Method,
		lo:     tx[0],
		hi:     tx[len(tx)-1],
		xmin:   xs[0],
		xmax:   xs[len(xs)-1],
		xScale: xScale,
		yScale: yScale,
		warnf:  o.Warnf,
	}
	if ip.warnf == nil {
		ip.warnf = log.Printf
	}

	switch o.Extrapolation.Mode {
	case ExtrapolateError:
		ip.strict = true
	case ExtrapolateConstant:
		ip.level = o.Extrapolation.Level / yScale
	default:
		if o.Method == MethodXLog {
			ip.level = 0
		} else {
			// The evaluator exponentiates whatever stands in for the backend
			// value, so the most negative float maps the default to 0 output.
			ip.level = -math.MaxFloat64
		}
	}

	if err := ip.pl.Fit(tx, ty); err != nil {
		return nil, fmt.Errorf("loginterp: fitting backend: %w", err)
	}

	return ip, nil
}

// Eval evaluates the interpolant at q (caller units).
//
// For the log-x methods (loglog, xlog) a query q <= 0 is not an error: a
// warning is emitted through the configured sink and 0 is returned. In the
// log-y methods (loglog, ylog) a NaN produced by the backend — the trace of
// a log(0) sample — is suppressed to 0.
//
// Errors:
//   - ErrOutOfDomain — q outside [x[0], x[len-1]] under Strict().
func (ip *Interpolant) Eval(q float64) (float64, error) {
	qn := q / ip.xScale

	var t float64
	switch ip.method {
	case MethodLogLog, MethodXLog:
		if qn <= 0 {
			ip.warnf("loginterp: non-positive query %g for %s interpolant, returning 0", q, ip.method)

			return 0, nil
		}
		t = math.Log(qn)
	default: // MethodYLog
		t = qn
	}

	var v float64
	if t < ip.lo || t > ip.hi {
		if ip.strict {
			return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrOutOfDomain, q, ip.xmin, ip.xmax)
		}
		v = ip.level
	} else {
		v = ip.pl.Predict(t)
	}

	if ip.method == MethodXLog {
		return v * ip.yScale, nil
	}
	out := math.Exp(v)
	if math.IsNaN(out) {
		return 0, nil
	}

	return out * ip.yScale, nil
}
