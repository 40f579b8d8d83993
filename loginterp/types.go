// Package loginterp defines methods, extrapolation policies, options, and
// sentinel errors for the loginterp subpackage of github.com/numgrid/numgrid.
package loginterp

import "errors"

// Sentinel errors for interpolant construction and evaluation.
var (
	// ErrUnknownMethod indicates a method string outside loglog/xlog/ylog.
	ErrUnknownMethod = errors.New("loginterp: unknown method")
	// ErrLengthMismatch indicates x and y sample slices of differing length.
	ErrLengthMismatch = errors.New("loginterp: x and y must have the same length")
	// ErrTooFewSamples indicates fewer than two samples.
	ErrTooFewSamples = errors.New("loginterp: at least two samples are required")
	// ErrUnsortedSamples indicates x samples that are not strictly increasing.
	ErrUnsortedSamples = errors.New("loginterp: x samples must be strictly increasing")
	// ErrOutOfDomain indicates a query outside [x[0], x[len-1]] under the
	// Strict extrapolation policy. It is the same error for every method,
	// below and above the domain alike.
	ErrOutOfDomain = errors.New("loginterp: query outside interpolation domain")
)

// Method selects the coordinate space the interpolant is linear in.
type Method string

const (
	// MethodLogLog fits straight lines through (log x, log y). Negative y
	// samples are clamped to 0 before the transform.
	MethodLogLog Method = "loglog"
	// MethodXLog fits straight lines through (log x, y). y is untouched;
	// negative values are preserved.
	MethodXLog Method = "xlog"
	// MethodYLog fits straight lines through (x, log y). Negative y samples
	// are clamped to 0 before the transform.
	MethodYLog Method = "ylog"
)

// ExtrapolationMode selects how out-of-domain queries are resolved.
type ExtrapolationMode int

const (
	// ExtrapolateDefault applies the per-method convention: effectively-zero
	// output for MethodLogLog and MethodYLog (the exp of the most negative
	// float), and the constant 0 for MethodXLog.
	ExtrapolateDefault ExtrapolationMode = iota
	// ExtrapolateConstant hands Level to the backend in place of an
	// interpolated value. The level is expressed in output units and runs
	// through the same inverse transform as interpolated values, so in the
	// log-y modes the evaluator's exp applies to it.
	ExtrapolateConstant
	// ExtrapolateError turns out-of-domain queries into ErrOutOfDomain.
	ExtrapolateError
)

// Extrapolation is the out-of-domain policy of an Interpolant.
//
// The zero value is ExtrapolateDefault.
type Extrapolation struct {
	Mode  ExtrapolationMode
	Level float64 // used by ExtrapolateConstant only
}

// Constant returns a policy that yields the given level outside the domain.
func Constant(level float64) Extrapolation {
	return Extrapolation{Mode: ExtrapolateConstant, Level: level}
}

// Strict returns a policy under which out-of-domain queries fail with
// ErrOutOfDomain.
func Strict() Extrapolation {
	return Extrapolation{Mode: ExtrapolateError}
}

// Options configures interpolant construction.
//
// Fields:
//   - Method        — coordinate space; empty means MethodLogLog.
//   - Extrapolation — out-of-domain policy; zero value means the
//     per-method default.
//   - XScale/YScale — unit-normalization scale factors. Inputs are divided
//     by them before the log transform and outputs multiplied back, so the
//     logarithm always sees a dimensionless number. Zero means 1 (plain
//     scalars).
//   - Warnf — diagnostic sink for the non-positive-query warning. Nil means
//     the standard library logger. Must be safe for concurrent use if the
//     Interpolant is shared across goroutines.
//
// Example:
//
//	opts := loginterp.DefaultOptions()
//	opts.Method = loginterp.MethodYLog
//	opts.Extrapolation = loginterp.Constant(0)
//
//	ip, err := loginterp.New(xs, ys, &opts)
type Options struct {
	Method        Method
	Extrapolation Extrapolation
	XScale        float64
	YScale        float64
	Warnf         func(format string, args ...any)
}

// DefaultOptions returns Options with default settings: MethodLogLog,
// per-method extrapolation, identity unit scales, standard-library warning
// sink.
func DefaultOptions() Options {
	return Options{Method: MethodLogLog}
}
