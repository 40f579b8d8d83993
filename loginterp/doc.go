// Package loginterp builds piecewise-linear interpolants that operate in
// log-log, log-x, or log-y coordinate space.
//
// 🚀 What is loginterp?
//
//	Physical quantities are very often linear in log space: spectra,
//	cross-sections, attenuation curves. loginterp wraps a 1-D
//	piecewise-linear backend (gonum's interp.PiecewiseLinear) with the
//	coordinate-transform bookkeeping, so callers hand over plain (x, y)
//	samples and query in plain coordinates:
//	  • MethodLogLog — straight lines through (log x, log y)
//	  • MethodXLog   — straight lines through (log x, y)
//	  • MethodYLog   — straight lines through (x, log y)
//
// ✨ Edge-case policy (the whole point of this package):
//   - Negative y samples are clamped to 0 in the log-y modes (loglog,
//     ylog) — tolerated, not rejected. log(0) = -Inf flows into the
//     backend unchanged; any NaN it produces during evaluation is
//     suppressed to 0. MethodXLog keeps negative y verbatim.
//   - Querying a log-x interpolant (loglog, xlog) at x <= 0 is not an
//     error: a warning goes to the diagnostic sink and the result is 0.
//   - Out-of-domain queries follow the Extrapolation policy: a constant
//     level, Strict() (ErrOutOfDomain), or the per-method default —
//     zero output for loglog/ylog, the constant 0 for xlog.
//
// ⚙️ Usage:
//
//	import "github.com/numgrid/numgrid/loginterp"
//
//	opts := loginterp.DefaultOptions()
//	opts.Method = loginterp.MethodLogLog
//	opts.Extrapolation = loginterp.Strict()
//
//	ip, err := loginterp.New(xs, ys, &opts)
//	if err != nil {
//	  // handle ErrUnknownMethod, ErrLengthMismatch, ErrTooFewSamples,
//	  // ErrUnsortedSamples
//	}
//	v, err := ip.Eval(2.5) // ErrOutOfDomain under Strict()
//
// An Interpolant never mutates after construction and is safe for
// concurrent use (provided the injected Warnf sink is).
//
// Complexity: O(n) construction, O(log n) per query.
package loginterp
